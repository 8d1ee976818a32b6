package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codebank/codebank/internal/bank"
	"github.com/codebank/codebank/internal/format"
	"github.com/codebank/codebank/internal/telemetry"
)

var generateCmd = &cobra.Command{
	Use:   "generate <path> <strategy>",
	Short: "Render <path> to Markdown and print it to stdout",
	Long: `Render <path> to Markdown under <strategy> (default|summary|no-tests) and print it to stdout.

Examples:
  codebank generate . default
  codebank generate ./src summary`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := runGenerate(cmd, args[0], args[1])
		if err != nil {
			telemetry.ReportEvent(telemetry.ErrorGenerating)
			return err
		}
		telemetry.ReportEvent(telemetry.GenerateCommand)
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	},
}

var generateFileCmd = &cobra.Command{
	Use:   "generate-file <path> <strategy> <output>",
	Short: "Render <path> to Markdown and write it to <output>",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := generateOptions(cmd, args[1])
		if err != nil {
			return err
		}
		if err := bank.GenerateToFile(context.Background(), args[0], args[2], opts); err != nil {
			telemetry.ReportEvent(telemetry.ErrorGenerating)
			return err
		}
		telemetry.ReportEvent(telemetry.GenerateFileCommand)
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("wrote"), args[2])
		return nil
	},
}

func runGenerate(cmd *cobra.Command, path, strategyArg string) (string, error) {
	opts, err := generateOptions(cmd, strategyArg)
	if err != nil {
		return "", err
	}
	return bank.Generate(context.Background(), path, opts)
}

func generateOptions(cmd *cobra.Command, strategyArg string) (bank.Options, error) {
	strategy, err := format.ParseStrategy(strategyArg)
	if err != nil {
		return bank.Options{}, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := bank.VerbosityDefault
	if verbose {
		level = bank.VerbosityVerbose
	}
	logger := bank.NewLoggerWithWriter(level, cmd.ErrOrStderr())
	return bank.Options{Strategy: strategy, Logger: logger}, nil
}

func init() {
	generateCmd.Flags().Bool("verbose", false, "Print one progress line per file processed")
	generateFileCmd.Flags().Bool("verbose", false, "Print one progress line per file processed")
}
