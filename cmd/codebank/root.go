package main

import (
	"github.com/spf13/cobra"

	"github.com/codebank/codebank/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "codebank",
	Short: "CodeBank renders a source tree into a single Markdown document",
	Long:  `CodeBank parses Rust, Python, TypeScript/JavaScript, Go, C, and C++ source trees and renders them into one Markdown document under a chosen strategy.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics, _ := cmd.Flags().GetBool("disable-metrics") //nolint:all
		telemetry.LoadEnvFile()
		telemetry.Init(disableMetrics)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable metrics collection")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(generateFileCmd)
}
