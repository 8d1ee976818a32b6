// Package telemetry reports anonymous, opt-out usage events for the
// generate command. Adapted from the teacher's analytics package: same
// per-user UUID file under the home directory, same opt-out switch, same
// PostHog sink, retargeted from SAST-scan events to generate-command
// events.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/posthog/posthog-go"
)

// Event names reported by the generate command.
const (
	GenerateCommand     = "executed_generate_command"
	GenerateFileCommand = "executed_generate_file_command"
	ErrorGenerating     = "error_generating_bank"
)

var (
	// PublicKey is the PostHog project key; empty disables reporting
	// entirely regardless of the opt-out flag.
	PublicKey     string
	enableMetrics bool
)

// Init sets whether events are reported. Call once at process start from
// the CLI's --disable-metrics flag.
func Init(disableMetrics bool) {
	enableMetrics = !disableMetrics
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codebank"), nil
}

func createEnvFile() {
	dir, err := configDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "telemetry: could not resolve home directory:", err)
		return
	}
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, "telemetry: could not create config directory:", err)
			return
		}
		env := map[string]string{"uuid": uuid.New().String()}
		if err := godotenv.Write(env, envFile); err != nil {
			fmt.Fprintln(os.Stderr, "telemetry: could not write env file:", err)
		}
	}
}

// LoadEnvFile ensures the per-user anonymous id file exists and loads it
// into the process environment. Call once at process start.
func LoadEnvFile() {
	createEnvFile()
	dir, err := configDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(dir, ".env"))
}

// ReportEvent sends a single named event, silently doing nothing when
// metrics are disabled or no PublicKey has been configured at build time.
func ReportEvent(event string) {
	if !enableMetrics || PublicKey == "" {
		return
	}
	client, err := posthog.NewWithConfig(PublicKey, posthog.Config{Endpoint: "https://us.i.posthog.com"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "telemetry:", err)
		return
	}
	defer client.Close()
	if err := client.Enqueue(posthog.Capture{DistinctId: os.Getenv("uuid"), Event: event}); err != nil {
		fmt.Fprintln(os.Stderr, "telemetry:", err)
	}
}
