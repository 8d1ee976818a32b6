package bank

import (
	"fmt"
	"io"
	"os"
	"time"
)

// VerbosityLevel controls how much progress the Orchestrator reports while
// generating a bank. Adapted from the teacher's output.VerbosityLevel.
type VerbosityLevel int

const (
	// VerbosityDefault shows only warnings about skipped files.
	VerbosityDefault VerbosityLevel = iota
	// VerbosityVerbose adds one progress line per file processed.
	VerbosityVerbose
	// VerbosityDebug also shows Debug lines, each with an elapsed-time prefix.
	VerbosityDebug
)

// Logger provides structured progress logging with verbosity control.
// Adapted from the teacher's output.Logger, generalized from the CLI's
// analysis-run reporting to the generate command's file-by-file walk.
type Logger struct {
	verbosity VerbosityLevel
	writer    io.Writer
	startTime time.Time
}

// NewLogger creates a logger writing to stderr at the given verbosity.
func NewLogger(verbosity VerbosityLevel) *Logger {
	return &Logger{verbosity: verbosity, writer: os.Stderr, startTime: time.Now()}
}

// NewLoggerWithWriter creates a logger with a custom writer, for tests.
func NewLoggerWithWriter(verbosity VerbosityLevel, w io.Writer) *Logger {
	return &Logger{verbosity: verbosity, writer: w, startTime: time.Now()}
}

// Progress logs a file-processing line, shown in verbose and debug modes.
func (l *Logger) Progress(format string, args ...interface{}) {
	if l.verbosity >= VerbosityVerbose {
		fmt.Fprintf(l.writer, format+"\n", args...)
	}
}

// Debug logs a diagnostic line with an elapsed-time prefix, debug mode only.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbosity >= VerbosityDebug {
		fmt.Fprintf(l.writer, "[%s] %s\n", formatDuration(time.Since(l.startTime)), fmt.Sprintf(format, args...))
	}
}

// Warning logs a recoverable per-file error (always shown): a file that was
// skipped rather than one that aborted the whole run.
func (l *Logger) Warning(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Warning: %s\n", fmt.Sprintf(format, args...))
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
