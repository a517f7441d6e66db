// Package logging provides structured logging configuration using log/slog.
//
// Logs are written to stderr so they stay out of the interactive transcript
// on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithFields returns the default logger with additional structured fields.
//
// Usage:
//
//	runLogger := logging.WithFields("file", path)
//	runLogger.Info("sheet selected", "sheet", name)
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}

// ForRun returns a logger tagged with a fresh run id and the input file, so
// every entry of one cleaning session can be correlated.
func ForRun(file string) *slog.Logger {
	return WithFields("run_id", uuid.NewString(), "file", file)
}
