// Package observability provides structured logging setup for the
// harness CLIs.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger configures the default slog logger with JSON output at the
// given level. Logs go to stderr: stdout carries only comparison output,
// so a pipeline can capture the report cleanly.
func InitLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
