// Package logging provides structured logging utilities using the standard
// library's log/slog package.
package logging

import (
	"context"
	"log/slog"
	"os"

	"itemvault/internal/handler/http/requestid"
)

// NewLogger creates a new structured logger with JSON output at the given
// level ("debug", "info", "warn", "error"; default info).
// Source locations are attached for warn and error records.
func NewLogger(level string) *slog.Logger {
	logLevel := parseLevel(level)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// NewTextLogger creates a logger with human-readable text output.
// Useful for local development.
func NewTextLogger(level string) *slog.Logger {
	logLevel := parseLevel(level)
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a new logger that includes the request ID from the
// context, enabling request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
