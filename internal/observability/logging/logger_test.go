package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"itemvault/internal/handler/http/requestid"
	"itemvault/internal/observability/logging"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"nonsense", false}, // falls back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.NewLogger(tt.level)
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debugOn {
				t.Fatalf("Enabled(debug) = %v, want %v", got, tt.debugOn)
			}
		})
	}
}

func TestWithRequestID(t *testing.T) {
	base := logging.NewLogger("info")

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	if got := logging.WithRequestID(ctx, base); got == base {
		t.Fatal("WithRequestID returned the base logger despite an ID in context")
	}

	if got := logging.WithRequestID(context.Background(), base); got != base {
		t.Fatal("WithRequestID allocated a new logger without an ID in context")
	}
}
