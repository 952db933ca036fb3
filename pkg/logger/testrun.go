package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; level is honored so tests exercising
// Enabled checks behave like production.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
