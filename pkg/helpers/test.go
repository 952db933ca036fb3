package helpers

import (
	"context"
	"log/slog"

	"github.com/pinkswindowcleaning/pulse-backend/pkg/logger"
)

// TestCtx returns a context carrying a discard logger so code under test can
// pull a logger from context without special-casing.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelError))
	return logger.ToContext(context.Background(), log)
}
