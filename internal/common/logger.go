package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the JSON logger the commands share. quiet raises the
// level so only errors are emitted.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
