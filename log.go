package aoc

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Debug messages are only
// emitted when debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
