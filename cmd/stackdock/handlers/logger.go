package handlers

import (
	"log/slog"
	"os"

	"github.com/go-logr/logr"
)

// newLogger builds the logger handlers pass down to the client and
// reconciler. Verbose enables debug-level output.
func newLogger(verbose bool) logr.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logr.FromSlogHandler(handler)
}
