// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"
	"log/slog"
)

// NopLogger discards everything, including debug records, so log calls
// still evaluate their attributes under test.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
