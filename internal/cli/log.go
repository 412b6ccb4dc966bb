// Package cli implements the planar command-line interface.
//
// # Commands
//
//   - estimate: fit a homography to the four correspondences of a calibration file
//   - apply: project points through a stored homography
//   - invert: invert a stored homography
//
// # Files
//
// Calibration files and homography files are TOML. A calibration lists four
// [[pair]] tables with src/dst coordinates plus optional solver settings; a
// homography file holds nine row-major entries with entry [2][2] == 1.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces the estimator stages. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
