// Package cli implements the diagrams command-line interface.
//
// This package provides commands for rendering the sample diagrams of
// pkg/gallery to SVG, PNG or a JSON command trace, for printing their
// virtual sizes, and for listing them. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - render: Render a sample to one or more formats (or pick one with --pick)
//   - size: Print a sample's inferred size
//   - samples: List the available samples
//
// # Configuration
//
// Defaults for render can be stored in a TOML file, by default
// $XDG_CONFIG_HOME/diagrams/config.toml. Flags override file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Rendered snowman (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
