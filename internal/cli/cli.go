// Package cli implements the particlestudio command-line interface.
//
// Commands:
//   - serve: run the editor backend HTTP API
//   - validate: check a config file and list every defect
//   - convert: import a config file and re-export it normalized
//   - detect: group files into an animation frame sequence
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches a logger to the context.
func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// loggerFromContext retrieves the logger attached by withLogger, falling
// back to the package default logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}

// parseLevel maps a settings log level string to a charm log level.
func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
