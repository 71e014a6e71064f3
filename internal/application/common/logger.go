package common

import (
	"context"
	"io"
	"log/slog"
)

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger attaches a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the context's logger, or one that discards everything
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discardLogger
}

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return discardLogger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
