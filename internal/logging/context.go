package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type loggerContextKey struct{}

// WithLogger attaches logger to ctx. A nil ctx starts from Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger attached to ctx, or Default when there is
// none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithCommandLogger attaches a new logger writing to w at level and returns
// both. Each command invocation gets its own logger so its level changes do
// not leak into other invocations in the same process.
func WithCommandLogger(ctx context.Context, w io.Writer, level string) (context.Context, *log.Logger) {
	logger := NewWithWriter(w, level)
	return WithLogger(ctx, logger), logger
}

// SetLoggerLevel updates the level of logger.
func SetLoggerLevel(logger *log.Logger, level string) {
	setLoggerLevel(logger, level)
}
