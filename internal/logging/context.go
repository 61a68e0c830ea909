package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the logger stored in a context by WithLogger.
type ctxKey struct{}

// WithLogger attaches logger to ctx so that code further down the call chain
// can retrieve it with FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// package default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}
