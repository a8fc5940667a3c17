// Package logging defines the structured logger used across the server and the
// ingestion tool.
package logging

import (
	"context"
	"sync/atomic"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "photo created", "photo_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// atomic.Value 要求每次存入相同的具体类型，因此包一层
type holder struct{ l Logger }

var defaultLogger atomic.Value

// Default returns the process-wide logger. Until SetDefault is called it
// writes text records at info level to stderr.
func Default() Logger {
	if h, ok := defaultLogger.Load().(holder); ok {
		return h.l
	}
	return New("info", "text")
}

func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(holder{l: l})
	}
}
