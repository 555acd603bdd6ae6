package slab

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger installs l as the package-wide logger. Passing nil restores the
// discard-by-default logger. Safe to call concurrently with allocator
// activity; takes effect for log statements emitted after it returns.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	currentLogger.Store(l)
}

func logger() *slog.Logger {
	return currentLogger.Load()
}
