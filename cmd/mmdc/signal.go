package main

import (
	"context"
	"os/signal"
)

// notifyContext derives the conversion context: it is canceled by the
// parent or by the first shutdown signal, which also stops Chrome through
// the renderer's deferred close.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
