package main

// Notes:
// - Delivery of a real signal is only checked on unix (signal_unix_test.go)

import (
	"context"
	"os"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNotifyContext - conversion context lifetime
// ---------------------------------------------------------------------------

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cancel   func(parentCancel, stop context.CancelFunc)
		wantDone bool
	}{
		{"live until canceled", func(context.CancelFunc, context.CancelFunc) {}, false},
		{"stop ends conversion", func(_, stop context.CancelFunc) { stop() }, true},
		{"parent cancel ends conversion", func(parentCancel, _ context.CancelFunc) { parentCancel() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parent, parentCancel := context.WithCancel(context.Background())
			t.Cleanup(parentCancel)
			ctx, stop := notifyContext(parent)
			t.Cleanup(stop)

			tt.cancel(parentCancel, stop)

			select {
			case <-ctx.Done():
				if !tt.wantDone {
					t.Fatal("context canceled unexpectedly")
				}
			default:
				if tt.wantDone {
					t.Fatal("context still live")
				}
			}
		})
	}
}

func TestShutdownSignals(t *testing.T) {
	t.Parallel()

	if !slices.Contains(shutdownSignals, os.Interrupt) {
		t.Errorf("shutdownSignals = %v, want os.Interrupt included", shutdownSignals)
	}
}
