// Package signal turns SIGINT and SIGTERM into context cancellation for the
// can-exit CLI.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Handler remembers which signal, if any, cancelled a run.
type Handler struct {
	received atomic.Value
}

// Signal returns the received signal, or nil when the run ended on its own.
func (h *Handler) Signal() os.Signal {
	if s, ok := h.received.Load().(os.Signal); ok {
		return s
	}
	return nil
}

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls onInterrupt (if non-nil) with the
// signal, then cancels the context. The handler goroutine stops listening
// once ctx is done.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	h := signal.SetupSignalHandler(ctx, cancel, func(s os.Signal) {
//	    logging.Warn("Received " + s.String())
//	})
//	orch.Signal = h.Signal
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func(os.Signal)) *Handler {
	h := &Handler{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case s := <-sigCh:
			h.received.Store(s)
			if onInterrupt != nil {
				onInterrupt(s)
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}()

	return h
}
