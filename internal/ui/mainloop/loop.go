// Package mainloop runs engine work on one goroutine. Watchers and timers
// post tasks; Run executes them in order.
package mainloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shellgrid/internal/logging"
)

// ErrStopped is returned when posting to a loop that has finished.
var ErrStopped = errors.New("main loop stopped")

// Loop is a single-goroutine task queue. Post never blocks.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped bool
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn for the next turn. It reports false once the loop has
// stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Schedule adapts Post to the func(func()) shape NewCoalescer expects.
func (l *Loop) Schedule(fn func()) {
	_ = l.Post(fn)
}

// Invoke runs fn on the loop and waits for its result.
func (l *Loop) Invoke(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	if !l.Post(func() { done <- fn() }) {
		return ErrStopped
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes queued tasks until ctx is done. A panicking task is logged
// and does not stop the loop. Tasks still queued at cancellation are
// dropped.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(logging.WithComponent(ctx, "mainloop"))
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
	}()

	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := runTask(fn); err != nil {
				log.Error().Err(err).Msg("main loop task panicked")
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func runTask(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
