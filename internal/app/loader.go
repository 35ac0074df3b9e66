package app

import (
	"context"
	"sync"
	"time"
)

// ScreenOption configures a screen.
type ScreenOption func(*loader)

// WithLoadTimeout limits the duration of a whole screen load sequence.
// Zero means no limit other than the github client's own timeouts.
func WithLoadTimeout(timeout time.Duration) ScreenOption {
	return func(l *loader) {
		l.timeout = timeout
	}
}

// loader runs a screen's load sequence detached from callers' contexts.
// A caller giving up doesn't cancel the sequence, other callers still get its result.
type loader struct {
	timeout time.Duration

	m    sync.Mutex
	done chan struct{}
}

func newLoader(opts []ScreenOption) *loader {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// run starts fn unless it's already running, then waits until fn returns or ctx is done.
// Returns false if ctx was done first.
func (l *loader) run(ctx context.Context, fn func(context.Context)) bool {
	select {
	case <-l.start(fn):
		return true
	case <-ctx.Done():
		return false
	}
}

func (l *loader) start(fn func(context.Context)) <-chan struct{} {
	l.m.Lock()
	defer l.m.Unlock()

	if l.done != nil {
		return l.done
	}

	done := make(chan struct{})
	l.done = done
	go func() {
		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if l.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, l.timeout)
		}
		defer cancel()

		fn(ctx)

		l.m.Lock()
		l.done = nil
		l.m.Unlock()
		close(done)
	}()

	return done
}
