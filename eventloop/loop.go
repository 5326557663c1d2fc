// Package eventloop provides a single-goroutine dispatcher for work that
// must not run concurrently with other UI work.
package eventloop

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Dispatcher = (*Loop)(nil)

// ErrClosed is returned when work is submitted to a closed loop.
var ErrClosed = errors.New("eventloop: closed")

type task struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Loop runs submitted work one item at a time on a dedicated goroutine.
type Loop struct {
	tasks   chan task
	quit    chan struct{}
	stopped chan struct{}

	mu     sync.Mutex
	closed bool
}

// New starts a loop with room for queue pending items.
func New(queue int) *Loop {
	l := &Loop{
		tasks:   make(chan task, queue),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case t := <-l.tasks:
			if err := t.ctx.Err(); err != nil {
				t.done <- err
				continue
			}
			t.done <- t.fn(t.ctx)
		case <-l.quit:
			return
		}
	}
}

// Do queues fn and waits for it to finish. If ctx is done before fn starts,
// fn is skipped and Do returns ctx.Err(). Once fn has started Do always waits
// for it, so anything fn produced is visible to the caller.
func (l *Loop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.mu.Unlock()

	t := task{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case l.tasks <- t:
	case <-l.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-l.quit:
		// The item in progress, if it is ours, reports before the loop stops.
		<-l.stopped
		select {
		case err := <-t.done:
			return err
		default:
			return ErrClosed
		}
	}
}

// Close stops the loop after the item in progress, if any, completes.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	close(l.quit)
	<-l.stopped
}
