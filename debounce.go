package viewcube

import (
	"sync"
	"time"
)

// debouncer defers an action until a quiet period elapses with no new
// triggers (trailing edge). A burst of triggers runs the action exactly
// once, with the value of the last trigger. Safe to trigger every frame;
// at most one timer is pending at a time.
type debouncer[T any] struct {
	quiet time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	stopped bool
}

func newDebouncer[T any](quiet time.Duration, fn func(T)) *debouncer[T] {
	return &debouncer[T]{quiet: quiet, fn: fn}
}

// Trigger (re)schedules the action to run after the quiet period,
// replacing any pending value.
func (d *debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

func (d *debouncer[T]) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.fn(v)
}

// Stop cancels any pending action and makes further triggers no-ops.
// Stop wins over a concurrently firing timer: once it returns, fn will
// not be called again.
func (d *debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
