package promise

import (
	"context"
	"sync"
)

// Deferred tracks tasks started through Run so that other goroutines can
// wait for all of them. The zero value is ready to use.
//
//	var lock promise.Deferred
//	go lock.Run(ctx, flush)
//
//	// elsewhere
//	lock.Wait(ctx) // returns once flush is done
type Deferred struct {
	mu    sync.Mutex
	next  uint64
	tasks map[uint64]chan struct{}
}

// Run calls f and returns its error. While f runs it is tracked by d.
func (d *Deferred) Run(ctx context.Context, f func(context.Context) error) error {
	id, done := d.track()
	defer d.untrack(id, done)
	return f(ctx)
}

func (d *Deferred) track() (uint64, chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tasks == nil {
		d.tasks = make(map[uint64]chan struct{})
	}
	d.next++
	done := make(chan struct{})
	d.tasks[d.next] = done
	return d.next, done
}

func (d *Deferred) untrack(id uint64, done chan struct{}) {
	d.mu.Lock()
	delete(d.tasks, id)
	d.mu.Unlock()
	close(done)
}

// Wait blocks until every task tracked at the time of the call has
// finished, whatever its outcome, or until ctx is done.
func (d *Deferred) Wait(ctx context.Context) error {
	d.mu.Lock()
	pending := make([]chan struct{}, 0, len(d.tasks))
	for _, done := range d.tasks {
		pending = append(pending, done)
	}
	d.mu.Unlock()

	for _, done := range pending {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// IsWaiting reports whether any tracked task is still running.
func (d *Deferred) IsWaiting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks) > 0
}

// Clear stops tracking the running tasks. They keep running but later
// calls to Wait no longer wait for them.
func (d *Deferred) Clear() {
	d.mu.Lock()
	clear(d.tasks)
	d.mu.Unlock()
}
