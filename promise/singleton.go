package promise

import (
	"context"
	"sync"
)

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Singleton lazily runs a function once and shares its result, including
// an error, with every caller until [Singleton.Reset].
type Singleton[T any] struct {
	fn func(context.Context) (T, error)

	mu   sync.Mutex
	call *call[T]
}

// NewSingleton returns a Singleton around fn. fn runs on its own goroutine
// with a context that is detached from the caller's cancellation.
func NewSingleton[T any](fn func(context.Context) (T, error)) *Singleton[T] {
	return &Singleton[T]{fn: fn}
}

// Do starts fn if it is not running or cached and waits for its result.
func (s *Singleton[T]) Do(ctx context.Context) (T, error) {
	s.mu.Lock()
	c := s.call
	if c == nil {
		c = &call[T]{done: make(chan struct{})}
		s.call = c
		go func() {
			defer close(c.done)
			c.val, c.err = s.fn(context.WithoutCancel(ctx))
		}()
	}
	s.mu.Unlock()

	select {
	case <-c.done:
		return c.val, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Reset drops the cached result so the next Do runs fn again, then waits
// for the dropped run to finish if it is still in flight.
func (s *Singleton[T]) Reset(ctx context.Context) error {
	s.mu.Lock()
	prev := s.call
	s.call = nil
	s.mu.Unlock()

	if prev == nil {
		return nil
	}
	select {
	case <-prev.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
