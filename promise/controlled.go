package promise

import (
	"context"
	"sync"
)

// Controlled is a one-shot result settled by the first call to Resolve or
// Reject. The zero value is not usable; create one with [NewControlled].
type Controlled[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// NewControlled returns an unsettled Controlled.
func NewControlled[T any]() *Controlled[T] {
	return &Controlled[T]{done: make(chan struct{})}
}

// Resolve settles c with v. It returns [ErrSettled] if c was already
// settled.
func (c *Controlled[T]) Resolve(v T) error {
	return c.settle(v, nil)
}

// Reject settles c with err. It returns [ErrSettled] if c was already
// settled.
func (c *Controlled[T]) Reject(err error) error {
	if err == nil {
		return ErrNilReject
	}
	var zero T
	return c.settle(zero, err)
}

func (c *Controlled[T]) settle(v T, err error) error {
	settled := false
	c.once.Do(func() {
		c.val, c.err = v, err
		close(c.done)
		settled = true
	})
	if !settled {
		return ErrSettled
	}
	return nil
}

// Wait blocks until c is settled or ctx is done.
func (c *Controlled[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.val, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed once c is settled.
func (c *Controlled[T]) Done() <-chan struct{} { return c.done }

// Settled reports whether c has been resolved or rejected.
func (c *Controlled[T]) Settled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
