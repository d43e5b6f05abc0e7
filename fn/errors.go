package fn

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by this package.
var (
	// ErrNoHandler is matched by every *NoHandlerError.
	ErrNoHandler = errors.New("fn: no handler defined")

	// ErrPanic is matched by every *PanicError.
	ErrPanic = errors.New("fn: recovered panic")
)

// NoHandlerError is returned by [Match] when value has no handler and no
// default was given.
type NoHandlerError struct {
	Value    any
	Handlers []string // sorted
}

func (e *NoHandlerError) Error() string {
	quoted := make([]string, len(e.Handlers))
	for i, h := range e.Handlers {
		quoted[i] = fmt.Sprintf("%q", h)
	}
	return fmt.Sprintf("fn: no handler defined for %q; defined handlers are: %s",
		fmt.Sprint(e.Value), strings.Join(quoted, ", "))
}

func (e *NoHandlerError) Is(target error) bool { return target == ErrNoHandler }

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fn: recovered panic: %v", e.Value)
}

func (e *PanicError) Is(target error) bool { return target == ErrPanic }

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
