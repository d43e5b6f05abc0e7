package dot

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by strict flattening and by native conversion.
//
// The structured error types below match these sentinels, so callers can use
// [errors.Is] without caring about the concrete type:
//
//	_, err := dot.New(dot.Options{Strict: true}).Unflatten(flat)
//	if errors.Is(err, dot.ErrConflict) {
//	    // two keys disagree about the shape of the tree
//	}
var (
	// ErrValidation is returned when a key is empty or a path has an empty
	// segment (leading, trailing or repeated separators).
	ErrValidation = errors.New("dot: invalid path")

	// ErrConflict is returned when a path runs through a leaf, or when a leaf
	// would replace a mapping built by an earlier path.
	ErrConflict = errors.New("dot: conflicting paths")

	// ErrInvalidKey is returned when a native map has a key that is not a
	// string and key coercion is disabled.
	ErrInvalidKey = errors.New("dot: key is not a string")

	// ErrNotMapping is returned by [FromGo] when the value is not a map.
	ErrNotMapping = errors.New("dot: value is not a mapping")
)

// ValidationError describes a malformed key.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dot: invalid path %q: %s", e.Key, e.Reason)
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError describes a flat key whose path collides with a value
// assigned by an earlier key. Segment is the path segment where the
// collision happened.
type ConflictError struct {
	Key     string
	Segment string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dot: path %q conflicts with an existing value at %q", e.Key, e.Segment)
}

// Is reports whether target is [ErrConflict].
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InvalidKeyError carries the offending non-string key.
type InvalidKeyError struct {
	Key any
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("dot: key %v of type %T is not a string", e.Key, e.Key)
}

// Is reports whether target is [ErrInvalidKey].
func (e *InvalidKeyError) Is(target error) bool { return target == ErrInvalidKey }
