package promise

import "errors"

var (
	// ErrSettled is returned when resolving or rejecting a Controlled that
	// has already been settled.
	ErrSettled = errors.New("promise: already settled")

	// ErrNilReject is returned by Controlled.Reject when given a nil error.
	ErrNilReject = errors.New("promise: reject with nil error")
)
