// Package fn provides small function combinators: calling optional
// callbacks, lookup-table dispatch, memoisation and panic-safe execution.
//
// # Match
//
// Match dispatches a value through a lookup table with an optional default:
//
//	status, err := fn.Match(code, map[int]string{200: "ok", 404: "missing"}, "unknown")
//
// Without a default, an unmatched value yields a [*NoHandlerError] that
// lists the handlers that were defined.
//
// # Memoize
//
// Memoize caches a single-argument function per argument. Concurrent
// callers asking for the same key share one invocation. [MemoizeKey] turns
// arbitrary arguments into a stable string key.
//
// # Try
//
// Try converts panics into a [*PanicError]; TryAsync runs the function on
// its own goroutine and stops waiting when the context is done.
package fn
