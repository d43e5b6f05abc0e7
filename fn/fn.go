package fn

import (
	"bytes"
	"cmp"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"slices"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Invocation
// ─────────────────────────────────────────────────────────────────────────────

// Invoke calls f and returns its result. A nil f yields the zero value.
func Invoke[T any](f func() T) T {
	if f == nil {
		var zero T
		return zero
	}
	return f()
}

// BatchInvoke calls every non-nil function in order.
func BatchInvoke(funcs ...func()) {
	for _, f := range funcs {
		if f != nil {
			f()
		}
	}
}

// Value resolves v to a T: a func() T is called, a T is returned as is and
// nil yields the zero value. Any other type panics.
//
//	Value[int](3)                          // → 3
//	Value[int](func() int { return 4 })    // → 4
func Value[T any](v any) T {
	switch t := v.(type) {
	case nil:
		var zero T
		return zero
	case func() T:
		return t()
	case T:
		return t
	}
	panic(fmt.Sprintf("fn: Value cannot resolve %T", v))
}

// Tap passes v to callback and returns v.
//
//	user := Tap(&User{}, func(u *User) { u.Name = "Taylor" })
func Tap[T any](v T, callback func(T)) T {
	callback(v)
	return v
}

// Match returns lookup[value]. When value is missing it returns def[0], or
// a [*NoHandlerError] if no default was given.
func Match[K cmp.Ordered, V any](value K, lookup map[K]V, def ...V) (V, error) {
	if v, ok := lookup[value]; ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	keys := make([]K, 0, len(lookup))
	for k := range lookup {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	handlers := make([]string, len(keys))
	for i, k := range keys {
		handlers[i] = fmt.Sprint(k)
	}
	var zero V
	return zero, &NoHandlerError{Value: value, Handlers: handlers}
}

// ─────────────────────────────────────────────────────────────────────────────
// Memoisation
// ─────────────────────────────────────────────────────────────────────────────

type memoEntry[V any] struct {
	once sync.Once
	val  V
}

// Memoize returns a function that calls f at most once per key and caches
// the result. It is safe for concurrent use.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	var (
		mu    sync.Mutex
		cache = make(map[K]*memoEntry[V])
	)
	return func(key K) V {
		mu.Lock()
		e, ok := cache[key]
		if !ok {
			e = &memoEntry[V]{}
			cache[key] = e
		}
		mu.Unlock()

		e.once.Do(func() { e.val = f(key) })
		return e.val
	}
}

// MemoizeKey derives a stable cache key from args: the hex BLAKE2b-256 of
// their JSON encodings. Arguments JSON cannot encode fall back to %#v.
func MemoizeKey(args ...any) string {
	var buf bytes.Buffer
	for _, a := range args {
		if b, err := json.Marshal(a); err == nil {
			buf.Write(b)
		} else {
			fmt.Fprintf(&buf, "%#v", a)
		}
		buf.WriteByte(0)
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Panic recovery
// ─────────────────────────────────────────────────────────────────────────────

// Try calls f and converts a panic into a [*PanicError].
func Try[T any](f func() (T, error)) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return f()
}

type result[T any] struct {
	val T
	err error
}

// TryAsync runs f on a new goroutine under [Try]. It returns ctx.Err() as
// soon as ctx is done; f keeps the context and should stop on its own.
func TryAsync[T any](ctx context.Context, f func(context.Context) (T, error)) (T, error) {
	done := make(chan result[T], 1)
	go func() {
		v, err := Try(func() (T, error) { return f(ctx) })
		done <- result[T]{v, err}
	}()
	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
