package dot

import (
	"slices"
	"strings"
)

// DefaultSeparator joins path segments unless [Options.Separator] says
// otherwise.
const DefaultSeparator = "."

// Options configures a [Flattener].
type Options struct {
	// Separator joins and splits path segments. Defaults to "." if empty.
	Separator string

	// KeepEmpty makes Flatten emit an empty sub-mapping as a leaf holding an
	// empty *Map instead of dropping it, so that Unflatten(Flatten(x))
	// reproduces empty branches.
	KeepEmpty bool

	// Strict turns malformed keys and path collisions into errors.
	// Without it they are resolved silently (see [Flattener.Unflatten]).
	Strict bool

	// CoerceKeys makes native conversion format non-string map keys with
	// fmt.Sprint instead of failing with [*InvalidKeyError].
	CoerceKeys bool
}

// DefaultOptions returns the lenient defaults used by the package-level
// functions.
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator}
}

// Flattener flattens and expands trees according to its [Options].
// A Flattener holds no mutable state and is safe for concurrent use. The
// zero value behaves like New(Options{}).
type Flattener struct {
	opts Options
}

// New returns a Flattener configured by opts.
func New(opts Options) *Flattener {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	return &Flattener{opts: opts}
}

var std = New(DefaultOptions())

// Options returns the options the Flattener was built with.
func (f *Flattener) Options() Options {
	o := f.opts
	o.Separator = f.sep()
	return o
}

func (f *Flattener) sep() string {
	if f.opts.Separator == "" {
		return DefaultSeparator
	}
	return f.opts.Separator
}

// ─────────────────────────────────────────────────────────────────────────────
// Flatten
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collapses m into a single-level Map whose keys are the
// separator-joined paths to each leaf. A nil m yields an empty Map.
//
// Arrays are copied through unchanged. Output keys follow a depth-first,
// pre-order walk of m. In strict mode a key that is empty or contains the
// separator fails with [*ValidationError], since it could not survive
// Unflatten.
func (f *Flattener) Flatten(m *Map) (*Map, error) {
	out := NewMap()
	if err := f.flatten(m, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Flattener) flatten(m *Map, path []string, out *Map) error {
	for key, value := range m.All() {
		// Clip so sibling branches never share a backing array.
		p := append(path[:len(path):len(path)], key)
		if f.opts.Strict {
			if err := f.checkSegment(key, p); err != nil {
				return err
			}
		}
		switch Classify(value) {
		case KindArray, KindLeaf:
			out.Set(f.join(p), value)
		case KindMapping:
			child := asMap(value)
			if child.Len() == 0 {
				if f.opts.KeepEmpty {
					out.Set(f.join(p), NewMap())
				}
				continue
			}
			if err := f.flatten(child, p, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Flattener) checkSegment(key string, path []string) error {
	switch {
	case key == "":
		return &ValidationError{Key: f.join(path), Reason: "empty key"}
	case strings.Contains(key, f.sep()):
		return &ValidationError{Key: f.join(path), Reason: "key contains the separator " + f.sep()}
	}
	return nil
}

func (f *Flattener) join(path []string) string {
	return strings.Join(path, f.sep())
}

// ─────────────────────────────────────────────────────────────────────────────
// Unflatten
// ─────────────────────────────────────────────────────────────────────────────

// Unflatten expands a flat Map whose keys are separator-joined paths into a
// nested Map. Keys are processed in order:
//
//   - A key without a separator is assigned directly.
//   - Otherwise intermediate Maps are created as needed and reused when a
//     previous key already built them; they are never overwritten.
//   - A leaf sitting on an intermediate segment stays in place and the deeper
//     key is dropped.
//   - Two keys with the same full path: the last one wins. A leaf never
//     replaces a Map built by an earlier, deeper key; a mapping value is
//     merged into it.
//
// Integer-like segments stay string keys; Unflatten never builds arrays.
// Mapping values are deep-copied, so the input is never mutated.
//
// In strict mode the dropped cases above fail with [*ConflictError], and an
// empty key or empty path segment fails with [*ValidationError].
func (f *Flattener) Unflatten(flat *Map) (*Map, error) {
	out := NewMap()
	sep := f.sep()
	for key, value := range flat.All() {
		if !strings.Contains(key, sep) {
			if f.opts.Strict {
				if key == "" {
					return nil, &ValidationError{Key: key, Reason: "empty key"}
				}
				if existing, ok := out.Get(key); ok && Classify(existing) == KindMapping && Classify(value) != KindMapping {
					return nil, &ConflictError{Key: key, Segment: key}
				}
			}
			out.Set(key, own(value))
			continue
		}
		segments := strings.Split(key, sep)
		if f.opts.Strict && slices.Contains(segments, "") {
			return nil, &ValidationError{Key: key, Reason: "empty path segment"}
		}
		if err := f.assign(out, key, segments, value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (f *Flattener) assign(root *Map, key string, segments []string, value any) error {
	level := root
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		existing, ok := level.Get(seg)
		if !ok {
			child := NewMap()
			level.Set(seg, child)
			level = child
			continue
		}
		child, isMap := existing.(*Map)
		if !isMap || child == nil {
			return f.conflict(key, seg)
		}
		level = child
	}

	seg := segments[last]
	if existing, ok := level.Get(seg); ok {
		if child, isMap := existing.(*Map); isMap && child != nil {
			if Classify(value) != KindMapping {
				return f.conflict(key, seg)
			}
			Merge(child, own(value).(*Map))
			return nil
		}
	}
	level.Set(seg, own(value))
	return nil
}

// conflict drops the offending key in lenient mode.
func (f *Flattener) conflict(key, seg string) error {
	if f.opts.Strict {
		return &ConflictError{Key: key, Segment: seg}
	}
	return nil
}

// own returns a value the output tree may mutate: mappings are deep-copied
// into fresh Maps, everything else is returned as is.
func own(v any) any {
	if Classify(v) != KindMapping {
		return v
	}
	src := asMap(v)
	out := newMapCap(src.Len())
	for k, child := range src.All() {
		out.Set(k, own(child))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level shortcuts
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collapses m with the default, lenient options.
//
//	Flatten(NewMap(E("a", NewMap(E("b", NewMap(E("c", 1)))))))
//	// → {"a.b.c": 1}
func Flatten(m *Map) *Map {
	out, _ := std.Flatten(m)
	return out
}

// Unflatten expands flat with the default, lenient options.
//
//	Unflatten(NewMap(E("foo.0", "bar"), E("foo.1", "baz")))
//	// → {"foo": {"0": "bar", "1": "baz"}}
func Unflatten(flat *Map) *Map {
	out, _ := std.Unflatten(flat)
	return out
}

// Dot flattens a native nested map into a native flat map.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Flatten(asMap(m)).ToGo()
}

// Undot expands a native flat map into a native nested map. Keys are applied
// in sorted order, so conflicting keys resolve deterministically.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Unflatten(asMap(m)).ToGo()
}
