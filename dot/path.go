package dot

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Path access
//
// These helpers read and write values in nested Maps using dot-separated
// paths, mirroring Laravel's Arr::get, Arr::set, Arr::has and Arr::forget.
// They always use DefaultSeparator.
//
//	m := NewMap(E("user", NewMap(
//	    E("name", "Alice"),
//	    E("address", NewMap(E("city", "London"))),
//	)))
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// lookup reads key from a mapping value, *Map or native.
func lookup(v any, key string) (any, bool) {
	switch t := v.(type) {
	case *Map:
		return t.Get(key)
	case map[string]any:
		val, ok := t[key]
		return val, ok
	}
	return nil, false
}

// Get retrieves the value at path. It returns def[0] (or nil) when the path
// does not exist or runs through a leaf.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m *Map, path string, def ...any) any {
	if v, ok := find(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

func find(m *Map, path string) (any, bool) {
	return walk(m, strings.Split(path, DefaultSeparator))
}

// Lookup is [Get] with the Flattener's separator. It reports whether the
// path exists.
//
//	dot.New(dot.Options{Separator: "/"}).Lookup(m, "user/address/city")
func (f *Flattener) Lookup(m *Map, path string) (any, bool) {
	return walk(m, strings.Split(path, f.sep()))
}

func walk(m *Map, segments []string) (any, bool) {
	var current any = m
	for _, seg := range segments {
		val, ok := lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = val
	}
	return current, true
}

// Set writes value at path, creating intermediate Maps as needed. A leaf or
// native map in the way is replaced by a Map.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m *Map, path string, value any) {
	seg, rest, nested := strings.Cut(path, DefaultSeparator)
	if !nested {
		m.Set(path, value)
		return
	}
	child, ok := m.vals[seg].(*Map)
	if !ok || child == nil {
		if existing, isNative := m.vals[seg].(map[string]any); isNative && existing != nil {
			child = own(existing).(*Map)
		} else {
			child = NewMap()
		}
		m.Set(seg, child)
	}
	Set(child, rest, value)
}

// Has reports whether path exists in m.
func Has(m *Map, path string) bool {
	_, ok := find(m, path)
	return ok
}

// HasAll reports whether every path exists in m.
func HasAll(m *Map, paths ...string) bool {
	for _, p := range paths {
		if !Has(m, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of paths exists in m.
func HasAny(m *Map, paths ...string) bool {
	for _, p := range paths {
		if Has(m, p) {
			return true
		}
	}
	return false
}

// Forget removes path from m and reports whether something was removed.
// Intermediate Maps are not cleaned up.
func Forget(m *Map, path string) bool {
	return forget(m, path)
}

func forget(v any, path string) bool {
	seg, rest, nested := strings.Cut(path, DefaultSeparator)
	switch t := v.(type) {
	case *Map:
		if !nested {
			return t.Delete(path)
		}
		child, ok := t.Get(seg)
		return ok && forget(child, rest)
	case map[string]any:
		if !nested {
			_, ok := t[path]
			delete(t, path)
			return ok
		}
		child, ok := t[seg]
		return ok && forget(child, rest)
	}
	return false
}

// Merge merges src into dst and returns dst. Values in src overwrite values
// in dst for matching keys, except that two Maps under the same key are
// merged recursively. New keys are appended in src order.
func Merge(dst, src *Map) *Map {
	for k, srcVal := range src.All() {
		if dstVal, ok := dst.Get(k); ok {
			dstMap, dstIsMap := dstVal.(*Map)
			srcMap, srcIsMap := srcVal.(*Map)
			if dstIsMap && srcIsMap && dstMap != nil && srcMap != nil {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst.Set(k, srcVal)
	}
	return dst
}
