package dot

import "reflect"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is the structural category of a value in a nested tree.
type Kind uint8

const (
	// KindLeaf is any value that is neither an array nor a mapping,
	// including nil and typed nil mappings.
	KindLeaf Kind = iota
	// KindArray is any slice or array other than []byte.
	KindArray
	// KindMapping is a non-nil *Map or map[string]any.
	KindMapping
)

// Classify reports the Kind of v. Flatten and Unflatten both rely on it, so a
// value is treated the same way in either direction.
func Classify(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindLeaf
	case *Map:
		if t == nil {
			return KindLeaf
		}
		return KindMapping
	case map[string]any:
		if t == nil {
			return KindLeaf
		}
		return KindMapping
	case []byte:
		return KindLeaf
	case []any:
		return KindArray
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	}
	return KindLeaf
}

// asMap returns the mapping v as a *Map. Native maps are wrapped shallowly in
// sorted key order. It must only be called when Classify(v) == KindMapping.
func asMap(v any) *Map {
	switch t := v.(type) {
	case *Map:
		return t
	case map[string]any:
		m := newMapCap(len(t))
		for _, k := range sortedKeys(t) {
			m.Set(k, t[k])
		}
		return m
	}
	return nil
}
