package dot

import (
	"fmt"
	"reflect"
	"sort"
)

// FromGo deep-converts a native Go map into a *Map using the default
// options: keys are sorted, and a non-string key fails with
// [*InvalidKeyError]. A nil v yields an empty Map.
func FromGo(v any) (*Map, error) {
	return std.FromGo(v)
}

// FromGo deep-converts v into a *Map. Any map kind is accepted; nested maps
// become *Map values, and []any / []map slices are converted element-wise.
// Non-string keys are formatted with fmt.Sprint when [Options.CoerceKeys] is
// set and rejected otherwise.
func (f *Flattener) FromGo(v any) (*Map, error) {
	if v == nil {
		return NewMap(), nil
	}
	converted, err := f.convert(v)
	if err != nil {
		return nil, err
	}
	m, ok := converted.(*Map)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}
	return m, nil
}

// UnflattenAny expands a native flat map with the default options. It
// fails with [*InvalidKeyError] when a key is not a string.
func UnflattenAny(v any) (*Map, error) {
	return std.UnflattenAny(v)
}

// UnflattenAny converts the top level of v to a flat *Map, applying the key
// policy, and expands it with [Flattener.Unflatten]. Values are passed
// through untouched.
func (f *Flattener) UnflattenAny(v any) (*Map, error) {
	flat, err := f.shallow(v)
	if err != nil {
		return nil, err
	}
	return f.Unflatten(flat)
}

func (f *Flattener) shallow(v any) (*Map, error) {
	switch t := v.(type) {
	case nil:
		return NewMap(), nil
	case *Map:
		return t, nil
	case map[string]any:
		return asMap(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}
	pairs, err := f.mapPairs(rv)
	if err != nil {
		return nil, err
	}
	out := newMapCap(len(pairs))
	for _, p := range pairs {
		out.Set(p.key, p.val.Interface())
	}
	return out, nil
}

type pair struct {
	key string
	val reflect.Value
}

// mapPairs returns the entries of a reflect map with string keys, sorted.
func (f *Flattener) mapPairs(rv reflect.Value) ([]pair, error) {
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := f.keyString(iter.Key())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{key: key, val: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	return pairs, nil
}

func (f *Flattener) keyString(k reflect.Value) (string, error) {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if f.opts.CoerceKeys {
		return fmt.Sprint(k.Interface()), nil
	}
	return "", &InvalidKeyError{Key: k.Interface()}
}

func (f *Flattener) convert(v any) (any, error) {
	switch t := v.(type) {
	case nil, []byte:
		return v, nil
	case *Map:
		if t == nil {
			return v, nil
		}
		out := newMapCap(t.Len())
		for k, child := range t.All() {
			c, err := f.convert(child)
			if err != nil {
				return nil, err
			}
			out.Set(k, c)
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			c, err := f.convert(child)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v, nil
		}
		pairs, err := f.mapPairs(rv)
		if err != nil {
			return nil, err
		}
		out := newMapCap(len(pairs))
		for _, p := range pairs {
			c, err := f.convert(p.val.Interface())
			if err != nil {
				return nil, err
			}
			out.Set(p.key, c)
		}
		return out, nil
	case reflect.Slice:
		elem := rv.Type().Elem().Kind()
		if elem != reflect.Map && elem != reflect.Interface {
			return v, nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			c, err := f.convert(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}
	return v, nil
}

// ToGo deep-converts m into native Go values: every *Map becomes a
// map[string]any, including maps held in []any slices. A nil m yields nil.
func (m *Map) ToGo() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = toGo(v)
	}
	return out
}

func toGo(v any) any {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil
		}
		return t.ToGo()
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = toGo(child)
		}
		return out
	}
	return v
}
