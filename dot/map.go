package dot

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   string
	Value any
}

// E is shorthand for Entry{Key: key, Value: value}.
func E(key string, value any) Entry { return Entry{Key: key, Value: value} }

// Map is a string-keyed mapping that remembers insertion order.
//
// The zero value is an empty map ready for use. A nil *Map reads as empty,
// but Set panics on it just like assignment into a nil Go map.
//
// Map is not safe for concurrent mutation.
type Map struct {
	keys []string
	vals map[string]any
}

// NewMap returns a Map holding entries in order. A repeated key keeps its
// first position and its last value.
func NewMap(entries ...Entry) *Map {
	m := newMapCap(len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func newMapCap(n int) *Map {
	return &Map{keys: make([]string, 0, n), vals: make(map[string]any, n)}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (m *Map) Set(key string, value any) {
	if m.vals == nil {
		m.vals = make(map[string]any)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Entries returns the entries in insertion order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	out := newMapCap(m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// Equal reports whether m and other hold the same keys with deeply equal
// values, ignoring key order. Nested maps are compared with Equal, anything
// else with [reflect.DeepEqual].
func (m *Map) Equal(other *Map) bool {
	if (m == nil) != (other == nil) {
		return false
	}
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.All() {
		ov, ok := other.Get(k)
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	am, aIsMap := a.(*Map)
	bm, bIsMap := b.(*Map)
	if aIsMap || bIsMap {
		return aIsMap && bIsMap && am.Equal(bm)
	}
	return reflect.DeepEqual(a, b)
}

// String formats m like a Go map, but in insertion order.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("map[")
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%v", k, v)
		i++
	}
	b.WriteByte(']')
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
