package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utils/dot"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := dot.NewMap(dot.E("b", 1), dot.E("a", 2), dot.E("c", 3))
	m.Set("a", 20)
	m.Set("d", 4)

	assert.Equal(t, []string{"b", "a", "c", "d"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestMapDuplicateConstructorKeys(t *testing.T) {
	m := dot.NewMap(dot.E("a", 1), dot.E("b", 2), dot.E("a", 3))

	assert.Equal(t, []dot.Entry{dot.E("a", 3), dot.E("b", 2)}, m.Entries())
}

func TestMapDelete(t *testing.T) {
	m := dot.NewMap(dot.E("a", 1), dot.E("b", 2), dot.E("c", 3))

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("missing"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestMapZeroValue(t *testing.T) {
	var m dot.Map
	m.Set("x", 1)
	assert.Equal(t, 1, m.Len())
}

func TestNilMapReads(t *testing.T) {
	var m *dot.Map

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.Delete("a"))
	for range m.All() {
		t.Fatal("nil map must not yield entries")
	}
	assert.Nil(t, m.ToGo())
	assert.Equal(t, "map[]", m.String())
}

func TestMapAllStopsEarly(t *testing.T) {
	m := dot.NewMap(dot.E("a", 1), dot.E("b", 2), dot.E("c", 3))
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMapClone(t *testing.T) {
	m := dot.NewMap(dot.E("a", 1))
	c := m.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestMapEqual(t *testing.T) {
	a := dot.NewMap(dot.E("x", 1), dot.E("y", dot.NewMap(dot.E("z", []int{1}))))
	b := dot.NewMap(dot.E("y", dot.NewMap(dot.E("z", []int{1}))), dot.E("x", 1))

	assert.True(t, a.Equal(b), "key order is ignored")
	assert.False(t, a.Equal(dot.NewMap(dot.E("x", 1))))
	assert.False(t, a.Equal(dot.NewMap(dot.E("x", 1), dot.E("y", 2))))
	assert.False(t, dot.NewMap(dot.E("x", dot.NewMap())).Equal(dot.NewMap(dot.E("x", map[string]any{}))))
	assert.False(t, a.Equal(nil))
}

func TestMapString(t *testing.T) {
	m := dot.NewMap(dot.E("b", 1), dot.E("a", dot.NewMap(dot.E("c", "x"))))

	assert.Equal(t, "map[b:1 a:map[c:x]]", m.String())
}

func TestClassify(t *testing.T) {
	var nilMap *dot.Map
	var nilNative map[string]any

	tests := []struct {
		name string
		in   any
		want dot.Kind
	}{
		{"nil", nil, dot.KindLeaf},
		{"string", "s", dot.KindLeaf},
		{"int", 1, dot.KindLeaf},
		{"func", func() {}, dot.KindLeaf},
		{"bytes", []byte("x"), dot.KindLeaf},
		{"typed nil map", nilMap, dot.KindLeaf},
		{"nil native map", nilNative, dot.KindLeaf},
		{"other map kinds", map[string]int{"a": 1}, dot.KindLeaf},
		{"any slice", []any{1}, dot.KindArray},
		{"typed slice", []string{"a"}, dot.KindArray},
		{"array", [2]int{1, 2}, dot.KindArray},
		{"map", dot.NewMap(), dot.KindMapping},
		{"native map", map[string]any{}, dot.KindMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dot.Classify(tt.in))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Leaf", dot.KindLeaf.String())
	assert.Equal(t, "Array", dot.KindArray.String())
	assert.Equal(t, "Mapping", dot.KindMapping.String())
	assert.Equal(t, "Kind(9)", dot.Kind(9).String())
}
