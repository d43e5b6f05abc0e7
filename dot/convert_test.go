package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utils/dot"
)

func TestFromGo(t *testing.T) {
	got, err := dot.FromGo(map[string]any{
		"b": map[string]any{"y": 1, "x": 2},
		"a": []any{map[string]any{"k": "v"}, 3},
		"c": map[string]string{"s": "t"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, got.Keys())
	b, _ := got.Get("b")
	assert.Equal(t, []string{"x", "y"}, b.(*dot.Map).Keys())
	a, _ := got.Get("a")
	assert.IsType(t, &dot.Map{}, a.([]any)[0], "maps inside slices are converted")
	assert.Equal(t, "t", dot.Get(got, "c.s"))
}

func TestFromGoNil(t *testing.T) {
	got, err := dot.FromGo(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestFromGoNotMapping(t *testing.T) {
	_, err := dot.FromGo([]any{1})
	assert.ErrorIs(t, err, dot.ErrNotMapping)
}

func TestFromGoInvalidKey(t *testing.T) {
	in := map[string]any{"nested": map[any]any{1: "one"}}

	_, err := dot.FromGo(in)
	require.ErrorIs(t, err, dot.ErrInvalidKey)
	var kerr *dot.InvalidKeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, 1, kerr.Key)

	got, err := dot.New(dot.Options{CoerceKeys: true}).FromGo(in)
	require.NoError(t, err)
	assert.Equal(t, "one", dot.Get(got, "nested.1"))
}

func TestFromGoCopiesMaps(t *testing.T) {
	src := dot.NewMap(dot.E("a", dot.NewMap(dot.E("b", 1))))

	got, err := dot.FromGo(src)
	require.NoError(t, err)
	dot.Set(got, "a.c", 2)

	assert.False(t, dot.Has(src, "a.c"))
}

func TestUnflattenAny(t *testing.T) {
	got, err := dot.UnflattenAny(map[any]any{"a.b": 1, "a.c": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1, "c": 2}}, got.ToGo())

	_, err = dot.UnflattenAny(map[any]any{"a.b": 1, 2: "x"})
	assert.ErrorIs(t, err, dot.ErrInvalidKey)

	got, err = dot.New(dot.Options{CoerceKeys: true}).UnflattenAny(map[int]string{1: "x", 2: "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got.Keys())

	_, err = dot.UnflattenAny("nope")
	assert.ErrorIs(t, err, dot.ErrNotMapping)
}

func TestToGo(t *testing.T) {
	m := dot.NewMap(
		dot.E("a", dot.NewMap(dot.E("b", 1))),
		dot.E("list", []any{dot.NewMap(dot.E("c", 2))}),
		dot.E("typed", []int{1}),
	)

	assert.Equal(t, map[string]any{
		"a":     map[string]any{"b": 1},
		"list":  []any{map[string]any{"c": 2}},
		"typed": []int{1},
	}, m.ToGo())
}
