package is_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utils/dot"
	"github.com/hasbyte1/go-utils/is"
)

type point struct{ X, Y int }

func TestNil(t *testing.T) {
	var (
		nilPtr   *point
		nilMap   map[string]any
		nilSlice []int
		nilFunc  func()
		nilDot   *dot.Map
	)
	for name, v := range map[string]any{
		"untyped": nil,
		"pointer": nilPtr,
		"map":     nilMap,
		"slice":   nilSlice,
		"func":    nilFunc,
		"dot map": nilDot,
	} {
		assert.True(t, is.Nil(v), name)
		assert.False(t, is.NotNil(v), name)
	}
	for name, v := range map[string]any{
		"zero int":    0,
		"empty str":   "",
		"false":       false,
		"empty slice": []int{},
		"struct":      point{},
	} {
		assert.False(t, is.Nil(v), name)
		assert.True(t, is.NotNil(v), name)
	}
}

func TestTypeGuards(t *testing.T) {
	now := time.Now()
	var nilTime *time.Time

	tests := []struct {
		name  string
		check func(any) bool
		yes   []any
		no    []any
	}{
		{"Bool", is.Bool, []any{true, false}, []any{nil, 0, "true"}},
		{"Func", is.Func, []any{func() {}, is.Nil}, []any{nil, 1, "f"}},
		{"Number", is.Number, []any{1, int64(2), uint8(3), 1.5, float32(2)}, []any{nil, "1", true, []int{1}}},
		{"String", is.String, []any{"", "x"}, []any{nil, 'x', []byte("x")}},
		{"Object", is.Object, []any{map[string]int{}, point{}, &point{}, dot.NewMap()}, []any{nil, 1, []int{}, (*point)(nil)}},
		{"Date", is.Date, []any{now, &now}, []any{nil, nilTime, "2024-01-01", now.Unix()}},
		{"RegExp", is.RegExp, []any{regexp.MustCompile(`a+`)}, []any{nil, (*regexp.Regexp)(nil), `a+`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.yes {
				assert.True(t, tt.check(v), "%s(%#v)", tt.name, v)
			}
			for _, v := range tt.no {
				assert.False(t, tt.check(v), "%s(%#v)", tt.name, v)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{1, -1, 0.1, "a", true, []int{0}, map[string]int{"a": 0}, point{X: 1}, &point{}} {
		assert.True(t, is.Truthy(v), "%#v", v)
	}
	for _, v := range []any{nil, 0, 0.0, math.NaN(), float32(math.NaN()), "", false, []int{}, map[string]int{}, point{}, (*point)(nil)} {
		assert.False(t, is.Truthy(v), "%#v", v)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nil", is.TypeName(nil))
	assert.Equal(t, "int", is.TypeName(1))
	assert.Equal(t, "[]interface {}", is.TypeName([]any{}))
	assert.Equal(t, "*dot.Map", is.TypeName(dot.NewMap()))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, []int{1, 2}, is.Compact([]int{0, 1, 0, 2}))
	assert.Equal(t, []string{"a"}, is.Compact([]string{"", "a", ""}))
	assert.Equal(t, []any{1, "x"}, is.Compact([]any{nil, 1, "", "x", false}))
}

func TestCompactPtr(t *testing.T) {
	a, b := 1, 2
	assert.Equal(t, []int{1, 2}, is.CompactPtr([]*int{&a, nil, &b, nil}))
	assert.Empty(t, is.CompactPtr([]*int{nil}))
}
