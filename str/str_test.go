package str_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utils/str"
)

func TestBeforeAfter(t *testing.T) {
	tests := []struct {
		name               string
		s, search          string
		before, beforeLast string
		after, afterLast   string
	}{
		{"single", "hannah", "n", "ha", "han", "nah", "ah"},
		{"missing", "hannah", "x", "hannah", "hannah", "hannah", "hannah"},
		{"empty search", "hannah", "", "hannah", "hannah", "hannah", "hannah"},
		{"multi-byte", "ééé/ààà/ççç", "/", "ééé", "ééé/ààà", "ààà/ççç", "ççç"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.before, str.Before(tt.s, tt.search))
			assert.Equal(t, tt.beforeLast, str.BeforeLast(tt.s, tt.search))
			assert.Equal(t, tt.after, str.After(tt.s, tt.search))
			assert.Equal(t, tt.afterLast, str.AfterLast(tt.s, tt.search))
		})
	}
}

func TestBetween(t *testing.T) {
	assert.Equal(t, "a] and [b", str.Between("[a] and [b]", "[", "]"))
	assert.Equal(t, "nnah", str.Between("hannah", "ha", "dd"))
	assert.Equal(t, "hannah", str.Between("hannah", "", "h"))
	assert.Equal(t, "hannah", str.Between("hannah", "h", ""))
	assert.Equal(t, "", str.Between("foo", "foo", "foo"))
}

func TestMask(t *testing.T) {
	const email = "taylor@example.com"
	tests := []struct {
		name   string
		index  int
		length []int
		want   string
	}{
		{"to end", 3, nil, "tay***************"},
		{"bounded", 0, []int{6}, "******@example.com"},
		{"negative index", -15, []int{3}, "tay***@example.com"},
		{"negative length", 0, []int{-12}, "******@example.com"},
		{"index before start", -100, []int{3}, "***lor@example.com"},
		{"index past end", 100, nil, email},
		{"zero length", 2, []int{0}, email},
		{"length past end", 15, []int{10}, "taylor@example.***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, str.Mask(email, '*', tt.index, tt.length...))
		})
	}
}

func TestMaskCountsRunes(t *testing.T) {
	assert.Equal(t, "这是一***", str.Mask("这是一段中文", '*', 3))
	assert.Equal(t, "这是一段中文", str.Mask("这是一段中文", '*', 6))
}

func TestReplaceFirstLast(t *testing.T) {
	assert.Equal(t, "fooqux foobar", str.ReplaceFirst("foobar foobar", "bar", "qux"))
	assert.Equal(t, "foobar fooqux", str.ReplaceLast("foobar foobar", "bar", "qux"))
	assert.Equal(t, "foobar", str.ReplaceFirst("foobar", "baz", "qux"))
	assert.Equal(t, "foobar", str.ReplaceLast("foobar", "baz", "qux"))
	assert.Equal(t, "foobar", str.ReplaceFirst("foobar", "", "qux"))
	assert.Equal(t, "foobar", str.ReplaceLast("foobar", "", "qux"))
}

func TestEnsure(t *testing.T) {
	assert.Equal(t, "/path", str.EnsureStartsWith("path", "/"))
	assert.Equal(t, "/path", str.EnsureStartsWith("/path", "/"))
	assert.Equal(t, "path/", str.EnsureEndsWith("path", "/"))
	assert.Equal(t, "path/", str.EnsureEndsWith("path/", "/"))
}

func TestSlashes(t *testing.T) {
	assert.Equal(t, "a/b/c", str.ToForwardSlashes(`a\b\c`))
	assert.Equal(t, `a\b\c`, str.ToBackSlashes("a/b/c"))
	assert.Equal(t, "a/b/c", str.ToForwardSlashes(str.ToBackSlashes("a/b/c")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", str.Capitalize("hELLO"))
	assert.Equal(t, "École", str.Capitalize("éCOLE"))
	assert.Equal(t, "", str.Capitalize(""))
}

func TestTemplate(t *testing.T) {
	assert.Equal(t,
		"Hello Inès! My name is Anthony.",
		str.Template("Hello {0}! My name is {1}.", "Inès", "Anthony"))
	assert.Equal(t, "1 + 1 = 2", str.Template("{0} + {0} = {1}", 1, 2))
	assert.Equal(t, "a {1} {x}", str.Template("{0} {1} {x}", "a"))
}

func TestNamedTemplate(t *testing.T) {
	vars := map[string]any{"greet": "Hello", "count": 0, "nothing": nil}

	assert.Equal(t, "Hello! name", str.NamedTemplate("{greet}! {name}", vars))
	assert.Equal(t, "0 items", str.NamedTemplate("{count} items", vars))
	assert.Equal(t,
		"Hello! My name is placeholder.",
		str.NamedTemplate("{greet}! My name is {name}.", vars, "placeholder"))
	assert.Equal(t,
		"Hello <nothing>",
		str.NamedTemplate("{greet} {nothing}", vars, func(key string) string { return "<" + key + ">" }))
}

func TestRandom(t *testing.T) {
	id := str.Random(21)
	assert.Len(t, id, 21)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(str.URLAlphabet, r), "unexpected rune %q", r)
	}
	assert.NotEqual(t, id, str.Random(21))

	assert.Equal(t, "aaaa", str.Random(4, "a"))
	assert.Equal(t, "", str.Random(0))
	assert.Panics(t, func() { str.Random(3, "") })
}
