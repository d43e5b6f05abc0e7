package str

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Before returns everything before the first occurrence of search. It
// returns s unchanged when search is empty or absent.
func Before(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.Index(s, search); i >= 0 {
		return s[:i]
	}
	return s
}

// BeforeLast returns everything before the last occurrence of search.
func BeforeLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[:i]
	}
	return s
}

// After returns everything after the first occurrence of search. It returns
// s unchanged when search is empty or absent.
func After(s, search string) string {
	if search == "" {
		return s
	}
	if _, after, found := strings.Cut(s, search); found {
		return after
	}
	return s
}

// AfterLast returns everything after the last occurrence of search.
func AfterLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[i+len(search):]
	}
	return s
}

// Between returns the portion of s after the first from and before the last
// to.
//
//	Between("[a] and [b]", "[", "]") // → "a] and [b"
func Between(s, from, to string) string {
	if from == "" || to == "" {
		return s
	}
	return BeforeLast(After(s, from), to)
}

// Mask replaces a run of characters with char. index may be negative to
// count from the end. Without length the mask runs to the end of s; a
// negative length leaves that many characters unmasked at the end.
//
//	Mask("taylor@example.com", '*', 3)      // → "tay***************"
//	Mask("taylor@example.com", '*', -15, 3) // → "tay***@example.com"
//	Mask("taylor@example.com", '*', 0, -12) // → "******@example.com"
func Mask(s string, char rune, index int, length ...int) string {
	runes := []rune(s)
	n := len(runes)
	start := index
	if start < 0 {
		start = max(0, n+start)
	}
	if start >= n {
		return s
	}
	end := n
	if len(length) > 0 {
		if l := length[0]; l >= 0 {
			end = min(n, start+l)
		} else {
			end = n + l
		}
	}
	if end <= start {
		return s
	}
	for i := start; i < end; i++ {
		runes[i] = char
	}
	return string(runes)
}

// ─────────────────────────────────────────────────────────────────────────────
// Replacing
// ─────────────────────────────────────────────────────────────────────────────

// ReplaceFirst replaces the first occurrence of search with replace.
func ReplaceFirst(s, search, replace string) string {
	if search == "" {
		return s
	}
	return strings.Replace(s, search, replace, 1)
}

// ReplaceLast replaces the last occurrence of search with replace.
func ReplaceLast(s, search, replace string) string {
	if search == "" {
		return s
	}
	i := strings.LastIndex(s, search)
	if i < 0 {
		return s
	}
	return s[:i] + replace + s[i+len(search):]
}

// EnsureStartsWith prefixes s with prefix unless it already starts with it.
func EnsureStartsWith(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s
	}
	return prefix + s
}

// EnsureEndsWith suffixes s with suffix unless it already ends with it.
func EnsureEndsWith(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}
	return s + suffix
}

// ToForwardSlashes replaces every backslash with a forward slash.
func ToForwardSlashes(s string) string { return strings.ReplaceAll(s, `\`, "/") }

// ToBackSlashes replaces every forward slash with a backslash.
func ToBackSlashes(s string) string { return strings.ReplaceAll(s, "/", `\`) }

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ─────────────────────────────────────────────────────────────────────────────
// Templates
// ─────────────────────────────────────────────────────────────────────────────

var (
	indexPlaceholder = regexp.MustCompile(`\{(\d+)\}`)
	namePlaceholder  = regexp.MustCompile(`\{(\w+)\}`)
)

// Template substitutes positional placeholders, like Python's str.format.
// Placeholders without a matching argument are left as they are.
//
//	Template("Hello {0}! My name is {1}.", "Inès", "Anthony")
//	// → "Hello Inès! My name is Anthony."
func Template(s string, args ...any) string {
	return indexPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		i, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || i >= len(args) {
			return match
		}
		return fmt.Sprint(args[i])
	})
}

// NamedTemplate substitutes {name} placeholders from vars. A missing or nil
// variable is replaced by fallback, which may be a string or a
// func(name string) string; without fallback the bare name is used.
//
//	NamedTemplate("{greet}! My name is {name}.", map[string]any{"greet": "Hello"}, "placeholder")
//	// → "Hello! My name is placeholder."
func NamedTemplate(s string, vars map[string]any, fallback ...any) string {
	return namePlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := vars[name]; ok && v != nil {
			return fmt.Sprint(v)
		}
		if len(fallback) > 0 {
			switch fb := fallback[0].(type) {
			case string:
				return fb
			case func(string) string:
				return fb(name)
			}
		}
		return name
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Random
// ─────────────────────────────────────────────────────────────────────────────

// URLAlphabet is the URL-safe alphabet used by [Random] by default.
const URLAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// Random returns a random string of size characters drawn from alphabet
// (default [URLAlphabet]) using a cryptographically secure source.
// It panics if alphabet is empty or the system entropy source fails.
func Random(size int, alphabet ...string) string {
	dict := []rune(URLAlphabet)
	if len(alphabet) > 0 {
		dict = []rune(alphabet[0])
	}
	if len(dict) == 0 {
		panic("str: Random needs a non-empty alphabet")
	}
	limit := big.NewInt(int64(len(dict)))
	out := make([]rune, max(size, 0))
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(fmt.Sprintf("str: read random: %v", err))
		}
		out[i] = dict[n.Int64()]
	}
	return string(out)
}
