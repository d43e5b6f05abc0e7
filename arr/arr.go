package arr

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hasbyte1/go-utils/mathx"
)

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// Range returns [0, 1, ..., stop-1]. It is empty when stop <= 0.
func Range(stop int) []int {
	return RangeStep(0, stop, 1)
}

// RangeStep returns the numbers from start towards stop (exclusive) in
// increments of step. A negative step counts down; a zero step is treated
// as 1.
//
//	RangeStep(0, 10, 3)  // → [0 3 6 9]
//	RangeStep(5, 0, -2)  // → [5 3 1]
func RangeStep(start, stop, step int) []int {
	if step == 0 {
		step = 1
	}
	out := []int{}
	for n := start; (step > 0 && n < stop) || (step < 0 && n > stop); n += step {
		out = append(out, n)
	}
	return out
}

// ToArray normalises a value that may be nil, a single T or a []T into a
// []T. Any other type panics, since it indicates a programming error.
//
//	ToArray[int](nil)        // → []
//	ToArray[int](3)          // → [3]
//	ToArray[int]([]int{1,2}) // → [1 2]
func ToArray[T any](v any) []T {
	switch t := v.(type) {
	case nil:
		return []T{}
	case []T:
		return t
	case T:
		return []T{t}
	}
	panic(fmt.Sprintf("arr: ToArray cannot convert %T", v))
}

// Concat joins slices into a new slice.
func Concat[T any](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Splitting & de-duplication
// ─────────────────────────────────────────────────────────────────────────────

// Partition divides items into len(filters)+1 buckets. Each item lands in the
// bucket of the first filter it satisfies, or in the last bucket if none
// match.
//
//	Partition([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n < 2 }, func(n, _ int) bool { return n < 4 })
//	// → [[1] [2 3] [4 5]]
func Partition[T any](items []T, filters ...func(item T, index int) bool) [][]T {
	out := make([][]T, len(filters)+1)
	for i := range out {
		out[i] = []T{}
	}
	for i, item := range items {
		bucket := len(filters)
		for f, filter := range filters {
			if filter(item, i) {
				bucket = f
				break
			}
		}
		out[bucket] = append(out[bucket], item)
	}
	return out
}

// Uniq returns items without duplicates, keeping first occurrences in order.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// UniqueBy returns items without duplicates according to equal, keeping
// first occurrences in order. It is O(n²); prefer [Uniq] for comparable
// types.
func UniqueBy[T any](items []T, equal func(a, b T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		dup := false
		for _, kept := range out {
			if equal(item, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at index. A negative index counts back from the
// end. It returns the zero value and false when index is out of range.
func At[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 {
		index += len(items)
	}
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// Last returns the last element, or the zero value and false when items is
// empty.
func Last[T any](items []T) (T, bool) {
	return At(items, -1)
}

// ClampIndex clamps n to the valid index range of items.
func ClampIndex[T any](n int, items []T) int {
	return mathx.Clamp(n, 0, len(items)-1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Remove returns items without the first occurrence of value, and whether
// value was found. The input slice is not modified.
func Remove[T comparable](items []T, value T) ([]T, bool) {
	for i, item := range items {
		if item == value {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

// Move moves the element at from to position to, shifting the elements in
// between. It works in place and returns items. Out-of-range indexes leave
// items untouched.
func Move[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	v := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = v
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sample returns n items picked at random, with replacement. It returns an
// empty slice when items is empty.
func Sample[T any](items []T, n int) []T {
	if len(items) == 0 || n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = items[rand.IntN(len(items))]
	}
	return out
}

// Shuffle shuffles items in place (Fisher-Yates) and returns it.
func Shuffle[T any](items []T) []T {
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// JoinOptions configures [Join]. Empty fields fall back to the defaults.
type JoinOptions struct {
	// Separator goes between all but the last two items. Defaults to ", ".
	Separator string
	// LastSeparator goes between the last two items. Defaults to " and ".
	LastSeparator string
}

// Join formats items as a human-readable list, using a different separator
// before the last item.
//
//	Join([]string{"a", "b", "c"})                                   // → "a, b and c"
//	Join([]int{1, 2}, JoinOptions{LastSeparator: " or "})           // → "1 or 2"
func Join[T any](items []T, opts ...JoinOptions) string {
	o := JoinOptions{Separator: ", ", LastSeparator: " and "}
	if len(opts) > 0 {
		if opts[0].Separator != "" {
			o.Separator = opts[0].Separator
		}
		if opts[0].LastSeparator != "" {
			o.LastSeparator = opts[0].LastSeparator
		}
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(items[0])
	}
	parts := make([]string, len(items)-1)
	for i, item := range items[:len(items)-1] {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, o.Separator) + o.LastSeparator + fmt.Sprint(items[len(items)-1])
}
