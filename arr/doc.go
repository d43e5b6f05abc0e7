// Package arr provides standalone, generic helper functions for Go slices,
// inspired by Laravel's Arr facade and PHP's array_* functions.
//
// All helpers operate on plain []T values; no wrapper type is required:
//
//	arr.Partition([]int{1, 2, 3, 4}, func(n, _ int) bool { return n%2 != 0 }) // → [[1 3] [2 4]]
//	arr.RangeStep(0, 10, 2)                                                 // → [0 2 4 6 8]
//	arr.Join([]string{"a", "b", "c"})                                       // → "a, b and c"
//
// # Mutation
//
// Helpers return new slices unless their documentation says otherwise.
// [Move] and [Shuffle] work in place, matching their JavaScript namesakes.
//
// Dot-notation access to nested maps lives in the sibling package dot.
package arr
