package dot_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-utils/dot"
)

// makeTree builds a tree with the given fan-out and depth.
func makeTree(fanout, depth int) *dot.Map {
	m := dot.NewMap()
	for i := 0; i < fanout; i++ {
		key := "k" + strconv.Itoa(i)
		if depth <= 1 {
			m.Set(key, i)
			continue
		}
		m.Set(key, makeTree(fanout, depth-1))
	}
	return m
}

func BenchmarkFlatten(b *testing.B) {
	tree := makeTree(8, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dot.Flatten(tree)
	}
}

func BenchmarkUnflatten(b *testing.B) {
	flat := dot.Flatten(makeTree(8, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dot.Unflatten(flat)
	}
}

func BenchmarkDigest(b *testing.B) {
	tree := makeTree(8, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dot.Digest(tree)
	}
}
