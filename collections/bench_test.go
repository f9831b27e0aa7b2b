package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-array-collection/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkPushPop(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Push(i)
		c.Pop()
	}
}

func BenchmarkSplice(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		removed := c.Splice(5_000, 10)
		c.Splice(5_000, 0, removed.ToArray()...)
	}
}

func BenchmarkIndexOf(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.IndexOf(9_999)
	}
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n, _ int, _ *collections.Collection[int]) bool { return n%2 == 0 })
	}
}

func BenchmarkReduce(b *testing.B) {
	c := makeInts(10_000)
	add := func(a, n int) int { return a + n }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Reduce(add)
	}
}

func BenchmarkShuffle(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Shuffle()
	}
}
