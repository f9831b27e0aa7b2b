// Package collections provides a generic, mutable Collection type with
// array-style semantics: push/pop/shift/unshift, splice and slice with
// negative offsets, strict-equality search, and callback-driven
// filter/every/some/map/reduce.
//
// # Overview
//
//	c := collections.New("red", "green", "blue", "yellow")
//	removed := c.Splice(-1, 1, "black", "maroon")
//	// c       → [red green blue black maroon]
//	// removed → [yellow]
//
//	big := collections.New(12, 5, 8, 130, 44).
//	    Filter(func(n, _ int, _ *collections.Collection[int]) bool { return n >= 10 })
//	// big → [12 130 44]
//
// # Mutators and accessors
//
// Mutators (Pop, Push, Reverse, Shift, Splice, Unshift, Remove, Clear,
// Concat, Shuffle) change the receiver in place. Everything else leaves the
// receiver alone; methods that return a *Collection return one with its own
// backing array, so mutating it never affects the original.
//
// # Absence and errors
//
// Pop and Shift report an empty collection through a second bool result
// rather than an error. Get returns [ErrIndexOutOfRange] for an invalid
// index, and Reduce without an initial value returns [ErrEmptyReduce] on an
// empty collection. Compare with errors.Is.
//
// # Equality
//
// IndexOf, Contains and Remove compare with strict equality: same dynamic
// type and same value, no conversion. A Collection[any] holding 1 does not
// contain "1".
//
// # Iteration
//
// All and Values return range-over-func iterators. Every range starts from
// the first element:
//
//	for i, v := range c.All() {
//	    fmt.Println(i, v)
//	}
//
// # Shuffling
//
// Shuffle uses the process-wide math/rand/v2 generator unless a source is
// bound with SetSource. For reproducible permutations use a seeded source
// from package [github.com/hasbyte1/go-array-collection/random].
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map] and [Reduce].
package collections
