package collections

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"

	"github.com/hasbyte1/go-array-collection/arr"
)

// ToEnd may be passed as the howMany argument of [Collection.Splice] to remove
// every element from index to the end of the collection.
const ToEnd = math.MaxInt

// Collection is a generic, mutable wrapper around a slice of T with
// array-style semantics.
//
// Mutators (Push, Pop, Splice, …) change the receiver in place. Accessors and
// iteration operators (Slice, Filter, Map, …) leave it untouched and return
// a new Collection that owns its own backing array.
//
// # Creating a collection
//
//	c := collections.New("red", "green", "blue")
//	c := collections.From([]int{12, 5, 8, 130, 44})
//	c := collections.Empty[any]()
//
// # Equality
//
// IndexOf, Contains and Remove use strict equality: the dynamic type and the
// value must both match. In a Collection[any], "1" and 1 are different.
//
// A Collection is not safe for concurrent mutation.
type Collection[T any] struct {
	items  []T
	source rand.Source
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap adopts items without copying. Callers must hand over ownership.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Pop removes and returns the last element.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Pop() (T, bool) {
	var zero T
	n := len(c.items)
	if n == 0 {
		return zero, false
	}
	item := c.items[n-1]
	c.items[n-1] = zero
	c.items = c.items[:n-1]
	return item, true
}

// Push appends one or more elements, in argument order, and returns the new
// length.
func (c *Collection[T]) Push(element T, more ...T) int {
	c.items = append(c.items, element)
	c.items = append(c.items, more...)
	return len(c.items)
}

// Reverse reverses the order of the elements in place.
func (c *Collection[T]) Reverse() {
	for i, j := 0, len(c.items)-1; i < j; i, j = i+1, j-1 {
		c.items[i], c.items[j] = c.items[j], c.items[i]
	}
}

// Shift removes and returns the first element.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Shift() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	item := c.items[0]
	c.items = From(c.items[1:]).items
	return item, true
}

// Splice removes howMany elements starting at index, inserts replacements at
// that position, and returns the removed elements as a new Collection.
//
// A negative index counts from the end; an out-of-range index is clamped.
// A negative howMany stops that many elements before the end, and a howMany
// running past the end removes only what is there. Pass [ToEnd] to remove
// everything from index onwards.
//
//	c := collections.New("red", "green", "blue", "yellow")
//	c.Splice(1, -1)           // c → [red yellow]
//	c.Splice(1, 0, "purple")  // c → [red purple yellow]
func (c *Collection[T]) Splice(index, howMany int, replacements ...T) *Collection[T] {
	out, removed := arr.Splice(c.items, index, howMany, replacements...)
	c.items = out
	return wrap(removed)
}

// SpliceRest removes every element from index to the end and returns them.
// It is equivalent to Splice(index, ToEnd).
func (c *Collection[T]) SpliceRest(index int) *Collection[T] {
	return c.Splice(index, ToEnd)
}

// Unshift prepends one or more elements, in argument order, and returns the
// new length.
func (c *Collection[T]) Unshift(element T, more ...T) int {
	front := make([]T, 0, 1+len(more))
	front = append(front, element)
	front = append(front, more...)
	c.items = arr.Prepend(c.items, front...)
	return len(c.items)
}

// Remove removes the first element strictly equal to element.
// It does nothing when there is no match.
func (c *Collection[T]) Remove(element T) {
	i := c.IndexOf(element)
	if i == -1 {
		return
	}
	c.items, _ = arr.Splice(c.items, i, 1)
}

// Clear removes all elements.
func (c *Collection[T]) Clear() {
	c.items = []T{}
}

// Concat appends every element of other, in order.
// other may be c itself; its elements are snapshotted first.
func (c *Collection[T]) Concat(other Enumerable[T]) {
	if other == nil {
		return
	}
	var pending []T
	for item := range other.Values() {
		pending = append(pending, item)
	}
	c.ConcatSlice(pending)
}

// ConcatSlice appends every element of items, in order.
func (c *Collection[T]) ConcatSlice(items []T) {
	for _, item := range items {
		c.Push(item)
	}
}

// SetSource binds src as the random source used by [Collection.Shuffle].
// A nil src restores the process-wide generator. Returns c for chaining.
func (c *Collection[T]) SetSource(src rand.Source) *Collection[T] {
	c.source = src
	return c
}

// Shuffle permutes the elements in place, uniformly at random, drawing from
// the source set with [Collection.SetSource] (or the process-wide generator).
func (c *Collection[T]) Shuffle() {
	c.ShuffleWith(c.source)
}

// ShuffleWith permutes the elements in place drawing from src.
// A nil src uses the process-wide generator.
func (c *Collection[T]) ShuffleWith(src rand.Source) {
	var r *rand.Rand
	if src != nil {
		r = rand.New(src)
	}
	c.items = arr.Shuffle(c.items, r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Join renders every element with fmt.Sprint and joins them with separator,
// which defaults to ",".
func (c *Collection[T]) Join(separator ...string) string {
	sep := ","
	if len(separator) > 0 {
		sep = separator[0]
	}
	return arr.Join(c.items, sep)
}

// Slice returns a new Collection holding the elements from begin (inclusive)
// to end (exclusive). Both bounds may be negative, counting from the end.
func (c *Collection[T]) Slice(begin, end int) *Collection[T] {
	return wrap(arr.Slice(c.items, begin, end))
}

// SliceFrom returns a new Collection holding the elements from begin to the end.
func (c *Collection[T]) SliceFrom(begin int) *Collection[T] {
	return c.Slice(begin, len(c.items))
}

// SliceLength returns a new Collection holding at most length elements
// starting at offset. A negative length stops that many elements before the
// end, as in [Collection.Splice].
func (c *Collection[T]) SliceLength(offset, length int) *Collection[T] {
	return wrap(arr.SliceLength(c.items, offset, length))
}

// ToArray returns a copy of the underlying slice.
func (c *Collection[T]) ToArray() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the element at index, or [ErrIndexOutOfRange].
func (c *Collection[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// IndexOf returns the lowest index at or after fromIndex[0] (default 0) whose
// element is strictly equal to element, or -1.
func (c *Collection[T]) IndexOf(element T, fromIndex ...int) int {
	from := 0
	if len(fromIndex) > 0 {
		from = fromIndex[0]
	}
	return arr.IndexOf(c.items, element, from)
}

// Contains reports whether some element is strictly equal to element.
func (c *Collection[T]) Contains(element T) bool {
	return c.IndexOf(element) != -1
}

// Count returns the number of elements.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over index/element pairs. Each call starts from
// index 0 and reads the collection as it is when each element is visited.
//
//	for i, v := range c.All() { … }
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Functional operators
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with the elements for which
// fn(element, index, c) returns true, in their original order.
func (c *Collection[T]) Filter(fn func(T, int, *Collection[T]) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, func(item T, i int) bool { return fn(item, i, c) }))
}

// Every reports whether fn returns true for every element.
// It stops at the first element for which fn returns false.
func (c *Collection[T]) Every(fn func(T, int, *Collection[T]) bool) bool {
	for i, item := range c.items {
		if !fn(item, i, c) {
			return false
		}
	}
	return true
}

// Some reports whether fn returns true for at least one element.
// It stops at the first element for which fn returns true.
func (c *Collection[T]) Some(fn func(T, int, *Collection[T]) bool) bool {
	for i, item := range c.items {
		if fn(item, i, c) {
			return true
		}
	}
	return false
}

// Map returns a new Collection with fn applied to every element.
//
// For a transformation to another element type, use the package-level [Map].
func (c *Collection[T]) Map(fn func(T) T) *Collection[T] {
	return wrap(arr.Map(c.items, fn))
}

// Reduce folds the collection left to right.
//
// With an initial value the fold starts from initial[0]. Without one, the
// first element is the seed and folding starts from the second; on an empty
// collection this returns [ErrEmptyReduce].
//
// For a fold into another type, use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(acc, element T) T, initial ...T) (T, error) {
	if len(initial) > 0 {
		return arr.Reduce(c.items, fn, initial[0]), nil
	}
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return arr.Reduce(c.items[1:], fn, c.items[0]), nil
}
