package arr

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Offsets
// ─────────────────────────────────────────────────────────────────────────────

// Offset resolves index against a sequence of length n.
// A negative index counts from the end (-1 is the last element). The result
// is clamped to [0, n].
func Offset(index, n int) int {
	if index < 0 {
		index += n
		if index < 0 {
			return 0
		}
		return index
	}
	if index > n {
		return n
	}
	return index
}

// Span resolves an (offset, length) pair against a sequence of length n and
// returns the half-open range [start, end) it covers.
//
// A negative length stops that many elements before the end of the sequence.
// If that position lies before start, the range is empty.
func Span(offset, length, n int) (start, end int) {
	start = Offset(offset, n)
	switch {
	case length < 0:
		end = n + length
		if end < start {
			end = start
		}
	case length > n-start:
		end = n
	default:
		end = start + length
	}
	return start, end
}

// ─────────────────────────────────────────────────────────────────────────────
// Splicing & slicing
// ─────────────────────────────────────────────────────────────────────────────

// Splice removes length elements from items starting at offset and inserts
// replacements at that position. It returns the resulting sequence and the
// removed elements; neither shares storage with items.
//
//	out, removed := arr.Splice([]string{"a", "b", "c", "d"}, 1, 2, "x")
//	// out     → [a x d]
//	// removed → [b c]
func Splice[T any](items []T, offset, length int, replacements ...T) (out, removed []T) {
	start, end := Span(offset, length, len(items))

	removed = make([]T, end-start)
	copy(removed, items[start:end])

	out = make([]T, 0, len(items)-(end-start)+len(replacements))
	out = append(out, items[:start]...)
	out = append(out, replacements...)
	out = append(out, items[end:]...)
	return out, removed
}

// Slice returns a copy of items[begin:end] where both bounds may be negative
// (counted from the end) and are clamped to the sequence. An end that
// resolves before begin yields an empty slice.
func Slice[T any](items []T, begin, end int) []T {
	n := len(items)
	start, stop := Offset(begin, n), Offset(end, n)
	if stop < start {
		stop = start
	}
	out := make([]T, stop-start)
	copy(out, items[start:stop])
	return out
}

// SliceLength returns a copy of at most length elements starting at offset.
// It uses the same bounds rules as [Splice].
func SliceLength[T any](items []T, offset, length int) []T {
	start, end := Span(offset, length, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// StrictEqual reports whether a and b hold the same dynamic type and the same
// value. No conversion is attempted: the string "1" never equals the int 1.
//
// Values that cannot be compared with == at run time (slices, maps, structs
// holding them) are compared element-wise with reflect.DeepEqual.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// IndexOf returns the lowest index i >= from whose element is strictly equal
// to value, or -1. A negative from searches from the start.
func IndexOf[T any](items []T, value T, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(items); i++ {
		if StrictEqual(items[i], value) {
			return i
		}
	}
	return -1
}

// Contains reports whether value is strictly equal to some element of items.
func Contains[T any](items []T, value T) bool {
	return IndexOf(items, value, 0) != -1
}

// Search returns the index of the first element for which fn returns true, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns the results in order.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true,
// re-indexed from 0.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items left to right, starting from initial.
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// Reverse returns a new slice with the elements in reverse order.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend returns a new slice with values inserted before items.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Shuffle returns a uniformly permuted copy of items. Randomness is drawn from
// r, or from the process-wide generator when r is nil.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Join renders each element with fmt.Sprint and interleaves sep.
//
//	arr.Join([]any{"a", 1, true}, "+") // → "a+1+true"
func Join[T any](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}
