// Package arr provides the sequence primitives behind
// [github.com/hasbyte1/go-array-collection/collections]: bounds resolution,
// splicing, slicing, strict-equality search and a few functional helpers,
// all over plain []T values.
//
// # Bounds
//
// Offsets follow the usual array conventions. A negative offset counts from
// the end, and anything out of range is clamped rather than rejected:
//
//	arr.Offset(-1, 4)    // → 3
//	arr.Offset(10, 4)    // → 4
//	arr.Span(1, -1, 4)   // → 1, 3  (stop one before the end)
//
// # Ownership
//
// Every function that returns a slice returns a freshly allocated one. The
// input is never modified and never aliased by the result:
//
//	out, removed := arr.Splice(colors, 1, 2, "orange")
//
// # Equality
//
// [IndexOf], [Contains] and [StrictEqual] never convert between types. In a
// []any, "1" and 1 are different values.
package arr
