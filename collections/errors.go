package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrEmptyReduce is returned by Reduce when the collection is empty and
	// no initial value was supplied.
	ErrEmptyReduce = errors.New("collections: reduce of empty collection with no initial value")
)
