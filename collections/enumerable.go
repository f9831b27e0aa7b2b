package collections

import "iter"

// Enumerable is anything that can yield its elements in order.
// [Collection][T] satisfies it, and so does any type with a Values method
// such as a thin wrapper over a channel or a database cursor.
//
// Accept Enumerable in your own functions so that callers are not tied to
// the concrete *Collection type.
type Enumerable[T any] interface {
	// Values returns an iterator over the elements in order.
	Values() iter.Seq[T]
}

// Seq adapts a plain iterator, such as slices.Values(s), to [Enumerable].
type Seq[T any] iter.Seq[T]

// Values returns s unchanged.
func (s Seq[T]) Values() iter.Seq[T] { return iter.Seq[T](s) }

var _ Enumerable[int] = (*Collection[int])(nil)
