package collections

import "github.com/hasbyte1/go-array-collection/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something of another type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions.

// Map applies fn to every element and returns a new Collection[U] of the same
// length and order.
//
//	ints := collections.Map(collections.New("1", "2", "3"),
//	    func(s string) int { n, _ := strconv.Atoi(s); return n })
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// Reduce folds Collection[T] left to right into a value of type U, starting
// from initial.
//
//	total := collections.Reduce(prices,
//	    func(acc float64, p Price) float64 { return acc + p.Amount }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}
