package collections

import "github.com/pkg6/think-base/arr"

// Enumerable is the read surface of [Collection].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on *Collection. Every
// Enumerable is an [arr.Iterable] and works with the arr operations.
type Enumerable interface {
	arr.Iterable

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, key) for every item until fn returns false.
	Each(fn func(any, arr.Key) bool)

	// Filter returns a new collection of the items for which fn returns
	// true.
	Filter(fn func(any, arr.Key) bool) *Collection

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(any) bool) (any, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(any) bool) (any, bool)

	// Reject returns a new collection without the items for which fn
	// returns true.
	Reject(fn func(any, arr.Key) bool) *Collection
}

var _ Enumerable = (*Collection)(nil)
