package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrTypeMismatch is returned by [ValuesOf] when an item does not have
	// the requested type.
	ErrTypeMismatch = errors.New("collections: item has unexpected type")
)
