package arr

import (
	"fmt"
	"iter"
)

// IsTraversable reports whether v is a container: an [*Array], an
// [Iterable], an iter.Seq[any], or a native slice, array or map (or a
// pointer to one).
func IsTraversable(v any) bool { return isContainer(v) }

// IsIn reports whether haystack holds a value equal to needle under eq.
// A nil eq means [Loose]. Returns [ErrInvalidInput] when haystack is not
// traversable.
//
//	ok, _ := arr.IsIn("1", []int{1, 2}, arr.Loose)  // true
//	ok, _ = arr.IsIn("1", []int{1, 2}, arr.Strict)  // false
func IsIn(needle, haystack any, eq Equality) (bool, error) {
	if !isContainer(haystack) {
		return false, fmt.Errorf("%w: haystack of type %T is not traversable", ErrInvalidInput, haystack)
	}
	if eq == nil {
		eq = Loose
	}
	for _, v := range values(haystack) {
		if eq(needle, v) {
			return true, nil
		}
	}
	return false, nil
}

// IsIndexed reports whether every key of container is an integer. With
// consecutive, the keys must be exactly 0, 1, …, n-1 in iteration order.
// An empty container is indexed; a non-container is not.
func IsIndexed(container any, consecutive bool) bool {
	entries, ok := entriesOf(container)
	if !ok {
		return false
	}
	for i, e := range entries {
		if !e.key.isInt || (consecutive && e.key.n != i) {
			return false
		}
	}
	return true
}

// IsAssociative reports whether container has string keys: all of them with
// allStrings, at least one otherwise. An empty container is not associative.
func IsAssociative(container any, allStrings bool) bool {
	entries, ok := entriesOf(container)
	if !ok || len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if allStrings && e.key.isInt {
			return false
		}
		if !allStrings && !e.key.isInt {
			return true
		}
	}
	return allStrings
}

// values walks container lazily where it can.
func values(container any) iter.Seq2[Key, any] {
	if it, ok := container.(Iterable); ok {
		return it.All()
	}
	return func(yield func(Key, any) bool) {
		entries, _ := entriesOf(container)
		for _, e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
