package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type sortConfig struct {
	directions []Direction
	flags      []SortFlag
	collation  language.Tag
}

// SortOption configures [Multisort] and [Sorted].
type SortOption func(*sortConfig)

// WithDirections sets the direction of every key. One direction applies to
// all keys; otherwise give exactly one per key. Default: [Asc].
func WithDirections(directions ...Direction) SortOption {
	return func(c *sortConfig) { c.directions = directions }
}

// WithFlags sets how the values of every key compare. One flag applies to
// all keys; otherwise give exactly one per key. Default: [SortRegular].
func WithFlags(flags ...SortFlag) SortOption {
	return func(c *sortConfig) { c.flags = flags }
}

// WithCollation sets the language whose collation [SortLocaleString] uses.
// Default: the root collation, language.Und.
func WithCollation(tag language.Tag) SortOption {
	return func(c *sortConfig) { c.collation = tag }
}

// Multisort sorts records in place by one or more keys at once: records are
// ordered by the first key, ties by the second, and so on. Records equal on
// every key keep their relative order, because the original position is
// compared last.
//
// records must be an [*Array] or a slice (or a pointer to a slice or an
// array). An Array keeps its string keys and has its integer keys re-indexed
// from 0 in the new order. Nothing happens when records or keys is empty, or
// when records is not a container.
//
// Returns [ErrConfiguration] when the directions or flags do not match the
// keys in number, and [ErrInvalidInput] when records is a container that
// cannot be reordered in place.
//
//	err := arr.Multisort(users, arr.Fields("age", "name"),
//	    arr.WithDirections(arr.Desc, arr.Asc))
func Multisort(records any, keys []Selector, opts ...SortOption) error {
	entries, ok := entriesOf(records)
	if !ok || len(entries) == 0 || len(keys) == 0 {
		return nil
	}
	order, err := sortOrder(records, len(entries), keys, opts)
	if err != nil {
		return err
	}

	if a, ok := records.(*Array); ok {
		a.reorder(entries, order)
		return nil
	}
	rv, ok := containerValue(records)
	if !ok || rv.Kind() == reflect.Map || (rv.Kind() == reflect.Array && !rv.CanAddr()) {
		return fmt.Errorf("%w: %T cannot be sorted in place", ErrInvalidInput, records)
	}
	sorted := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), len(order), len(order))
	for i, p := range order {
		sorted.Index(i).Set(rv.Index(p))
	}
	for i := range order {
		rv.Index(i).Set(sorted.Index(i))
	}
	return nil
}

// Sorted is the non-mutating form of [Multisort]: it returns a sorted copy
// of records as an [*Array] and leaves records untouched.
func Sorted(records any, keys []Selector, opts ...SortOption) (*Array, error) {
	out := From(records)
	if err := Multisort(out, keys, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// sortOrder returns the permutation of positions 0..n-1 that sorts records.
func sortOrder(records any, n int, keys []Selector, opts []SortOption) ([]int, error) {
	cfg := sortConfig{collation: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}
	directions, err := perKey(cfg.directions, len(keys), Asc, "directions")
	if err != nil {
		return nil, err
	}
	flags, err := perKey(cfg.flags, len(keys), SortRegular, "sort flags")
	if err != nil {
		return nil, err
	}

	var collator *collate.Collator
	columns := make([][]any, len(keys))
	comparators := make([]comparator, len(keys))
	for i, k := range keys {
		columns[i] = Column(records, k, false).Values()
		if flags[i]&^SortFlagCase == SortLocaleString && collator == nil {
			collator = collate.New(cfg.collation)
		}
		comparators[i] = newComparator(flags[i], collator)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(x, y int) int {
		for i := range keys {
			c := comparators[i](columns[i][x], columns[i][y])
			if directions[i] == Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(x, y)
	})
	return order, nil
}

// perKey expands values to one per key: none means def, one applies to
// every key.
func perKey[T any](values []T, n int, def T, what string) ([]T, error) {
	switch len(values) {
	case 0:
		values = []T{def}
		fallthrough
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case n:
		return values, nil
	}
	return nil, fmt.Errorf("%w: %d %s given for %d keys", ErrConfiguration, len(values), what, n)
}

// reorder rebuilds a from entries in the given order, keeping string keys
// and re-indexing integer keys from 0.
func (a *Array) reorder(entries []entry, order []int) {
	a.keys = a.keys[:0]
	a.values = make(map[Key]any, len(entries))
	a.next = 0
	for _, p := range order {
		e := entries[p]
		if e.key.isInt {
			a.Append(e.value)
		} else {
			a.Put(e.key, e.value)
		}
	}
}
