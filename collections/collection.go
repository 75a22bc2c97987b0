package collections

import (
	"encoding/json"
	"iter"

	"github.com/pkg6/think-base/arr"
)

// Collection is an immutable, fluent wrapper around an ordered [arr.Array]
// of records.
//
// Every method that transforms the collection returns a new Collection and
// leaves the original unchanged, so a Collection may be read from several
// goroutines at once. Keys are preserved by transformations unless a method
// says otherwise; [Collection.Values] re-indexes.
//
// # Creating a collection
//
//	c := collections.New(row1, row2, row3)
//	c := collections.From(map[string]any{"a": 1, "b": 2})
//	c := collections.Empty()
//
// # Method chaining
//
//	names := collections.From(users).
//	    Filter(func(u any, _ arr.Key) bool { return arr.Get(u, "active") == true }).
//	    Pluck(arr.Field("name"), nil)
//
// Collection implements [arr.Iterable], so it can be passed to every arr
// operation as a container.
type Collection struct {
	items *arr.Array
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a 0-indexed Collection from items.
func New(items ...any) *Collection {
	return &Collection{items: arr.List(items...)}
}

// From creates a Collection holding the entries of container (copied).
// See [arr.From] for the accepted containers.
func From(container any) *Collection {
	return &Collection{items: arr.From(container)}
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{items: arr.NewArray()}
}

func wrap(a *arr.Array) *Collection { return &Collection{items: a} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Items returns a copy of the underlying array.
func (c *Collection) Items() *arr.Array { return c.items.Clone() }

// All iterates over the entries in order. It implements [arr.Iterable].
func (c *Collection) All() iter.Seq2[arr.Key, any] { return c.items.All() }

// ToJSON serialises the collection: a JSON array when it is a list, an
// object otherwise.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// ToArray converts the collection, and every record in it, to plain arrays
// with [arr.ToArray]. props may be nil.
func (c *Collection) ToArray(props arr.PropertyMap) (*arr.Array, error) {
	return arr.ToArray(c.items, props, true)
}

// Count returns the number of items in the collection.
func (c *Collection) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no items.
func (c *Collection) IsEmpty() bool { return c.items.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection) IsNotEmpty() bool { return c.items.Len() > 0 }

// Get returns the item stored under key together with a presence flag.
func (c *Collection) Get(key any) (any, bool) { return c.items.Get(key) }

// Has reports whether key is present.
func (c *Collection) Has(key any) bool { return c.items.Has(key) }

// Keys returns the keys in order.
func (c *Collection) Keys() []arr.Key { return c.items.Keys() }

// Values returns a new collection with the same items re-indexed from 0.
func (c *Collection) Values() *Collection { return New(c.items.Values()...) }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection) String() string { return c.items.String() }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) for every item, stopping early when fn returns
// false.
func (c *Collection) Each(fn func(any, arr.Key) bool) {
	for k, v := range c.items.All() {
		if !fn(v, k) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first matching fns[0].
// Returns nil and false when the collection is empty or nothing matches.
func (c *Collection) First(fns ...func(any) bool) (any, bool) {
	for _, v := range c.items.All() {
		if len(fns) == 0 || fns[0](v) {
			return v, true
		}
	}
	return nil, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection) FirstOrFail(fn func(any) bool) (any, error) {
	item, ok := c.First(fn)
	if !ok {
		return nil, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally the last matching fns[0].
func (c *Collection) Last(fns ...func(any) bool) (any, bool) {
	var found any
	matched := false
	for _, v := range c.items.All() {
		if len(fns) == 0 || fns[0](v) {
			found, matched = v, true
		}
	}
	return found, matched
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection) LastOrFail(fn func(any) bool) (any, error) {
	item, ok := c.Last(fn)
	if !ok {
		return nil, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether the collection holds value under eq
// ([arr.Loose] when nil).
func (c *Collection) Contains(value any, eq arr.Equality) bool {
	ok, _ := arr.IsIn(value, c.items, eq)
	return ok
}

// Search returns the key of the first item for which fn returns true.
func (c *Collection) Search(fn func(any) bool) (arr.Key, bool) {
	for k, v := range c.items.All() {
		if fn(v) {
			return k, true
		}
	}
	return arr.Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which
// fn(item, key) returns true. Keys are preserved.
func (c *Collection) Filter(fn func(any, arr.Key) bool) *Collection {
	out := arr.NewArray()
	for k, v := range c.items.All() {
		if fn(v, k) {
			out.Put(k, v)
		}
	}
	return wrap(out)
}

// Reject is the complement of [Collection.Filter].
func (c *Collection) Reject(fn func(any, arr.Key) bool) *Collection {
	return c.Filter(func(v any, k arr.Key) bool { return !fn(v, k) })
}

// Map returns a new collection with each item replaced by fn(item, key).
// Keys are preserved.
func (c *Collection) Map(fn func(any, arr.Key) any) *Collection {
	out := arr.NewArray()
	for k, v := range c.items.All() {
		out.Put(k, fn(v, k))
	}
	return wrap(out)
}

// Column projects sel out of every item, keeping the keys.
func (c *Collection) Column(sel arr.Selector) *Collection {
	return wrap(arr.Column(c.items, sel, true))
}

// Pluck collects the value selected by value from every item. With a nil
// key the result is a list; otherwise it is keyed by the value key selects,
// later items winning.
//
//	users.Pluck(arr.Field("email"), arr.Field("id")) // {1: "a@x", 2: "b@x"}
func (c *Collection) Pluck(value, key arr.Selector) *Collection {
	if key == nil {
		return wrap(arr.Column(c.items, value, false))
	}
	return wrap(arr.Map(c.items, key, value, nil))
}

// KeyBy re-keys the items by the value sel selects. Items whose key
// value is nil are dropped; later items win.
func (c *Collection) KeyBy(sel arr.Selector) *Collection {
	return wrap(arr.Index(c.items, sel, nil, false))
}

// GroupBy nests the items one level per selector, each group a list.
//
//	orders.GroupBy(arr.Field("country"), arr.Field("status"))
//	// {"NL": {"paid": [...], "open": [...]}, "BE": {...}}
func (c *Collection) GroupBy(groups ...arr.Selector) *Collection {
	if len(groups) == 0 {
		return c.Values()
	}
	return wrap(arr.Index(c.items, nil, groups, false))
}

// SortBy returns a new collection sorted by keys, see [arr.Multisort].
// The sort is stable.
func (c *Collection) SortBy(keys []arr.Selector, opts ...arr.SortOption) (*Collection, error) {
	sorted, err := arr.Sorted(c.items, keys, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(sorted), nil
}

// Merge deep-merges the given containers into a copy of the collection,
// see [arr.Merge].
func (c *Collection) Merge(others ...any) *Collection {
	if len(others) == 0 {
		return wrap(c.items.Clone())
	}
	return wrap(arr.Merge(c.items, others[0], others[1:]...))
}

// Without returns a new collection without the items [arr.Strict]ly equal
// to value. Keys are preserved.
func (c *Collection) Without(value any) *Collection {
	out := c.items.Clone()
	arr.RemoveValue(out, value)
	return wrap(out)
}

// Only returns the items stored under keys.
func (c *Collection) Only(keys ...any) *Collection { return wrap(arr.Only(c.items, keys...)) }

// Except returns the items not stored under keys.
func (c *Collection) Except(keys ...any) *Collection { return wrap(arr.Except(c.items, keys...)) }

// Take returns the first n items, or the last -n items when n is negative.
func (c *Collection) Take(n int) *Collection {
	keys := c.items.Keys()
	switch {
	case n >= len(keys):
		return wrap(c.items.Clone())
	case n >= 0:
		keys = keys[:n]
	case -n >= len(keys):
	default:
		keys = keys[len(keys)+n:]
	}
	out := arr.NewArray()
	for _, k := range keys {
		v, _ := c.items.Lookup(k)
		out.Put(k, v)
	}
	return wrap(out)
}

// When applies fn when condition holds, returning c unchanged otherwise.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless is the inverse of [Collection.When].
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}

// MarshalJSON implements [json.Marshaler] with the form of [Collection.ToJSON].
func (c *Collection) MarshalJSON() ([]byte, error) { return c.ToJSON() }
