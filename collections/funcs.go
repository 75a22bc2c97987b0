package collections

import (
	"fmt"

	"github.com/pkg6/think-base/arr"
)

// This file holds package-level generic functions over a Collection:
// methods cannot introduce type parameters.

// Reduce folds the collection into a single value of type U.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o any, _ arr.Key) float64 { return acc + arr.Get(o, "total").(float64) }, 0)
func Reduce[U any](c *Collection, fn func(U, any, arr.Key) U, initial U) U {
	result := initial
	for k, v := range c.All() {
		result = fn(result, v, k)
	}
	return result
}

// ValuesOf returns the items as a []T in order. Returns [ErrTypeMismatch]
// naming the first item that is not a T.
func ValuesOf[T any](c *Collection) ([]T, error) {
	out := make([]T, 0, c.Count())
	for k, v := range c.All() {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %T at key %s", ErrTypeMismatch, v, k)
		}
		out = append(out, t)
	}
	return out, nil
}

// Pluck is the typed form of [Collection.Pluck] without a key selector:
// it returns the selected value of every item that holds a T.
func Pluck[T any](c *Collection, sel arr.Selector) []T {
	var out []T
	for _, v := range c.All() {
		if t, ok := arr.Extract(v, sel).(T); ok {
			out = append(out, t)
		}
	}
	return out
}
