// Package collections provides a fluent, immutable Collection of records
// built on the ordered [arr.Array], inspired by Laravel's
// Illuminate/Collections.
//
// # Overview
//
//	paid := collections.From(orders).
//	    Filter(func(o any, _ arr.Key) bool { return arr.Get(o, "status") == "paid" }).
//	    GroupBy(arr.Field("country"))
//
// Records are anything an [arr.Selector] can read: arrays, native maps,
// structs. Grouping, keying, plucking and sorting delegate to the arr
// operations, so their missing-data policies apply unchanged.
//
// # Immutability
//
// All transformation methods return a new Collection, leaving the original
// unchanged.
//
// # Type-transforming operations
//
// Package-level functions: [Reduce], [ValuesOf], [Pluck].
package collections
