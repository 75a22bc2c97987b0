package collections_test

import (
	"testing"

	"github.com/pkg6/think-base/arr"
	"github.com/pkg6/think-base/collections"
)

// makeRecords creates a Collection of n records for benchmarks.
func makeRecords(n int) *collections.Collection {
	items := make([]any, n)
	for i := range items {
		items[i] = arr.Assoc("id", i, "group", i%10, "score", (i*7919)%1000)
	}
	return collections.New(items...)
}

func BenchmarkFilter(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(r any, _ arr.Key) bool { return arr.Get(r, "group") == 3 })
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GroupBy(arr.Field("group"))
	}
}

func BenchmarkKeyBy(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.KeyBy(arr.Field("id"))
	}
}

func BenchmarkSortBy(b *testing.B) {
	c := makeRecords(10_000)
	keys := arr.Fields("group", "score")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.SortBy(keys)
	}
}
