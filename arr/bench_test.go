package arr_test

import (
	"testing"

	"github.com/pkg6/think-base/arr"
)

// makeRows creates n records for benchmarks.
func makeRows(n int) []any {
	rows := make([]any, n)
	for i := range rows {
		rows[i] = arr.Assoc("id", i, "group", i%16, "score", (i*7919)%1000, "name", "row")
	}
	return rows
}

func BenchmarkIndex(b *testing.B) {
	rows := makeRows(10_000)
	groups := arr.Fields("group")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Index(rows, arr.Field("id"), groups, false)
	}
}

func BenchmarkMultisort(b *testing.B) {
	rows := makeRows(10_000)
	keys := arr.Fields("group", "score")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arr.Sorted(rows, keys, arr.WithDirections(arr.Asc, arr.Desc)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	left := arr.From(makeRows(1_000))
	right := arr.From(makeRows(1_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Merge(left, right)
	}
}
