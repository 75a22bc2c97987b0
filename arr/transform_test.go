package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkg6/think-base/arr"
)

func devices() *arr.Array {
	return arr.List(
		arr.Assoc("id", "123", "data", "abc", "device", "laptop"),
		arr.Assoc("id", "345", "data", "def", "device", "tablet"),
		arr.Assoc("id", "345", "data", "hgi", "device", "smartphone"),
	)
}

func row(t *testing.T, a *arr.Array, i int) any {
	t.Helper()
	v, ok := a.Get(i)
	require.True(t, ok)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func TestMapLaterWins(t *testing.T) {
	records := []any{
		arr.Assoc("id", 1, "name", "a"),
		arr.Assoc("id", 2, "name", "b"),
		arr.Assoc("id", 1, "name", "c"),
	}
	got := arr.Map(records, arr.Field("id"), arr.Field("name"), nil)
	assert.True(t, got.Equal(arr.Assoc(1, "c", 2, "b")), got.String())
}

func TestMapGrouped(t *testing.T) {
	rows := arr.List(
		arr.Assoc("id", "123", "name", "aaa", "class", "x"),
		arr.Assoc("id", "124", "name", "bbb", "class", "x"),
		arr.Assoc("id", "345", "name", "ccc", "class", "y"),
	)
	got := arr.Map(rows, arr.Field("id"), arr.Field("name"), arr.Field("class"))
	assert.Equal(t, `{"x":{"123":"aaa","124":"bbb"},"y":{"345":"ccc"}}`, got.String())
}

func TestMapDerived(t *testing.T) {
	rows := arr.List(arr.Assoc("first", "Ada", "last", "Lovelace"))
	full := arr.Derive(func(r any) any { return arr.Get(r, "first").(string) + " " + arr.Get(r, "last").(string) })
	got := arr.Map(rows, arr.Field("last"), full, nil)
	assert.Equal(t, "Ada Lovelace", arr.Get(got, "Lovelace"))
}

func TestMapNonContainer(t *testing.T) {
	assert.Equal(t, 0, arr.Map(42, arr.Field("a"), arr.Field("b"), nil).Len())
}

// ─────────────────────────────────────────────────────────────────────────────
// Column
// ─────────────────────────────────────────────────────────────────────────────

func TestColumn(t *testing.T) {
	records := arr.Assoc(
		"a", arr.Assoc("x", 1),
		"b", arr.Assoc("y", 2),
		"c", arr.Assoc("x", 3),
	)
	kept := arr.Column(records, arr.Field("x"), true)
	assert.Equal(t, []arr.Key{arr.StringKey("a"), arr.StringKey("b"), arr.StringKey("c")}, kept.Keys())
	assert.Equal(t, []any{1, nil, 3}, kept.Values())

	dense := arr.Column(records, arr.Field("x"), false)
	assert.Equal(t, records.Len(), dense.Len())
	assert.True(t, dense.IsList())
}

func TestColumnStructs(t *testing.T) {
	posts := []post{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	assert.Equal(t, []any{"A", "B"}, arr.Column(posts, arr.Field("title"), false).Values())
}

// ─────────────────────────────────────────────────────────────────────────────
// Index
// ─────────────────────────────────────────────────────────────────────────────

func TestIndexByKey(t *testing.T) {
	rows := devices()
	got := arr.Index(rows, arr.Field("id"), nil, false)
	require.Equal(t, []arr.Key{arr.IntKey(123), arr.IntKey(345)}, got.Keys())
	assert.Same(t, row(t, rows, 0), arr.Get(got, "123"))
	assert.Same(t, row(t, rows, 2), arr.Get(got, "345"), "later records win")
}

func TestIndexGroupsOnly(t *testing.T) {
	rows := devices()
	got := arr.Index(rows, nil, arr.Fields("id"), false)
	assert.Equal(t, 1, arr.Get(got, "123").(*arr.Array).Len())
	group := arr.Get(got, "345").(*arr.Array)
	require.Equal(t, 2, group.Len(), "both records are kept")
	assert.True(t, group.IsList())
	assert.Same(t, row(t, rows, 1), row(t, group, 0))
	assert.Same(t, row(t, rows, 2), row(t, group, 1))
}

func TestIndexGroupsAndKey(t *testing.T) {
	rows := devices()
	got := arr.Index(rows, arr.Field("data"), arr.Fields("id", "device"), false)
	assert.Same(t, row(t, rows, 0), arr.Get(got, "123.laptop.abc"))
	assert.Same(t, row(t, rows, 1), arr.Get(got, "345.tablet.def"))
	assert.Same(t, row(t, rows, 2), arr.Get(got, "345.smartphone.hgi"))
}

func TestIndexKeepKeys(t *testing.T) {
	rows := arr.Assoc(
		"a", arr.Assoc("id", 1),
		"b", arr.Assoc("id", 2),
		"c", arr.Assoc("id", 1),
	)
	got := arr.Index(rows, nil, arr.Fields("id"), true)
	assert.Equal(t, []arr.Key{arr.StringKey("a"), arr.StringKey("c")}, arr.Get(got, "1").(*arr.Array).Keys())
}

func TestIndexNullKeyWithoutGroupsDiscards(t *testing.T) {
	assert.Equal(t, 0, arr.Index(devices(), nil, nil, false).Len())
	assert.Equal(t, 0, arr.Index(devices(), nil, nil, true).Len())
}

func TestIndexDropsNilKeyValues(t *testing.T) {
	rows := arr.List(arr.Assoc("id", 1), arr.Assoc("name", "anon"), arr.Assoc("id", nil))
	got := arr.Index(rows, arr.Field("id"), nil, false)
	assert.Equal(t, []arr.Key{arr.IntKey(1)}, got.Keys())

	grouped := arr.Index(devices(), arr.Field("missing"), arr.Fields("id"), false)
	assert.Equal(t, []arr.Key{arr.IntKey(123), arr.IntKey(345)}, grouped.Keys(), "group levels exist before the drop")
	assert.Equal(t, 0, arr.Get(grouped, "123").(*arr.Array).Len())
}

func TestIndexFloatKeys(t *testing.T) {
	rows := arr.List(arr.Assoc("k", 1.5), arr.Assoc("k", 2.0), arr.Assoc("k", -0.25))
	got := arr.Index(rows, arr.Field("k"), nil, false)
	assert.Equal(t, []arr.Key{arr.StringKey("1.5"), arr.IntKey(2), arr.StringKey("-0.25")}, got.Keys())
}

func TestIndexDerived(t *testing.T) {
	byLen := arr.Derive(func(r any) any { return len(arr.Get(r, "data").(string)) + len(arr.Get(r, "device").(string)) })
	got := arr.Index(devices(), nil, []arr.Selector{byLen}, false)
	assert.Equal(t, []arr.Key{arr.IntKey(9), arr.IntKey(13)}, got.Keys())
}

// ─────────────────────────────────────────────────────────────────────────────
// RemoveValue
// ─────────────────────────────────────────────────────────────────────────────

func TestRemoveValueArray(t *testing.T) {
	a := arr.Assoc("Bob", "Dylan", "Michael", "Jackson", "Mick", "Jagger", "Janet", "Jackson")
	removed := arr.RemoveValue(a, "Jackson")
	assert.Equal(t, `{"Michael":"Jackson","Janet":"Jackson"}`, removed.String())
	assert.Equal(t, `{"Bob":"Dylan","Mick":"Jagger"}`, a.String())
}

func TestRemoveValueIsStrict(t *testing.T) {
	a := arr.List(1, "1", 1.0, true)
	removed := arr.RemoveValue(a, 1)
	assert.Equal(t, []arr.Key{arr.IntKey(0)}, removed.Keys())
	assert.Equal(t, 3, a.Len())
}

func TestRemoveValueSlicePointer(t *testing.T) {
	s := []any{1, "1", 2, 1}
	removed := arr.RemoveValue(&s, 1)
	assert.Equal(t, []any{"1", 2}, s)
	assert.Equal(t, []arr.Key{arr.IntKey(0), arr.IntKey(3)}, removed.Keys())
}

func TestRemoveValueMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 1}
	removed := arr.RemoveValue(m, 1)
	assert.Equal(t, map[string]int{"b": 2}, m)
	assert.Equal(t, `{"a":1,"c":1}`, removed.String())
}

func TestRemoveValueNoop(t *testing.T) {
	s := []int{1, 2}
	assert.Equal(t, 0, arr.RemoveValue(s, 1).Len(), "a slice value cannot shrink in place")
	assert.Equal(t, []int{1, 2}, s)
	assert.Equal(t, 0, arr.RemoveValue("abc", "a").Len())
	assert.Equal(t, 0, arr.RemoveValue(nil, nil).Len())
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────────────────────────────────────

func TestMergeIntegerKeysAccumulate(t *testing.T) {
	a := arr.List(1, 2)
	b := arr.List(3, 4)
	got := arr.Merge(a, b)
	assert.Equal(t, a.Len()+b.Len(), got.Len())
	assert.Equal(t, []any{1, 2, 3, 4}, got.Values())

	sparse := arr.Merge(arr.Assoc(5, "x"), arr.Assoc(2, "y", 5, "z"))
	assert.Equal(t, `{"5":"x","2":"y","6":"z"}`, sparse.String())
}

func TestMergeStringKeys(t *testing.T) {
	a := arr.Assoc("name", "a", "opts", arr.Assoc("debug", false, "tags", arr.List("x")))
	b := arr.Assoc("name", "b", "opts", arr.Assoc("debug", true, "tags", arr.List("y")))
	got := arr.Merge(a, b)
	assert.Equal(t, `{"name":"b","opts":{"debug":true,"tags":["x","y"]}}`, got.String())

	scalar := arr.Merge(arr.Assoc("a", 1), arr.Assoc("a", arr.List(1)))
	assert.Equal(t, `{"a":[1]}`, scalar.String())
	back := arr.Merge(arr.Assoc("a", arr.List(1)), arr.Assoc("a", 1))
	assert.Equal(t, `{"a":1}`, back.String())
}

func TestMergeDoesNotMutate(t *testing.T) {
	a := arr.Assoc("x", arr.List(1))
	b := arr.Assoc("x", arr.List(2), "y", arr.List(3))
	got := arr.Merge(a, b)
	assert.Equal(t, `{"x":[1,2],"y":[3]}`, got.String())
	assert.Equal(t, `{"x":[1]}`, a.String())
	assert.Equal(t, `{"x":[2],"y":[3]}`, b.String())

	arr.Get(got, "y").(*arr.Array).Append(4)
	assert.Equal(t, `{"x":[2],"y":[3]}`, b.String())
}

func TestMergeCopiesNativeContainers(t *testing.T) {
	tags := []string{"x"}
	opts := map[string]int{"a": 1}
	a := map[string]any{"tags": tags, "opts": opts}
	b := arr.Assoc("extra", []any{[]int{1}})

	got := arr.Merge(a, b)
	arr.Get(got, "tags").([]string)[0] = "y"
	arr.Get(got, "opts").(map[string]int)["a"] = 2
	arr.Get(got, "extra").([]any)[0].([]int)[0] = 9

	assert.Equal(t, []string{"x"}, tags)
	assert.Equal(t, map[string]int{"a": 1}, opts)
	assert.Equal(t, []int{1}, arr.Get(b, "extra.0"))
}

func TestMergeWithEmpty(t *testing.T) {
	a := arr.Assoc("a", arr.List(1), 0, "z")
	assert.True(t, arr.Merge(a, arr.NewArray()).Equal(a))
}

func TestMergeVariadicAndNative(t *testing.T) {
	got := arr.Merge(map[string]any{"a": []int{1}}, map[string]any{"a": []int{2}}, arr.Assoc("b", 3))
	assert.Equal(t, `{"a":[1,2],"b":3}`, got.String())

	assert.Equal(t, []any{1}, arr.Merge(arr.List(1), 5).Values())
	assert.Equal(t, []any{1}, arr.Merge(5, arr.List(1)).Values())
}
