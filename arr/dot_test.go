package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkg6/think-base/arr"
)

func makeNested() *arr.Array {
	return arr.Assoc(
		"user", arr.Assoc(
			"name", "Alice",
			"address", arr.Assoc("city", "London", "country", "UK"),
			"roles", arr.List("admin", "dev"),
		),
		"score", 42,
	)
}

func TestDot(t *testing.T) {
	flat := arr.Dot(makeNested())
	want := arr.Assoc(
		"user.name", "Alice",
		"user.address.city", "London",
		"user.address.country", "UK",
		"user.roles.0", "admin",
		"user.roles.1", "dev",
		"score", 42,
	)
	if !flat.Equal(want) {
		t.Fatalf("Dot = %s; want %s", flat, want)
	}
}

func TestDotKeepsEmptyContainers(t *testing.T) {
	flat := arr.Dot(map[string]any{"a": map[string]any{}, "b": []int{1}})
	assert.Equal(t, `{"a":{},"b.0":1}`, flat.String())
}

func TestUndot(t *testing.T) {
	nested := arr.Undot(arr.Assoc("a.b", 1, "a.c", 2, "d", 3, "e.0", "x", "e.1", "y"))
	assert.Equal(t, `{"a":{"b":1,"c":2},"d":3,"e":["x","y"]}`, nested.String())

	roundTrip := arr.Undot(arr.Dot(makeNested()))
	assert.True(t, roundTrip.Equal(makeNested()), roundTrip.String())
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.name"); v != "Alice" {
		t.Fatalf("Get user.name = %v; want Alice", v)
	}
	assert.Equal(t, "London", arr.Get(m, "user.address.city"))
	assert.Equal(t, "dev", arr.Get(m, "user.roles.1"))
	assert.Equal(t, 42, arr.Get(m, "score"))
	assert.Nil(t, arr.Get(m, "user.missing"))
	assert.Equal(t, "default", arr.Get(m, "user.name.first", "default"))
}

func TestGetThroughNativeAndStructs(t *testing.T) {
	data := map[string]any{"posts": []post{newPost()}}
	assert.Equal(t, "HELLO WORLD", arr.Get(data, "posts.0.title"))
	assert.Equal(t, "text", arr.Get(data, "posts.0.body"))
}

func TestSet(t *testing.T) {
	m := makeNested()
	arr.Set(m, "user.address.postcode", "EC1")
	assert.Equal(t, "EC1", arr.Get(m, "user.address.postcode"))

	arr.Set(m, "score.value", 1)
	assert.Equal(t, 1, arr.Get(m, "score.value"), "scalars are replaced by a level")

	fresh := arr.NewArray()
	arr.Set(fresh, "a.b.c", true)
	assert.Equal(t, `{"a":{"b":{"c":true}}}`, fresh.String())
}

func TestHas(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.Has(m, "user.name"))
	assert.True(t, arr.Has(m, "user.address.city"))
	assert.False(t, arr.Has(m, "user.phone"))
	assert.False(t, arr.Has(m, "score.value"))

	m.Set("nothing", nil)
	assert.True(t, arr.Has(m, "nothing"), "a nil value is present")
}

func TestHasAllAny(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.HasAll(m, "user.name", "score"))
	assert.False(t, arr.HasAll(m, "user.name", "missing"))
	assert.False(t, arr.HasAll(m))
	assert.True(t, arr.HasAny(m, "missing", "score"))
	assert.False(t, arr.HasAny(m, "missing", "nope"))
}

func TestForget(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "user.address.city")
	assert.False(t, arr.Has(m, "user.address.city"))
	assert.True(t, arr.Has(m, "user.address.country"))

	arr.Forget(m, "user.address")
	assert.False(t, arr.Has(m, "user.address"))

	arr.Forget(m, "score.deep")
	assert.Equal(t, 42, arr.Get(m, "score"))
}

func TestOnly(t *testing.T) {
	m := arr.Assoc("a", 1, "b", 2, "c", 3)
	out := arr.Only(m, "c", "a", "z")
	require.Equal(t, 2, out.Len())
	assert.Equal(t, `{"a":1,"c":3}`, out.String())
}

func TestExcept(t *testing.T) {
	out := arr.Except(map[string]int{"a": 1, "b": 2, "c": 3}, "b")
	assert.Equal(t, `{"a":1,"c":3}`, out.String())
}
