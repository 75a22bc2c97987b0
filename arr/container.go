package arr

import (
	"iter"
	"reflect"
	"slices"
)

// Iterable is implemented by containers that can enumerate their entries in
// order. [*Array] implements it, so do collections built on top of it.
type Iterable interface {
	All() iter.Seq2[Key, any]
}

type entry struct {
	key   Key
	value any
}

// entriesOf returns the entries of container in iteration order and reports
// whether container is a container at all. Slices and arrays are keyed
// 0..n-1; native maps are walked in [compareKeys] order since Go leaves their
// iteration order unspecified.
func entriesOf(container any) ([]entry, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case *Array:
		if c == nil {
			return nil, false
		}
		return c.entries(), true
	case Iterable:
		var out []entry
		for k, v := range c.All() {
			out = append(out, entry{key: k, value: v})
		}
		return out, true
	case iter.Seq[any]:
		var out []entry
		i := 0
		for v := range c {
			out = append(out, entry{key: IntKey(i), value: v})
			i++
		}
		return out, true
	}
	rv, ok := containerValue(container)
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]entry, rv.Len())
		for i := range out {
			out[i] = entry{key: IntKey(i), value: rv.Index(i).Interface()}
		}
		return out, true
	default:
		out := make([]entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out = append(out, entry{key: KeyOf(it.Key().Interface()), value: it.Value().Interface()})
		}
		slices.SortStableFunc(out, func(a, b entry) int { return compareKeys(a.key, b.key) })
		return out, true
	}
}

// containerValue resolves container, through at most one pointer, to a
// reflected slice, array or map.
func containerValue(container any) (reflect.Value, bool) {
	rv := reflect.ValueOf(container)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv, true
	}
	return reflect.Value{}, false
}

// isContainer reports whether v can be walked by [entriesOf].
func isContainer(v any) bool {
	switch c := v.(type) {
	case nil:
		return false
	case *Array:
		return c != nil
	case Iterable, iter.Seq[any]:
		return true
	}
	_, ok := containerValue(v)
	return ok
}

// asArray returns container itself when it is an *Array, otherwise a new
// Array holding its entries. Returns nil for non-containers.
func asArray(container any) *Array {
	if a, ok := container.(*Array); ok && a != nil {
		return a
	}
	entries, ok := entriesOf(container)
	if !ok {
		return nil
	}
	return fromEntries(entries)
}

func fromEntries(entries []entry) *Array {
	a := NewArray()
	for _, e := range entries {
		a.Put(e.key, e.value)
	}
	return a
}
