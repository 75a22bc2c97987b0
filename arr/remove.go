package arr

import "reflect"

// RemoveValue deletes, in place, every entry of container whose value is
// [Strict]ly equal to value, and returns the removed entries under their
// original keys.
//
// container must be mutable in place: an [*Array], a native map, or a
// pointer to a slice (which is compacted; removed entries are keyed by
// their former index). For anything else RemoveValue does nothing and
// returns an empty Array.
//
//	a := arr.NewArray()
//	a.Set("Bob", "Dylan")
//	a.Set("Michael", "Jackson")
//	removed := arr.RemoveValue(a, "Jackson") // {"Michael": "Jackson"}
func RemoveValue(container, value any) *Array {
	removed := NewArray()
	switch c := container.(type) {
	case nil:
		return removed
	case *Array:
		if c == nil {
			return removed
		}
		for _, k := range c.Keys() {
			if v := c.values[k]; Strict(v, value) {
				removed.Put(k, v)
				c.Delete(k)
			}
		}
		return removed
	}

	rv := reflect.ValueOf(container)
	switch {
	case rv.Kind() == reflect.Map:
		entries, _ := entriesOf(container)
		for _, e := range entries {
			if Strict(e.value, value) {
				removed.Put(e.key, e.value)
			}
		}
		for _, mk := range rv.MapKeys() {
			if removed.Has(KeyOf(mk.Interface())) {
				rv.SetMapIndex(mk, reflect.Value{})
			}
		}
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Slice:
		s := rv.Elem()
		kept := reflect.MakeSlice(s.Type(), 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			item := s.Index(i)
			if Strict(item.Interface(), value) {
				removed.Put(IntKey(i), item.Interface())
				continue
			}
			kept = reflect.Append(kept, item)
		}
		s.Set(kept)
	}
	return removed
}
