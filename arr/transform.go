package arr

// Map builds a lookup from records: for each record the value selected by
// to is stored under the key selected by from. Later records overwrite
// earlier ones with the same key.
//
// With a non-nil group the lookup is nested one level deeper, under the key
// selected by group:
//
//	rows := arr.List(
//	    arr.Assoc("id", "123", "name", "aaa", "class", "x"),
//	    arr.Assoc("id", "124", "name", "bbb", "class", "x"),
//	    arr.Assoc("id", "345", "name", "ccc", "class", "y"),
//	)
//	arr.Map(rows, arr.Field("id"), arr.Field("name"), nil)
//	// {123: "aaa", 124: "bbb", 345: "ccc"}
//	arr.Map(rows, arr.Field("id"), arr.Field("name"), arr.Field("class"))
//	// {"x": {123: "aaa", 124: "bbb"}, "y": {345: "ccc"}}
func Map(records any, from, to, group Selector) *Array {
	result := NewArray()
	entries, _ := entriesOf(records)
	for _, e := range entries {
		k := KeyOf(Extract(e.value, from))
		v := Extract(e.value, to)
		if group == nil {
			result.Put(k, v)
			continue
		}
		level(result, KeyOf(Extract(e.value, group))).Put(k, v)
	}
	return result
}

// Column projects the value selected by sel out of every record. With
// keepKeys the result keeps the records' keys, otherwise it is a list in
// iteration order.
func Column(records any, sel Selector, keepKeys bool) *Array {
	result := NewArray()
	entries, _ := entriesOf(records)
	for _, e := range entries {
		v := Extract(e.value, sel)
		if keepKeys {
			result.Put(e.key, v)
		} else {
			result.Append(v)
		}
	}
	return result
}

// Index indexes and/or groups records.
//
// Each selector in groups adds one nesting level, keyed by the value it
// selects, created on first use. Below the last level:
//   - with a nil key the record is appended (or stored under its original
//     key with keepKeys); without groups such records are discarded;
//   - otherwise the record is stored under the value key selects, later
//     records overwriting earlier ones. Records whose key value is nil are
//     discarded. Float values are rendered with "." as decimal separator
//     before being used as keys.
//
// Examples:
//
//	arr.Index(rows, arr.Field("id"), nil, false)
//	// {123: row1, 345: row3}
//	arr.Index(rows, nil, arr.Fields("id"), false)
//	// {123: [row1], 345: [row2, row3]}
//	arr.Index(rows, arr.Field("data"), arr.Fields("id", "device"), false)
//	// {123: {"laptop": {"abc": row1}}, 345: {...}}
func Index(records any, key Selector, groups []Selector, keepKeys bool) *Array {
	result := NewArray()
	entries, _ := entriesOf(records)
	for _, e := range entries {
		last := result
		for _, g := range groups {
			last = level(last, KeyOf(Extract(e.value, g)))
		}
		if key == nil {
			if len(groups) == 0 {
				continue
			}
			if keepKeys {
				last.Put(e.key, e.value)
			} else {
				last.Append(e.value)
			}
			continue
		}
		v := Extract(e.value, key)
		if v == nil {
			continue
		}
		last.Put(KeyOf(v), e.value)
	}
	return result
}

// level returns the nested Array stored under k in a, creating it when
// absent or when k holds something else.
func level(a *Array, k Key) *Array {
	if nested, ok := a.values[k].(*Array); ok {
		return nested
	}
	nested := NewArray()
	a.Put(k, nested)
	return nested
}
