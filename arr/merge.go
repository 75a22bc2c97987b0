package arr

// Merge deep-merges b, and then every array in more, into a copy of a.
//
// For every incoming entry:
//   - an integer key is appended when the accumulator already holds it,
//     and stored under the same key otherwise, so integer-keyed entries
//     accumulate and never overwrite each other;
//   - a string key whose old and new values are both containers is merged
//     recursively;
//   - any other string key is overwritten by the incoming value.
//
// The arguments are never modified: nested arrays, slices and maps are
// copied, not shared.
// Non-container arguments contribute nothing.
//
//	a := arr.List("x")
//	a.Set("opts", arr.List(1))
//	arr.Merge(a, arr.List("y")) // ["x", "y", opts: [1]] with keys 0, "opts", 1
func Merge(a, b any, more ...any) *Array {
	res := NewArray()
	if base := asArray(a); base != nil {
		res = base.deepClone()
	}
	for _, src := range append([]any{b}, more...) {
		entries, _ := entriesOf(src)
		for _, e := range entries {
			v := cloneValue(e.value)
			if e.key.isInt {
				if res.Has(e.key) {
					res.Append(v)
				} else {
					res.Put(e.key, v)
				}
				continue
			}
			if cur, ok := res.values[e.key]; ok && isContainer(cur) && isContainer(v) {
				res.Put(e.key, Merge(cur, v))
				continue
			}
			res.Put(e.key, v)
		}
	}
	return res
}
