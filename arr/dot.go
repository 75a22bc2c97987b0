package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
//
// Paths are dot-separated lists of keys; every segment is normalized with
// [KeyOf], so "items.0.name" walks into index 0 of a list. Reads (Get, Has)
// walk any container or struct; writes (Set, Forget) work on *Array and
// create missing levels as *Array.
//
//	cfg := arr.Assoc("db", arr.Assoc("host", "localhost"))
//	arr.Get(cfg, "db.host")         // "localhost"
//	arr.Set(cfg, "db.port", 5432)
//	arr.Has(cfg, "db.user")         // false
//	arr.Dot(cfg)                    // {"db.host": "localhost", "db.port": 5432}
// ─────────────────────────────────────────────────────────────────────────────

func segments(path string) []Key {
	parts := strings.Split(path, ".")
	out := make([]Key, len(parts))
	for i, p := range parts {
		out[i] = KeyOf(p)
	}
	return out
}

func walk(record any, path string) (any, bool) {
	current := record
	for _, k := range segments(path) {
		v, ok := lookup(current, k)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

// Get returns the value at path, or def[0] (nil without def) when the path
// does not resolve.
//
//	arr.Get(cfg, "db.missing", "fallback") // "fallback"
func Get(record any, path string, def ...any) any {
	if v, ok := walk(record, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set stores value at path, replacing intermediate values that are not
// *Array with new levels.
func Set(a *Array, path string, value any) {
	keys := segments(path)
	for _, k := range keys[:len(keys)-1] {
		a = level(a, k)
	}
	a.Put(keys[len(keys)-1], value)
}

// Has reports whether path resolves in record.
func Has(record any, path string) bool {
	_, ok := walk(record, path)
	return ok
}

// HasAll reports whether every path resolves. False when no paths are given.
func HasAll(record any, paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !Has(record, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves.
func HasAny(record any, paths ...string) bool {
	for _, p := range paths {
		if Has(record, p) {
			return true
		}
	}
	return false
}

// Forget removes the entry at path. Emptied levels are kept.
func Forget(a *Array, path string) {
	keys := segments(path)
	for _, k := range keys[:len(keys)-1] {
		nested, ok := a.values[k].(*Array)
		if !ok {
			return
		}
		a = nested
	}
	a.Delete(keys[len(keys)-1])
}

// Dot flattens nested containers into a single-level Array keyed by dotted
// paths. Empty containers are kept as leaves.
func Dot(container any) *Array {
	out := NewArray()
	flatten(out, "", container)
	return out
}

func flatten(out *Array, prefix string, container any) {
	entries, _ := entriesOf(container)
	for _, e := range entries {
		path := e.key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		if nested, ok := entriesOf(e.value); ok && len(nested) > 0 {
			flatten(out, path, e.value)
			continue
		}
		out.Put(StringKey(path), e.value)
	}
}

// Undot expands a dotted Array (as returned by [Dot]) back into nested
// Arrays.
func Undot(container any) *Array {
	out := NewArray()
	entries, _ := entriesOf(container)
	for _, e := range entries {
		Set(out, e.key.String(), e.value)
	}
	return out
}

// Only returns the top-level entries of container whose keys are listed,
// in container order.
func Only(container any, keys ...any) *Array {
	return pick(container, keys, true)
}

// Except returns the top-level entries of container whose keys are not
// listed.
func Except(container any, keys ...any) *Array {
	return pick(container, keys, false)
}

func pick(container any, keys []any, keep bool) *Array {
	listed := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		listed[KeyOf(k)] = struct{}{}
	}
	out := NewArray()
	entries, _ := entriesOf(container)
	for _, e := range entries {
		if _, ok := listed[e.key]; ok == keep {
			out.Put(e.key, e.value)
		}
	}
	return out
}
