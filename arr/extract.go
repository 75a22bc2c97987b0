package arr

import "reflect"

// Extract resolves sel against record and returns the value, or nil when
// nothing is found. A missing key and a present nil value are not told apart.
//
//   - a [DeriveFunc] is called with record and its result returned verbatim;
//   - a [FieldSelector] looks its name up in an [*Array] or other [Record],
//     in a native map (by key) or slice (by index), or in a struct through
//     [Reflect].
//
// Dotted paths are not interpreted; use [Get] for those.
func Extract(record any, sel Selector) any {
	switch s := sel.(type) {
	case DeriveFunc:
		if s == nil {
			return nil
		}
		return s(record)
	case FieldSelector:
		v, _ := lookup(record, s.Name)
		return v
	}
	return nil
}

func lookup(record any, k Key) (any, bool) {
	switch r := record.(type) {
	case nil:
		return nil, false
	case Record:
		return r.Lookup(k)
	}
	if rv, ok := containerValue(record); ok {
		if rv.Kind() == reflect.Map {
			return mapLookup(rv, k)
		}
		if k.isInt && k.n >= 0 && k.n < rv.Len() {
			return rv.Index(k.n).Interface(), true
		}
		return nil, false
	}
	if rec := Reflect(record); rec != nil {
		return rec.Lookup(k)
	}
	return nil, false
}

// mapLookup converts k to the map's key type before indexing. Keys that
// cannot be represented in that type are missing.
func mapLookup(m reflect.Value, k Key) (any, bool) {
	kt := m.Type().Key()
	var candidates []reflect.Value
	switch kt.Kind() {
	case reflect.String:
		candidates = append(candidates, reflect.ValueOf(k.String()).Convert(kt))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !k.isInt || (k.n < 0 && kt.Kind() >= reflect.Uint) {
			return nil, false
		}
		candidates = append(candidates, reflect.ValueOf(k.n).Convert(kt))
	case reflect.Interface:
		candidates = append(candidates, reflect.ValueOf(k.Value()))
		if k.isInt {
			candidates = append(candidates, reflect.ValueOf(k.String()))
		}
	default:
		return nil, false
	}
	for _, c := range candidates {
		if !c.Type().AssignableTo(kt) {
			continue
		}
		if v := m.MapIndex(c); v.IsValid() {
			return v.Interface(), true
		}
	}
	return nil, false
}
