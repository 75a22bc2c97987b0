package arr

import (
	"fmt"
	"reflect"
	"time"

	"github.com/fatih/structs"
)

// Property declares one entry of the array built from an object by
// [ToArray]. Build properties with [Prop], [Rename] or [Computed].
type Property struct {
	// Key is the key in the resulting array.
	Key string
	// Source is the property resolved through [Reflect] when Derive is nil.
	Source string
	// Derive computes the value from the whole object.
	Derive func(object any) any
}

// Prop copies the property name under the same key.
func Prop(name string) Property { return Property{Key: name, Source: name} }

// Rename copies the property source under key.
func Rename(key, source string) Property { return Property{Key: key, Source: source} }

// Computed stores fn(object) under key.
func Computed(key string, fn func(object any) any) Property {
	return Property{Key: key, Derive: fn}
}

// PropertyMap lists, per runtime type, the properties [ToArray] extracts
// from objects of that type. A pointer type falls back to the entry of the
// type it points to.
type PropertyMap map[reflect.Type][]Property

// Register declares props for the dynamic type of sample and returns pm,
// allocating it when nil:
//
//	props := arr.PropertyMap{}.Register(Post{},
//	    arr.Prop("id"),
//	    arr.Rename("createTime", "CreatedAt"),
//	    arr.Computed("length", func(p any) any { return len(p.(*Post).Content) }),
//	)
func (pm PropertyMap) Register(sample any, props ...Property) PropertyMap {
	if pm == nil {
		pm = PropertyMap{}
	}
	pm[reflect.TypeOf(sample)] = props
	return pm
}

func (pm PropertyMap) lookup(object any) ([]Property, bool) {
	t := reflect.TypeOf(object)
	if props := pm[t]; len(props) > 0 {
		return props, true
	}
	if t.Kind() == reflect.Pointer {
		if props := pm[t.Elem()]; len(props) > 0 {
			return props, true
		}
	}
	return nil, false
}

// ToArray converts object into an [*Array]:
//   - an *Array is returned as-is without recursive, otherwise a copy whose
//     nested containers and objects are converted too;
//   - other containers (slices, maps, [Iterable]) become an Array of their
//     entries, converted recursively with recursive;
//   - a time.Time becomes {date, timezone_type, timezone};
//   - a struct, or pointer to one, becomes the properties props declares
//     for its type, or every exported field (keyed by its "structs" or "json"
//     tag when present) when props has no entry;
//   - anything else is wrapped as a single-element list.
//
// Returns [ErrConversion] when a declared property does not resolve.
func ToArray(object any, props PropertyMap, recursive bool) (*Array, error) {
	switch v := object.(type) {
	case *Array:
		if v == nil {
			return List(object), nil
		}
		if !recursive {
			return v, nil
		}
		return convertEntries(v.entries(), props)
	case time.Time:
		return dateArray(v), nil
	case *time.Time:
		if v != nil {
			return dateArray(*v), nil
		}
	}
	if entries, ok := entriesOf(object); ok {
		if !recursive {
			return fromEntries(entries), nil
		}
		return convertEntries(entries, props)
	}
	if structs.IsStruct(object) {
		return objectToArray(object, props, recursive)
	}
	return List(object), nil
}

func objectToArray(object any, props PropertyMap, recursive bool) (*Array, error) {
	rec := reflectStruct(object)
	declared, ok := props.lookup(object)
	if !ok {
		if !recursive {
			return fromEntries(rec.entries()), nil
		}
		return convertEntries(rec.entries(), props)
	}
	result := NewArray()
	for _, p := range declared {
		if p.Derive != nil {
			result.Set(p.Key, p.Derive(object))
			continue
		}
		v, ok := rec.Lookup(StringKey(p.Source))
		if !ok {
			return nil, fmt.Errorf("%w: %s has no property %q", ErrConversion, typeName(object), p.Source)
		}
		result.Set(p.Key, v)
	}
	if !recursive {
		return result, nil
	}
	return convertEntries(result.entries(), props)
}

// convertEntries builds an Array from entries, converting every value that
// is a container or an object.
func convertEntries(entries []entry, props PropertyMap) (*Array, error) {
	out := NewArray()
	for _, e := range entries {
		v := e.value
		if isContainer(v) || isObject(v) {
			converted, err := ToArray(v, props, true)
			if err != nil {
				return nil, err
			}
			v = converted
		}
		out.Put(e.key, v)
	}
	return out, nil
}

func isObject(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return structs.IsStruct(v)
}

// dateArray mirrors the field layout of a converted date/time value.
func dateArray(t time.Time) *Array {
	a := NewArray()
	a.Set("date", t.Format("2006-01-02 15:04:05.000000"))
	a.Set("timezone_type", 3)
	a.Set("timezone", t.Location().String())
	return a
}
