package arr

import (
	"reflect"
	"strings"

	"github.com/fatih/structs"

	"github.com/pkg6/think-base/str"
)

// Record is anything a [FieldSelector] can be resolved against.
//
// The arr package ships two variants: [*Array] and the reflected struct
// returned by [Reflect]. Native Go maps and slices are resolved directly.
type Record interface {
	// Lookup returns the value stored under k and whether it exists.
	Lookup(k Key) (any, bool)
}

// structRecord resolves keys against a struct's accessors and fields.
type structRecord struct {
	value  reflect.Value // addressable struct
	fields *structs.Struct
}

// Reflect wraps a struct, or a pointer to one, as a [Record]. Returns nil for
// anything else, including a nil pointer. Values that already are a Record,
// such as [*Array], are returned unchanged.
//
// A key resolves, in order, to the result of a method Get<Name>(), of a
// method <Name>() (both taking no arguments and returning one value), to the
// exported field <Name>, or to the exported field whose "structs" or "json"
// tag is the key. <Name> is the key with its first letter upper-cased.
func Reflect(v any) Record {
	if r, ok := v.(Record); ok {
		return r
	}
	if r := reflectStruct(v); r != nil {
		return r
	}
	return nil
}

func reflectStruct(v any) *structRecord {
	if !structs.IsStruct(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		rv = ptr
	}
	return &structRecord{value: rv, fields: structs.New(rv.Interface())}
}

func (r *structRecord) Lookup(k Key) (any, bool) {
	name := k.String()
	if name == "" {
		return nil, false
	}
	exported := str.UcFirst(name)
	for _, method := range []string{"Get" + exported, exported} {
		if v, ok := r.call(method); ok {
			return v, true
		}
	}
	if f, ok := r.fields.FieldOk(exported); ok && f.IsExported() {
		return f.Value(), true
	}
	for _, f := range r.fields.Fields() {
		if f.IsExported() && tagName(f) == name {
			return f.Value(), true
		}
	}
	return nil, false
}

func (r *structRecord) call(name string) (any, bool) {
	m := r.value.MethodByName(name)
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// entries lists the exported fields, keyed by tag name or field name.
// Fields tagged json:"-" are left out.
func (r *structRecord) entries() []entry {
	fields := r.fields.Fields()
	out := make([]entry, 0, len(fields))
	for _, f := range fields {
		if !f.IsExported() || f.Tag("json") == "-" {
			continue
		}
		name := tagName(f)
		if name == "" {
			name = f.Name()
		}
		out = append(out, entry{key: StringKey(name), value: f.Value()})
	}
	return out
}

func tagName(f *structs.Field) string {
	for _, tag := range []string{"structs", "json"} {
		if name, _, _ := strings.Cut(f.Tag(tag), ","); name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// typeName names the dynamic type of v for error messages.
func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
