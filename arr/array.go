package arr

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
)

// Array is an insertion-ordered map from [Key] to any value: the container
// every arr operation produces. It models both sequences (keys 0..n-1) and
// associative maps, and any mix of the two.
//
// Appending uses the next integer index: one more than the largest integer
// key the Array has ever held, starting at 0. Overwriting an existing key
// keeps its position.
//
// The zero value is not usable; create arrays with [NewArray] or [List].
// A nil *Array reads as empty. Array is not safe for concurrent mutation.
type Array struct {
	keys   []Key
	values map[Key]any
	next   int
}

// NewArray returns an empty Array.
func NewArray() *Array {
	return &Array{values: make(map[Key]any)}
}

// List returns a 0-indexed Array holding values in order.
func List(values ...any) *Array {
	a := &Array{
		keys:   make([]Key, len(values)),
		values: make(map[Key]any, len(values)),
		next:   len(values),
	}
	for i, v := range values {
		a.keys[i] = IntKey(i)
		a.values[IntKey(i)] = v
	}
	return a
}

// Assoc returns an Array built from alternating keys and values, in order.
// A trailing key without a value maps to nil.
//
//	arr.Assoc("id", 1, "name", "a") // {"id": 1, "name": "a"}
func Assoc(kv ...any) *Array {
	a := NewArray()
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		a.Set(kv[i], v)
	}
	return a
}

// From returns a new Array holding the entries of container: an [*Array]
// is copied, slices are keyed 0..n-1, native maps are walked integer keys
// first, then string keys, each ascending. Non-containers yield an empty
// Array.
func From(container any) *Array {
	entries, ok := entriesOf(container)
	if !ok {
		return NewArray()
	}
	return fromEntries(entries)
}

// Len returns the number of entries.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Get returns the value stored under key (normalized with [KeyOf]).
func (a *Array) Get(key any) (any, bool) { return a.Lookup(KeyOf(key)) }

// Lookup returns the value stored under k. It implements [Record].
func (a *Array) Lookup(k Key) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[k]
	return v, ok
}

// Has reports whether key is present.
func (a *Array) Has(key any) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores value under key (normalized with [KeyOf]).
func (a *Array) Set(key, value any) { a.Put(KeyOf(key), value) }

// Put stores value under k, appending k when it is new.
func (a *Array) Put(k Key, value any) {
	if _, ok := a.values[k]; !ok {
		a.keys = append(a.keys, k)
		if k.isInt && k.n >= a.next {
			a.next = k.n + 1
		}
	}
	a.values[k] = value
}

// Append stores value under the next integer index and returns that key.
func (a *Array) Append(value any) Key {
	k := IntKey(a.next)
	a.Put(k, value)
	return k
}

// Delete removes key and reports whether it was present. The next integer
// index is not lowered.
func (a *Array) Delete(key any) bool {
	k := KeyOf(key)
	if _, ok := a.Lookup(k); !ok {
		return false
	}
	delete(a.values, k)
	a.keys = slices.DeleteFunc(a.keys, func(x Key) bool { return x == k })
	return true
}

// Keys returns a copy of the keys in order.
func (a *Array) Keys() []Key {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// Values returns the values in key order.
func (a *Array) Values() []any {
	out := make([]any, 0, a.Len())
	for _, v := range a.All() {
		out = append(out, v)
	}
	return out
}

// All iterates over the entries in order. It implements [Iterable].
func (a *Array) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// IsList reports whether the keys are exactly 0..n-1 in order.
func (a *Array) IsList() bool {
	for i, k := range a.Keys() {
		if !k.isInt || k.n != i {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of a.
func (a *Array) Clone() *Array {
	if a == nil {
		return NewArray()
	}
	return &Array{keys: slices.Clone(a.keys), values: maps.Clone(a.values), next: a.next}
}

// Equal reports whether a and b hold the same keys in the same order with
// [Strict]ly equal values.
func (a *Array) Equal(b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.Keys() {
		if b.keys[i] != k || !Strict(a.values[k], b.values[k]) {
			return false
		}
	}
	return true
}

// deepClone copies a and every container nested in it.
func (a *Array) deepClone() *Array {
	out := a.Clone()
	for k, v := range out.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies *Array values and native slices and maps, keeping
// their type. Other values are returned as-is.
func cloneValue(v any) any {
	if nested, ok := v.(*Array); ok {
		if nested == nil {
			return v
		}
		return nested.deepClone()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(clonedElem(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out.SetMapIndex(it.Key(), clonedElem(it.Value(), rv.Type().Elem()))
		}
		return out.Interface()
	}
	return v
}

func clonedElem(v reflect.Value, t reflect.Type) reflect.Value {
	c := cloneValue(v.Interface())
	if c == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(c)
}

// entries snapshots the entries of a.
func (a *Array) entries() []entry {
	out := make([]entry, 0, a.Len())
	for k, v := range a.All() {
		out = append(out, entry{key: k, value: v})
	}
	return out
}

// MarshalJSON encodes a list as a JSON array and anything else as an object
// whose members keep the key order.
func (a *Array) MarshalJSON() ([]byte, error) {
	if a.IsList() {
		return json.Marshal(a.Values())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes a list as a sequence and anything else as a mapping
// that keeps the key order.
func (a *Array) MarshalYAML() (any, error) {
	if a.IsList() {
		return a.Values(), nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range a.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
		if k.isInt {
			keyNode.Tag = "!!int"
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(a.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// String returns the JSON form of a.
func (a *Array) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return "Array"
	}
	return string(b)
}
