package arr

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cast"

	"github.com/pkg6/think-base/str"
)

// Equality decides whether two values are equal. [Strict] and [Loose] are
// the two comparators the package uses; callers choose one explicitly.
type Equality func(a, b any) bool

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Strict reports whether a and b have the same dynamic type and structurally
// equal contents: 1 and int64(1) differ, as do 1 and "1". Pointers compare by
// the values they point to; arrays compare key order as well as contents.
func Strict(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Loose compares with type coercion:
//   - nil against a string compares as "", so nil equals "" but not "0";
//   - otherwise nil equals every empty value (false, 0, an empty container);
//   - a bool is compared against the truthiness of the other operand;
//   - numbers and numeric strings compare numerically ("1e1" equals 10);
//   - a number and a non-numeric string compare as strings;
//   - containers are equal when they hold the same keys with loosely equal
//     values, in any order.
//
// Everything else falls back to [Strict].
func Loose(a, b any) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil && isString(b):
		return b == ""
	case b == nil && isString(a):
		return a == ""
	case a == nil:
		return !truthy(b)
	case b == nil:
		return !truthy(a)
	}
	if ab, ok := a.(bool); ok {
		return ab == truthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == truthy(a)
	}
	na, aNum := numeric(a)
	nb, bNum := numeric(b)
	if aNum && bNum {
		return na == nb
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	switch {
	case aStr && bStr:
		return as == bs
	case aStr && bNum:
		return as == scalarString(b)
	case bStr && aNum:
		return bs == scalarString(a)
	}
	if isContainer(a) && isContainer(b) {
		return looseContainers(a, b)
	}
	return Strict(a, b)
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func looseContainers(a, b any) bool {
	ea, _ := entriesOf(a)
	bArr := asArray(b)
	if len(ea) != bArr.Len() {
		return false
	}
	for _, e := range ea {
		v, ok := bArr.Lookup(e.key)
		if !ok || !Loose(e.value, v) {
			return false
		}
	}
	return true
}

// truthy reports the boolean value of v: zero numbers, "", "0", nil and
// empty containers are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	}
	if n, ok := numeric(v); ok {
		return n != 0
	}
	if entries, ok := entriesOf(v); ok {
		return len(entries) > 0
	}
	return true
}

// numeric reports the float value of numbers and numeric strings. Numeric
// strings may carry surrounding whitespace; "inf", "nan" and hex forms are
// not numeric.
func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return cast.ToFloat64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" || !strings.ContainsAny(s[:1], "+-.0123456789") || strings.ContainsAny(s, "xXnN_") {
			return 0, false
		}
		f, err := cast.ToFloat64E(s)
		return f, err == nil
	}
	return 0, false
}

// scalarString renders scalars the way they print as array keys.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return str.FloatToString(t)
	case float32:
		return str.FloatToString(float64(t))
	}
	return cast.ToString(v)
}
