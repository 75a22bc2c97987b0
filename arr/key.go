package arr

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/spf13/cast"

	"github.com/pkg6/think-base/str"
)

// Key is an [Array] key: either an integer or a string. The zero Key is the
// empty string key.
//
// Keys built from strings holding a canonical decimal integer ("12", "-3",
// but not "012" or "1.0") are integer keys, so StringKey("12") == IntKey(12).
type Key struct {
	s     string
	n     int
	isInt bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{n: n, isInt: true} }

// StringKey returns the key for s, normalizing canonical integers.
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{s: s}
}

// KeyOf normalizes an arbitrary value into a Key:
//   - integers stay integers, bools become 0 or 1, nil becomes "";
//   - floats are rendered with [str.FloatToString] first, so 1.0 maps to
//     the key 1 and 1.5 to the key "1.5";
//   - strings go through [StringKey];
//   - anything else is coerced to its string form.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case Key:
		return k
	case nil:
		return Key{}
	case string:
		return StringKey(k)
	case bool:
		if k {
			return IntKey(1)
		}
		return IntKey(0)
	case int:
		return IntKey(k)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntKey(cast.ToInt(k))
	case float64:
		return StringKey(str.FloatToString(k))
	case float32:
		return StringKey(str.FloatToString(float64(k)))
	}
	if s, err := cast.ToStringE(v); err == nil {
		return StringKey(s)
	}
	return StringKey(fmt.Sprint(v))
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.n }

// String returns the key as a string. Integer keys render in decimal.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.n)
	}
	return k.s
}

// Value returns the key as an int or a string.
func (k Key) Value() any {
	if k.isInt {
		return k.n
	}
	return k.s
}

// Equal reports whether k and o are the same key.
func (k Key) Equal(o Key) bool { return k == o }

// compareKeys orders integer keys before string keys, each ascending.
func compareKeys(a, b Key) int {
	switch {
	case a.isInt && b.isInt:
		return cmp.Compare(a.n, b.n)
	case a.isInt:
		return -1
	case b.isInt:
		return 1
	}
	return cmp.Compare(a.s, b.s)
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && (len(digits) > 1 || s[0] == '-')) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
