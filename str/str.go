package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// phpTrimSet is the character set trimmed by default.
const phpTrimSet = " \t\n\r\x00\x0B"

// UcFirst upper-cases the first character of s using Unicode case mapping.
func UcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// UcWords upper-cases the first character of every whitespace separated word
// in s. Whitespace runs are preserved verbatim.
func UcWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(UcFirst(s[start:i]))
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(UcFirst(s[start:]))
	}
	return b.String()
}

// ParseCallback splits a "Class@method" callback into its class and method.
// When callback has no "@", def is returned as the method.
func ParseCallback(callback, def string) (string, string) {
	if class, method, ok := strings.Cut(callback, "@"); ok {
		return class, method
	}
	return callback, def
}

// ByteLength returns the number of bytes in s.
func ByteLength(s string) int { return len(s) }

// ByteSubstr returns the portion of s selected by start and an optional
// length, treating s as a byte array. A negative start counts from the end;
// a negative length leaves that many bytes off the end.
//
//	ByteSubstr("abcdef", 1, 3)  // → "bcd"
//	ByteSubstr("abcdef", -2)    // → "ef"
//	ByteSubstr("abcdef", 0, -1) // → "abcde"
func ByteSubstr(s string, start int, length ...int) string {
	n := len(s)
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return ""
	}
	end := n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = min(start+l, n)
		}
	}
	if end <= start {
		return ""
	}
	return s[start:end]
}

// TrimFunc transforms each element produced by [Explode].
type TrimFunc func(string) string

// Trim strips spaces, tabs, newlines, NUL and vertical tabs from both ends.
func Trim(s string) string { return strings.Trim(s, phpTrimSet) }

// TrimChars returns a [TrimFunc] stripping every character in cutset.
func TrimChars(cutset string) TrimFunc {
	return func(s string) string { return strings.Trim(s, cutset) }
}

// Explode splits s around delimiter. Each element is passed through trim
// when it is non-nil; with skipEmpty, empty elements are dropped and the
// result stays densely indexed.
//
// An empty delimiter yields s as the only element.
func Explode(s, delimiter string, trim TrimFunc, skipEmpty bool) []string {
	var parts []string
	if delimiter == "" {
		parts = []string{s}
	} else {
		parts = strings.Split(s, delimiter)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trim != nil {
			p = trim(p)
		}
		if skipEmpty && p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CountWords counts the whitespace separated words in s.
func CountWords(s string) int { return len(strings.Fields(s)) }

// Snake converts a CamelCase name to snake_case: "UserName" → "user_name".
// Only ASCII capitals start a new segment.
func Snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteByte(c)
	}
	return strings.ToLower(strings.Trim(b.String(), "_"))
}

// Camel converts a snake_case name to CamelCase: "user_name" → "UserName".
// With ucfirst false the first letter is lower-cased: "userName".
func Camel(name string, ucfirst bool) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' && i+1 < len(name) && isASCIILetter(name[i+1]) {
			b.WriteByte(upperASCII(name[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}
	out := b.String()
	if out == "" {
		return out
	}
	if ucfirst {
		return string(upperASCII(out[0])) + out[1:]
	}
	return string(lowerASCII(out[0])) + out[1:]
}

func isASCIILetter(c byte) bool { return c|0x20 >= 'a' && c|0x20 <= 'z' }

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
