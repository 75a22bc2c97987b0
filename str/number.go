package str

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FloatToString renders f with "." as the decimal separator regardless of
// any locale, with 14 significant digits. Integral values carry no
// fractional part ("1", not "1.0"). Magnitudes from 1e15 up and below 1e-4
// switch to exponent form with at least one fractional digit ("1.0E+15",
// "1.5E-5").
func FloatToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	rounded := strconv.FormatFloat(f, 'e', 13, 64)
	mantissa, exp, _ := strings.Cut(rounded, "e")
	n, _ := strconv.Atoi(exp)
	if n < -4 || n >= 15 {
		mantissa = strings.TrimRight(mantissa, "0")
		if strings.HasSuffix(mantissa, ".") {
			mantissa += "0"
		}
		return fmt.Sprintf("%sE%+d", mantissa, n)
	}
	r, _ := strconv.ParseFloat(rounded, 64)
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// NormalizeNumber returns the string form of value with the decimal separator
// of tag replaced by ".".
//
//	NormalizeNumber("3,14", language.German) // → "3.14"
//	NormalizeNumber(2.5, language.French)    // → "2.5"
func NormalizeNumber(value any, tag language.Tag) string {
	var s string
	switch v := value.(type) {
	case float64:
		s = FloatToString(v)
	case float32:
		s = FloatToString(float64(v))
	default:
		s = cast.ToString(value)
	}
	if sep := DecimalSeparator(tag); sep != "." {
		s = strings.ReplaceAll(s, sep, ".")
	}
	return s
}

// DecimalSeparator reports the decimal separator CLDR defines for tag.
func DecimalSeparator(tag language.Tag) string {
	out := []rune(message.NewPrinter(tag).Sprintf("%.1f", 1.5))
	if len(out) < 3 {
		return "."
	}
	return string(out[1 : len(out)-1])
}
