package arr

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
)

// SortFlag selects how [Multisort] compares the values of one key.
type SortFlag int

const (
	// SortRegular compares numbers and numeric strings numerically and
	// other strings byte-wise.
	SortRegular SortFlag = 0
	// SortNumeric compares values as numbers; non-numeric values count as 0.
	SortNumeric SortFlag = 1
	// SortString compares the string forms byte-wise.
	SortString SortFlag = 2
	// SortLocaleString compares the string forms with the collation set by
	// [WithCollation].
	SortLocaleString SortFlag = 5
	// SortNatural compares the string forms in natural order ("img2" before
	// "img10").
	SortNatural SortFlag = 6
	// SortFlagCase makes SortString and SortNatural case-insensitive when
	// OR-ed with them.
	SortFlagCase SortFlag = 8
)

// Direction is the order of one [Multisort] key.
type Direction int

const (
	// Asc sorts smallest first.
	Asc Direction = 4
	// Desc sorts largest first.
	Desc Direction = 3
)

type comparator func(a, b any) int

func newComparator(flag SortFlag, collator *collate.Collator) comparator {
	fold := flag&SortFlagCase != 0
	foldString := func(v any) string {
		s := scalarString(v)
		if fold {
			return cases.Fold().String(s)
		}
		return s
	}
	switch flag &^ SortFlagCase {
	case SortNumeric:
		return func(a, b any) int { return cmp.Compare(number(a), number(b)) }
	case SortString:
		return func(a, b any) int { return strings.Compare(foldString(a), foldString(b)) }
	case SortLocaleString:
		return func(a, b any) int { return collator.CompareString(scalarString(a), scalarString(b)) }
	case SortNatural:
		return func(a, b any) int { return compareNatural(foldString(a), foldString(b)) }
	}
	return compareRegular
}

// number is the numeric value of v for SortNumeric.
func number(v any) float64 {
	if b, ok := v.(bool); ok && b {
		return 1
	}
	n, _ := numeric(v)
	return n
}

// compareRegular orders mixed scalar values:
//   - nil against a string compares as "", otherwise nil and bools compare by
//     truthiness;
//   - numbers and numeric strings compare numerically;
//   - two strings, or a number and a non-numeric string, compare as strings;
//   - containers compare by size first, then entry by entry.
func compareRegular(a, b any) int {
	_, aStr := a.(string)
	_, bStr := b.(string)
	switch {
	case a == nil && bStr, b == nil && aStr:
		return strings.Compare(scalarString(a), scalarString(b))
	case a == nil || b == nil || isBool(a) || isBool(b):
		return compareBool(truthy(a), truthy(b))
	}
	na, aNum := numeric(a)
	nb, bNum := numeric(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(na, nb)
	case (aStr || aNum) && (bStr || bNum):
		return strings.Compare(scalarString(a), scalarString(b))
	case isContainer(a) && isContainer(b):
		return compareContainers(a, b)
	}
	return 0
}

func compareContainers(a, b any) int {
	ea, _ := entriesOf(a)
	bArr := asArray(b)
	if c := cmp.Compare(len(ea), bArr.Len()); c != 0 {
		return c
	}
	for _, e := range ea {
		v, ok := bArr.Lookup(e.key)
		if !ok {
			return 1
		}
		if c := compareRegular(e.value, v); c != 0 {
			return c
		}
	}
	return 0
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// compareNatural compares digit runs by numeric value and everything else
// byte-wise. Leading zeros in a digit run are ignored.
func compareNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			da := strings.TrimLeft(a[si:i], "0")
			db := strings.TrimLeft(b[sj:j], "0")
			if c := cmp.Compare(len(da), len(db)); c != 0 {
				return c
			}
			if c := strings.Compare(da, db); c != 0 {
				return c
			}
			continue
		}
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
