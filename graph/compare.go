package graph

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two graph values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values order by kind first: nil < bool < number < string < list <
// object. Numbers compare by numeric value regardless of representation,
// so int64(1) and float64(1) are equal. Objects compare by sorted key
// order, making the result independent of insertion order.
func Compare(a, b any) int {
	a, b = denil(WrapValue(a)), denil(WrapValue(b))

	rankA := rank(a)
	rankB := rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch av := a.(type) {
	case nil:
		return 0
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case string:
		return strings.Compare(av, b.(string))
	case *List:
		return compareLists(av, b.(*List))
	case *Object:
		return compareObjects(av, b.(*Object))
	default:
		return compareNumbers(a, b)
	}
}

// Equal reports deep structural equality of two graph values. It is
// distinct from SameID, which compares identifier fields only.
func Equal(a, b any) bool {
	return Compare(a, b) == 0
}

// denil maps a typed-nil *Object or *List to plain nil. Accessors hand
// out nil views for missing keys, and storing one back is ordinary
// client code; such a value compares as nil, not as an empty container.
func denil(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
	case *List:
		if t == nil {
			return nil
		}
	}
	return v
}

// rank returns the sorting rank of a value's kind.
// Order: nil < bool < number < string < list < object.
func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case string:
		return 3
	case *List:
		return 4
	case *Object:
		return 5
	default:
		return 2
	}
}

func compareNumbers(a, b any) int {
	ai, af, aIsInt := toNumber(a)
	bi, bf, bIsInt := toNumber(b)
	if aIsInt && bIsInt {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(af, bf)
}

func compareLists(a, b *List) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := Compare(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func compareObjects(a, b *Object) int {
	aKeys := slices.Sorted(maps.Keys(a.m))
	bKeys := slices.Sorted(maps.Keys(b.m))
	minLen := min(len(aKeys), len(bKeys))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(aKeys[i]), b.Get(bKeys[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}
