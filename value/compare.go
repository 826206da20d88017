package value

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of different types order by type rank.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case UintType:
		return cmp.Compare(a.Uint64, b.Uint64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case TimeType:
		return a.Time.Compare(b.Time)
	case ArrayType:
		if c := slices.Compare(a.Shape, b.Shape); c != 0 {
			return c
		}
		return compareElems(a.Elems, b.Elems)
	case SeqType:
		return compareElems(a.Elems, b.Elems)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// Equal reports deep equality of a and b.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func compareElems(a, b []*Value) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareMaps(a, b *Value) int {
	if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
		return c
	}
	for i := range a.Fields {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}
