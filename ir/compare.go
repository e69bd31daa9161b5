package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Objects compare key by key in document order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	subA, subB := numberSubRank(a), numberSubRank(b)
	if subA != subB {
		return cmp.Compare(subA, subB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

// Int64 < Float64 < Number
func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareArrays(a, b *Node) int {
	minLen := min(len(a.Values), len(b.Values))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	minLen := min(len(a.Fields), len(b.Fields))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

// EqualOrdered reports whether a and b are equal including the order of
// object keys.
func EqualOrdered(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Equal reports whether a and b hold the same data, ignoring the order
// of object keys. Array order is significant.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		bm := ToMap(b)
		for i, f := range a.Fields {
			bv, ok := bm[f.String]
			if !ok || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	default:
		return Compare(a, b) == 0
	}
}
