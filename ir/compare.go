package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Dictionaries compare by entries in order, so two dictionaries with the
// same entries in different orders are unequal.
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

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case DataType:
		return bytes.Compare(a.Data, b.Data)
	case DateType:
		return a.Date.Compare(b.Date)
	case IntegerType:
		return cmp.Compare(a.Int, b.Int)
	case RealType:
		return cmp.Compare(a.Real, b.Real)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Integer < Real < Date < Data < String < Array < Dict
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case IntegerType:
		return 1
	case RealType:
		return 2
	case DateType:
		return 3
	case DataType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case DictType:
		return 7
	}
	return 100
}

func compareArrays(a, b *Node) int {
	for i := range a.Values {
		if i >= len(b.Values) {
			return 1
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if len(a.Values) < len(b.Values) {
		return -1
	}
	return 0
}

func compareDicts(a, b *Node) int {
	for i := range a.Keys {
		if i >= len(b.Keys) {
			return 1
		}
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if len(a.Keys) < len(b.Keys) {
		return -1
	}
	return 0
}
