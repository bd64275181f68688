package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare orders nodes, returning -1, 0 or +1. Types order numbers,
// strings, arrays, groups; ints sort before floats, and a missing dimension
// before any present one. NaN equals NaN.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Type != b.Type:
		return cmp.Compare(typeRank[a.Type], typeRank[b.Type])
	}
	switch a.Type {
	case NumberType:
		return cmp.Or(compareNumbers(a, b), compareDims(a.Dimension, b.Dimension))
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return cmp.Or(
			cmp.Compare(a.Elem, b.Elem),
			slices.CompareFunc(a.Values, b.Values, Compare),
			compareDims(a.Dimension, b.Dimension))
	case GroupType:
		return compareGroups(a, b)
	}
	return 0
}

var typeRank = map[Type]int{
	NumberType: 1,
	StringType: 2,
	ArrayType:  3,
	GroupType:  4,
}

func compareNumbers(a, b *Node) int {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Float64 != nil && b.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	case a.Int64 != nil:
		return -1
	case b.Int64 != nil:
		return 1
	}
	return cmp.Compare(present(a.Float64 == nil), present(b.Float64 == nil))
}

func compareDims(a, b *string) int {
	if a == nil || b == nil {
		return cmp.Compare(present(a != nil), present(b != nil))
	}
	return strings.Compare(*a, *b)
}

// compareGroups compares children pairwise in order, name before value.
func compareGroups(a, b *Node) int {
	for i := range min(len(a.Fields), len(b.Fields)) {
		if c := cmp.Or(strings.Compare(a.Fields[i], b.Fields[i]), Compare(a.Values[i], b.Values[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

func present(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
