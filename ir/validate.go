package ir

import "fmt"

// Validate checks the invariants the parser guarantees on trees built by
// hand: strings and string arrays carry no dimension, arrays are
// homogeneous, group keys are unique and scalars are well formed.
func Validate(y *Node) error {
	return validate(y, "$")
}

func validate(y *Node, at string) error {
	if y == nil {
		return fmt.Errorf("%w: nil entry at %s", ErrInvalid, at)
	}
	switch y.Type {
	case StringType:
		if y.Dimension != nil {
			return fmt.Errorf("%w: string at %s has dimension %q", ErrInvalid, at, *y.Dimension)
		}
	case NumberType:
		if (y.Int64 == nil) == (y.Float64 == nil) {
			return fmt.Errorf("%w: number at %s must be exactly one of int or float", ErrInvalid, at)
		}
	case ArrayType:
		if y.Elem == StringKind && y.Dimension != nil {
			return fmt.Errorf("%w: string array at %s has dimension %q", ErrInvalid, at, *y.Dimension)
		}
		for i, v := range y.Values {
			if v == nil || v.Kind() != y.Elem || !v.Type.IsLeaf() || v.Dimension != nil {
				return fmt.Errorf("%w: element %d of %s array at %s", ErrInvalid, i, y.Elem, at)
			}
		}
	case GroupType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("%w: group at %s has %d keys for %d values", ErrInvalid, at, len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for i, k := range y.Fields {
			if seen[k] {
				return fmt.Errorf("%w: %q at %s", ErrDuplicateKey, k, at)
			}
			seen[k] = true
			if err := validate(y.Values[i], at+"."+k); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown type %d at %s", ErrInvalid, y.Type, at)
	}
	return nil
}
