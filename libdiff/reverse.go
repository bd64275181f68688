package libdiff

import "slices"

// Reverse returns the changes that undo changes: insertions become
// deletions and the other way around, replacements swap their values, and
// the order is reversed.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := c
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		r.From, r.To = c.To, c.From
		res[i] = r
	}
	slices.Reverse(res)
	return res
}
