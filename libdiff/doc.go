// Package libdiff computes structural differences between entry trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldRoot, newRoot)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
//	// undo
//	back := libdiff.Reverse(changes)
//
// Group keys and array elements are aligned with diff-match-patch, so an
// entry inserted at the front of a group is reported as one insertion
// rather than as a change to every following entry.
//
// # Related Packages
//
//   - github.com/quillml/go-quillml/ir - entry trees
package libdiff
