// Package ir provides the in-memory entry tree for QuillML documents.
//
// # Overview
//
// A parsed QuillML document is a tree of *Node values. The root is always a
// group. Every node is one of four closed variants, selected by the Type
// field:
//
//   - StringType: an opaque string in String, never dimensioned
//   - NumberType: an integer in Int64 or a float in Float64 (exactly one is
//     set, decided by the literal syntax), with an optional Dimension
//   - ArrayType: homogeneous elements in Values, all of kind Elem, with an
//     optional Dimension shared by every element (numeric arrays only)
//   - GroupType: ordered children, Fields[i] naming Values[i]
//
// Consumers switch over Type exhaustively; there is no other variant.
//
// # Creating Nodes
//
//	n := ir.FromInt(10).WithDimension("um")
//	s := ir.FromString("electron")
//	a := ir.FromFloats([]float64{0.5, 1.5}).WithDimension("cm")
//	g := ir.NewGroup()
//	g.Set("x", n)
//
// # Groups
//
// Group keys are unique and case sensitive. Insertion order is preserved and
// is significant for rendering and equality. Use Has or Lookup before Get:
// Get panics when the key is absent.
//
// Nodes carry no parent pointers; a group exclusively owns its children.
//
// # Comparison
//
//	equal := ir.Equal(a, b)
//
// Equality is structural: integer 1 and float 1.0 are different, and two
// groups with the same children in a different order are different.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes for each goroutine or
// synchronize access yourself.
//
// # Related Packages
//
//   - github.com/quillml/go-quillml/parse - Parses text into entry trees
//   - github.com/quillml/go-quillml/encode - Renders entry trees as text, JSON or YAML
package ir
