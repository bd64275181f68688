// Package encode renders entry trees.
//
// The canonical text form writes one entry per line: leaves as
// "name = value" and groups as "name {" with their children indented,
// closed by "}" at the group's own indentation. The root group has no
// braces. Parsing the canonical form gives back an equal tree.
//
// # Usage
//
//	// canonical text
//	err := encode.Encode(root, os.Stdout)
//
//	// dict projection as JSON, 2-space indented
//	err := encode.EncodeJSON(root, os.Stdout)
//
//	// colored output for terminals
//	err := encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/quillml/go-quillml/ir - entry trees
//   - github.com/quillml/go-quillml/parse - text to entry trees
package encode
