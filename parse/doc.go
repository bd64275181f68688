// Package parse parses QuillML text into entry trees.
//
// # Usage
//
//	// Parse a document; the root is always a group
//	root, err := parse.Parse(data, parse.WithFilename("run.quillml"))
//	if err != nil {
//	    return err
//	}
//	x := root.Get("group_name").Get("x")
//
//	// Parse the right-hand side of an assignment
//	v, err := parse.ParseValue("0.7 cm")
//
// A document is a sequence of assignments and groups:
//
//	x = 10; y = 2.5e3 um   # several assignments on one line
//	beam {
//	  energy = 6.5 TeV
//	  species = proton
//	  offsets = [0.1, -0.2, 0.3] mm
//	}
//
// Values are integers, floats or strings; numbers and numeric arrays may
// carry a trailing dimension. A value is split at its last space: the text
// after it is the dimension. A string followed by a dimension is rejected,
// which means multi-word strings are not supported.
//
// # Errors
//
// Malformed values fail with an error wrapping [ErrValue]. Documents fail
// with a [*SyntaxErr] that matches [ErrSyntax], carries the line number and
// names the variable or group at fault. Parsing stops at the first error.
//
// # Related Packages
//
//   - github.com/quillml/go-quillml/ir - Entry tree representation
//   - github.com/quillml/go-quillml/encode - Render trees as text, JSON or YAML
//   - github.com/quillml/go-quillml/token - Line splitting
package parse
