// Package format names the document formats QuillML trees can be written in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	suffix := f.Suffix() // ".json"
//
//	g, ok := format.FromPath("beam.yml") // YAMLFormat, true
//
// # Related Packages
//
//   - github.com/quillml/go-quillml/parse - Parse text to an entry tree
//   - github.com/quillml/go-quillml/encode - Encode an entry tree to text
package format
