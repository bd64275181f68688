package quillml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
)

// File is a parsed document and the path it was read from.
type File struct {
	Path string
	Root *ir.Node
}

// ReadFile reads and parses the document at path. Errors are located with
// the path.
func ReadFile(path string, opts ...parse.ParseOption) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, d, opts...)
}

// Read parses a document from r, naming it name in errors.
func Read(name string, r io.Reader, opts ...parse.ParseOption) (*File, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, d, opts...)
}

func Parse(name string, d []byte, opts ...parse.ParseOption) (*File, error) {
	opts = append([]parse.ParseOption{parse.WithFilename(name)}, opts...)
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &File{Path: name, Root: root}, nil
}

func (f *File) Has(key string) bool {
	return f.Root.Has(key)
}

// Get returns the top level entry named key. It panics if there is none.
func (f *File) Get(key string) *ir.Node {
	return f.Root.Get(key)
}

// String is a header line naming the file followed by the canonical
// rendering of its entries.
func (f *File) String() string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "QuillML file [%s]", f.Path)
	body := &bytes.Buffer{}
	if err := encode.Encode(f.Root, body); err != nil {
		fmt.Fprintf(buf, "\n<%v>", err)
		return buf.String()
	}
	if s := strings.TrimSuffix(body.String(), "\n"); s != "" {
		buf.WriteString("\n" + s)
	}
	return buf.String()
}

// ToJSON returns the dict projection as JSON indented by two spaces.
func (f *File) ToJSON() (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.EncodeJSON(f.Root, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
