package parse

import "github.com/quillml/go-quillml/ir"

// DefaultMaxDepth bounds group nesting unless MaxDepth says otherwise.
const DefaultMaxDepth = 512

type parseOpts struct {
	filename  string
	maxDepth  int
	positions map[*ir.Node]int
}

type ParseOption func(*parseOpts)

// WithFilename names the document in error positions.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// MaxDepth bounds the nesting of groups. n <= 0 restores the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// ParsePositions records the line on which each entry is defined.
func ParsePositions(m map[*ir.Node]int) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]int {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
