package libdiff

import (
	"fmt"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

// Symbol is the one character prefix used when printing changes.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is one difference. Path is dotted from the root with array
// elements indexed, as in "detector.radius[2]". From is nil for an
// insertion and To is nil for a deletion.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

// DiffFunc compares two entries found at path.
type DiffFunc func(from, to *ir.Node, path string) []Change

func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: path, To: to}
	case to == nil:
		return Change{Op: Delete, Path: path, From: from}
	default:
		return Change{Op: Replace, Path: path, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s = %s", c.Op.Symbol(), c.Path, encode.ValueString(c.To))
	case Delete:
		return fmt.Sprintf("%s %s = %s", c.Op.Symbol(), c.Path, encode.ValueString(c.From))
	default:
		return fmt.Sprintf("%s %s = %s -> %s", c.Op.Symbol(), c.Path,
			encode.ValueString(c.From), encode.ValueString(c.To))
	}
}
