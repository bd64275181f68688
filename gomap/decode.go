// Package gomap decodes QuillML entry trees into Go values.
//
// Groups decode into structs or maps through encoding/json field rules, so
// `json:"name"` tags select entries. A leaf carrying a dimension decodes
// into a Quantity; decoding it into a plain number is an error unless
// IgnoreDimensions is given.
package gomap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quillml/go-quillml/format"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
)

var ErrDecode = errors.New("decode error")

type fromOpts struct {
	format     format.Format
	ignoreDims bool
}

type FromOption func(*fromOpts)

// LoadFormat reads the input of Load as QuillML text or as the JSON dict
// projection.
func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

// IgnoreDimensions drops dimensions so dimensioned leaves decode into plain
// numbers.
func IgnoreDimensions() FromOption { return func(o *fromOpts) { o.ignoreDims = true } }

// IRFromer is implemented by types that decode themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Node, ...FromOption) error
}

func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	var (
		node *ir.Node
		err  error
	)
	switch do.format {
	case format.QuillFormat:
		node, err = parse.Parse(d)
	case format.JSONFormat:
		node, err = parse.FromJSON(d)
	default:
		return fmt.Errorf("%w: cannot load %s", ErrDecode, do.format)
	}
	if err != nil {
		return err
	}
	return FromIR(node, p, opts...)
}

func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node, opts...)
	}
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	d, err := json.Marshal(toPlain(node, do))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// toPlain maps groups to maps and leaves to their values, wrapping
// dimensioned leaves as {"value": v, "dimension": d}.
func toPlain(node *ir.Node, do *fromOpts) any {
	if node.Type == ir.GroupType {
		res := make(map[string]any, len(node.Fields))
		for i, k := range node.Fields {
			res[k] = toPlain(node.Values[i], do)
		}
		return res
	}
	v := leafValue(node)
	if node.Dimension == nil || do.ignoreDims {
		return v
	}
	return map[string]any{"value": v, "dimension": *node.Dimension}
}

func leafValue(n *ir.Node) any {
	switch n.Type {
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		return n.Number()
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, e := range n.Values {
			res[i] = leafValue(e)
		}
		return res
	}
	return nil
}
