package encode

import (
	"bytes"
	"fmt"
	"math"

	"github.com/quillml/go-quillml/ir"

	"github.com/goccy/go-yaml"
)

// Dict is an ordered mapping, the dict projection of a group or leaf.
// Values are int64, Float, string, []any of those, or *Dict.
type Dict struct {
	Keys   []string
	Values []any
}

// Float marshals as shortest round-trip text that always reads back as a
// float ("100.0", "1e-24").
type Float float64

func (d *Dict) Set(key string, v any) {
	for i, k := range d.Keys {
		if k == key {
			d.Values[i] = v
			return
		}
	}
	d.Keys = append(d.Keys, key)
	d.Values = append(d.Values, v)
}

func (d *Dict) Get(key string) (any, bool) {
	for i, k := range d.Keys {
		if k == key {
			return d.Values[i], true
		}
	}
	return nil, false
}

// ToDict projects node: each leaf becomes {"value": v} plus "dimension"
// when it has one, and each group becomes a mapping of its children.
func ToDict(node *ir.Node) *Dict {
	if node.Type != ir.GroupType {
		d := &Dict{}
		d.Set("value", leafValue(node))
		if node.Dimension != nil {
			d.Set("dimension", *node.Dimension)
		}
		return d
	}
	d := &Dict{
		Keys:   make([]string, 0, len(node.Fields)),
		Values: make([]any, 0, len(node.Values)),
	}
	for i, k := range node.Fields {
		d.Keys = append(d.Keys, k)
		d.Values = append(d.Values, ToDict(node.Values[i]))
	}
	return d
}

func leafValue(n *ir.Node) any {
	switch n.Type {
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		return Float(n.Number())
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, e := range n.Values {
			res[i] = leafValue(e)
		}
		return res
	}
	return nil
}

// MarshalJSON renders strict compact JSON; non-finite floats are an error.
func (d *Dict) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	jw := &jsonWriter{buf: buf, strict: true}
	if err := jw.value(d, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Dict) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, len(d.Keys))
	for i, k := range d.Keys {
		res[i] = yaml.MapItem{Key: k, Value: d.Values[i]}
	}
	return res, nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return nil, fmt.Errorf("%w: %s is not representable in JSON", ErrEncoding, ir.FormatFloat(float64(f)))
	}
	return []byte(ir.FormatFloat(float64(f))), nil
}

func (f Float) MarshalYAML() (any, error) {
	return float64(f), nil
}
