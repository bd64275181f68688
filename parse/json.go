package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quillml/go-quillml/ir"
)

// FromJSON rebuilds an entry tree from its dict projection. An object whose
// "value" member is not itself an object is a leaf; every other object is a
// group. Member order is kept. Numbers written with a fraction or exponent
// are floats.
func FromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDict, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDict)
	}
	obj, ok := v.(*jsonObject)
	if !ok {
		return nil, fmt.Errorf("%w: document is not an object", ErrDict)
	}
	return groupFromJSON(obj, "$")
}

type jsonObject struct {
	keys []string
	vals []any
}

func (o *jsonObject) get(key string) (any, bool) {
	for i, k := range o.keys {
		if k == key {
			return o.vals[i], true
		}
	}
	return nil, false
}

func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := &jsonObject{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", kt)
			}
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			obj.keys = append(obj.keys, key)
			obj.vals = append(obj.vals, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected %v", delim)
}

func isLeaf(obj *jsonObject) bool {
	v, ok := obj.get("value")
	if !ok {
		return false
	}
	_, isObj := v.(*jsonObject)
	return !isObj
}

func groupFromJSON(obj *jsonObject, at string) (*ir.Node, error) {
	g := ir.NewGroup()
	for i, k := range obj.keys {
		child, ok := obj.vals[i].(*jsonObject)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s must be an object", ErrDict, at, k)
		}
		var (
			entry *ir.Node
			err   error
		)
		if isLeaf(child) {
			entry, err = leafFromJSON(child, at+"."+k)
		} else {
			entry, err = groupFromJSON(child, at+"."+k)
		}
		if err != nil {
			return nil, err
		}
		if err := g.Add(k, entry); err != nil {
			return nil, fmt.Errorf("%w: at %s: %w", ErrDict, at, err)
		}
	}
	return g, nil
}

func leafFromJSON(obj *jsonObject, at string) (*ir.Node, error) {
	var dim *string
	for i, k := range obj.keys {
		switch k {
		case "value":
		case "dimension":
			d, ok := obj.vals[i].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.dimension must be a string", ErrDict, at)
			}
			dim = &d
		default:
			return nil, fmt.Errorf("%w: unexpected member %q in %s", ErrDict, k, at)
		}
	}
	v, _ := obj.get("value")
	var (
		res *ir.Node
		err error
	)
	switch x := v.(type) {
	case string:
		res = ir.FromString(x)
	case json.Number:
		res, err = numberFromJSON(x, at)
	case []any:
		res, err = arrayFromJSON(x, at)
	default:
		return nil, fmt.Errorf("%w: %s.value has unsupported type %T", ErrDict, at, v)
	}
	if err != nil {
		return nil, err
	}
	if dim != nil {
		if res.Kind() == ir.StringKind {
			return nil, fmt.Errorf("%w: string at %s cannot have dimension %q", ErrDict, at, *dim)
		}
		res.Dimension = dim
	}
	return res, nil
}

func isFloatText(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

func numberFromJSON(n json.Number, at string) (*ir.Node, error) {
	s := n.String()
	if !isFloatText(s) {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDict, at, err)
		}
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDict, at, err)
	}
	return ir.FromFloat(f), nil
}

func arrayFromJSON(vs []any, at string) (*ir.Node, error) {
	if len(vs) == 0 {
		return ir.FromInts(nil), nil
	}
	if _, ok := vs[0].(string); ok {
		strs := make([]string, len(vs))
		for i, v := range vs {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.value[%d] is not a string", ErrDict, at, i)
			}
			strs[i] = s
		}
		return ir.FromStrings(strs), nil
	}
	nums := make([]json.Number, len(vs))
	float := false
	for i, v := range vs {
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %s.value[%d] is not a number", ErrDict, at, i)
		}
		nums[i] = n
		float = float || isFloatText(n.String())
	}
	if float {
		fs := make([]float64, len(nums))
		for i, n := range nums {
			f, err := strconv.ParseFloat(n.String(), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.value[%d]: %w", ErrDict, at, i, err)
			}
			fs[i] = f
		}
		return ir.FromFloats(fs), nil
	}
	is := make([]int64, len(nums))
	for i, n := range nums {
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.value[%d]: %w", ErrDict, at, i, err)
		}
		is[i] = v
	}
	return ir.FromInts(is), nil
}
