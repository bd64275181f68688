package eval

import (
	"fmt"
	"maps"
	"slices"

	"github.com/quillml/go-quillml/ir"
)

type Env map[string]any

// NewEnv returns the variables for root: one per top level entry, then
// extra, which wins on conflicts.
func NewEnv(root *ir.Node, extra Env) Env {
	env := Env{}
	if root != nil && root.Type == ir.GroupType {
		for i, k := range root.Fields {
			env[k] = ToAny(root.Values[i])
		}
	}
	maps.Copy(env, extra)
	return env
}

func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.GroupType:
		res := make(map[string]any, len(node.Fields))
		for i, k := range node.Fields {
			res[k] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		return node.Number()
	case ir.StringType:
		return node.String
	}
	return nil
}

// FromAny converts an expression result back to an entry. Maps become
// groups with sorted keys; slices must be homogeneous.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case nil:
		return nil, fmt.Errorf("%w: nil result", ErrEval)
	case bool:
		if x {
			return ir.FromString("true"), nil
		}
		return ir.FromString("false"), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case map[string]any:
		g := ir.NewGroup()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			if err := g.Add(k, c); err != nil {
				return nil, err
			}
		}
		return g, nil
	case []any:
		return arrayFromAny(x)
	}
	return nil, fmt.Errorf("%w: cannot convert %T to an entry", ErrEval, v)
}

func arrayFromAny(vs []any) (*ir.Node, error) {
	elems := make([]*ir.Node, len(vs))
	for i, v := range vs {
		e, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		if !e.Type.IsLeaf() {
			return nil, fmt.Errorf("%w: element %d is a %s", ErrEval, i, e.Type)
		}
		if e.Dimension != nil {
			return nil, fmt.Errorf("%w: element %d has dimension [%s]", ErrEval, i, *e.Dimension)
		}
		elems[i] = e
	}
	res := &ir.Node{Type: ir.ArrayType, Elem: ir.IntKind, Values: elems}
	if len(elems) > 0 {
		res.Elem = elems[0].Kind()
	}
	mixed, numeric := false, true
	for _, e := range elems {
		mixed = mixed || e.Kind() != res.Elem
		numeric = numeric && e.Kind().IsNumeric()
	}
	switch {
	case !mixed:
		return res, nil
	case numeric:
		// ints mixed with floats widen to floats
		return widen(elems), nil
	}
	for i, e := range elems {
		if e.Kind() != res.Elem {
			return nil, fmt.Errorf("%w: element %d is %s in a %s array", ErrEval, i, e.Kind(), res.Elem)
		}
	}
	return res, nil
}

func widen(elems []*ir.Node) *ir.Node {
	fs := make([]float64, len(elems))
	for i, e := range elems {
		fs[i] = e.Number()
	}
	return ir.FromFloats(fs)
}
