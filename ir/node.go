package ir

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String    string
	Int64     *int64
	Float64   *float64
	Dimension *string

	// Elem is the element kind of an ArrayType node.
	Elem Kind

	index map[string]int
}

// WithDimension sets the dimension of a numeric scalar or array and returns y.
func (y *Node) WithDimension(d string) *Node {
	y.Dimension = &d
	return y
}

// Dim returns the dimension, or "" if there is none.
func (y *Node) Dim() string {
	if y.Dimension == nil {
		return ""
	}
	return *y.Dimension
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Elem = y.Elem
	dst.String = y.String
	dst.index = nil
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	} else {
		dst.Fields = nil
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	} else {
		dst.Values = nil
	}
	dst.Int64, dst.Float64, dst.Dimension = nil, nil, nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Dimension != nil {
		d := *y.Dimension
		dst.Dimension = &d
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromInts(vs []int64) *Node {
	res := &Node{Type: ArrayType, Elem: IntKind, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = FromInt(v)
	}
	return res
}

func FromFloats(vs []float64) *Node {
	res := &Node{Type: ArrayType, Elem: FloatKind, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = FromFloat(v)
	}
	return res
}

func FromStrings(vs []string) *Node {
	res := &Node{Type: ArrayType, Elem: StringKind, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = FromString(v)
	}
	return res
}

// Kind returns the representation of a scalar, or the element kind of an
// array. Groups have no kind.
func (y *Node) Kind() Kind {
	switch y.Type {
	case StringType:
		return StringKind
	case NumberType:
		if y.Int64 != nil {
			return IntKind
		}
		return FloatKind
	case ArrayType:
		return y.Elem
	case GroupType:
		return NoKind
	}
	return NoKind
}

func (y *Node) IsInt() bool {
	return y.Type == NumberType && y.Int64 != nil
}

func (y *Node) IsFloat() bool {
	return y.Type == NumberType && y.Int64 == nil && y.Float64 != nil
}

// Number returns the value of a NumberType node as a float64.
func (y *Node) Number() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

// Len returns the number of children of a group or elements of an array.
func (y *Node) Len() int {
	switch y.Type {
	case ArrayType, GroupType:
		return len(y.Values)
	default:
		return 0
	}
}
