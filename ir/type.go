package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
	ArrayType
	GroupType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		ArrayType:  "Array",
		GroupType:  "Group",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Number": NumberType,
		"Array":  ArrayType,
		"Group":  GroupType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		ArrayType,
		GroupType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case StringType, NumberType:
		return true
	default:
		return false
	}
}

// Kind is the representation of a scalar, or of every element of an array.
type Kind int

const (
	NoKind Kind = iota
	IntKind
	FloatKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	default:
		return "none"
	}
}

// IsNumeric reports whether values of kind k may carry a dimension.
func (k Kind) IsNumeric() bool {
	return k == IntKind || k == FloatKind
}
