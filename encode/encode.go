package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/format"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
	"github.com/quillml/go-quillml/token"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. Text output fails with ErrEncoding when the tree
// holds a name or value that would not read back as itself.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %s %s (%d entries)\n", es.format, node.Type, node.Len())
	}
	switch es.format {
	case format.JSONFormat:
		if err := EncodeJSON(node, w); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return EncodeYAML(node, w)
	}
	if node.Type != ir.GroupType {
		s, err := leafString(node, es)
		if err != nil {
			return err
		}
		return writeString(w, s+"\n")
	}
	return encodeGroup(node, w, es)
}

func encodeGroup(y *ir.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.indent*es.depth)
	for i, k := range y.Fields {
		if !token.IsName(k) {
			return fmt.Errorf("%w: [%s] is not a variable name", ErrEncoding, k)
		}
		v := y.Values[i]
		name := es.color(v.Type, FieldColor, k)
		if v.Type != ir.GroupType {
			s, err := leafString(v, es)
			if err != nil {
				return fmt.Errorf("variable [%s]: %w", k, err)
			}
			if err := writeString(w, pad+name+" "+es.color(v.Type, SepColor, "=")+" "+s+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, pad+name+" "+es.color(ir.GroupType, SepColor, "{")+"\n"); err != nil {
			return err
		}
		es.depth++
		err := encodeGroup(v, w, es)
		es.depth--
		if err != nil {
			return fmt.Errorf("group [%s]: %w", k, err)
		}
		if err := writeString(w, pad+es.color(ir.GroupType, SepColor, "}")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func leafString(v *ir.Node, es *EncState) (string, error) {
	if err := checkLeaf(v); err != nil {
		return "", err
	}
	return valueString(v, es), nil
}

// checkLeaf reports whether the text of v parses back to v.
func checkLeaf(v *ir.Node) error {
	if v.Kind() == ir.StringKind && v.Dimension != nil {
		return fmt.Errorf("%w: string value cannot have dimension [%s]", ErrEncoding, *v.Dimension)
	}
	s := ValueString(v)
	if strings.ContainsAny(s, "#;\r\n") {
		return fmt.Errorf("%w: %s value [%s] contains '#', ';' or a line break", ErrEncoding, v.Type, s)
	}
	back, err := parse.ParseValue(s)
	if err != nil {
		return fmt.Errorf("%w: %s value [%s] does not read back: %w", ErrEncoding, v.Type, s, err)
	}
	// "[]" has no element kind of its own
	if v.Type == ir.ArrayType && len(v.Values) == 0 && (v.Elem != ir.StringKind || v.Dimension == nil) {
		back.Elem = v.Elem
	}
	if !ir.Equal(back, v) {
		return fmt.Errorf("%w: %s value [%s] reads back as a different %s", ErrEncoding, v.Kind(), s, back.Kind())
	}
	return nil
}

// ValueString renders the right-hand side of an assignment: "5", "0.7 cm",
// "[1, 2, 3] um", "electron". A group renders on one line as
// "{ x = 1; sub { y = 2; } }", which is itself valid group syntax.
func ValueString(v *ir.Node) string {
	return valueString(v, &EncState{})
}

func valueString(v *ir.Node, es *EncState) string {
	switch v.Type {
	case ir.StringType:
		return es.color(ir.StringType, ValueColor, v.String)
	case ir.NumberType:
		return withDim(es.color(ir.NumberType, ValueColor, numberString(v)), v, es)
	case ir.ArrayType:
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			parts[i] = valueString(e, es)
		}
		s := es.color(ir.ArrayType, SepColor, "[") +
			strings.Join(parts, es.color(ir.ArrayType, SepColor, ", ")) +
			es.color(ir.ArrayType, SepColor, "]")
		return withDim(s, v, es)
	case ir.GroupType:
		parts := []string{es.color(ir.GroupType, SepColor, "{")}
		for i, k := range v.Fields {
			c := v.Values[i]
			name := es.color(c.Type, FieldColor, k)
			if c.Type == ir.GroupType {
				parts = append(parts, name+" "+valueString(c, es))
				continue
			}
			parts = append(parts, name+" "+es.color(c.Type, SepColor, "=")+" "+valueString(c, es)+es.color(c.Type, SepColor, ";"))
		}
		parts = append(parts, es.color(ir.GroupType, SepColor, "}"))
		return strings.Join(parts, " ")
	}
	return ""
}

func numberString(v *ir.Node) string {
	switch {
	case v.Int64 != nil:
		return ir.FormatInt(*v.Int64)
	case v.Float64 != nil:
		return ir.FormatFloat(*v.Float64)
	}
	return "0"
}

func withDim(s string, v *ir.Node, es *EncState) string {
	if v.Dimension == nil {
		return s
	}
	return s + " " + es.color(v.Type, DimColor, *v.Dimension)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
