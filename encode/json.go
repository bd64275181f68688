package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf16"

	"github.com/quillml/go-quillml/ir"

	"github.com/goccy/go-yaml"
)

// EncodeJSON writes the dict projection of node as JSON indented by two
// spaces, keeping entry order. Non-finite floats are written as Infinity,
// -Infinity and NaN, and non-ASCII text is escaped. No newline follows the
// closing brace.
func EncodeJSON(node *ir.Node, w io.Writer) error {
	buf := &bytes.Buffer{}
	jw := &jsonWriter{buf: buf, indent: "  "}
	if err := jw.value(ToDict(node), 0); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeYAML writes the dict projection of node as a YAML document.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.MarshalWithOptions(ToDict(node), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

type jsonWriter struct {
	buf    *bytes.Buffer
	indent string
	strict bool
}

func (jw *jsonWriter) nl(depth int) {
	if jw.indent == "" {
		return
	}
	jw.buf.WriteByte('\n')
	jw.buf.WriteString(strings.Repeat(jw.indent, depth))
}

func (jw *jsonWriter) value(v any, depth int) error {
	switch x := v.(type) {
	case *Dict:
		if len(x.Keys) == 0 {
			jw.buf.WriteString("{}")
			return nil
		}
		jw.buf.WriteByte('{')
		for i, k := range x.Keys {
			if i > 0 {
				jw.buf.WriteByte(',')
			}
			jw.nl(depth + 1)
			jw.buf.WriteString(quoteJSON(k))
			if jw.indent == "" {
				jw.buf.WriteByte(':')
			} else {
				jw.buf.WriteString(": ")
			}
			if err := jw.value(x.Values[i], depth+1); err != nil {
				return err
			}
		}
		jw.nl(depth)
		jw.buf.WriteByte('}')
	case []any:
		if len(x) == 0 {
			jw.buf.WriteString("[]")
			return nil
		}
		jw.buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				jw.buf.WriteByte(',')
			}
			jw.nl(depth + 1)
			if err := jw.value(e, depth+1); err != nil {
				return err
			}
		}
		jw.nl(depth)
		jw.buf.WriteByte(']')
	case string:
		jw.buf.WriteString(quoteJSON(x))
	case int64:
		jw.buf.WriteString(ir.FormatInt(x))
	case Float:
		if jw.strict {
			d, err := x.MarshalJSON()
			if err != nil {
				return err
			}
			jw.buf.Write(d)
			return nil
		}
		jw.buf.WriteString(floatJSON(float64(x)))
	default:
		return fmt.Errorf("%w: unexpected %T in dict", ErrEncoding, v)
	}
	return nil
}

func floatJSON(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return ir.FormatFloat(f)
}

const hexDigits = "0123456789abcdef"

// quoteJSON quotes s escaping control characters and everything outside
// ASCII, the latter as UTF-16 \u escapes.
func quoteJSON(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r >= 0x7f && r < 0x10000):
				writeU(&sb, r)
			case r >= 0x10000:
				r1, r2 := utf16.EncodeRune(r)
				writeU(&sb, r1)
				writeU(&sb, r2)
			default:
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeU(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(r>>shift)&0xf])
	}
}
