package parse

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/quillml/go-quillml/ir"
)

// ParseValue converts the right-hand side of an assignment into a scalar or
// array entry. Integers are tried before floats, and anything else is a
// string. Errors wrap ErrValue.
func ParseValue(fragment string) (*ir.Node, error) {
	s := strings.TrimSpace(fragment)
	if strings.HasPrefix(s, "[") {
		return parseArray(s)
	}
	return parseScalar(s)
}

func parseScalar(s string) (*ir.Node, error) {
	text := s
	var dim *string
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		d := s[i+1:]
		dim = &d
		text = strings.TrimSpace(s[:i])
	}
	n, err := scalar(text)
	if err != nil {
		return nil, err
	}
	if n.Type == ir.StringType {
		if dim != nil {
			return nil, fmt.Errorf("%w: string [%s] has str value [%s] but also has dimension [%s]",
				ErrValue, s, text, *dim)
		}
		return n, nil
	}
	n.Dimension = dim
	return n, nil
}

func scalar(text string) (*ir.Node, error) {
	i, ok, err := parseInt(text)
	if err != nil {
		return nil, err
	}
	if ok {
		return ir.FromInt(i), nil
	}
	if f, ok := parseFloat(text); ok {
		return ir.FromFloat(f), nil
	}
	return ir.FromString(text), nil
}

// parseInt reports ok for base-10 integer literals with an optional sign.
// A well formed literal that does not fit in 64 bits is an error rather
// than a float.
func parseInt(s string) (int64, bool, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i, true, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, fmt.Errorf("%w: integer [%s] out of range", ErrValue, s)
	}
	return 0, false, nil
}

// parseFloat accepts decimal floats, exponents, inf and nan, each with an
// optional sign. Hexadecimal floats are not QuillML numbers. Overflow yields
// an infinity.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	if len(s) == 4 && (s[0] == '+' || s[0] == '-') && strings.EqualFold(s[1:], "nan") {
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func parseArray(s string) (*ir.Node, error) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, fmt.Errorf("%w: array [%s] has no closing bracket", ErrValue, s)
	}
	var dim *string
	if d := strings.TrimSpace(s[end+1:]); d != "" {
		if strings.IndexFunc(d, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: array [%s] has dimension [%s] containing whitespace", ErrValue, s, d)
		}
		dim = &d
	}
	var elems []string
	if inner := s[1:end]; strings.TrimSpace(inner) != "" {
		elems = strings.Split(inner, ",")
		for i := range elems {
			elems[i] = strings.TrimSpace(elems[i])
		}
	}

	var res *ir.Node
	if ints, ok, err := allInts(elems); err != nil {
		return nil, err
	} else if ok {
		res = ir.FromInts(ints)
	} else if floats, ok := allFloats(elems); ok {
		res = ir.FromFloats(floats)
	} else {
		if dim != nil {
			return nil, fmt.Errorf("%w: string array [%s] cannot have dimension [%s]", ErrValue, s, *dim)
		}
		return ir.FromStrings(elems), nil
	}
	res.Dimension = dim
	return res, nil
}

func allInts(elems []string) ([]int64, bool, error) {
	res := make([]int64, len(elems))
	var rangeErr error
	for i, e := range elems {
		v, ok, err := parseInt(e)
		if err != nil {
			rangeErr = cmp.Or(rangeErr, err)
			continue
		}
		if !ok {
			return nil, false, nil
		}
		res[i] = v
	}
	if rangeErr != nil {
		return nil, false, rangeErr
	}
	return res, true, nil
}

func allFloats(elems []string) ([]float64, bool) {
	res := make([]float64, len(elems))
	for i, e := range elems {
		v, ok := parseFloat(e)
		if !ok {
			return nil, false
		}
		res[i] = v
	}
	return res, true
}
