package ir

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f as the shortest text that reads back as the same
// float and is never mistaken for an integer: 100 renders as "100.0",
// 1e27 as "1e+27" and 1e-5 as "1e-05". Decimal exponents below -4 or at
// least 16 use scientific notation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
