package gomap

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/quillml/go-quillml/ir"
)

// Quantity is a number with an optional dimension, "20 um".
type Quantity struct {
	Value     float64 `json:"value"`
	Dimension string  `json:"dimension,omitempty"`
}

// UnmarshalJSON accepts a bare number as well as a value/dimension object.
func (q *Quantity) UnmarshalJSON(d []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(d), []byte("{")) {
		q.Dimension = ""
		return json.Unmarshal(d, &q.Value)
	}
	type plain Quantity
	return json.Unmarshal(d, (*plain)(q))
}

func (q Quantity) String() string {
	s := ir.FormatFloat(q.Value)
	if q.Dimension == "" {
		return s
	}
	return s + " " + q.Dimension
}

// Quantities is an array with one dimension for all elements.
type Quantities struct {
	Values    []float64 `json:"value"`
	Dimension string    `json:"dimension,omitempty"`
}

func (q *Quantities) UnmarshalJSON(d []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(d), []byte("{")) {
		q.Dimension = ""
		return json.Unmarshal(d, &q.Values)
	}
	type plain Quantities
	return json.Unmarshal(d, (*plain)(q))
}

func (q Quantities) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range q.Values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	buf.WriteByte(']')
	if q.Dimension != "" {
		buf.WriteString(" " + q.Dimension)
	}
	return buf.String()
}
