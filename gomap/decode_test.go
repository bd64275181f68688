package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quillml/go-quillml/format"
	"github.com/quillml/go-quillml/ir"
)

type tracker struct {
	Layers int        `json:"layers"`
	Radius Quantities `json:"radius"`
	Name   string     `json:"name"`
	Tags   []string   `json:"tags"`
}

type detector struct {
	Energy  Quantity `json:"energy"`
	Scale   float64  `json:"scale"`
	Tracker tracker  `json:"tracker"`
	Extra   map[string]any
}

const detectorDoc = `energy = 6.5 TeV
scale = 2
tracker {
  layers = 6
  radius = [30, 60, 90] mm
  name = pixel
  tags = [inner, fast]
}
`

func TestLoad(t *testing.T) {
	var got detector
	if err := Load([]byte(detectorDoc), &got); err != nil {
		t.Fatal(err)
	}
	want := detector{
		Energy: Quantity{Value: 6.5, Dimension: "TeV"},
		Scale:  2,
		Tracker: tracker{
			Layers: 6,
			Radius: Quantities{Values: []float64{30, 60, 90}, Dimension: "mm"},
			Name:   "pixel",
			Tags:   []string{"inner", "fast"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if s := got.Energy.String(); s != "6.5 TeV" {
		t.Errorf("got %q", s)
	}
	if s := got.Tracker.Radius.String(); s != "[30, 60, 90] mm" {
		t.Errorf("got %q", s)
	}
}

func TestLoadJSON(t *testing.T) {
	d := []byte(`{"x": {"value": 1.5, "dimension": "m"}, "y": {"value": 3}}`)
	var got struct {
		X Quantity `json:"x"`
		Y Quantity `json:"y"`
	}
	if err := Load(d, &got, LoadFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	if got.X != (Quantity{1.5, "m"}) || got.Y != (Quantity{Value: 3}) {
		t.Errorf("got %+v", got)
	}
}

func TestDimensionIntoNumber(t *testing.T) {
	var got struct {
		X float64 `json:"x"`
	}
	err := Load([]byte("x = 3 cm"), &got)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("got %v", err)
	}
	if err := Load([]byte("x = 3 cm"), &got, IgnoreDimensions()); err != nil {
		t.Fatal(err)
	}
	if got.X != 3 {
		t.Errorf("got %v", got.X)
	}
}

type selfLoader struct {
	keys []string
}

func (s *selfLoader) FromIR(node *ir.Node, _ ...FromOption) error {
	s.keys = node.Keys()
	return nil
}

func TestIRFromer(t *testing.T) {
	s := &selfLoader{}
	if err := Load([]byte("b = 1\na = 2"), s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, s.keys); diff != "" {
		t.Error(diff)
	}
}

func TestLoadParseError(t *testing.T) {
	var v map[string]any
	if err := Load([]byte("x = 1\nx = 2"), &v); err == nil {
		t.Error("expected a parse error")
	}
	if err := Load([]byte("x = 1"), &v, LoadFormat(format.YAMLFormat)); !errors.Is(err, ErrDecode) {
		t.Errorf("got %v", err)
	}
}
