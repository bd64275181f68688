package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quillml/go-quillml/ir"
)

func TestFromJSON(t *testing.T) {
	in := `{
  "z": {"value": 10},
  "y": {"value": 100.0},
  "long_variable": {"value": 1e-24, "dimension": "um"},
  "g": {
    "name": {"value": "electron"},
    "arr": {"value": [1, 2, 3], "dimension": "cm"},
    "inner": {}
  },
  "strs": {"value": ["a", "b"]},
  "floats": {"value": [1, 2.5]}
}`
	got, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseString(`z = 10
y = 100.0
long_variable = 1e-24 um
g {
  name = electron
  arr = [1, 2, 3] cm
  inner {
  }
}
strs = [a, b]
floats = [1.0, 2.5]
`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, want) {
		t.Errorf("trees differ: %v vs %v", got.Keys(), want.Keys())
	}
	if diff := cmp.Diff([]string{"z", "y", "long_variable", "g", "strs", "floats"}, got.Keys()); diff != "" {
		t.Error(diff)
	}
}

func TestFromJSONGroupNamedValue(t *testing.T) {
	got, err := FromJSON([]byte(`{"outer": {"value": {"value": 3}}}`))
	if err != nil {
		t.Fatal(err)
	}
	v, err := got.GetPath("outer.value")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(v, ir.FromInt(3)) {
		t.Errorf("got %s", v.Type)
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`[]`,
		`{"x": 1}`,
		`{"x": {"value": "s", "dimension": "cm"}}`,
		`{"x": {"value": 1, "unit": "cm"}}`,
		`{"x": {"value": [1, "a"]}}`,
		`{"x": {"value": ["a", 1]}}`,
		`{"x": {"value": true}}`,
		`{"x": {"value": 1}, "x": {"value": 2}}`,
		`{"x": {"value": 1}} {}`,
		`{"x": {"value": 99999999999999999999}}`,
	} {
		_, err := FromJSON([]byte(in))
		if !errors.Is(err, ErrDict) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}
