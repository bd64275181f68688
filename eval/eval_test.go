package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
)

const evalDoc = `energy = 6.5 TeV
layers = 6
tracker {
  radius = [30, 60, 90] mm
  name = pixel
}
`

func TestEval(t *testing.T) {
	root, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUILLML_EVAL_TEST", "yes")
	type evalTest struct {
		code string
		want any
	}
	tests := []evalTest{
		{code: `layers * 2`, want: 12},
		{code: `energy > 6`, want: true},
		{code: `tracker.name`, want: "pixel"},
		{code: `len(tracker.radius)`, want: 3},
		{code: `dim("energy")`, want: "TeV"},
		{code: `dim("layers")`, want: ""},
		{code: `dim("tracker.radius")`, want: "mm"},
		{code: `getpath("tracker.radius[1]")`, want: 60},
		{code: `haspath("tracker.nope")`, want: false},
		{code: `haspath("tracker")`, want: true},
		{code: `layers * scale`, want: 18},
		{code: `getenv("QUILLML_EVAL_TEST")`, want: "yes"},
	}
	for _, et := range tests {
		got, err := Eval(et.code, root, Env{"scale": 3})
		if err != nil {
			t.Errorf("%s: %v", et.code, err)
			continue
		}
		if diff := cmp.Diff(et.want, got); diff != "" {
			t.Errorf("%s: %s", et.code, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	root, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	for _, code := range []string{`layers +`, `getpath("nope")`, `dim("tracker.radius[9]")`} {
		if _, err := Eval(code, root, nil); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v", code, err)
		}
	}
}

func TestEvalNode(t *testing.T) {
	root, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	type nodeTest struct {
		code string
		want *ir.Node
	}
	tests := []nodeTest{
		{code: `layers + 1`, want: ir.FromInt(7)},
		{code: `energy * 2`, want: ir.FromFloat(13)},
		{code: `tracker.radius`, want: ir.FromInts([]int64{30, 60, 90})},
		{code: `[1, 2.5]`, want: ir.FromFloats([]float64{1, 2.5})},
		{code: `layers > 1`, want: ir.FromString("true")},
		{code: `{"b": 1, "a": "x"}`, want: mustGroup(t, "a = x\nb = 1")},
	}
	for _, nt := range tests {
		got, err := EvalNode(nt.code, root, nil)
		if err != nil {
			t.Errorf("%s: %v", nt.code, err)
			continue
		}
		if !ir.Equal(got, nt.want) {
			t.Errorf("%s: got %s %s", nt.code, got.Type, got.Kind())
		}
	}
	for _, code := range []string{`[1, "a"]`, `[1, 2.5, "a"]`, `["a", 1, 2.5]`} {
		if got, err := EvalNode(code, root, nil); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v, %v", code, got, err)
		}
	}
	if _, err := EvalNode(`nil`, root, nil); !errors.Is(err, ErrEval) {
		t.Errorf("nil: got %v", err)
	}
}

func TestFromAnyDimensionedElement(t *testing.T) {
	elems := []any{ir.FromInt(1), ir.FromFloat(2).WithDimension("cm")}
	if _, err := FromAny(elems); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
	n, err := FromAny([]any{ir.FromInt(1), 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := ir.Validate(n); err != nil {
		t.Error(err)
	}
	if !ir.Equal(n, ir.FromFloats([]float64{1, 2.5})) {
		t.Errorf("got %s %s", n.Type, n.Kind())
	}
}

func mustGroup(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNewEnvOverride(t *testing.T) {
	root := mustGroup(t, "x = 1\ny = 2")
	env := NewEnv(root, Env{"y": "over"})
	if diff := cmp.Diff(Env{"x": 1, "y": "over"}, env); diff != "" {
		t.Error(diff)
	}
}
