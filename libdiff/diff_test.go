package libdiff

import (
	"slices"
	"strconv"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
)

type diffTest struct {
	a    string
	b    string
	diff []string
}

var diffTests = []diffTest{
	{
		a: `
f1 = a
f2 = a
f3 = a
f4 = a
f5 {
  f5a = 1
  f5b = 2 m
}`,
		b: `
f0 = b
f1 = b
f2 = b
f5 {
  f5a = 1
}`,
		diff: []string{
			"+ f0 = b",
			"~ f1 = a -> b",
			"~ f2 = a -> b",
			"- f3 = a",
			"- f4 = a",
			"- f5.f5b = 2 m",
		},
	},
	{
		a: `x = [1, 2, 3, 3, 3, 7, 8]`,
		b: `x = [2, 3, 3, 3, 4, 7, 9]`,
		diff: []string{
			"- x[0] = 1",
			"+ x[4] = 4",
			"~ x[6] = 8 -> 9",
		},
	},
	{
		a: `x = [1, 2] cm`,
		b: `x = [1, 2] mm`,
		diff: []string{
			"~ x = [1, 2] cm -> [1, 2] mm",
		},
	},
	{
		a: `x = [1, 2]`,
		b: `x = [1.0, 2.0]`,
		diff: []string{
			"~ x = [1, 2] -> [1.0, 2.0]",
		},
	},
	{
		a: `x = 1`,
		b: `x = 1.0`,
		diff: []string{
			"~ x = 1 -> 1.0",
		},
	},
	{
		a: `g { x = 1; }`,
		b: `g = 1`,
		diff: []string{
			"~ g = { x = 1; } -> 1",
		},
	},
	{
		a: `g { h { s = [a, b, c]; } }`,
		b: `g { h { s = [a, c]; } }`,
		diff: []string{
			"- g.h.s[1] = b",
		},
	},
	{
		a: "a = 1\nb = 2",
		b: "a = 1\nb = 2",
	},
}

func TestDiff(t *testing.T) {
	for _, dt := range diffTests {
		a, err := parse.ParseString(dt.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := parse.ParseString(dt.b)
		if err != nil {
			t.Fatal(err)
		}
		changes := Diff(a, b)
		var got []string
		for _, c := range changes {
			got = append(got, c.String())
		}
		if diff := cmp.Diff(dt.diff, got); diff != "" {
			t.Errorf("diff of\n%s\nand\n%s\n%s", dt.a, dt.b, diff)
		}
	}
}

func TestReverse(t *testing.T) {
	a, _ := parse.ParseString("x = 1\ny = 2")
	b, _ := parse.ParseString("y = 3\nz = 4")
	rev := Reverse(Diff(a, b))
	var got []string
	for _, c := range rev {
		got = append(got, c.String())
	}
	want := []string{
		"- z = 4",
		"~ y = 3 -> 2",
		"+ x = 1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if rev[2].From != nil || !ir.Equal(rev[2].To, ir.FromInt(1)) {
		t.Errorf("bad reversed insert %+v", rev[2])
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Insert: "insert", Delete: "delete", Replace: "replace"} {
		if op.String() != want {
			t.Errorf("got %s want %s", op, want)
		}
	}
}

func TestKeyRune(t *testing.T) {
	seen := map[rune]bool{}
	for _, n := range []int{0, 1, surrogateMin - 1, surrogateMin, surrogateMin + 1, maxKeys - 1} {
		r := keyRune(n)
		if !utf8.ValidRune(r) || []rune(string(r))[0] != r {
			t.Errorf("%d: rune %U does not survive a string", n, r)
		}
		if seen[r] {
			t.Errorf("%d: rune %U reused", n, r)
		}
		seen[r] = true
	}
	if keyRune(maxKeys-1) != utf8.MaxRune {
		t.Errorf("last key rune %U", keyRune(maxKeys-1))
	}
}

// manyKeys is past the first surrogate rune.
const manyKeys = surrogateMin + 4000

func TestDiffManyFields(t *testing.T) {
	a, b := ir.NewGroup(), ir.NewGroup()
	for i := range manyKeys {
		k := "k" + strconv.Itoa(i)
		a.Set(k, ir.FromInt(int64(i)))
		if i != manyKeys-10 {
			b.Set(k, ir.FromInt(int64(i)))
		}
	}
	b.Set("k"+strconv.Itoa(manyKeys-1), ir.FromInt(-1))
	var got []string
	for _, c := range Diff(a, b) {
		got = append(got, c.String())
	}
	want := []string{
		"- k" + strconv.Itoa(manyKeys-10) + " = " + strconv.Itoa(manyKeys-10),
		"~ k" + strconv.Itoa(manyKeys-1) + " = " + strconv.Itoa(manyKeys-1) + " -> -1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestDiffManyElements(t *testing.T) {
	from := make([]int64, manyKeys)
	for i := range from {
		from[i] = int64(i)
	}
	to := slices.Delete(slices.Clone(from), manyKeys-10, manyKeys-9)
	a, b := ir.NewGroup(), ir.NewGroup()
	a.Set("x", ir.FromInts(from))
	b.Set("x", ir.FromInts(to))
	var got []string
	for _, c := range Diff(a, b) {
		got = append(got, c.String())
	}
	want := []string{"- x[" + strconv.Itoa(manyKeys-10) + "] = " + strconv.Itoa(manyKeys-10)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestDiffGroupByName(t *testing.T) {
	a, _ := parse.ParseString("x = 1\ny = 2\nz = 3")
	b, _ := parse.ParseString("z = 3\nw = 0\ny = 4")
	var got []string
	for _, c := range diffGroupByName(a, b, "g", diff) {
		got = append(got, c.String())
	}
	want := []string{"- g.x = 1", "~ g.y = 2 -> 4", "+ g.w = 0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}
