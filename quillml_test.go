package quillml

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
)

// files under testdata without a reference are expected to fail
var invalidFiles = map[string]string{
	"02-basic-repeat.quillml":    "repeat variable [x]",
	"06-unclosed-group.quillml": "unexpected end of file before closing brace of group [outer]",
}

func testFiles(t *testing.T) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.quillml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no test files")
	}
	return paths
}

func readRef(t *testing.T, path string) (string, bool) {
	t.Helper()
	d, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false
	}
	if err != nil {
		t.Fatal(err)
	}
	return string(d), true
}

func TestBasic(t *testing.T) {
	for _, path := range []string{"testdata/01-basic.quillml", "testdata/01-basic-comment-whitespace.quillml"} {
		f, err := ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if x := f.Get("x"); !x.IsInt() || *x.Int64 != 10 || x.Dimension != nil {
			t.Errorf("%s: x = %s", path, encode.ValueString(x))
		}
		if y := f.Get("y"); !y.IsFloat() || *y.Float64 != 100 || y.Dimension != nil {
			t.Errorf("%s: y = %s", path, encode.ValueString(y))
		}
		if lv := f.Get("long_variable"); !lv.IsFloat() || *lv.Float64 != 1e-24 || lv.Dim() != "um" {
			t.Errorf("%s: long_variable = %s", path, encode.ValueString(lv))
		}
		if m := f.Get("myname"); !m.IsInt() || *m.Int64 != -3 || m.Dim() != "cm" {
			t.Errorf("%s: myname = %s", path, encode.ValueString(m))
		}
		if f.Has("missing") {
			t.Errorf("%s: has missing", path)
		}
	}
}

func TestBasicRepeat(t *testing.T) {
	_, err := ReadFile("testdata/02-basic-repeat.quillml")
	if !errors.Is(err, parse.ErrSyntax) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "repeat variable [x]") {
		t.Errorf("got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "testdata/02-basic-repeat.quillml:3:") {
		t.Errorf("error not located: %v", err)
	}
}

func TestGroup(t *testing.T) {
	f, err := ReadFile("testdata/03-group-basic.quillml")
	if err != nil {
		t.Fatal(err)
	}
	g := f.Get("group_name")
	for k, v := range map[string]string{"x": "10 um", "y": "50 mm", "long_variable": "1e12", "bool_variable": "False"} {
		want, err := parse.ParseValue(v)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(g.Get(k), want) {
			t.Errorf("%s = %s, want %s", k, encode.ValueString(g.Get(k)), v)
		}
	}
}

func TestRepresentation(t *testing.T) {
	for _, path := range testFiles(t) {
		name := filepath.Base(path)
		ref, hasRef := readRef(t, filepath.Join("testdata", "reference", name))
		f, err := ReadFile(path)
		if err != nil {
			if hasRef {
				t.Errorf("reference for %s exists, but the original cannot be parsed: %v", name, err)
				continue
			}
			want, ok := invalidFiles[name]
			if !ok || !strings.Contains(err.Error(), want) {
				t.Errorf("%s: unexpected error %v", name, err)
			}
			continue
		}
		if !hasRef {
			t.Errorf("%s parses but has no reference", name)
			continue
		}
		buf := &bytes.Buffer{}
		if err := encode.Encode(f.Root, buf); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ref, buf.String()); diff != "" {
			t.Errorf("%s: %s", name, diff)
		}
	}
}

func TestRepresentationConsistency(t *testing.T) {
	refs, err := filepath.Glob(filepath.Join("testdata", "reference", "*.quillml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range refs {
		f, err := ReadFile(path)
		if err != nil {
			t.Errorf("reference %s cannot be parsed: %v", path, err)
			continue
		}
		ref, _ := readRef(t, path)
		buf := &bytes.Buffer{}
		if err := encode.Encode(f.Root, buf); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ref, buf.String()); diff != "" {
			t.Errorf("%s is not canonical: %s", path, diff)
		}
	}
}

func TestJSONRepresentation(t *testing.T) {
	for _, path := range testFiles(t) {
		name := filepath.Base(path)
		ref, hasRef := readRef(t, filepath.Join("testdata", "json_reference", strings.TrimSuffix(name, ".quillml")+".json"))
		f, err := ReadFile(path)
		if err != nil {
			if hasRef {
				t.Errorf("JSON reference for %s exists, but the original cannot be parsed: %v", name, err)
			}
			continue
		}
		if !hasRef {
			t.Errorf("%s has no JSON reference", name)
			continue
		}
		got, err := f.ToJSON()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(ref, got); diff != "" {
			t.Errorf("%s: %s", name, diff)
		}
		back, err := parse.FromJSON([]byte(got))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(back, f.Root) {
			t.Errorf("%s: JSON does not read back", name)
		}
	}
}

func TestFileString(t *testing.T) {
	f, err := ReadFile("testdata/01-basic.quillml")
	if err != nil {
		t.Fatal(err)
	}
	want := "QuillML file [testdata/01-basic.quillml]\nx = 10\ny = 100.0\nlong_variable = 1e-24 um\nmyname = -3 cm"
	if diff := cmp.Diff(want, f.String()); diff != "" {
		t.Error(diff)
	}
	empty, err := Read("empty", strings.NewReader("# nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.String(); got != "QuillML file [empty]" {
		t.Errorf("got %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("testdata/does-not-exist.quillml"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}
