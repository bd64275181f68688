package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip %s gave %s", f, g)
		}
	}
	for v, want := range map[string]Format{"q": QuillFormat, "quill": QuillFormat, "j": JSONFormat, "yml": YAMLFormat} {
		if got, err := ParseFormat(v); err != nil || got != want {
			t.Errorf("%q: got %s, %v", v, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if _, err := Format(9).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if QuillFormat.Suffix() != ".quillml" {
		t.Errorf("suffix %q", QuillFormat.Suffix())
	}
}

func TestFromPath(t *testing.T) {
	type fpTest struct {
		path string
		f    Format
		ok   bool
	}
	tests := []fpTest{
		{path: "detector.quillml", f: QuillFormat, ok: true},
		{path: "run/beam.QML", f: QuillFormat, ok: true},
		{path: "out.json", f: JSONFormat, ok: true},
		{path: "a.b.yml", f: YAMLFormat, ok: true},
		{path: "Makefile"},
		{path: "notes.txt"},
	}
	for _, ft := range tests {
		f, ok := FromPath(ft.path)
		if ok != ft.ok || (ok && f != ft.f) {
			t.Errorf("%s: got %s %t", ft.path, f, ok)
		}
	}
}
