package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	in := "x = 10 # ten\n\n   # only a comment\n\ty = \"a # b\"\r\nlast"
	want := []Line{
		{Num: 1, Text: "x = 10"},
		{Num: 2, Text: ""},
		{Num: 3, Text: ""},
		{Num: 4, Text: `y = "a`},
		{Num: 5, Text: "last"},
	}
	if diff := cmp.Diff(want, Lines([]byte(in))); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesTrailingNewline(t *testing.T) {
	got := Lines([]byte("a = 1\nb = 2\n"))
	if len(got) != 2 {
		t.Fatalf("got %d lines: %v", len(got), got)
	}
	if Lines(nil) != nil {
		t.Errorf("empty input should give no lines")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines([]string{"  a = 1  ", "#", "}"})
	want := []Line{{1, "a = 1"}, {2, ""}, {3, "}"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanName(t *testing.T) {
	tests := []struct {
		in, name, rest string
		ok             bool
	}{
		{"x = 1", "x", "= 1", true},
		{"long_variable=1e-24 um", "long_variable", "=1e-24 um", true},
		{"group-name {", "group-name", "{", true},
		{"_a9 {}", "_a9", "{}", true},
		{"9a = 1", "", "9a = 1", false},
		{"-a = 1", "", "-a = 1", false},
		{"}", "", "}", false},
		{"name", "name", "", true},
	}
	for _, tt := range tests {
		name, rest, ok := ScanName(tt.in)
		if name != tt.name || rest != tt.rest || ok != tt.ok {
			t.Errorf("ScanName(%q) = %q, %q, %v; want %q, %q, %v", tt.in, name, rest, ok, tt.name, tt.rest, tt.ok)
		}
	}
	if !IsName("a-b_c") || IsName("a b") {
		t.Errorf("IsName")
	}
}

func TestPos(t *testing.T) {
	if s := (Pos{Line: 3}).String(); s != "line 3" {
		t.Errorf("got %q", s)
	}
	if s := (Pos{Filename: "a.quillml", Line: 3}).String(); s != "a.quillml:3" {
		t.Errorf("got %q", s)
	}
}
