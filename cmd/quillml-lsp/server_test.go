package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const testDoc = `# detector
energy = 6.5 TeV
tracker {
  layers = 6; radius = [30, 60, 90] mm
  name = pixel
}
`

func openDoc(t *testing.T, content string) (*Server, *document) {
	t.Helper()
	s := newServer(zap.NewNop())
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///t.quillml", Text: content, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s, s.docs.get("file:///t.quillml")
}

func TestDiagnostics(t *testing.T) {
	_, doc := openDoc(t, testDoc)
	if d := validateDocument(doc); len(d) != 0 {
		t.Errorf("unexpected diagnostics %v", d)
	}
	_, doc = openDoc(t, "x = 1\nx = 2\n")
	d := validateDocument(doc)
	if len(d) != 1 {
		t.Fatalf("got %d diagnostics", len(d))
	}
	if d[0].Range.Start.Line != 1 || d[0].Range.End.Character != 5 {
		t.Errorf("bad range %+v", d[0].Range)
	}
	if d[0].Message != "repeat variable [x]" {
		t.Errorf("got %q", d[0].Message)
	}
}

func TestDidChange(t *testing.T) {
	s, _ := openDoc(t, "x = 1\nx = 2\n")
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///t.quillml"},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "x = 1\ny = 2\n"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get("file:///t.quillml")
	if doc.err != nil || doc.version != 2 {
		t.Errorf("got err %v version %d", doc.err, doc.version)
	}
}

func TestFindEntryAt(t *testing.T) {
	_, doc := openDoc(t, testDoc)
	type findTest struct {
		line, col int
		path      string
	}
	tests := []findTest{
		{line: 1, col: 0, path: "energy"},
		{line: 1, col: 12, path: "energy"},
		{line: 2, col: 3, path: "tracker"},
		{line: 3, col: 4, path: "tracker.layers"},
		{line: 3, col: 15, path: "tracker.radius"},
		{line: 0, col: 3, path: ""},
	}
	for _, ft := range tests {
		path, _ := findEntryAt(doc, ft.line, ft.col)
		if path != ft.path {
			t.Errorf("%d:%d got %q want %q", ft.line, ft.col, path, ft.path)
		}
	}
}

func TestHoverText(t *testing.T) {
	_, doc := openDoc(t, testDoc)
	path, n := findEntryAt(doc, 3, 15)
	got := buildHoverText(path, n)
	for _, want := range []string{"**tracker.radius**", "array of int", "`mm`", "`[30, 60, 90] mm`"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestDocumentSymbols(t *testing.T) {
	_, doc := openDoc(t, testDoc)
	syms := documentSymbols(doc, doc.root)
	var names []string
	for _, s := range syms {
		names = append(names, s.Name)
		for _, c := range s.Children {
			names = append(names, s.Name+"."+c.Name)
		}
	}
	want := []string{"energy", "tracker", "tracker.layers", "tracker.radius", "tracker.name"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Error(diff)
	}
	if syms[0].Detail != "6.5 TeV" || syms[1].Kind != protocol.SymbolKindNamespace {
		t.Errorf("got %+v", syms[:2])
	}
	if sel := syms[1].Children[1].SelectionRange; sel.Start.Character != 14 || sel.End.Character != 20 {
		t.Errorf("bad selection %+v", sel)
	}
}

func TestDocumentSymbolsNested(t *testing.T) {
	_, doc := openDoc(t, "a {\n  b {\n    c = 1\n  }\n  e {\n  }\n}\nz = 2\n")
	syms := documentSymbols(doc, doc.root)
	if len(syms) != 2 || syms[0].Name != "a" || syms[1].Name != "z" {
		t.Fatalf("got %+v", syms)
	}
	a := syms[0]
	if len(a.Children) != 2 || a.Children[0].Name != "b" || a.Children[1].Name != "e" {
		t.Fatalf("got children %+v", a.Children)
	}
	b := a.Children[0]
	if len(b.Children) != 1 || b.Children[0].Name != "c" || b.Children[0].Range.Start.Line != 2 {
		t.Errorf("got %+v", b.Children)
	}
	if a.Children[1].Children == nil || len(a.Children[1].Children) != 0 {
		t.Errorf("empty group children %+v", a.Children[1].Children)
	}
}

func TestLineTokens(t *testing.T) {
	got := lineTokens(4, "  r = [1, 2] mm; g { s = ok; } # note")
	want := []tokenInfo{
		{4, 2, 1, tokName},
		{4, 4, 1, tokOperator},
		{4, 6, 6, tokNumber},
		{4, 13, 2, tokDimension},
		{4, 17, 1, tokName},
		{4, 19, 1, tokOperator},
		{4, 21, 1, tokName},
		{4, 23, 1, tokOperator},
		{4, 25, 2, tokString},
		{4, 29, 1, tokOperator},
		{4, 31, 6, tokComment},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(tokenInfo{})); diff != "" {
		t.Error(diff)
	}
}

func TestCollectSemanticTokens(t *testing.T) {
	got := collectSemanticTokens("x = 1\n\ny = é", 0, 3)
	want := []uint32{
		0, 0, 1, tokName, 0,
		0, 2, 1, tokOperator, 0,
		0, 2, 1, tokNumber, 0,
		2, 0, 1, tokName, 0,
		0, 2, 1, tokOperator, 0,
		0, 2, 1, tokString, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestFormatEdits(t *testing.T) {
	s, doc := openDoc(t, "x=1\ng {  y = 2 m; }")
	edits := formatEdits(s, doc, 2)
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if want := "x = 1\ng {\n  y = 2 m\n}\n"; edits[0].NewText != want {
		t.Errorf("got %q", edits[0].NewText)
	}
	if edits[0].Range.End.Line != 2 {
		t.Errorf("bad range %+v", edits[0].Range)
	}
	_, doc = openDoc(t, "x = 1\n")
	if edits := formatEdits(s, doc, 2); edits == nil || len(edits) != 0 {
		t.Errorf("canonical text should give no edits, got %v", edits)
	}
}
