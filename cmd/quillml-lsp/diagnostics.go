package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	root    *ir.Node
	err     error
	// positions holds the 1-based line of each entry.
	positions map[*ir.Node]int
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]int)
	root, err := parse.ParseString(content, parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		root:      root,
		err:       err,
		positions: positions,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
		if err != nil {
			s.log.Warn("publish diagnostics", zap.String("uri", uri), zap.Error(err))
		}
	}
}

// validateDocument reports a parse error on the line it names, or on the
// first line when the error carries no position.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	line := 0
	msg := doc.err.Error()
	var se *parse.SyntaxErr
	if errors.As(doc.err, &se) {
		msg = se.Msg
		if se.Pos.Line > 0 {
			line = se.Pos.Line - 1
		}
	}
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    lineRange(doc.content, line),
		Severity: protocol.DiagnosticSeverityError,
		Message:  msg,
		Source:   "quillml",
	})
	return diagnostics
}

// lineRange spans the whole of line, 0-based.
func lineRange(content string, line int) protocol.Range {
	text := lineText(content, line)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: 0},
		End:   protocol.Position{Line: uint32(line), Character: uint32(utf16Len(text))},
	}
}

func lineText(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line], "\r")
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.log.Debug("didOpen", zap.String("uri", uri), zap.Bool("ok", doc.err == nil))
	s.publishDiagnostics(ctx, uri)
	return nil
}

// DidChange takes the last full text; the server only advertises full sync.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.log.Debug("didChange", zap.String("uri", uri), zap.Int32("version", doc.version), zap.Bool("ok", doc.err == nil))
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
