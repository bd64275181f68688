package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/quillml/go-quillml/encode"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	indent := 2
	if params.Options.TabSize > 0 {
		indent = int(params.Options.TabSize)
	}
	return formatEdits(s, doc, indent), nil
}

// formatEdits replaces the whole document with its canonical text. Trees
// that cannot be written back unchanged are left alone.
func formatEdits(s *Server, doc *document, indent int) []protocol.TextEdit {
	var buf bytes.Buffer
	if err := encode.Encode(doc.root, &buf, encode.Indent(indent)); err != nil {
		s.log.Info("not formatting", zap.String("uri", doc.uri), zap.Error(err))
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
