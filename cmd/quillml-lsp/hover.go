package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	path, node := findEntryAt(doc, int(params.Position.Line), int(params.Position.Character))
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(path, node),
		},
	}, nil
}

// findEntryAt returns the entry defined on line (0-based) whose name is
// closest before col. Several entries can share a line.
func findEntryAt(doc *document, line, col int) (string, *ir.Node) {
	text := lineText(doc.content, line)
	var (
		bestPath string
		bestNode *ir.Node
		bestCol  = -1
	)
	ir.Walk(doc.root, func(path string, n *ir.Node) bool {
		if doc.positions[n] != line+1 {
			return true
		}
		name := path[strings.LastIndex(path, ".")+1:]
		at := nameColumn(text, name)
		if at < 0 || at > col {
			return true
		}
		if at > bestCol {
			bestPath, bestNode, bestCol = path, n, at
		}
		return true
	})
	return bestPath, bestNode
}

// nameColumn finds name in text as a whole word, in UTF-16 units.
func nameColumn(text, name string) int {
	off := 0
	for {
		i := strings.Index(text[off:], name)
		if i < 0 {
			return -1
		}
		start, end := off+i, off+i+len(name)
		if (start == 0 || !isNameByte(text[start-1])) && (end == len(text) || !isNameByte(text[end])) {
			return utf16Len(text[:start])
		}
		off = end
	}
}

func isNameByte(b byte) bool {
	return b == '_' || b == '-' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func buildHoverText(path string, node *ir.Node) string {
	parts := []string{fmt.Sprintf("**%s**", path)}
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(node)))
	if node.Dimension != nil {
		parts = append(parts, fmt.Sprintf("**Dimension:** `%s`", *node.Dimension))
	}
	parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo(node)))
	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return fmt.Sprintf("array of %s", node.Elem)
	case ir.GroupType:
		return "group"
	default:
		return "unknown"
	}
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.GroupType:
		return fmt.Sprintf("group with %d entries", len(node.Fields))
	case ir.ArrayType:
		if len(node.Values) > 8 {
			return fmt.Sprintf("array with %d elements", len(node.Values))
		}
	}
	val := encode.ValueString(node)
	if len(val) > 50 {
		val = val[:50] + "..."
	}
	return fmt.Sprintf("`%s`", val)
}
