package main

import (
	"context"

	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	syms := documentSymbols(doc, doc.root)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// documentSymbols builds the symbol tree from the group's event stream,
// keeping one open symbol per BeginGroup until its EndGroup.
func documentSymbols(doc *document, group *ir.Node) []protocol.DocumentSymbol {
	stack := [][]protocol.DocumentSymbol{{}}
	var open []protocol.DocumentSymbol
	for _, ev := range encode.NodeToEvents(group) {
		switch ev.Type {
		case encode.EventBeginGroup:
			open = append(open, entrySymbol(doc, ev.Name, ev.Node))
			stack = append(stack, []protocol.DocumentSymbol{})
		case encode.EventEndGroup:
			sym := open[len(open)-1]
			open = open[:len(open)-1]
			sym.Children = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = append(stack[len(stack)-1], sym)
		case encode.EventLeaf:
			if ev.Name == "" {
				continue
			}
			sym := entrySymbol(doc, ev.Name, ev.Node)
			sym.Detail = encode.ValueString(ev.Node)
			stack[len(stack)-1] = append(stack[len(stack)-1], sym)
		}
	}
	return stack[0]
}

func entrySymbol(doc *document, name string, v *ir.Node) protocol.DocumentSymbol {
	line := max(doc.positions[v]-1, 0)
	text := lineText(doc.content, line)
	rng := lineRange(doc.content, line)
	sel := rng
	if at := nameColumn(text, name); at >= 0 {
		sel.Start.Character = uint32(at)
		sel.End.Character = uint32(at + utf16Len(name))
	}
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           symbolKind(v),
		Range:          rng,
		SelectionRange: sel,
	}
}

func symbolKind(n *ir.Node) protocol.SymbolKind {
	switch n.Type {
	case ir.GroupType:
		return protocol.SymbolKindNamespace
	case ir.ArrayType:
		return protocol.SymbolKindArray
	case ir.NumberType:
		return protocol.SymbolKindNumber
	default:
		return protocol.SymbolKindString
	}
}
