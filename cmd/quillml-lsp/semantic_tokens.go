package main

import (
	"context"
	"strings"
	"unicode/utf16"

	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"
	"github.com/quillml/go-quillml/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the legend; token type numbers index into it.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

const (
	tokComment uint32 = iota
	tokDimension
	tokString
	tokNumber
	tokOperator
	tokName
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
}

// lineTokens scans one physical line. Column and length are in UTF-16
// units.
func lineTokens(line int, text string) (res []tokenInfo) {
	add := func(start, end int, typ uint32) {
		if end <= start {
			return
		}
		res = append(res, tokenInfo{
			line:      uint32(line),
			character: uint32(utf16Len(text[:start])),
			length:    uint32(utf16Len(text[start:end])),
			tokenType: typ,
		})
	}
	code := text
	if i := strings.IndexByte(text, '#'); i >= 0 {
		code = text[:i]
		defer add(i, len(strings.TrimRight(text, " \t\r")), tokComment)
	}
	pos := 0
	for pos < len(code) {
		pos = skipSpace(code, pos)
		if pos >= len(code) {
			break
		}
		switch code[pos] {
		case '}', '{':
			add(pos, pos+1, tokOperator)
			pos++
			continue
		case ';':
			pos++
			continue
		}
		name, _, ok := token.ScanName(code[pos:])
		if !ok {
			return res
		}
		add(pos, pos+len(name), tokName)
		pos = skipSpace(code, pos+len(name))
		if pos >= len(code) {
			break
		}
		switch code[pos] {
		case '{':
			add(pos, pos+1, tokOperator)
			pos++
		case '=':
			add(pos, pos+1, tokOperator)
			pos++
			end := strings.IndexByte(code[pos:], ';')
			if end < 0 {
				end = len(code)
			} else {
				end += pos
			}
			res = append(res, valueTokens(line, text, pos, end)...)
			pos = end
		default:
			return res
		}
	}
	return res
}

// valueTokens splits the value in text[start:end] into its value part and
// its dimension.
func valueTokens(line int, text string, start, end int) []tokenInfo {
	start = skipSpace(text[:end], start)
	v := strings.TrimRight(text[start:end], " \t\r")
	if v == "" {
		return nil
	}
	n, err := parse.ParseValue(v)
	if err != nil {
		return nil
	}
	typ := tokNumber
	if n.Kind() == ir.StringKind {
		typ = tokString
	}
	body := len(v)
	if n.Dimension != nil {
		body = len(strings.TrimRight(strings.TrimSuffix(v, *n.Dimension), " \t"))
	}
	col := func(off int) uint32 { return uint32(utf16Len(text[:off])) }
	res := []tokenInfo{{
		line:      uint32(line),
		character: col(start),
		length:    col(start+body) - col(start),
		tokenType: typ,
	}}
	if n.Dimension != nil {
		dimStart := start + len(v) - len(*n.Dimension)
		res = append(res, tokenInfo{
			line:      uint32(line),
			character: col(dimStart),
			length:    col(start+len(v)) - col(dimStart),
			tokenType: tokDimension,
		})
	}
	return res
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\r') {
		pos++
	}
	return pos
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

// collectSemanticTokens returns the relative encoding of the tokens on
// lines [from, to).
func collectSemanticTokens(content string, from, to int) []uint32 {
	tokens := []uint32{}
	var prevLine, prevChar uint32
	for i, text := range strings.Split(content, "\n") {
		if i < from || i >= to {
			continue
		}
		for _, ti := range lineTokens(i, text) {
			deltaLine := ti.line - prevLine
			deltaChar := ti.character
			if deltaLine == 0 {
				deltaChar = ti.character - prevChar
			}
			tokens = append(tokens, deltaLine, deltaChar, ti.length, ti.tokenType, 0)
			prevLine = ti.line
			prevChar = ti.character
		}
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, 0, strings.Count(doc.content, "\n")+1),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from, to := int(params.Range.Start.Line), int(params.Range.End.Line)+1
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, from, to),
	}, nil
}
