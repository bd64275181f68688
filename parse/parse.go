package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseLines(token.Lines(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseLines parses pre-split, comment-stripped lines into the root group.
func ParseLines(lines []token.Line, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{lines: lines, opts: pOpts}
	if ln, ok := token.CheckUTF8(lines); !ok {
		return nil, p.errorf(ln.Num, "", token.ErrBadUTF8, "%v", token.ErrBadUTF8)
	}
	root, _, err := p.parseEntries(p.start(), modeFull, "", 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

type mode int

const (
	// modeFull parses a whole document: end of input is the normal end.
	modeFull mode = iota
	// modeGroup parses the inside of a group up to its closing brace.
	modeGroup
)

func (m mode) String() string {
	if m == modeGroup {
		return "group"
	}
	return "full"
}

type parser struct {
	lines []token.Line
	opts  *parseOpts
}

// cursor is a read position: the index of the current line and the part of
// that line not consumed yet. Lines themselves are never modified.
type cursor struct {
	i    int
	text string
}

func (p *parser) start() cursor {
	return p.at(0)
}

func (p *parser) at(i int) cursor {
	if i >= len(p.lines) {
		return cursor{i: len(p.lines)}
	}
	return cursor{i: i, text: p.lines[i].Text}
}

func (p *parser) next(c cursor) cursor {
	return p.at(c.i + 1)
}

func (p *parser) done(c cursor) bool {
	return c.i >= len(p.lines)
}

func (p *parser) lastLine() int {
	if len(p.lines) == 0 {
		return 0
	}
	return p.lines[len(p.lines)-1].Num
}

func (p *parser) track(n *ir.Node, line int) {
	if p.opts.positions != nil {
		p.opts.positions[n] = line
	}
}

func (p *parser) errorf(line int, context string, cause error, f string, args ...any) error {
	return &SyntaxErr{
		Pos:     token.Pos{Filename: p.opts.filename, Line: line},
		Context: context,
		Msg:     fmt.Sprintf(f, args...),
		Err:     cause,
	}
}

// parseEntries builds the group starting at c and returns it with the
// cursor just past its end. In modeGroup the end is the closing brace, and
// whatever follows the brace on its line is left at the returned cursor.
func (p *parser) parseEntries(c cursor, m mode, name string, depth int) (*ir.Node, cursor, error) {
	group := ir.NewGroup()
	for {
		if p.done(c) {
			if m == modeGroup {
				return nil, c, p.errorf(p.lastLine(), name, nil,
					"unexpected end of file before closing brace of group [%s]", name)
			}
			return group, c, nil
		}
		line := p.lines[c.i].Num
		text := strings.TrimSpace(c.text)
		if debug.Parse() {
			debug.Logf("parse %s %d %s [%s]\n", m, depth, token.Pos{Filename: p.opts.filename, Line: line}, text)
		}

		varName, rest, ok := token.ScanName(text)
		if !ok {
			switch {
			case strings.HasPrefix(text, "}"):
				if m == modeFull {
					return nil, c, p.errorf(line, "", nil, "unmatched closing brace")
				}
				c.text = strings.TrimSpace(text[1:])
				return group, c, nil
			case text != "":
				return nil, c, p.errorf(line, name, nil, "[%s] cannot be parsed", text)
			default:
				c = p.next(c)
				continue
			}
		}

		var (
			entry *ir.Node
			err   error
		)
		switch {
		case strings.HasPrefix(rest, "="):
			frag, after, found := strings.Cut(rest[1:], ";")
			if found {
				c.text = after
			} else {
				c = p.next(c)
			}
			entry, err = ParseValue(frag)
			if err != nil {
				return nil, c, p.errorf(line, varName, err, "variable [%s]: %v", varName, err)
			}
		case strings.HasPrefix(rest, "{"):
			if depth+1 > p.opts.maxDepth {
				return nil, c, p.errorf(line, varName, nil,
					"groups nested too deeply (limit %d) at group [%s]", p.opts.maxDepth, varName)
			}
			c.text = rest[1:]
			entry, c, err = p.parseEntries(c, modeGroup, varName, depth+1)
			if err != nil {
				return nil, c, err
			}
		case rest == "":
			return nil, c, p.errorf(line, varName, nil,
				"unexpected end of line after variable [%s], expected = or {", varName)
		default:
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, c, p.errorf(line, varName, nil,
				"unexpected symbol [%c] after variable [%s]", r, varName)
		}

		if err := group.Add(varName, entry); err != nil {
			return nil, c, p.errorf(line, varName, err, "repeat variable [%s]", varName)
		}
		p.track(entry, line)
	}
}
