package token

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Line is the comment-stripped, trimmed content of one physical line.
type Line struct {
	Num  int
	Text string
}

func (l Line) IsEmpty() bool {
	return l.Text == ""
}

// StripComment returns the part of s before the first '#', trimmed.
// A '#' always starts a comment, even inside what looks like a string.
func StripComment(s string) string {
	s, _, _ = strings.Cut(s, "#")
	return strings.TrimSpace(s)
}

// Lines splits d into numbered lines with comments and surrounding
// whitespace removed. Empty lines are kept so that line numbers stay
// exact. A final newline does not start another line.
func Lines(d []byte) []Line {
	if len(d) == 0 {
		return nil
	}
	d = bytes.TrimSuffix(d, []byte{'\n'})
	raw := strings.Split(string(d), "\n")
	res := make([]Line, len(raw))
	for i, ln := range raw {
		res[i] = Line{Num: i + 1, Text: StripComment(ln)}
	}
	return res
}

// SplitLines is Lines for pre-split physical lines, numbered from 1.
func SplitLines(physical []string) []Line {
	res := make([]Line, len(physical))
	for i, ln := range physical {
		res[i] = Line{Num: i + 1, Text: StripComment(ln)}
	}
	return res
}

// CheckUTF8 returns the first line whose content is not valid UTF-8.
func CheckUTF8(lines []Line) (Line, bool) {
	for _, ln := range lines {
		if !utf8.ValidString(ln.Text) {
			return ln, false
		}
	}
	return Line{}, true
}
