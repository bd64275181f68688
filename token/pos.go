package token

import "fmt"

// Pos locates a line of a document.
type Pos struct {
	Filename string
	Line     int
}

func (p Pos) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	}
	return fmt.Sprintf("line %d", p.Line)
}
