package parse

import (
	"errors"
	"fmt"

	"github.com/quillml/go-quillml/token"
)

var (
	ErrSyntax = errors.New("syntax error")
	ErrValue  = errors.New("value error")
	ErrDict   = errors.New("bad dict projection")
)

// SyntaxErr is a located parse failure. It matches ErrSyntax and unwraps to
// its cause, which wraps ErrValue when a value literal was at fault.
type SyntaxErr struct {
	Pos token.Pos
	// Context is the variable or group being parsed, if any.
	Context string
	Msg     string
	Err     error
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Is(target error) bool {
	return target == ErrSyntax
}
