package token

import "errors"

var (
	ErrBadUTF8 = errors.New("bad utf8")
)
