package ir

import "errors"

var (
	ErrNoSuchKey    = errors.New("no such key")
	ErrNotGroup     = errors.New("not a group")
	ErrNotArray     = errors.New("not an array")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalid      = errors.New("invalid entry")
)
