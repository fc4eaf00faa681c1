package ir

import "errors"

var (
	ErrBadValue = errors.New("bad value")
)
