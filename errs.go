package delta

import "errors"

var (
	ErrNotADocument = errors.New("not a document")
	ErrBadOp        = errors.New("bad op")
)
