package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/delta/internal/utf16x"
)

var errMismatch = errors.New("hunk does not match text")

// patch applies hunks to from. Equal and delete hunks must match the text
// they consume.
func patch(from string, hunks []Hunk) (string, error) {
	var b []byte
	rest := from
	off := 0
	for i := range hunks {
		h := &hunks[i]
		switch h.Kind {
		case InsertHunk:
			b = utf16x.Append(b, h.Text)
			continue
		case EqualHunk, DeleteHunk:
		default:
			return "", fmt.Errorf("unexpected hunk kind %d at %d", h.Kind, i)
		}
		if !strings.HasPrefix(rest, h.Text) {
			return "", fmt.Errorf("%w: %s hunk %d at %d expected %q", errMismatch, h.Kind, i, off, h.Text)
		}
		if h.Kind == EqualHunk {
			b = utf16x.Append(b, h.Text)
		}
		rest = rest[len(h.Text):]
		off += h.Len()
	}
	if rest != "" {
		return "", fmt.Errorf("%w: %q left unconsumed at %d", errMismatch, rest, off)
	}
	return string(b), nil
}

// reverse returns the script undoing hunks.
func reverse(hunks []Hunk) []Hunk {
	if hunks == nil {
		return nil
	}
	res := make([]Hunk, len(hunks))
	for i, h := range hunks {
		switch h.Kind {
		case InsertHunk:
			h.Kind = DeleteHunk
		case DeleteHunk:
			h.Kind = InsertHunk
		}
		res[i] = h
	}
	return res
}
