// Package libdiff computes minimal edit scripts between strings, measured
// in UTF-16 code units.
package libdiff

import (
	"strings"

	"github.com/signadot/delta/internal/utf16x"
)

type HunkKind int8

const (
	EqualHunk HunkKind = iota
	InsertHunk
	DeleteHunk
)

func (k HunkKind) String() string {
	switch k {
	case EqualHunk:
		return "equal"
	case InsertHunk:
		return "insert"
	case DeleteHunk:
		return "delete"
	default:
		return "<unknown>"
	}
}

// Hunk is one step of an edit script. Text is the run kept, inserted or
// deleted.
type Hunk struct {
	Kind HunkKind
	Text string
}

// Len returns the length of h in UTF-16 code units.
func (h Hunk) Len() int {
	return utf16x.Len(h.Text)
}

func (h Hunk) String() string {
	var sb strings.Builder
	switch h.Kind {
	case EqualHunk:
		sb.WriteByte('=')
	case InsertHunk:
		sb.WriteByte('+')
	case DeleteHunk:
		sb.WriteByte('-')
	}
	sb.WriteString(h.Text)
	return sb.String()
}

// compact drops empty hunks and merges neighbours of the same kind.
func compact(hunks []Hunk) []Hunk {
	res := hunks[:0]
	for _, h := range hunks {
		if h.Text == "" {
			continue
		}
		if n := len(res); n > 0 && res[n-1].Kind == h.Kind {
			res[n-1].Text = utf16x.Concat(res[n-1].Text, h.Text)
			continue
		}
		res = append(res, h)
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
