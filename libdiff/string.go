package libdiff

import (
	"slices"
	"unicode/utf8"

	"github.com/signadot/delta/internal/utf16x"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns a minimal edit script turning from into to. When cursor is
// non-negative it is an offset into from, in UTF-16 code units, where the
// edit is expected to have happened: if the change is a single insertion or
// deletion adjacent to cursor the script is built around it, otherwise
// cursor is ignored.
//
// Equal inputs yield a single equal hunk, or nil when both are empty.
func Text(from, to string, cursor int) []Hunk {
	if from == to {
		if from == "" {
			return nil
		}
		return []Hunk{{Kind: EqualHunk, Text: from}}
	}
	if cursor >= 0 {
		if hunks := cursorEdit(from, to, cursor); hunks != nil {
			return hunks
		}
	}
	return myers(from, to)
}

// myers diffs the characters of from and to. The library hands back
// hunk texts with lone surrogates replaced, so hunks are rebuilt from the
// inputs by position.
func myers(from, to string) []Hunk {
	dmp := diffpatch.New()
	// no deadline: never settle for a non-minimal script.
	dmp.DiffTimeout = 0
	o, n := utf16x.Runes(from), utf16x.Runes(to)
	diffs := dmp.DiffMainRunes(o, n, false)
	hunks := make([]Hunk, 0, len(diffs))
	i, j := 0, 0
	for k := range diffs {
		diff := &diffs[k]
		c := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffInsert:
			hunks = append(hunks, Hunk{Kind: InsertHunk, Text: utf16x.FromRunes(n[j : j+c])})
			j += c
		case diffpatch.DiffDelete:
			hunks = append(hunks, Hunk{Kind: DeleteHunk, Text: utf16x.FromRunes(o[i : i+c])})
			i += c
		case diffpatch.DiffEqual:
			hunks = appendEqual(hunks, o[i:i+c], n[j:j+c])
			i += c
			j += c
		}
	}
	return compact(hunks)
}

// appendEqual appends the hunks for runs the library found equal. Two
// different lone surrogates look the same to it, and become a delete and
// an insert.
func appendEqual(hunks []Hunk, o, n []rune) []Hunk {
	if slices.Equal(o, n) {
		return append(hunks, Hunk{Kind: EqualHunk, Text: utf16x.FromRunes(o)})
	}
	for k := range o {
		if o[k] == n[k] {
			hunks = append(hunks, Hunk{Kind: EqualHunk, Text: utf16x.FromRunes(o[k : k+1])})
			continue
		}
		hunks = append(hunks,
			Hunk{Kind: DeleteHunk, Text: utf16x.FromRunes(o[k : k+1])},
			Hunk{Kind: InsertHunk, Text: utf16x.FromRunes(n[k : k+1])})
	}
	return hunks
}
