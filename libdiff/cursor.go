package libdiff

import (
	"slices"

	"github.com/signadot/delta/internal/utf16x"
)

// cursorEdit tries to explain the change as a single splice touching the
// cursor, either just before it or just after it. It returns nil when that
// is not possible.
func cursorEdit(from, to string, cursor int) []Hunk {
	o := utf16x.Encode(from)
	n := utf16x.Encode(to)
	if cursor > len(o) {
		return nil
	}
	oldBefore, oldAfter := o[:cursor], o[cursor:]

	// edit right before the cursor
	if nc := cursor + len(n) - len(o); nc >= 0 && nc <= len(n) {
		newBefore, newAfter := n[:nc], n[nc:]
		p := min(cursor, nc)
		if slices.Equal(newAfter, oldAfter) && slices.Equal(oldBefore[:p], newBefore[:p]) {
			if res := splice(oldBefore[:p], oldBefore[p:], newBefore[p:], oldAfter); res != nil {
				return res
			}
		}
	}

	// edit right after the cursor
	if cursor <= len(n) && slices.Equal(n[:cursor], oldBefore) {
		newAfter := n[cursor:]
		s := min(len(oldAfter), len(newAfter))
		oldSuffix := oldAfter[len(oldAfter)-s:]
		if slices.Equal(oldSuffix, newAfter[len(newAfter)-s:]) {
			return splice(oldBefore, oldAfter[:len(oldAfter)-s], newAfter[:len(newAfter)-s], oldSuffix)
		}
	}
	return nil
}

func splice(before, oldMid, newMid, after []uint16) []Hunk {
	for _, part := range [][]uint16{before, oldMid, newMid, after} {
		if splitsPair(part) {
			return nil
		}
	}
	return compact([]Hunk{
		{Kind: EqualHunk, Text: utf16x.Decode(before)},
		{Kind: DeleteHunk, Text: utf16x.Decode(oldMid)},
		{Kind: InsertHunk, Text: utf16x.Decode(newMid)},
		{Kind: EqualHunk, Text: utf16x.Decode(after)},
	})
}

// splitsPair reports whether u starts in the middle of a surrogate pair or
// ends before its second half.
func splitsPair(u []uint16) bool {
	if len(u) == 0 {
		return false
	}
	first, last := rune(u[0]), rune(u[len(u)-1])
	return (first >= 0xDC00 && first <= 0xDFFF) || (last >= 0xD800 && last <= 0xDBFF)
}
