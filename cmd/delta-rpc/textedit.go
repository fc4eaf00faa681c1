package main

import (
	"fmt"
	"strings"

	"github.com/signadot/delta"
	"github.com/signadot/delta/internal/utf16x"

	"go.lsp.dev/protocol"
)

// embedChar stands in for an embed in text edits.
const embedChar = "\ufffc"

type span struct {
	start, end int
	text       string
}

// TextEdits expresses change, applied to document doc, as non-overlapping
// editor text edits against doc. Positions count UTF-16 code units, as
// LSP clients do by default. Attribute changes have no textual form and
// are dropped.
func TextEdits(doc, change delta.Delta) ([]protocol.TextEdit, error) {
	if !doc.IsDocument() {
		return nil, fmt.Errorf("%w: doc", delta.ErrNotADocument)
	}
	docLen := doc.Length()
	var spans []span
	add := func(sp span) {
		if n := len(spans); n > 0 && spans[n-1].end == sp.start {
			spans[n-1].end = sp.end
			spans[n-1].text = utf16x.Concat(spans[n-1].text, sp.text)
			return
		}
		spans = append(spans, sp)
	}
	pos := 0
	for _, op := range change {
		switch op.Kind {
		case delta.RetainKind:
			pos += op.N
		case delta.DeleteKind:
			add(span{start: pos, end: pos + op.N})
			pos += op.N
		case delta.InsertKind:
			text := op.Text
			if op.IsEmbed() {
				text = embedChar
			}
			add(span{start: pos, end: pos, text: text})
		}
		if pos > docLen {
			return nil, fmt.Errorf("%w: change covers %d past document length %d", delta.ErrBadOp, pos, docLen)
		}
	}
	lines := docLineStarts(doc)
	res := make([]protocol.TextEdit, len(spans))
	for i, sp := range spans {
		res[i] = protocol.TextEdit{
			Range: protocol.Range{
				Start: lines.position(sp.start),
				End:   lines.position(sp.end),
			},
			NewText: sp.text,
		}
	}
	return res, nil
}

// lineStarts holds the UTF-16 offset at which each line of a document
// begins.
type lineStarts []int

func docLineStarts(doc delta.Delta) lineStarts {
	res := lineStarts{0}
	off := 0
	for _, op := range doc {
		if op.IsEmbed() {
			off++
			continue
		}
		text := op.Text
		for {
			i := strings.IndexByte(text, '\n')
			if i < 0 {
				off += utf16x.Len(text)
				break
			}
			off += utf16x.Len(text[:i+1])
			res = append(res, off)
			text = text[i+1:]
		}
	}
	return res
}

func (ls lineStarts) position(off int) protocol.Position {
	line := 0
	for line+1 < len(ls) && ls[line+1] <= off {
		line++
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(off - ls[line]),
	}
}
