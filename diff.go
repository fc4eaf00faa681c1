package delta

import (
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/debug"
	"github.com/signadot/delta/internal/utf16x"
	"github.com/signadot/delta/libdiff"
)

// embedChar stands for an embed when documents are flattened to text.
const embedChar = "\x00"

type DiffConfig struct {
	Cursor     int
	Attributes bool
}

type DiffOption func(*DiffConfig)

// DiffCursor gives the offset in the old document where the edit is
// expected, typically the position of the editing cursor. Among edit
// scripts explaining the change as a single splice at that offset, Diff
// prefers those.
func DiffCursor(i int) DiffOption {
	return func(c *DiffConfig) { c.Cursor = i }
}

// DiffAttributes makes Diff report formatting changes on unchanged content
// as attributes of retains.
func DiffAttributes(v bool) DiffOption {
	return func(c *DiffConfig) { c.Attributes = v }
}

// Diff returns a minimal change turning document a into document b, so
// that Compose(a, d) equals b. Embeds are compared as a whole. Without
// DiffAttributes, formatting is ignored.
//
// Diff returns an error wrapping ErrNotADocument if a or b contains a
// retain or a delete.
func Diff(a, b Delta, opts ...DiffOption) (Delta, error) {
	cfg := &DiffConfig{Cursor: -1}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := a.checkDocument("old"); err != nil {
		return nil, err
	}
	if err := b.checkDocument("new"); err != nil {
		return nil, err
	}
	if a.Equal(b) {
		return nil, nil
	}
	from, to := flatten(a), flatten(b)
	hunks := libdiff.Text(from, to, cfg.Cursor)
	if debug.Diff() {
		debug.Logf("diff %q -> %q\n%s\n", from, to, debug.Dump(hunks))
	}

	ai, bi := NewIterator(a), NewIterator(b)
	var res Delta
	for _, h := range hunks {
		for n := h.Len(); n > 0; {
			var k int
			switch h.Kind {
			case libdiff.InsertHunk:
				k = min(available(bi), n)
				res.Push(bi.Next(k))
			case libdiff.DeleteHunk:
				k = min(available(ai), n)
				ai.Next(k)
				res.Delete(k)
			case libdiff.EqualHunk:
				k = min(available(ai), available(bi), n)
				aOp, bOp := ai.Next(k), bi.Next(k)
				if !sameInsert(aOp, bOp) {
					res.Push(bOp)
					res.Delete(k)
					break
				}
				var attrs attr.Map
				if cfg.Attributes {
					attrs = attr.Diff(aOp.Attributes, bOp.Attributes)
				}
				res.Retain(k, attrs)
			}
			n -= k
		}
	}
	return *res.Chop(), nil
}

// flatten joins the text of d, rejoining surrogate halves split across
// ops.
func flatten(d Delta) string {
	var b []byte
	for i := range d {
		if d[i].Embed != nil {
			b = append(b, embedChar...)
			continue
		}
		b = utf16x.Append(b, d[i].Text)
	}
	return string(b)
}

func available(it *Iterator) int {
	n, ok := it.PeekLength()
	if !ok {
		panic("delta: diff script overruns document")
	}
	return n
}
