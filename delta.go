package delta

import (
	"fmt"
	"slices"

	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/debug"
	"github.com/signadot/delta/internal/utf16x"
	"github.com/signadot/delta/ir"
)

// Delta is a list of operations kept in canonical form by Push:
//
//   - no two adjacent deletes;
//   - no two adjacent text inserts, or retains, with equal attributes;
//   - an insert never directly follows a delete.
type Delta []Op

// New returns the Delta obtained by pushing each of ops in turn.
func New(ops ...Op) Delta {
	var d Delta
	for i := range ops {
		d.Push(ops[i])
	}
	return d
}

func (d *Delta) Insert(text string, attrs attr.Map) *Delta {
	return d.Push(InsertOp(text, attrs))
}

// InsertEmbed appends an embed insert. A nil v is ignored.
func (d *Delta) InsertEmbed(v *ir.Node, attrs attr.Map) *Delta {
	if v == nil {
		return d
	}
	return d.Push(EmbedOp(v, attrs))
}

func (d *Delta) Retain(n int, attrs attr.Map) *Delta {
	return d.Push(RetainOp(n, attrs))
}

func (d *Delta) Delete(n int) *Delta {
	return d.Push(DeleteOp(n))
}

// Push appends op to d, merging it with its neighbour when possible. Ops
// of length zero or less are ignored. Like append, Push may modify the
// array underlying d.
func (d *Delta) Push(op Op) *Delta {
	if op.Len() <= 0 {
		return d
	}
	op = op.canonical()
	if debug.Push() {
		debug.Logf("push %s onto %d ops\n", op, len(*d))
	}
	ops := *d
	index := len(ops)
	if index > 0 {
		last := ops[index-1]
		if op.Kind == DeleteKind && last.Kind == DeleteKind {
			ops[index-1] = DeleteOp(last.N + op.N)
			return d
		}
		// inserting before or after a delete is the same, so always
		// insert first.
		if last.Kind == DeleteKind && op.Kind == InsertKind {
			index--
			if index == 0 {
				*d = slices.Insert(ops, 0, op)
				return d
			}
			last = ops[index-1]
		}
		if attr.Equal(op.Attributes, last.Attributes) {
			switch {
			case op.isText() && last.isText():
				ops[index-1] = InsertOp(utf16x.Concat(last.Text, op.Text), op.Attributes)
				return d
			case op.Kind == RetainKind && last.Kind == RetainKind:
				ops[index-1] = RetainOp(last.N+op.N, op.Attributes)
				return d
			}
		}
	}
	*d = slices.Insert(ops, index, op)
	return d
}

// Chop drops a trailing retain without attributes, which has no effect.
func (d *Delta) Chop() *Delta {
	ops := *d
	if n := len(ops); n > 0 && ops[n-1].Kind == RetainKind && len(ops[n-1].Attributes) == 0 {
		*d = ops[:n-1]
	}
	return d
}

// Length returns the sum of the lengths of the ops in d.
func (d Delta) Length() int {
	n := 0
	for i := range d {
		n += d[i].Len()
	}
	return n
}

// BaseLength returns the length of the document d applies to: the sum of
// its retains and deletes.
func (d Delta) BaseLength() int {
	n := 0
	for i := range d {
		if d[i].Kind != InsertKind {
			n += d[i].N
		}
	}
	return n
}

// ChangeLength returns by how much applying d changes the length of a
// document.
func (d Delta) ChangeLength() int {
	n := 0
	for i := range d {
		switch d[i].Kind {
		case InsertKind:
			n += d[i].Len()
		case DeleteKind:
			n -= d[i].N
		}
	}
	return n
}

// IsDocument reports whether d consists only of inserts.
func (d Delta) IsDocument() bool {
	return d.checkDocument("") == nil
}

func (d Delta) checkDocument(which string) error {
	for i := range d {
		if d[i].Kind != InsertKind {
			if which != "" {
				return fmt.Errorf("%w: %s op %d is a %s", ErrNotADocument, which, i, d[i].Kind)
			}
			return fmt.Errorf("%w: op %d is a %s", ErrNotADocument, i, d[i].Kind)
		}
	}
	return nil
}

// Slice returns the ops of d covering [start, end). A negative end means
// the end of d.
func (d Delta) Slice(start, end int) Delta {
	var res Delta
	it := NewIterator(d)
	index := 0
	for (end < 0 || index < end) && it.HasNext() {
		var op Op
		switch {
		case index < start:
			op = it.Next(start - index)
		case end < 0:
			op = it.NextOp()
			res = append(res, op)
		default:
			op = it.Next(end - index)
			res = append(res, op)
		}
		index += op.Len()
	}
	return res
}

// Concat returns d followed by other, merging the ops where they meet.
func (d Delta) Concat(other Delta) Delta {
	res := slices.Clone(d)
	if len(other) > 0 {
		res.Push(other[0])
		res = append(res, other[1:]...)
	}
	return res
}

// Filter returns the ops of d for which keep returns true.
func (d Delta) Filter(keep func(Op) bool) Delta {
	var res Delta
	for i := range d {
		if keep(d[i]) {
			res = append(res, d[i])
		}
	}
	return res
}

// Partition splits d into the ops for which pred returns true and those for
// which it returns false.
func (d Delta) Partition(pred func(Op) bool) (Delta, Delta) {
	var pass, fail Delta
	for i := range d {
		if pred(d[i]) {
			pass = append(pass, d[i])
		} else {
			fail = append(fail, d[i])
		}
	}
	return pass, fail
}

// EachLine calls fn for each line of document d, with the attributes of the
// newline ending it. Iteration stops at the first op which is not an
// insert, or when fn returns false. A trailing line without a newline is
// passed with nil attributes.
func (d Delta) EachLine(fn func(line Delta, attrs attr.Map, i int) bool, newline string) {
	if newline == "" {
		newline = "\n"
	}
	nlLen := utf16x.Len(newline)
	it := NewIterator(d)
	var line Delta
	i := 0
	for it.HasNext() {
		if it.PeekKind() != InsertKind {
			return
		}
		cur, _ := it.Peek()
		remaining, _ := it.PeekLength()
		start := cur.Len() - remaining
		index := -1
		if cur.isText() {
			if pos := utf16x.Index(cur.Text, newline, start); pos >= 0 {
				index = pos - start
			}
		}
		switch {
		case index < 0:
			line.Push(it.NextOp())
		case index > 0:
			line.Push(it.Next(index))
		default:
			if !fn(line, it.Next(nlLen).Attributes, i) {
				return
			}
			i++
			line = nil
		}
	}
	if line.Length() > 0 {
		fn(line, nil, i)
	}
}

// Equal reports whether d and other hold equal ops.
func (d Delta) Equal(other Delta) bool {
	return slices.EqualFunc(d, other, Op.Equal)
}

func (d Delta) String() string {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%d ops", len(d))
	}
	return string(data)
}
