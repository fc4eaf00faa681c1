package delta

import (
	"slices"

	"github.com/signadot/delta/internal/utf16x"
)

// Iterator reads the ops of a Delta, allowing parts of an op to be
// consumed at a time. Its zero value is not usable; see NewIterator.
//
// Past the last op an Iterator is exhausted: PeekLength reports ok ==
// false, PeekKind reports RetainKind and Next yields retains, so that an
// exhausted side behaves as an endless retain.
type Iterator struct {
	ops    Delta
	index  int
	offset int
}

func NewIterator(d Delta) *Iterator {
	return &Iterator{ops: d}
}

// HasNext reports whether any part of an op remains.
func (it *Iterator) HasNext() bool {
	_, ok := it.PeekLength()
	return ok
}

// PeekLength returns the unconsumed length of the current op. ok is false
// when the iterator is exhausted.
func (it *Iterator) PeekLength() (n int, ok bool) {
	if it.index >= len(it.ops) {
		return 0, false
	}
	return it.ops[it.index].Len() - it.offset, true
}

// PeekKind returns the kind of the current op, or RetainKind when
// exhausted.
func (it *Iterator) PeekKind() Kind {
	if it.index >= len(it.ops) {
		return RetainKind
	}
	return it.ops[it.index].Kind
}

// Peek returns the whole current op, regardless of how much of it has been
// consumed.
func (it *Iterator) Peek() (Op, bool) {
	if it.index >= len(it.ops) {
		return Op{}, false
	}
	return it.ops[it.index], true
}

// Next consumes up to n units of the current op and returns an op for the
// consumed part. An embed is always returned whole. When the iterator is
// exhausted Next returns a retain of n without attributes.
//
// Next panics if n is not positive.
func (it *Iterator) Next(n int) Op {
	if n <= 0 {
		panic("delta: Iterator.Next with non-positive length")
	}
	if it.index >= len(it.ops) {
		return RetainOp(n, nil)
	}
	op := it.ops[it.index]
	offset := it.offset
	if remaining := op.Len() - offset; n >= remaining {
		n = remaining
		it.index++
		it.offset = 0
	} else {
		it.offset += n
	}
	switch op.Kind {
	case DeleteKind:
		return DeleteOp(n)
	case RetainKind:
		return RetainOp(n, op.Attributes)
	default:
		if op.Embed != nil {
			return op
		}
		return InsertOp(utf16x.Slice(op.Text, offset, offset+n), op.Attributes)
	}
}

// NextOp consumes the rest of the current op. It panics when the iterator
// is exhausted.
func (it *Iterator) NextOp() Op {
	n, ok := it.PeekLength()
	if !ok {
		panic("delta: Iterator.NextOp past the end")
	}
	return it.Next(n)
}

// Rest returns the unconsumed ops without moving the iterator.
func (it *Iterator) Rest() Delta {
	if !it.HasNext() {
		return nil
	}
	if it.offset == 0 {
		return slices.Clone(it.ops[it.index:])
	}
	index, offset := it.index, it.offset
	head := it.NextOp()
	res := append(Delta{head}, it.ops[it.index:]...)
	it.index, it.offset = index, offset
	return res
}
