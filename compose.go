package delta

import (
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/debug"
)

// Compose returns a change equivalent to applying a and then b.
func Compose(a, b Delta) Delta {
	if debug.Compose() {
		debug.Logf("compose\n  a: %s\n  b: %s\n", a, b)
	}
	ai, bi := NewIterator(a), NewIterator(b)
	var res Delta

	// inserts of a entirely inside a leading plain retain of b are kept
	// verbatim.
	if first, ok := bi.Peek(); ok && first.Kind == RetainKind && len(first.Attributes) == 0 {
		left := first.N
		for ai.PeekKind() == InsertKind {
			n, _ := ai.PeekLength()
			if n > left {
				break
			}
			left -= n
			res.Push(ai.NextOp())
		}
		if first.N-left > 0 {
			bi.Next(first.N - left)
		}
	}

	for ai.HasNext() || bi.HasNext() {
		switch {
		case bi.PeekKind() == InsertKind:
			res.Push(bi.NextOp())
		case ai.PeekKind() == DeleteKind:
			res.Push(ai.NextOp())
		default:
			n := minPeek(ai, bi)
			aOp, bOp := ai.Next(n), bi.Next(n)
			switch {
			case bOp.Kind == RetainKind:
				op := aOp
				if aOp.Kind == RetainKind {
					op = RetainOp(n, nil)
				}
				op.Attributes = attr.Compose(aOp.Attributes, bOp.Attributes, aOp.Kind == RetainKind)
				res.Push(op)

				// the rest of b is a plain retain: the rest of a is
				// unchanged.
				if !bi.HasNext() && res[len(res)-1].Equal(op) {
					res = res.Concat(ai.Rest())
					return *res.Chop()
				}
			case bOp.Kind == DeleteKind && aOp.Kind == RetainKind:
				res.Push(bOp)
			}
			// b deleting what a inserted: both vanish.
		}
	}
	return *res.Chop()
}

// minPeek returns the smaller remaining length of the current ops of a and
// b. At most one of them may be exhausted.
func minPeek(a, b *Iterator) int {
	an, aok := a.PeekLength()
	bn, bok := b.PeekLength()
	switch {
	case !aok:
		return bn
	case !bok:
		return an
	default:
		return min(an, bn)
	}
}
