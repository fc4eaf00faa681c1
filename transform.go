package delta

import (
	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/debug"
)

// Transform returns b rebased onto a, where a and b are concurrent changes
// to the same document: the change to apply after a so as to get the
// effect of b. When priority is true a is taken to have happened first, so
// its inserts go before inserts of b at the same position.
//
// For any a and b on the same document,
//
//	Compose(a, Transform(a, b, p)) == Compose(b, Transform(b, a, !p))
func Transform(a, b Delta, priority bool) Delta {
	if debug.Transform() {
		debug.Logf("transform priority=%t\n  a: %s\n  b: %s\n", priority, a, b)
	}
	ai, bi := NewIterator(a), NewIterator(b)
	var res Delta
	for ai.HasNext() || bi.HasNext() {
		switch {
		case ai.PeekKind() == InsertKind && (priority || bi.PeekKind() != InsertKind):
			res.Retain(ai.NextOp().Len(), nil)
		case bi.PeekKind() == InsertKind:
			res.Push(bi.NextOp())
		default:
			n := minPeek(ai, bi)
			aOp, bOp := ai.Next(n), bi.Next(n)
			switch {
			case aOp.Kind == DeleteKind:
				// already gone
			case bOp.Kind == DeleteKind:
				res.Push(bOp)
			default:
				res.Retain(n, attr.Transform(aOp.Attributes, bOp.Attributes, priority))
			}
		}
	}
	return *res.Chop()
}

// TransformPosition returns where index ends up once a is applied. With
// priority, an insert of a exactly at index leaves index before it.
func TransformPosition(a Delta, index int, priority bool) int {
	it := NewIterator(a)
	offset := 0
	for it.HasNext() && offset <= index {
		kind := it.PeekKind()
		n := it.NextOp().Len()
		switch kind {
		case DeleteKind:
			index -= min(n, index-offset)
			continue
		case InsertKind:
			if offset < index || !priority {
				index += n
			}
		}
		offset += n
	}
	if debug.Transform() {
		debug.Logf("transform position -> %d\n", index)
	}
	return index
}
