package delta

import "github.com/signadot/delta/attr"

// Invert returns the change undoing change, given that change applies to
// document base:
//
//	Compose(Compose(base, change), Invert(change, base)) == base
func Invert(change, base Delta) Delta {
	var res Delta
	baseIndex := 0
	for _, op := range change {
		switch {
		case op.Kind == InsertKind:
			res.Delete(op.Len())
		case op.Kind == RetainKind && len(op.Attributes) == 0:
			res.Retain(op.N, nil)
			baseIndex += op.N
		default:
			for _, baseOp := range base.Slice(baseIndex, baseIndex+op.N) {
				if op.Kind == DeleteKind {
					res.Push(baseOp)
					continue
				}
				res.Retain(baseOp.Len(), attr.Invert(op.Attributes, baseOp.Attributes))
			}
			baseIndex += op.N
		}
	}
	return *res.Chop()
}
