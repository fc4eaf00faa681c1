package attr

import (
	"maps"
	"slices"

	"github.com/signadot/delta/ir"

	mapset "github.com/deckarep/golang-set/v2"
)

// Map maps formatting keys to values. Values are never mutated once placed
// in a Map.
type Map map[string]*ir.Node

// Clone returns a copy of m, or nil if m is empty.
func (m Map) Clone() Map {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Equal reports whether a and b hold the same keys with equal values. A
// null value and an absent key are different.
func Equal(a, b Map) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !ir.Equal(av, bv) {
			return false
		}
	}
	return true
}

// Compose returns the attributes resulting from applying b on top of a.
// Keys of b win; keys of a not mentioned by b survive. When keepNull is
// false, null markers of b are resolved away instead of being propagated.
func Compose(a, b Map, keepNull bool) Map {
	res := make(Map, len(a)+len(b))
	for k, v := range b {
		if !keepNull && v.IsNull() {
			continue
		}
		res[k] = v
	}
	for k, v := range a {
		if _, ok := b[k]; !ok {
			res[k] = v
		}
	}
	return res.Clone()
}

// Transform returns b rebased against the concurrent a. Without priority b
// applies as is; with priority a wins every key they both set.
func Transform(a, b Map, priority bool) Map {
	if len(a) == 0 {
		return b.Clone()
	}
	if len(b) == 0 {
		return nil
	}
	if !priority {
		return b.Clone()
	}
	res := Map{}
	for k, v := range b {
		if _, ok := a[k]; !ok {
			res[k] = v
		}
	}
	return res.Clone()
}

// Diff returns the attributes which turn a into b: every key whose value
// differs, mapped to b's value or to null when b lacks the key.
func Diff(a, b Map) Map {
	keys := mapset.NewThreadUnsafeSet[string]()
	for k := range a {
		keys.Add(k)
	}
	for k := range b {
		keys.Add(k)
	}
	res := Map{}
	for _, k := range keys.ToSlice() {
		av, aok := a[k]
		bv, bok := b[k]
		if aok == bok && ir.Equal(av, bv) {
			continue
		}
		if !bok {
			res[k] = ir.Null()
			continue
		}
		res[k] = bv
	}
	return res.Clone()
}

// Invert returns the attributes undoing attrs when they were applied to
// content formatted with base.
func Invert(attrs, base Map) Map {
	res := Map{}
	for k, bv := range base {
		if av, ok := attrs[k]; ok && !ir.Equal(av, bv) {
			res[k] = bv
		}
	}
	for k := range attrs {
		if _, ok := base[k]; !ok {
			res[k] = ir.Null()
		}
	}
	return res.Clone()
}
