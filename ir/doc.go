// Package ir provides the value representation used for delta attribute
// values and embed payloads.
//
// # Overview
//
// Attribute values and embeds are arbitrary JSON-like values. The IR
// represents them as a tree of nodes working as a tagged union: the Type
// field selects which of the payload fields are meaningful.
//
//   - NullType: null. As an attribute value, null is the explicit
//     "clear this formatting key" marker, distinct from the key being absent.
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number as a string fallback
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the key of Values[i]
//
// # Creating Nodes
//
//	bold := ir.FromBool(true)
//	img := ir.FromMap(map[string]*ir.Node{
//	    "image": ir.FromString("https://example.com/a.png"),
//	})
//	clear := ir.Null()
//
// # IR Structure Constraints
//
// Object fields are unique and kept sorted, so two objects holding the same
// entries are structurally identical regardless of the order in which the
// entries were decoded. Constructors and the JSON codec maintain this.
//
// # Comparison
//
//	equal := ir.Equal(a, b)
//	order := ir.Compare(a, b)
//
// Numbers compare by numeric value, so 1 and 1.0 are equal, matching JSON
// semantics.
//
// # JSON Interoperability
//
// Nodes marshal to and from plain JSON. FromAny and ToAny convert between
// nodes and the values produced by encoding/json.
//
// # Thread Safety
//
// Nodes are treated as immutable once constructed; callers that need to
// modify a node must Clone it first.
package ir
