// Package attr implements the formatting attribute maps carried by delta
// operations, together with the rules combining them under compose,
// transform, diff and invert.
//
// # Null markers
//
// A key mapped to a null value (see ir.Null) is an explicit instruction to
// clear that formatting key. It is distinct from the key being absent,
// which means "leave as is". Every function here preserves that
// distinction.
//
// # Empty maps
//
// An empty map is equivalent to no attributes. All functions return nil
// rather than an empty map, so results compare equal with == nil checks and
// serialize without an "attributes" key.
package attr
