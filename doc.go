// Package delta implements rich-text change lists and the operational
// transformation algorithms over them.
//
// A [Delta] is a list of [Op]: inserts, retains and deletes, each of which
// may carry formatting attributes (see package attr). A Delta made only of
// inserts is a document; any other Delta is a change against a document.
//
// [Compose] merges two sequential changes, [Transform] rebases a change
// against a concurrent one and [TransformPosition] does the same for a
// single index. [Diff] computes the change between two documents and
// [Invert] the change undoing another one.
//
// All lengths and offsets are counted in UTF-16 code units. Every function
// builds its result through [Delta.Push], so results are always in
// canonical form. Inputs are never modified.
package delta
