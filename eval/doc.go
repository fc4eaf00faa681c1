// Package eval evaluates expr-lang expressions against the operations of a
// delta.
//
// An expression sees one operation at a time through [Env]:
//
//	kind == "insert" && "bold" in attributes
//	isEmbed && embed.image != nil
//	kind == "delete" && length > 3
//	index == 0 || offset >= 10
//
// The functions utf16len and getenv are available in addition to the expr
// builtins.
package eval
