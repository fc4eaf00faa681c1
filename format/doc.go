// Package format names the text formats deltas are read from and written
// to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
//	// guess from a file name, defaulting to JSON
//	f, ok := format.FromPath("doc.yml")
//
// # Related Packages
//
//   - github.com/signadot/delta/parse - Parse text to deltas
//   - github.com/signadot/delta/encode - Encode deltas to text
package format
