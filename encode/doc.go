// Package encode writes deltas as JSON, YAML or as a readable op listing.
//
// # Usage
//
//	// indented JSON
//	err := encode.Encode(d, os.Stdout)
//
//	// compact wire JSON
//	err := encode.Encode(d, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(d, w, encode.EncodeFormat(format.YAMLFormat))
//
//	// one line per op, coloured
//	err := encode.View(d, w, encode.EncodeColors(encode.NewColors()))
package encode
