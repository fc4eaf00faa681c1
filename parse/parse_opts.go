package parse

import "github.com/signadot/delta/format"

type parseOpts struct {
	format   format.Format
	document bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseDocument requires the result to be a document, consisting only of
// inserts.
func ParseDocument() ParseOption {
	return func(o *parseOpts) { o.document = true }
}
