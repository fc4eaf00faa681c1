package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/delta"
	"github.com/signadot/delta/format"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent int
	format format.Format
	wire   bool

	Color func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes d to w followed by a newline. JSON is indented unless
// EncodeWire is set; YAML is always block style.
func Encode(d delta.Delta, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	data, err := d.MarshalJSON()
	if err != nil {
		return err
	}
	switch {
	case es.format.IsYAML():
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return err
		}
	case es.wire:
	default:
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, data, "", strings.Repeat(" ", es.indent)); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		_, err = w.Write([]byte{'\n'})
	}
	return err
}
