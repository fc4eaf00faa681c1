// Package parse reads deltas from JSON or YAML text.
//
// The input is either an array of ops or an object whose "ops" field is
// such an array. Empty input, and null, read as the empty delta.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/format"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (delta.Delta, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsYAML() {
		if len(bytes.TrimSpace(d)) == 0 {
			return nil, nil
		}
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		d = j
	}
	d = bytes.TrimSpace(d)
	if len(d) == 0 || bytes.Equal(d, []byte("null")) {
		return nil, nil
	}
	if d[0] == '{' {
		var env struct {
			Ops json.RawMessage `json:"ops"`
		}
		if err := json.Unmarshal(d, &env); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if env.Ops == nil {
			return nil, fmt.Errorf("%w: object without ops", ErrParse)
		}
		d = env.Ops
	}
	var res delta.Delta
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if pOpts.document {
		for i := range res {
			if res[i].Kind != delta.InsertKind {
				return nil, fmt.Errorf("%w: op %d is a %s", delta.ErrNotADocument, i, res[i].Kind)
			}
		}
	}
	return res, nil
}
