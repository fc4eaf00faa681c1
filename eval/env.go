package eval

import (
	"github.com/signadot/delta"
	"github.com/signadot/delta/ir"
)

// Env is what an expression sees of an operation.
type Env struct {
	Kind       string         `expr:"kind"`
	Text       string         `expr:"text"`
	Embed      any            `expr:"embed"`
	IsEmbed    bool           `expr:"isEmbed"`
	Length     int            `expr:"length"`
	Attributes map[string]any `expr:"attributes"`
	// Index is the position of the op in its delta.
	Index int `expr:"index"`
	// Offset is the sum of the lengths of the preceding ops.
	Offset int `expr:"offset"`
}

func NewEnv(op delta.Op, index, offset int) Env {
	env := Env{
		Kind:       op.Kind.String(),
		Text:       op.Text,
		IsEmbed:    op.IsEmbed(),
		Length:     op.Len(),
		Attributes: make(map[string]any, len(op.Attributes)),
		Index:      index,
		Offset:     offset,
	}
	if op.Embed != nil {
		env.Embed = ir.ToAny(op.Embed)
	}
	for k, v := range op.Attributes {
		env.Attributes[k] = ir.ToAny(v)
	}
	return env
}
