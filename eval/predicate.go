package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/delta"
	"github.com/signadot/delta/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrNotBool = errors.New("expression result is not a truth value")

// Predicate is a compiled expression over an [Env].
type Predicate struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Predicate, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Predicate{src: src, prog: prog}, nil
}

func (p *Predicate) String() string {
	return p.src
}

// Match evaluates p against op, which is the index'th op of its delta and
// starts at offset.
//
// Booleans are taken as is and nil is false. Any other result is judged
// by [ir.Truth]; results that have no JSON form give ErrNotBool.
func (p *Predicate) Match(op delta.Op, index, offset int) (bool, error) {
	v, err := expr.Run(p.prog, NewEnv(op, index, offset))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on %s: %w", p.src, op, err)
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case nil:
		return false, nil
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, p.src, v)
	}
	return ir.Truth(node), nil
}

// Filter returns the ops of d matching p, normalized.
func Filter(d delta.Delta, p *Predicate) (delta.Delta, error) {
	res := delta.Delta{}
	offset := 0
	for i, op := range d {
		ok, err := p.Match(op, i, offset)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Push(op)
		}
		offset += op.Len()
	}
	return res, nil
}
