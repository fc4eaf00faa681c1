package delta

import (
	"fmt"

	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/internal/utf16x"
	"github.com/signadot/delta/ir"
)

type Kind int8

const (
	InsertKind Kind = iota
	RetainKind
	DeleteKind
)

func (k Kind) String() string {
	switch k {
	case InsertKind:
		return "insert"
	case RetainKind:
		return "retain"
	case DeleteKind:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case InsertKind, RetainKind, DeleteKind:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrBadOp, int8(k))
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "insert":
		*k = InsertKind
	case "retain":
		*k = RetainKind
	case "delete":
		*k = DeleteKind
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrBadOp, d)
	}
	return nil
}

// Op is a single edit operation. Kind selects which payload is in use:
//
//   - InsertKind: Text, or Embed when Embed is non-nil.
//   - RetainKind, DeleteKind: N.
//
// Attributes apply to inserts and retains; deletes never carry any.
type Op struct {
	Kind       Kind
	Text       string
	Embed      *ir.Node
	N          int
	Attributes attr.Map
}

func InsertOp(text string, attrs attr.Map) Op {
	return Op{Kind: InsertKind, Text: text, Attributes: attrs}
}

func EmbedOp(v *ir.Node, attrs attr.Map) Op {
	return Op{Kind: InsertKind, Embed: v, Attributes: attrs}
}

func RetainOp(n int, attrs attr.Map) Op {
	return Op{Kind: RetainKind, N: n, Attributes: attrs}
}

func DeleteOp(n int) Op {
	return Op{Kind: DeleteKind, N: n}
}

// Len returns the length of op: the UTF-16 length of inserted text, 1 for
// an embed and N otherwise.
func (op Op) Len() int {
	switch op.Kind {
	case InsertKind:
		if op.Embed != nil {
			return 1
		}
		return utf16x.Len(op.Text)
	default:
		return op.N
	}
}

func (op Op) IsEmbed() bool {
	return op.Kind == InsertKind && op.Embed != nil
}

func (op Op) isText() bool {
	return op.Kind == InsertKind && op.Embed == nil
}

// Equal reports whether op and other are the same operation.
func (op Op) Equal(other Op) bool {
	if op.Kind != other.Kind {
		return false
	}
	switch op.Kind {
	case InsertKind:
		if !sameInsert(op, other) {
			return false
		}
	default:
		if op.N != other.N {
			return false
		}
	}
	return attr.Equal(op.Attributes, other.Attributes)
}

func (op Op) String() string {
	d, err := op.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("[%s %d]", op.Kind, op.Len())
	}
	return string(d)
}

// canonical returns op with only the fields its kind uses.
func (op Op) canonical() Op {
	switch op.Kind {
	case InsertKind:
		if op.Embed != nil {
			return Op{Kind: InsertKind, Embed: op.Embed, Attributes: op.Attributes.Clone()}
		}
		return Op{Kind: InsertKind, Text: op.Text, Attributes: op.Attributes.Clone()}
	case RetainKind:
		return Op{Kind: RetainKind, N: op.N, Attributes: op.Attributes.Clone()}
	default:
		return Op{Kind: DeleteKind, N: op.N}
	}
}

// sameInsert reports whether two inserts carry the same content.
func sameInsert(a, b Op) bool {
	if (a.Embed == nil) != (b.Embed == nil) {
		return false
	}
	if a.Embed != nil {
		return ir.Equal(a.Embed, b.Embed)
	}
	return a.Text == b.Text
}
