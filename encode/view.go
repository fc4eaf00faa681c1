package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/delta"
)

// View writes d to w as one line per op:
//
//	+ "Hello" bold=true
//	+ {"image":"a.png"}
//	= 3 color=null
//	- 2
func View(d delta.Delta, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	paint := es.Color
	if paint == nil {
		paint = func(_ ColorAttr, s string) string { return s }
	}
	for i := range d {
		line, err := viewOp(&d[i], paint)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func viewOp(op *delta.Op, paint func(ColorAttr, string) string) (string, error) {
	var sb strings.Builder
	switch op.Kind {
	case delta.InsertKind:
		sb.WriteString(paint(InsertColor, "+"))
		sb.WriteByte(' ')
		if op.Embed != nil {
			d, err := op.Embed.MarshalJSON()
			if err != nil {
				return "", err
			}
			sb.WriteString(paint(EmbedColor, string(d)))
		} else {
			d, err := json.Marshal(op.Text)
			if err != nil {
				return "", err
			}
			sb.WriteString(paint(InsertColor, string(d)))
		}
	case delta.RetainKind:
		sb.WriteString(paint(RetainColor, "= "+strconv.Itoa(op.N)))
	case delta.DeleteKind:
		sb.WriteString(paint(DeleteColor, "- "+strconv.Itoa(op.N)))
	default:
		return "", fmt.Errorf("%w: unknown kind %d", delta.ErrBadOp, op.Kind)
	}
	for _, k := range op.Attributes.Keys() {
		v := op.Attributes[k]
		d, err := v.MarshalJSON()
		if err != nil {
			return "", err
		}
		ca := ValueColor
		if v.IsNull() {
			ca = NullColor
		}
		sb.WriteByte(' ')
		sb.WriteString(paint(KeyColor, k))
		sb.WriteString(paint(SepColor, "="))
		sb.WriteString(paint(ca, string(d)))
	}
	return sb.String(), nil
}
