package delta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/delta/attr"
	"github.com/signadot/delta/internal/utf16x"
	"github.com/signadot/delta/ir"
)

func (op Op) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	switch op.Kind {
	case InsertKind:
		buf.WriteString(`"insert":`)
		var (
			d   []byte
			err error
		)
		if op.Embed != nil {
			d, err = op.Embed.MarshalJSON()
		} else {
			d, err = marshalText(op.Text)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	case RetainKind:
		buf.WriteString(`"retain":`)
		buf.WriteString(strconv.Itoa(op.N))
	case DeleteKind:
		buf.WriteString(`"delete":`)
		buf.WriteString(strconv.Itoa(op.N))
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrBadOp, op.Kind)
	}
	if len(op.Attributes) != 0 {
		buf.WriteString(`,"attributes":`)
		d, err := ir.FromMap(op.Attributes).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (op *Op) UnmarshalJSON(d []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(d, &obj); err != nil {
		return fmt.Errorf("%w: %w", ErrBadOp, err)
	}
	if obj == nil {
		return fmt.Errorf("%w: null op", ErrBadOp)
	}
	var res Op
	found := 0
	for _, key := range []string{"insert", "retain", "delete"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		found++
		switch key {
		case "insert":
			res.Kind = InsertKind
			if err := decodeInsert(raw, &res); err != nil {
				return err
			}
		case "retain":
			res.Kind = RetainKind
			n, err := decodeLength(key, raw)
			if err != nil {
				return err
			}
			res.N = n
		case "delete":
			res.Kind = DeleteKind
			n, err := decodeLength(key, raw)
			if err != nil {
				return err
			}
			res.N = n
		}
	}
	if found != 1 {
		return fmt.Errorf("%w: want exactly one of insert, retain or delete, got %d", ErrBadOp, found)
	}
	if raw, ok := obj["attributes"]; ok && res.Kind != DeleteKind {
		attrs, err := decodeAttributes(raw)
		if err != nil {
			return err
		}
		res.Attributes = attrs
	}
	*op = res
	return nil
}

func decodeInsert(raw json.RawMessage, op *Op) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &op.Text); err != nil {
			return fmt.Errorf("%w: insert: %w", ErrBadOp, err)
		}
		if bytes.Contains(bytes.ToLower(raw), []byte(`\ud`)) {
			op.Text = unquoteText(raw)
		}
		return nil
	}
	node, err := ir.FromJSON(raw)
	if err != nil {
		return fmt.Errorf("%w: insert: %w", ErrBadOp, err)
	}
	if node.IsNull() {
		return fmt.Errorf("%w: null insert", ErrBadOp)
	}
	op.Embed = node
	return nil
}

// marshalText quotes s, writing lone surrogates as \u escapes.
func marshalText(s string) ([]byte, error) {
	if !utf16x.HasSurrogates(s) {
		return json.Marshal(s)
	}
	res := []byte{'"'}
	var chunk []rune
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		d, err := json.Marshal(string(chunk))
		if err != nil {
			return err
		}
		res = append(res, d[1:len(d)-1]...)
		chunk = chunk[:0]
		return nil
	}
	for _, r := range utf16x.Runes(s) {
		if utf16.IsSurrogate(r) {
			if err := flush(); err != nil {
				return nil, err
			}
			res = fmt.Appendf(res, `\u%04x`, r)
			continue
		}
		chunk = append(chunk, r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return append(res, '"'), nil
}

// unquoteText decodes the JSON string raw keeping lone surrogates, which
// encoding/json replaces. raw must be a valid JSON string.
func unquoteText(raw []byte) string {
	var u []uint16
	raw = raw[1 : len(raw)-1]
	for i := 0; i < len(raw); {
		if raw[i] != '\\' {
			r, size := utf8.DecodeRune(raw[i:])
			u = utf16.AppendRune(u, r)
			i += size
			continue
		}
		switch c := raw[i+1]; c {
		case 'b':
			u = append(u, '\b')
		case 'f':
			u = append(u, '\f')
		case 'n':
			u = append(u, '\n')
		case 'r':
			u = append(u, '\r')
		case 't':
			u = append(u, '\t')
		case 'u':
			v, _ := strconv.ParseUint(string(raw[i+2:i+6]), 16, 16)
			u = append(u, uint16(v))
			i += 4
		default:
			u = append(u, uint16(c))
		}
		i += 2
	}
	return utf16x.Decode(u)
}

func decodeLength(key string, raw json.RawMessage) (int, error) {
	n, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s length %s is not an integer", ErrBadOp, key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s length %d", ErrBadOp, key, n)
	}
	return n, nil
}

func decodeAttributes(raw json.RawMessage) (attr.Map, error) {
	node, err := ir.FromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: attributes: %w", ErrBadOp, err)
	}
	if node.IsNull() {
		return nil, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: attributes must be an object, got %s", ErrBadOp, node.Type)
	}
	return attr.Map(ir.ToMap(node)).Clone(), nil
}

// MarshalJSON encodes d as a JSON array of ops. A nil Delta encodes as [].
func (d Delta) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'['})
	for i := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		od, err := d[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(od)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array of ops, pushing each one so the
// result is canonical. Zero length ops are dropped.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var ops []Op
	if err := json.Unmarshal(data, &ops); err != nil {
		return err
	}
	var res Delta
	for i := range ops {
		res.Push(ops[i])
	}
	*d = res
	return nil
}
