package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

func (y *Node) MarshalJSON() ([]byte, error) {
	if y == nil {
		return []byte("null"), nil
	}
	switch y.Type {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		return strconv.AppendBool(nil, y.Bool), nil
	case NumberType:
		switch {
		case y.Int64 != nil:
			return strconv.AppendInt(nil, *y.Int64, 10), nil
		case y.Float64 != nil:
			return json.Marshal(*y.Float64)
		default:
			return []byte(y.Number), nil
		}
	case StringType:
		return json.Marshal(y.String)
	case ArrayType:
		buf := bytes.NewBuffer([]byte{'['})
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := v.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case ObjectType:
		buf := bytes.NewBuffer([]byte{'{'})
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			d, err := y.Values[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: cannot marshal type %s", ErrBadValue, y.Type)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	res, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *res
	return nil
}

// FromJSON decodes a node from JSON text.
func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return res, nil
}

// ToJSON encodes a node as compact JSON text.
func ToJSON(y *Node) ([]byte, error) {
	return y.MarshalJSON()
}
