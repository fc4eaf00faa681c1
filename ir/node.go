package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Int64 != nil {
		v := *y.Int64
		res.Int64 = &v
	}
	if y.Float64 != nil {
		v := *y.Float64
		res.Float64 = &v
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v, Number: strconv.FormatInt(v, 10)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f, Number: strconv.FormatFloat(f, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(ySlice []*Node) *Node {
	if ySlice == nil {
		ySlice = []*Node{}
	}
	return &Node{Type: ArrayType, Values: ySlice}
}

// FromMap creates an object node whose fields are the sorted keys of yMap.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: slices.Sorted(maps.Keys(yMap)),
	}
	res.Values = make([]*Node, len(res.Fields))
	for i, f := range res.Fields {
		res.Values[i] = yMap[f]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object node from kvs. Later duplicates replace
// earlier ones.
func FromKeyVals(kvs []KeyVal) *Node {
	m := make(map[string]*Node, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Val
	}
	return FromMap(m)
}

// ToMap returns the fields of an object node as a map, or nil if node is
// not an object.
func ToMap(node *Node) map[string]*Node {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// Get returns the value under field in object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i, found := slices.BinarySearch(y.Fields, field)
	if !found {
		return nil
	}
	return y.Values[i]
}
