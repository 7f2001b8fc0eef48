package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	Int64  int64
	Number string
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Int64:  y.Int64,
		Number: y.Number,
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

// FromReal makes a real number node from its textual representation. The
// text is kept verbatim and never parsed.
func FromReal(text string) *Node {
	return &Node{
		Type:   RealType,
		Number: text,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   SequenceType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals makes a mapping from kvs in order. A key occurring more than
// once keeps its first position and takes its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   MappingType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		key := kv.Key
		if key == nil {
			key = Null()
		}
		if i := res.index(key); i != -1 {
			res.Values[i] = kv.Val
			continue
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// FromMap makes a mapping with string keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   MappingType,
		Fields: make([]*Node, len(yMap)),
		Values: make([]*Node, len(yMap)),
	}
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

// KeyVals returns the entries of a mapping in stored order, or nil if y is
// not a mapping.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != MappingType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Lookup finds the value stored under key in a mapping. Keys are matched
// with [Equal].
func (y *Node) Lookup(key *Node) (*Node, bool) {
	if y.Type != MappingType {
		return nil, false
	}
	i := y.index(key)
	if i == -1 {
		return nil, false
	}
	return y.Values[i], true
}

func (y *Node) index(key *Node) int {
	for i, f := range y.Fields {
		if key.Type == StringType {
			if f.Type == StringType && f.String == key.String {
				return i
			}
			continue
		}
		if Equal(f, key) {
			return i
		}
	}
	return -1
}

// Get returns the value under the string key field, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != MappingType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		f := y.Fields[i]
		if f.Type == StringType && f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of entries of a mapping or elements of a sequence.
func (y *Node) Len() int {
	return len(y.Values)
}
