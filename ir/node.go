package ir

import (
	"maps"
	"slices"
	"time"
)

type Node struct {
	Type Type

	// Container fields. For DictType, Keys[i] is the key of Values[i].
	// For ArrayType only Values is used.
	Keys   []string
	Values []*Node

	// Scalar fields, one of which is set based on Type.
	Bool   bool
	Data   []byte
	Date   time.Time
	Int    int64
	Real   float64
	String string
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromData(v []byte) *Node {
	return &Node{
		Type: DataType,
		Data: v,
	}
}

func FromDate(v time.Time) *Node {
	return &Node{
		Type: DateType,
		Date: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntegerType,
		Int:  v,
	}
}

func FromReal(v float64) *Node {
	return &Node{
		Type: RealType,
		Real: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

// FromMap builds a dictionary node from a Go map. Since Go maps have no
// iteration order, entries are sorted by key for determinism.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   DictType,
		Keys:   make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// FromKeyVals builds a dictionary node from alternating key, value
// arguments, preserving the given order. It panics on a non-string key,
// a non-node value, or a trailing key without a value.
func FromKeyVals(keyVals ...any) *Node {
	if len(keyVals)%2 != 0 {
		panic("FromKeyVals: odd number of arguments")
	}
	res := &Node{
		Type:   DictType,
		Keys:   make([]string, 0, len(keyVals)/2),
		Values: make([]*Node, 0, len(keyVals)/2),
	}
	for i := 0; i < len(keyVals); i += 2 {
		res.Keys = append(res.Keys, keyVals[i].(string))
		res.Values = append(res.Values, keyVals[i+1].(*Node))
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(node.Keys))
	for i, key := range node.Keys {
		res[key] = node.Values[i]
	}
	return res
}

// Len returns the number of direct children: entries for a dictionary,
// elements for an array, 0 for scalars.
func (node *Node) Len() int {
	switch node.Type {
	case DictType:
		return len(node.Keys)
	case ArrayType:
		return len(node.Values)
	default:
		return 0
	}
}

// Get returns the value for key in a dictionary node. The second return
// is false if node is not a dictionary or the key is absent. When a key
// occurs more than once, the first occurrence wins.
func (node *Node) Get(key string) (*Node, bool) {
	if node.Type != DictType {
		return nil, false
	}
	for i, k := range node.Keys {
		if k == key {
			return node.Values[i], true
		}
	}
	return nil, false
}

// Set sets key to value in a dictionary node, replacing the first existing
// entry for key or appending a new one.
func (node *Node) Set(key string, value *Node) {
	for i, k := range node.Keys {
		if k == key {
			node.Values[i] = value
			return
		}
	}
	node.Keys = append(node.Keys, key)
	node.Values = append(node.Values, value)
}

// At returns the i-th element of an array node, or nil when out of range
// or not an array.
func (node *Node) At(i int) *Node {
	if node.Type != ArrayType || i < 0 || i >= len(node.Values) {
		return nil
	}
	return node.Values[i]
}

func (node *Node) Clone() *Node {
	res := &Node{}
	return node.CloneTo(res)
}

func (node *Node) CloneTo(dst *Node) *Node {
	dst.Type = node.Type
	dst.Bool = node.Bool
	dst.Date = node.Date
	dst.Int = node.Int
	dst.Real = node.Real
	dst.String = node.String
	if node.Data != nil {
		dst.Data = slices.Clone(node.Data)
	}
	if node.Keys != nil {
		dst.Keys = slices.Clone(node.Keys)
	}
	if node.Values != nil {
		dst.Values = make([]*Node, len(node.Values))
		for i, v := range node.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}
