package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the node, consistent with [Equal]: equal
// nodes hash equally. The hash is stable across processes. Mapping entries
// are combined without regard to their order.
//
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	h := xxhash.New()
	var b [8]byte

	h.Write([]byte{byte(n.Type)})

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case RealType:
		h.WriteString(n.Number)
	case StringType:
		h.WriteString(n.String)
	case SequenceType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MappingType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Fields)))
		h.Write(b[:])
		var sum uint64
		var pair [16]byte
		for i, field := range n.Fields {
			binary.LittleEndian.PutUint64(pair[:8], field.Hash())
			binary.LittleEndian.PutUint64(pair[8:], n.Values[i].Hash())
			sum += xxhash.Sum64(pair[:])
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}
