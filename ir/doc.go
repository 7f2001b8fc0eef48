// Package ir provides the in-memory representation of configuration
// documents operated on by yabe.
//
// # Overview
//
// A document is a tree of [Node] values. The tree is a recursive tagged
// union: the Type field selects one of seven variants and the value lives in
// the field belonging to that variant.
//
//   - NullType: no value
//   - BoolType: Bool
//   - IntType: Int64
//   - RealType: Number, the textual representation of the number as it
//     appeared in the source. Reals are never parsed to floats so that they
//     round trip without precision drift.
//   - StringType: String
//   - SequenceType: Values, in order
//   - MappingType: Fields and Values
//
// # Mappings
//
// For MappingType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Keys are unique
// under [Equal]. The order of entries is kept for serialization but carries
// no meaning: two mappings with the same entries in different orders are
// equal.
//
// # Sharing
//
// Nodes carry no parent links. The algorithms in yabe never modify a node
// they are given and freely return sub-trees of their inputs as parts of
// their results, so once a node has been handed to them it must be treated
// as read-only. Use [Node.Clone] to obtain an independent copy.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	real := ir.FromReal("1.50")
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	seq := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Comparison and Hashing
//
// [Equal] is structural equality and is what every yabe algorithm uses.
// [Compare] is a total order used to lay out sorted mapping keys.
// [Node.Hash] is consistent with Equal and lets callers bucket nodes before
// confirming equality.
//
// # Related Packages
//
//   - github.com/signadot/yabe/parse - Parses YAML text into nodes
//   - github.com/signadot/yabe/encode - Encodes nodes to YAML or JSON
//   - github.com/signadot/yabe/consensus - N-way base extraction
package ir
