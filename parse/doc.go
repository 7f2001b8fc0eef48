// Package parse reads YAML and JSON documents into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("a: 1\nb: [x, y]\n"))
//
//	// second document of a stream
//	node, err = parse.Parse(data, parse.ParseDoc(1))
//
//	// every document
//	nodes, err := parse.ParseAll(data)
//
// Empty input and empty documents parse to a null node. Real numbers keep
// the exact text they were written with. Anchors are resolved by expanding
// aliases, tags are dropped except that !!str forces a string.
//
// Nesting deeper than [ir.DefaultMaxDepth] (or the [MaxDepth] option) is
// rejected with [ErrTooDeep].
package parse
