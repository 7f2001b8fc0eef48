// Package encode writes IR nodes as YAML or JSON documents.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// single line flow style
//	err = encode.Encode(node, w, encode.EncodeFlow(true))
//
//	// JSON
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
// Mapping entries are written in stored order. Reals are written with the
// text they were parsed from.
//
// # Related Packages
//
//   - github.com/signadot/yabe/ir - IR representation
//   - github.com/signadot/yabe/parse - Parse text to IR
package encode
