// Package yabe extracts a shared base from a set of YAML documents.
//
// The tree algorithms operate on [ir.Node] values:
//
//   - [Diff] reports what a candidate document adds to a reference.
//   - [Merge] lays an override document on top of a base.
//   - [Sort] puts keys and sequence elements in a canonical order.
//
// N-way base extraction lives in package consensus.
//
// Values handed to these functions are never modified and results may share
// sub-trees with their arguments.
package yabe
