// Package libdiff provides the building blocks of yabe's pairwise diff.
//
// A diff is an [ir.Node] holding the parts of a candidate document which
// differ from a reference document, or nil when there is no difference.
// The diff is relative to the candidate: content present only in the
// reference is never reported.
//
// # Usage
//
//	// Diff two mappings, recursing with df on shared fields
//	d := libdiff.DiffObject(candidate, reference, df)
//
//	// Diff two sequences of the same length position by position
//	d := libdiff.DiffArrayByIndex(candidate, reference, df)
//
//	// Line diff of two rendered documents
//	lines := libdiff.Text(want, got)
//
// # Related Packages
//
//   - github.com/signadot/yabe - Diff, built on this package
//   - github.com/signadot/yabe/ir - IR representation
package libdiff

import "github.com/signadot/yabe/ir"

// DiffFunc computes the diff of candidate against reference, returning nil
// when they do not differ.
type DiffFunc func(candidate, reference *ir.Node) *ir.Node
