package yabe

import (
	"github.com/signadot/yabe/debug"
	"github.com/signadot/yabe/ir"
	"github.com/signadot/yabe/libdiff"
)

// Diff reports what candidate carries on top of reference. If there are no
// differences, Diff returns nil.
//
//   - if the types differ, or both are scalars which differ, the result
//     is candidate itself.
//
//   - for mappings, every key of candidate is diffed against the value of
//     the same key in reference, or against null when reference lacks it.
//     Keys with no difference are absent from the result. Keys only in
//     reference are never reported.
//
//   - for sequences of the same length, elements are diffed by position and
//     positions with no difference hold a null placeholder. Sequences of
//     different lengths are not aligned: the whole candidate is the diff.
//
// The result shares unchanged sub-trees with candidate. A nil candidate has
// no diff; against a nil reference the whole candidate is the diff.
func Diff(candidate, reference *ir.Node) *ir.Node {
	var res *ir.Node
	switch {
	case candidate == nil:
	case reference == nil:
		res = candidate
	default:
		res = doDiff(candidate, reference)
	}
	if debug.Diff() {
		debug.Logf("diff %s against %s: %s\n", candidate, reference, res)
	}
	return res
}

func doDiff(candidate, reference *ir.Node) *ir.Node {
	if candidate.Type != reference.Type {
		return candidate
	}
	switch candidate.Type {
	case ir.MappingType:
		return libdiff.DiffObject(candidate, reference, doDiff)
	case ir.SequenceType:
		return libdiff.DiffArrayByIndex(candidate, reference, doDiff)
	case ir.NullType:
		return nil
	case ir.BoolType, ir.IntType, ir.RealType, ir.StringType:
		if ir.Equal(candidate, reference) {
			return nil
		}
		return candidate
	}
	return nil
}
