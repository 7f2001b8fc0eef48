package libdiff

import "github.com/signadot/yabe/ir"

// DiffArrayByIndex diffs two sequences element by element. Sequences of
// different lengths are not aligned: the whole candidate is the diff.
//
// Positions which do not differ hold a null placeholder so that the
// remaining elements keep their index. The result is nil when no position
// differs.
func DiffArrayByIndex(candidate, reference *ir.Node, df DiffFunc) *ir.Node {
	if len(candidate.Values) != len(reference.Values) {
		return candidate
	}
	res := make([]*ir.Node, len(candidate.Values))
	changed := false
	for i := range candidate.Values {
		d := df(candidate.Values[i], reference.Values[i])
		if d == nil {
			res[i] = ir.Null()
			continue
		}
		res[i] = d
		changed = true
	}
	if !changed {
		return nil
	}
	return ir.FromSlice(res)
}
