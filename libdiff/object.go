package libdiff

import "github.com/signadot/yabe/ir"

// DiffObject diffs two mappings. Every field of candidate is diffed with df
// against the reference's value under the same key, or against null when the
// reference lacks the key. Fields with no difference are left out. The result
// is nil when no field differs.
func DiffObject(candidate, reference *ir.Node, df DiffFunc) *ir.Node {
	var kvs []ir.KeyVal
	for i, field := range candidate.Fields {
		ref, ok := reference.Lookup(field)
		if !ok {
			ref = ir.Null()
		}
		d := df(candidate.Values[i], ref)
		if d == nil {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: field, Val: d})
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}
