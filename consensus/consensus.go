package consensus

import (
	"github.com/signadot/yabe/debug"
	"github.com/signadot/yabe/ir"
)

// Common computes the base shared by at least Required(quorum, len(values))
// of values, together with one diff per value, index aligned with values.
//
// A nil base means no part of values reached the quorum. A nil diff means
// the corresponding value is entirely accounted for by the base.
//
// For mappings, the union of keys is reconciled key by key, with null
// standing in for a missing key. A key's sub-base is an entry of the base
// and a value's sub-diff is an entry of its diff, except that a null diff
// is dropped when the key has no base. Any other type is atomic. Values
// whose types differ have no base and are each their own diff.
//
// values are not modified, and the results share sub-trees with them. A
// nil element of values is treated as null.
func Common(values []*ir.Node, quorum float64, opts ...Opt) (*ir.Node, []*ir.Node) {
	if len(values) == 0 {
		return nil, []*ir.Node{}
	}
	cfg := newConfig(opts)
	vs := make([]*ir.Node, len(values))
	for i, v := range values {
		if v == nil {
			v = ir.Null()
		}
		vs[i] = v
	}
	required := Required(quorum, len(vs))
	if debug.Common() {
		debug.Logf("common of %d values, %d required\n", len(vs), required)
	}
	return common(vs, required, cfg.maxDepth)
}

func common(values []*ir.Node, required, depth int) (*ir.Node, []*ir.Node) {
	typ := values[0].Type
	for _, v := range values[1:] {
		if v.Type != typ {
			if debug.Common() {
				debug.Logf("type conflict: %s\n", values)
			}
			return nil, own(values)
		}
	}
	if typ != ir.MappingType || depth <= 0 {
		return atomic(values, required)
	}
	return mapping(values, required, depth)
}

// own makes every value its own diff.
func own(values []*ir.Node) []*ir.Node {
	diffs := make([]*ir.Node, len(values))
	copy(diffs, values)
	return diffs
}

func atomic(values []*ir.Node, required int) (*ir.Node, []*ir.Node) {
	gs := groupValues(values)
	g := gs.first(required)
	if g == nil {
		if debug.Common() {
			debug.Logf("no quorum among %s\n", values)
		}
		return nil, own(values)
	}
	diffs := make([]*ir.Node, len(values))
	for i, v := range values {
		if gs.member[i] != g.id {
			diffs[i] = v
		}
	}
	if debug.Common() {
		debug.Logf("base %s with %d of %d\n", g.rep, g.count, len(values))
	}
	return g.rep, diffs
}

func mapping(values []*ir.Node, required, depth int) (*ir.Node, []*ir.Node) {
	n := len(values)
	var baseKVs []ir.KeyVal
	diffKVs := make([][]ir.KeyVal, n)
	sub := make([]*ir.Node, n)
	for _, key := range unionKeys(values) {
		for i, v := range values {
			x, ok := v.Lookup(key)
			if !ok {
				x = ir.Null()
			}
			sub[i] = x
		}
		subBase, subDiffs := common(sub, required, depth-1)
		if subBase != nil {
			baseKVs = append(baseKVs, ir.KeyVal{Key: key, Val: subBase})
		}
		for i, d := range subDiffs {
			if d == nil {
				continue
			}
			if subBase == nil && d.Type == ir.NullType {
				continue
			}
			diffKVs[i] = append(diffKVs[i], ir.KeyVal{Key: key, Val: d})
		}
	}
	var base *ir.Node
	if len(baseKVs) != 0 {
		base = ir.FromKeyVals(baseKVs)
	}
	diffs := make([]*ir.Node, n)
	for i, kvs := range diffKVs {
		if len(kvs) != 0 {
			diffs[i] = ir.FromKeyVals(kvs)
		}
	}
	return base, diffs
}

// unionKeys returns the keys of all mappings in values, in the order they
// are first seen.
func unionKeys(values []*ir.Node) []*ir.Node {
	var res []*ir.Node
	strs := map[string]bool{}
	others := map[uint64][]*ir.Node{}
	for _, v := range values {
		for _, key := range v.Fields {
			if key.Type == ir.StringType {
				if strs[key.String] {
					continue
				}
				strs[key.String] = true
				res = append(res, key)
				continue
			}
			h := key.Hash()
			dup := false
			for _, o := range others[h] {
				if ir.Equal(o, key) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			others[h] = append(others[h], key)
			res = append(res, key)
		}
	}
	return res
}
