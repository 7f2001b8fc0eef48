package yabe

import (
	"cmp"
	"slices"

	"github.com/signadot/yabe/debug"
	"github.com/signadot/yabe/ir"
)

// SortConfig selects how Sort orders sequences and mappings. A nil field
// leaves the corresponding containers in their current order.
type SortConfig struct {
	// SortKey orders sequences of mappings by the string value of this
	// field.
	SortKey *string
	// PreOrder lists mapping keys which come first, in the listed order.
	// The remaining keys follow in ir.Compare order. An empty non-nil
	// PreOrder sorts every key.
	PreOrder []string
	// MaxDepth bounds the recursion, 0 means ir.DefaultMaxDepth. Deeper
	// sub-trees are left as they are.
	MaxDepth int
}

// SortConfigFromNode reads a sort configuration document with the fields
// sortKey (a string) and preOrder (a sequence of strings). A field which is
// missing or has the wrong type is unset, and non-string preOrder entries
// are ignored.
func SortConfigFromNode(node *ir.Node) *SortConfig {
	cfg := &SortConfig{}
	if node == nil || node.Type != ir.MappingType {
		return cfg
	}
	if sk := ir.Get(node, "sortKey"); sk != nil && sk.Type == ir.StringType {
		key := sk.String
		cfg.SortKey = &key
	}
	if po := ir.Get(node, "preOrder"); po != nil && po.Type == ir.SequenceType {
		cfg.PreOrder = make([]string, 0, len(po.Values))
		for _, v := range po.Values {
			if v.Type != ir.StringType {
				continue
			}
			cfg.PreOrder = append(cfg.PreOrder, v.String)
		}
	}
	return cfg
}

// Sort returns value reordered according to cfg. Sort is idempotent and
// never modifies value.
func Sort(value *ir.Node, cfg *SortConfig) *ir.Node {
	if value == nil || cfg == nil {
		return value
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = ir.DefaultMaxDepth
	}
	res := sortNode(value, cfg, maxDepth)
	if debug.Sort() {
		debug.Logf("sorted %s\n", res)
	}
	return res
}

func sortNode(node *ir.Node, cfg *SortConfig, depth int) *ir.Node {
	if depth <= 0 {
		return node
	}
	switch node.Type {
	case ir.SequenceType:
		elts := slices.Clone(node.Values)
		if cfg.SortKey != nil {
			sortByField(elts, *cfg.SortKey)
		}
		for i, elt := range elts {
			elts[i] = sortNode(elt, cfg, depth-1)
		}
		return ir.FromSlice(elts)
	case ir.MappingType:
		kvs := node.KeyVals()
		if cfg.PreOrder != nil {
			kvs = preOrder(kvs, cfg.PreOrder)
		}
		for i := range kvs {
			kvs[i].Val = sortNode(kvs[i].Val, cfg, depth-1)
		}
		return ir.FromKeyVals(kvs)
	default:
		return node
	}
}

func sortByField(elts []*ir.Node, field string) {
	key := func(n *ir.Node) (string, bool) {
		v := ir.Get(n, field)
		if v == nil || v.Type != ir.StringType {
			return "", false
		}
		return v.String, true
	}
	slices.SortStableFunc(elts, func(a, b *ir.Node) int {
		ak, aok := key(a)
		bk, bok := key(b)
		switch {
		case aok && bok:
			return cmp.Compare(ak, bk)
		case aok:
			return -1
		case bok:
			return 1
		}
		return 0
	})
}

func preOrder(kvs []ir.KeyVal, order []string) []ir.KeyVal {
	res := make([]ir.KeyVal, 0, len(kvs))
	taken := make([]bool, len(kvs))
	for _, name := range order {
		for i := range kvs {
			if taken[i] || kvs[i].Key.Type != ir.StringType || kvs[i].Key.String != name {
				continue
			}
			res = append(res, kvs[i])
			taken[i] = true
			break
		}
	}
	rest := make([]ir.KeyVal, 0, len(kvs)-len(res))
	for i := range kvs {
		if !taken[i] {
			rest = append(rest, kvs[i])
		}
	}
	slices.SortStableFunc(rest, func(a, b ir.KeyVal) int {
		return ir.Compare(a.Key, b.Key)
	})
	return append(res, rest...)
}
