package yabe

import (
	"github.com/signadot/yabe/debug"
	"github.com/signadot/yabe/ir"
)

// Merge lays override on top of base.
//
// When both are mappings, keys of base keep their position and keys only in
// override are appended in override's order. Values under shared keys are
// merged recursively. In every other case override replaces base
// wholesale.
//
// A nil override yields base and a nil base yields override.
func Merge(base, override *ir.Node) *ir.Node {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	res := doMerge(base, override)
	if debug.Merge() {
		debug.Logf("merge %s onto %s: %s\n", override, base, res)
	}
	return res
}

func doMerge(base, override *ir.Node) *ir.Node {
	if base.Type != ir.MappingType || override.Type != ir.MappingType {
		return override
	}
	kvs := base.KeyVals()
	for i, field := range override.Fields {
		val := override.Values[i]
		if bv, ok := base.Lookup(field); ok {
			val = doMerge(bv, val)
		}
		kvs = append(kvs, ir.KeyVal{Key: field, Val: val})
	}
	return ir.FromKeyVals(kvs)
}
