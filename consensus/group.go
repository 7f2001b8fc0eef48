package consensus

import "github.com/signadot/yabe/ir"

// group is a set of equal values.
type group struct {
	id    int
	rep   *ir.Node
	count int
}

type groups struct {
	// list is in order of first occurrence.
	list   []*group
	member []int
}

// groupValues partitions values by ir.Equal. Candidates are found by hash
// and confirmed by comparison.
func groupValues(values []*ir.Node) *groups {
	gs := &groups{member: make([]int, len(values))}
	buckets := map[uint64][]*group{}
	for i, v := range values {
		h := v.Hash()
		var g *group
		for _, c := range buckets[h] {
			if ir.Equal(c.rep, v) {
				g = c
				break
			}
		}
		if g == nil {
			g = &group{id: len(gs.list), rep: v}
			gs.list = append(gs.list, g)
			buckets[h] = append(buckets[h], g)
		}
		g.count++
		gs.member[i] = g.id
	}
	return gs
}

// first returns the earliest group with at least required members, or nil.
func (gs *groups) first(required int) *group {
	for _, g := range gs.list {
		if g.count >= required {
			return g
		}
	}
	return nil
}
