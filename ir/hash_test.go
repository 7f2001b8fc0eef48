package ir

import "testing"

func TestHashConsistentWithEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		kv("a", FromInt(1)),
		kv("b", FromSlice([]*Node{FromString("x"), FromReal("1.5")})),
		kv("c", Null()),
	})
	b := FromKeyVals([]KeyVal{
		kv("c", Null()),
		kv("b", FromSlice([]*Node{FromString("x"), FromReal("1.5")})),
		kv("a", FromInt(1)),
	})
	if !Equal(a, b) {
		t.Fatal("expected equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal mappings hash differently")
	}
	if a.Hash() != a.Clone().Hash() {
		t.Errorf("clone hashes differently")
	}
}

func TestHashDistinguishes(t *testing.T) {
	nodes := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(0),
		FromInt(1),
		FromReal("1"),
		FromString("1"),
		FromString(""),
		FromSlice(nil),
		FromKeyVals(nil),
		FromSlice([]*Node{FromInt(1), FromInt(2)}),
		FromSlice([]*Node{FromInt(2), FromInt(1)}),
		FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)}),
		FromMap(map[string]*Node{"a": FromInt(2), "b": FromInt(1)}),
	}
	seen := map[uint64]int{}
	for i, n := range nodes {
		h := n.Hash()
		if j, ok := seen[h]; ok {
			t.Errorf("nodes %d and %d collide", j, i)
		}
		seen[h] = i
	}
}
