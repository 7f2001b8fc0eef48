package ir

// DefaultMaxDepth bounds the nesting of documents accepted by the parser
// and the recursion of the consensus and sort traversals.
const DefaultMaxDepth = 1000

// Depth returns the nesting depth of y: 0 for a leaf or an empty container,
// and one more than the deepest child otherwise. It walks the tree with an
// explicit stack so that it is safe on arbitrarily deep input.
func Depth(y *Node) int {
	if y == nil {
		return 0
	}
	type item struct {
		node  *Node
		depth int
	}
	deepest := 0
	stack := []item{{y, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > deepest {
			deepest = it.depth
		}
		for _, v := range it.node.Values {
			if v == nil {
				continue
			}
			if v.Type.IsLeaf() {
				if it.depth+1 > deepest {
					deepest = it.depth + 1
				}
				continue
			}
			stack = append(stack, item{v, it.depth + 1})
		}
	}
	return deepest
}
