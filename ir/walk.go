package ir

// WalkFunc is called for every node visited by Walk with the node's depth
// in the forest (0 for roots). Returning false skips the node's children.
type WalkFunc func(n *Node, depth int) bool

// Walk visits forest depth first, parents before children, in order.
func Walk(forest []*Node, f WalkFunc) {
	for _, n := range forest {
		walk(n, 0, f)
	}
}

func walk(n *Node, depth int, f WalkFunc) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, f)
	}
}

// Count returns the number of nodes in forest.
func Count(forest []*Node) int {
	ttl := 0
	Walk(forest, func(*Node, int) bool {
		ttl++
		return true
	})
	return ttl
}
