package ast

// Clone returns a deep copy of n: every descendant is a new *Node with the
// same Kind, payload and lineno, recursively. Cloning nil yields nil, so a
// clone of an absent child slot stays absent (original source: Node::clone).
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	clone := *n
	if n.children != nil {
		clone.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			clone.children[i] = Clone(child)
		}
	}
	return &clone
}
