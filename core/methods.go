// Package core: structural helpers on Node.
//
// All methods here are nil-safe (a nil receiver is the empty tree) and
// read-only, so they may run concurrently on the same tree.
package core

// IsLeaf reports whether n exists and has no children.
// Complexity: O(1)
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Count returns the number of nodes in the subtree rooted at n.
// The empty tree has zero nodes.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Count() + n.Right.Count()
}

// Clone returns a deep copy of the subtree rooted at n.
// The copy shares no nodes with the original; values are copied as-is.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Value: n.Value,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// Equal reports whether the subtrees rooted at n and other have identical
// shape and identical values at every position. Two empty trees are equal.
// Complexity: O(min(n, m)) time, O(h) stack.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.Value == other.Value &&
		n.Left.Equal(other.Left) &&
		n.Right.Equal(other.Right)
}
