// Package metrics implements structural measurements on core.Node trees.
//
// # IsBalanced — height-balance check
//
// A tree is height-balanced iff, for EVERY node, its two subtree heights
// differ by at most 1 and both subtrees are themselves balanced.
//
// Steps:
//  1. Empty subtree → (balanced, height 0).
//  2. Recurse into both children, obtaining (balanced, height) pairs.
//  3. This node is balanced iff both children are and their heights differ
//     by at most maxHeightSkew.
//  4. Height bubbles up as 1 + max(child heights).
//
// Returning the (balanced, height) pair from one pass is what keeps the
// check linear; recomputing heights per node would degrade to O(n²).
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height
package metrics

import "github.com/katalvlaran/treebuild/core"

// maxHeightSkew is the largest allowed height difference between a node's
// subtrees in a balanced tree.
const maxHeightSkew = 1

// IsBalanced reports whether the tree rooted at root is height-balanced.
// The empty tree is balanced.
func IsBalanced(root *core.Node) bool {
	balanced, _ := checkBalance(root)

	return balanced
}

// checkBalance returns whether the subtree at n is balanced together with
// its height, so each node is visited exactly once.
func checkBalance(n *core.Node) (bool, int) {
	if n == nil {
		return true, 0
	}

	leftBalanced, leftHeight := checkBalance(n.Left)
	rightBalanced, rightHeight := checkBalance(n.Right)

	skew := leftHeight - rightHeight
	if skew < 0 {
		skew = -skew
	}
	balanced := leftBalanced && rightBalanced && skew <= maxHeightSkew

	height := leftHeight
	if rightHeight > height {
		height = rightHeight
	}

	return balanced, 1 + height
}
