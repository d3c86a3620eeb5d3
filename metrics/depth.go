// Package metrics implements structural measurements on core.Node trees.
//
// # MaxDepth — maximum tree depth
//
// The depth of a tree is the number of nodes along the longest path from
// the root down to a leaf. The empty tree has depth 0.
//
// Steps:
//  1. Empty subtree → 0.
//  2. Otherwise 1 + max(depth(left), depth(right)), computed bottom-up.
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height
package metrics

import "github.com/katalvlaran/treebuild/core"

// MaxDepth returns the maximum depth of the tree rooted at root, in nodes.
// A nil root is the empty tree and has depth 0.
func MaxDepth(root *core.Node) int {
	if root == nil {
		return 0
	}

	left := MaxDepth(root.Left)
	right := MaxDepth(root.Right)
	if left > right {
		return 1 + left
	}

	return 1 + right
}
