// Package metrics implements structural measurements on core.Node trees.
//
// # Diameter — longest path between any two nodes
//
// The diameter is the number of EDGES on the longest path between any two
// nodes; the path need not pass through the root. The empty tree and a
// single node both have diameter 0.
//
// Steps:
//  1. Empty subtree → (diameter 0, height 0).
//  2. Recurse into both children, obtaining (diameter, height) pairs.
//  3. The candidate at this node is the larger of the children's diameters
//     and the path through this node: leftHeight + rightHeight edges.
//  4. Height bubbles up as 1 + max(child heights); the root's candidate is
//     the global diameter.
//
// As with the balance check, carrying the (diameter, height) pair through
// one pass avoids per-node height recomputation and keeps the walk linear.
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height
package metrics

import "github.com/katalvlaran/treebuild/core"

// Diameter returns the longest path between any two nodes of the tree
// rooted at root, counted in edges. The empty tree has diameter 0.
func Diameter(root *core.Node) int {
	diameter, _ := diameterHeight(root)

	return diameter
}

// diameterHeight returns the diameter of the subtree at n together with
// its height (in nodes), so each node is visited exactly once. A node's
// height in nodes equals the edge count from the node to its deepest
// descendant plus one, which is why the through-path below is the plain
// sum of the two child heights.
func diameterHeight(n *core.Node) (int, int) {
	if n == nil {
		return 0, 0
	}

	leftDiameter, leftHeight := diameterHeight(n.Left)
	rightDiameter, rightHeight := diameterHeight(n.Right)

	diameter := leftDiameter
	if rightDiameter > diameter {
		diameter = rightDiameter
	}
	if through := leftHeight + rightHeight; through > diameter {
		diameter = through
	}

	height := leftHeight
	if rightHeight > height {
		height = rightHeight
	}

	return diameter, 1 + height
}
