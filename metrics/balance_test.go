package metrics

import (
	"testing"

	"github.com/katalvlaran/treebuild/core"
)

func TestIsBalanced_Empty(t *testing.T) {
	if !IsBalanced(nil) {
		t.Error("IsBalanced(nil) = false; want true")
	}
}

func TestIsBalanced_SingleNode(t *testing.T) {
	if !IsBalanced(core.NewNode(1)) {
		t.Error("IsBalanced(leaf) = false; want true")
	}
}

func TestIsBalanced_BalancedTree(t *testing.T) {
	if !IsBalanced(balancedTree()) {
		t.Error("IsBalanced = false; want true")
	}
}

func TestIsBalanced_Chain(t *testing.T) {
	if IsBalanced(chain(3)) {
		t.Error("IsBalanced(chain 3) = true; want false")
	}
	// A two-node chain skews by exactly one level: still balanced.
	if !IsBalanced(chain(2)) {
		t.Error("IsBalanced(chain 2) = false; want true")
	}
}

func TestIsBalanced_DeepSubtreeImbalance(t *testing.T) {
	// Balanced at the root, unbalanced deeper down: both subtrees of the
	// root have equal height, but the left child itself is a 3-chain.
	root := core.NewNode(1)
	root.Left = chain(3)
	root.Right = chain(3)
	if IsBalanced(root) {
		t.Error("IsBalanced = true; want false (inner node skewed)")
	}
}

func TestIsBalanced_SkewWithinOne(t *testing.T) {
	// Root with a two-level left subtree and a leaf right subtree.
	root := core.NewNode(1)
	root.Left = core.NewNode(2)
	root.Left.Left = core.NewNode(3)
	root.Right = core.NewNode(4)
	if !IsBalanced(root) {
		t.Error("IsBalanced = false; want true (skew exactly 1 everywhere)")
	}
}
