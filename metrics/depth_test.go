package metrics

import (
	"testing"

	"github.com/katalvlaran/treebuild/core"
)

// chain builds a left-leaning chain of n nodes.
func chain(n int) *core.Node {
	var root *core.Node
	for i := n - 1; i >= 0; i-- {
		node := core.NewNode(int64(i))
		node.Left = root
		root = node
	}

	return root
}

// balancedTree builds the complete tree
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
func balancedTree() *core.Node {
	root := core.NewNode(1)
	root.Left = core.NewNode(2)
	root.Right = core.NewNode(3)
	root.Left.Left = core.NewNode(4)
	root.Left.Right = core.NewNode(5)

	return root
}

func TestMaxDepth_Empty(t *testing.T) {
	if got := MaxDepth(nil); got != 0 {
		t.Errorf("MaxDepth(nil) = %d; want 0", got)
	}
}

func TestMaxDepth_SingleNode(t *testing.T) {
	if got := MaxDepth(core.NewNode(7)); got != 1 {
		t.Errorf("MaxDepth(leaf) = %d; want 1", got)
	}
}

func TestMaxDepth_BalancedTree(t *testing.T) {
	if got := MaxDepth(balancedTree()); got != 3 {
		t.Errorf("MaxDepth = %d; want 3", got)
	}
}

func TestMaxDepth_Chain(t *testing.T) {
	if got := MaxDepth(chain(17)); got != 17 {
		t.Errorf("MaxDepth(chain 17) = %d; want 17", got)
	}
}

func TestMaxDepth_DeepChain(t *testing.T) {
	// Recursion depth equals tree height; a 10_000-node degenerate chain
	// must still measure correctly.
	const depth = 10_000
	if got := MaxDepth(chain(depth)); got != depth {
		t.Errorf("MaxDepth(chain %d) = %d; want %d", depth, got, depth)
	}
}
