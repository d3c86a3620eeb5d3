package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treebuild/builder"
	"github.com/katalvlaran/treebuild/core"
)

func TestFromPreOrder_ExactShape(t *testing.T) {
	// The root/left/right consumption rule is shape-deterministic: with no
	// markers every value becomes the left child of its predecessor, so
	// [1,2,4,5,3] yields the left-leaning chain 1→2→4→5→3. Assert the
	// exact shape, not just the depth.
	root, err := builder.FromPreOrder([]int64{1, 2, 4, 5, 3})
	require.NoError(t, err)

	want := []int64{1, 2, 4, 5, 3}
	n := root
	for _, v := range want {
		require.NotNil(t, n)
		require.Equal(t, v, n.Value)
		require.Nil(t, n.Right)
		n = n.Left
	}
	require.Nil(t, n)
}

func TestFromPreOrder_Empty(t *testing.T) {
	root, err := builder.FromPreOrder(nil)
	require.NoError(t, err)
	require.Nil(t, root)
}

func TestFromPreOrder_SingleValue(t *testing.T) {
	root, err := builder.FromPreOrder([]int64{42})
	require.NoError(t, err)
	require.True(t, root.IsLeaf())
	require.Equal(t, int64(42), root.Value)
}

func TestFromPreOrder_NodeCountCheck(t *testing.T) {
	// Strict mode: the full-traversal assumption means every input value
	// creates exactly one node, so a well-formed sequence passes.
	root, err := builder.FromPreOrder([]int64{1, 2, 3}, builder.WithNodeCountCheck())
	require.NoError(t, err)
	require.Equal(t, 3, root.Count())
}

func TestPrePostOrder_MirrorEachOther(t *testing.T) {
	// Building pre-order from s and post-order from reversed s must yield
	// trees that are left/right mirrors of each other.
	s := []int64{10, 20, 30, 40}
	rev := []int64{40, 30, 20, 10}

	pre, err := builder.FromPreOrder(s)
	require.NoError(t, err)
	post, err := builder.FromPostOrder(rev)
	require.NoError(t, err)

	var mirror func(n *core.Node) *core.Node
	mirror = func(n *core.Node) *core.Node {
		if n == nil {
			return nil
		}
		m := core.NewNode(n.Value)
		m.Left, m.Right = mirror(n.Right), mirror(n.Left)
		return m
	}
	require.True(t, pre.Equal(mirror(post)))
}
