package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treebuild/builder"
)

func TestFromPostOrder_ExactShape(t *testing.T) {
	// Mirror of the pre-order rule: consumed right-to-left with the right
	// subtree built first, [1,2,4,5,3] yields the right-leaning chain
	// 3→5→4→2→1 rooted at the LAST element.
	root, err := builder.FromPostOrder([]int64{1, 2, 4, 5, 3})
	require.NoError(t, err)

	want := []int64{3, 5, 4, 2, 1}
	n := root
	for _, v := range want {
		require.NotNil(t, n)
		require.Equal(t, v, n.Value)
		require.Nil(t, n.Left)
		n = n.Right
	}
	require.Nil(t, n)
}

func TestFromPostOrder_Empty(t *testing.T) {
	root, err := builder.FromPostOrder([]int64{})
	require.NoError(t, err)
	require.Nil(t, root)
}

func TestFromPostOrder_NodeCountCheck(t *testing.T) {
	root, err := builder.FromPostOrder([]int64{7, 9}, builder.WithNodeCountCheck())
	require.NoError(t, err)
	require.Equal(t, 2, root.Count())
	require.Equal(t, int64(9), root.Value)
}
