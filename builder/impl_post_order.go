// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// impl_post_order.go — recursive reconstruction from a full post-order
// sequence without markers. Mirror of impl_pre_order.go: the cursor starts
// at the LAST element and moves backward, and — because values are consumed
// right-to-left — the RIGHT subtree is built before the left one, which
// restores the original root-left-right shape.
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebuild/core"
)

// postOrderWalker holds the backward cursor for one reconstruction.
type postOrderWalker struct {
	values []int64
	pos    int // next value to consume, moving toward index 0
	built  int // nodes created so far
}

// FromPostOrder reconstructs a tree from a FULL post-order traversal in
// which absent children are not marked. Same full-traversal caveat as
// FromPreOrder: faithful only against a matching marker-free post-order
// serializer; WithNodeCountCheck enables the strict length validation.
func FromPostOrder(values []int64, opts ...BuildOption) (*core.Node, error) {
	cfg := newBuildConfig(opts...)
	if len(values) == 0 {
		return nil, nil
	}

	w := &postOrderWalker{values: values, pos: len(values) - 1}
	root := w.build()

	if cfg.strict && w.built != len(values) {
		return nil, fmt.Errorf("FromPostOrder: built %d nodes from %d values: %w",
			w.built, len(values), ErrLengthMismatch)
	}

	return root, nil
}

// build consumes values backward; right subtree first, then left.
func (w *postOrderWalker) build() *core.Node {
	if w.pos < 0 {
		return nil
	}

	node := core.NewNode(w.values[w.pos])
	w.pos--
	w.built++

	node.Right = w.build()
	node.Left = w.build()

	return node
}
