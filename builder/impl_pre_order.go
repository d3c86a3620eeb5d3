// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// impl_pre_order.go — recursive reconstruction from a full pre-order
// sequence without markers.
//
// Steps:
//  1. Empty input → empty tree.
//  2. Take the value at the cursor as this node; advance the cursor.
//  3. Recursively build the left subtree, continuing to consume from the
//     same cursor; then the right subtree.
//  4. A cursor past the end of the input terminates the branch (nil child).
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebuild/core"
)

// preOrderWalker holds the cursor state for one reconstruction. Each call
// owns its walker, so concurrent builds never share state.
type preOrderWalker struct {
	values []int64
	pos    int // next value to consume
	built  int // nodes created so far
}

// FromPreOrder reconstructs a tree from a FULL pre-order traversal in which
// absent children are not marked. The input length is assumed to match the
// node count exactly.
//
// Caveat: without null markers this format alone cannot disambiguate tree
// shape — the result is only faithful when the input was produced by a
// matching pre-order serializer that emits exactly one value per node. The
// algorithm is shape-deterministic for a given input, nothing more. Enable
// WithNodeCountCheck to fail with ErrLengthMismatch when the reconstructed
// node count diverges from the input length.
func FromPreOrder(values []int64, opts ...BuildOption) (*core.Node, error) {
	cfg := newBuildConfig(opts...)
	if len(values) == 0 {
		return nil, nil
	}

	w := &preOrderWalker{values: values}
	root := w.build()

	if cfg.strict && w.built != len(values) {
		return nil, fmt.Errorf("FromPreOrder: built %d nodes from %d values: %w",
			w.built, len(values), ErrLengthMismatch)
	}

	return root, nil
}

// build consumes values in root-left-right order from the shared cursor.
func (w *preOrderWalker) build() *core.Node {
	if w.pos >= len(w.values) {
		return nil
	}

	node := core.NewNode(w.values[w.pos])
	w.pos++
	w.built++

	node.Left = w.build()
	node.Right = w.build()

	return node
}
