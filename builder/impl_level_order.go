// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// impl_level_order.go — breadth-first reconstruction from a level-order
// sequence with null markers.
//
// Steps:
//  1. Empty input, or a null marker in first position → empty tree.
//  2. Create the root from the first value; seed a FIFO queue with it.
//  3. While the queue is non-empty and input remains:
//     3.1 Dequeue the next node awaiting children.
//     3.2 Consume one value as its left child (skip on marker/exhaustion);
//     enqueue a newly created child.
//     3.3 Consume the following value as its right child, same rule.
//  4. Values left over after the queue drains are ignored: every node has
//     been assigned both children.
//
// Time complexity: O(n)
// Memory usage:    O(w), w = maximum tree width

package builder

import "github.com/katalvlaran/treebuild/core"

// FromLevelOrder reconstructs a tree from a breadth-first value sequence in
// which absent children are written as null markers (default {-1, -999};
// override with WithNullMarkers). It never fails: empty input and a leading
// marker both yield the empty tree.
func FromLevelOrder(values []int64, opts ...BuildOption) (*core.Node, error) {
	cfg := newBuildConfig(opts...)
	if len(values) == 0 || cfg.isMarker(values[0]) {
		return nil, nil
	}

	root := core.NewNode(values[0])
	queue := []*core.Node{root}
	pos := 1

	for len(queue) > 0 && pos < len(values) {
		current := queue[0]
		queue = queue[1:]

		// Left child.
		if pos < len(values) && !cfg.isMarker(values[pos]) {
			current.Left = core.NewNode(values[pos])
			queue = append(queue, current.Left)
		}
		pos++

		// Right child.
		if pos < len(values) && !cfg.isMarker(values[pos]) {
			current.Right = core.NewNode(values[pos])
			queue = append(queue, current.Right)
		}
		pos++
	}

	return root, nil
}
