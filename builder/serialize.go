// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// serialize.go — inverse serializers for round-trips and debugging.
//
// Each serializer is the inverse of the reconstruction algorithm of the
// same format: FromLevelOrder(ToLevelOrder(t, m), WithNullMarkers(m))
// rebuilds a tree Equal to t for every tree t.

package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/treebuild/core"
)

// ToLevelOrder serializes a tree into a breadth-first value sequence using
// marker for absent children, in exactly the form FromLevelOrder consumes:
// the root value first, then one left/right pair per visited node. The
// empty tree serializes to an empty sequence.
// Complexity: O(n) time, O(w) queue.
func ToLevelOrder(root *core.Node, marker int64) []int64 {
	if root == nil {
		return nil
	}

	out := []int64{root.Value}
	queue := []*core.Node{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Left != nil {
			out = append(out, current.Left.Value)
			queue = append(queue, current.Left)
		} else {
			out = append(out, marker)
		}
		if current.Right != nil {
			out = append(out, current.Right.Value)
			queue = append(queue, current.Right)
		} else {
			out = append(out, marker)
		}
	}

	return out
}

// ToParenthesis serializes a tree into parenthesized notation: a leaf is
// its value, an inner node appends "(left)" and, when a right child exists,
// "(right)". The empty tree serializes to "".
//
// Caveat: a node with ONLY a right child emits an empty left group, e.g.
// "1()(2)" — faithful, but outside the grammar FromParenthesis accepts
// (an empty group has no value token), so such trees do not round-trip
// through text. Every tree without right-only nodes does.
// Complexity: O(n) time, O(h) stack.
func ToParenthesis(root *core.Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	writeParenthesis(&sb, root)

	return sb.String()
}

func writeParenthesis(sb *strings.Builder, n *core.Node) {
	sb.WriteString(strconv.FormatInt(n.Value, 10))
	if n.Left == nil && n.Right == nil {
		return
	}

	sb.WriteByte('(')
	if n.Left != nil {
		writeParenthesis(sb, n.Left)
	}
	sb.WriteByte(')')

	if n.Right != nil {
		sb.WriteByte('(')
		writeParenthesis(sb, n.Right)
		sb.WriteByte(')')
	}
}
