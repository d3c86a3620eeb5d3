// Package core: binary-tree Node type and constructor.
//
// This file declares Node and NewNode. Structural helper methods live in
// methods.go.
package core

// Node represents a single binary-tree node.
//
// Value holds the node's payload. Left and Right are the child links;
// a nil link means the child is absent. Each node has at most one parent
// across the whole tree — children are exclusively owned, never shared.
type Node struct {
	// Value is the payload carried by this node.
	Value int64

	// Left is the root of the left subtree, or nil.
	Left *Node

	// Right is the root of the right subtree, or nil.
	Right *Node
}

// NewNode creates a leaf node holding v; both child links start absent.
// Complexity: O(1)
func NewNode(v int64) *Node {
	return &Node{Value: v}
}
