// Package core defines the central Node type for binary trees and
// provides read-only structural helpers (Count, Clone, Equal, IsLeaf).
//
// A tree is identified solely by its root *Node; the empty tree is a nil
// root, never a sentinel node. Each node exclusively owns its Left and
// Right children, so the structure is acyclic by construction and needs
// no explicit teardown.
//
// Child links are mutated only during reconstruction (see the builder
// package); once a tree is handed to a caller its structure is treated
// as immutable, and everything here only reads it. That makes all core
// helpers safe to invoke concurrently on the same tree.
package core
