// Package metrics computes structural measurements over binary trees built
// on core.Node: maximum depth, height balance, and diameter.
//
// Every metric is a pure, single-pass, bottom-up traversal:
//
//   - MaxDepth   — node count along the longest root-to-leaf path.
//   - IsBalanced — every node's subtree heights differ by at most one.
//   - Diameter   — longest path between any two nodes, counted in edges.
//
// All three are nil-safe and never fail: the empty tree has depth 0, is
// balanced, and has diameter 0. Recursion depth is bounded by tree height,
// so callers measuring pathologically deep chains budget stack accordingly.
// No metric mutates the tree or keeps state between calls, so they are safe
// to run concurrently on the same tree.
package metrics
