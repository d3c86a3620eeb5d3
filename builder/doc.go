// Package builder reconstructs binary trees from serialized traversal
// formats: level-order sequences with null markers, full pre-order and
// post-order sequences, and parenthesized text. It lives alongside core
// (node model) and metrics (structural measurements) and centralizes
// format detection, per-format reconstruction, dispatch, and the inverse
// serializers.
//
// The package offers the following key components:
//
//   - Input kinds (closed set):
//     – Values:            an ordered sequence of int64 values.
//     – Text:              a textual tree expression.
//   - Format detection:
//     – DetectFormat:      first-match heuristic over the input
//     (empty → FormatNone, null marker → LevelOrder,
//     '(' or ')' → Parenthesis, otherwise PreOrder).
//   - Reconstruction (one constructor per format):
//     – FromLevelOrder:    breadth-first queue assignment, O(n) time, O(w) space.
//     – FromPreOrder:      forward-cursor recursive consumption, O(n)/O(h).
//     – FromPostOrder:     backward-cursor recursive consumption, O(n)/O(h).
//     – FromParenthesis:   single-pass recursive-descent parser, O(n)/O(h).
//   - Dispatch:
//     – Build:             detect, then construct.
//     – BuildAs:           explicit format, strict error on unknown names
//     and on the unsupported in-order format.
//   - Serializers (inverses, for round-trips and debugging):
//     – ToLevelOrder:      level-order sequence with a caller-chosen marker.
//     – ToParenthesis:     canonical parenthesized text.
//   - Configuration primitives:
//     – BuildOption:       a function that mutates buildConfig before use.
//     – WithNullMarkers:   override the level-order null-marker set.
//     – WithNodeCountCheck: strict node-count validation for pre/post-order.
//
// Guarantees:
//
//   - Deterministic: identical input, format, and options produce an
//     identical tree; there is no hidden global state, so independent
//     calls are safe to run concurrently.
//   - Empty input always yields the empty (nil) tree, never an error.
//   - Error paths never return a partial tree.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; all runtime failures are sentinel errors wrapped
//     with %w (branch with errors.Is).
//
// See individual function documentation for detailed contracts, panic
// conditions, and the known ambiguity caveats of marker-free formats.
package builder
