// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// detect.go — input format detection heuristic.

package builder

import "strings"

// DetectFormat inspects raw input and guesses its serialization format.
// The decision order is fixed and first-match-wins:
//
//  1. Empty or nil input               → FormatNone (caller: empty tree).
//  2. Values containing a null marker  → LevelOrder.
//  3. Text containing '(' or ')'       → Parenthesis.
//  4. Otherwise                        → PreOrder (default fallback).
//
// Step 4 is a HEURISTIC, not a verified detection: a flat value sequence
// without markers is indistinguishable from an in-order or post-order
// traversal, and the fallback can silently mis-decode such input. Callers
// that know the format should state it explicitly via BuildAs.
//
// The marker set consulted in step 2 is the resolved option set (default
// {-1, -999}; see WithNullMarkers), so detection and level-order
// reconstruction always agree on what a marker is.
//
// Complexity: O(n) over the input, O(1) extra space.
func DetectFormat(in Input, opts ...BuildOption) Format {
	cfg := newBuildConfig(opts...)

	switch v := in.(type) {
	case Values:
		if len(v) == 0 {
			return FormatNone
		}
		for _, x := range v {
			if cfg.isMarker(x) {
				return LevelOrder
			}
		}

		return PreOrder

	case Text:
		if len(v) == 0 {
			return FormatNone
		}
		if strings.ContainsAny(string(v), "()") {
			return Parenthesis
		}

		return PreOrder

	default:
		// Nil interface: no input at all.
		return FormatNone
	}
}
