// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildAs(in, method, opts...). Resolves cfg, checks the
//     input kind, dispatches to the matching From* constructor.
//   - Build(in, opts...) = DetectFormat + BuildAs; explicit format always wins
//     over detection.
//   - The format set is CLOSED: dispatch is a fixed switch over Format values,
//     not an extensible registry.
//   - Functional options (BuildOption) resolve into an immutable buildConfig
//     (no global state).
//   - Safety: never panic at runtime; return sentinel errors wrapped with %w;
//     no partial tree accompanies a non-nil error.
//
// AI-Hints (practical):
//   - Branch on failures with errors.Is against the sentinels in errors.go.
//   - InOrder is deliberately recognized-but-rejected (ErrInsufficientInfo);
//     do not route it to a constructor.
//   - Use WithNullMarkers(...) when the input uses non-default sentinels;
//     detection and level-order reconstruction share the same resolved set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treebuild/core"
)

// Format names a traversal serialization format. The set is closed; see the
// constants below. An unknown Format passed to BuildAs is an error, never a
// silent fallback.
type Format string

const (
	// LevelOrder is a breadth-first value sequence using null markers for
	// absent children.
	LevelOrder Format = "level_order"

	// PreOrder is a full root-left-right value sequence without markers.
	PreOrder Format = "pre_order"

	// PostOrder is a full left-right-root value sequence without markers.
	PostOrder Format = "post_order"

	// Parenthesis is textual "value(left)(right)" notation, e.g.
	// "1(2(4)(5))(3(6)(7))".
	Parenthesis Format = "parenthesis"

	// InOrder is recognized but unsupported: an in-order traversal alone
	// never determines tree shape, so BuildAs always rejects it with
	// ErrInsufficientInfo.
	InOrder Format = "in_order"

	// FormatNone is reported by DetectFormat for empty input; the caller
	// must treat such input as the empty tree.
	FormatNone Format = ""
)

// Input is the closed set of raw inputs a tree can be reconstructed from:
// either a value sequence (Values) or a textual expression (Text).
type Input interface {
	// isInput is unexported on purpose: the input kind set is closed,
	// mirroring the closed format set.
	isInput()
}

// Values is an ordered sequence of integer values — level-order (with null
// markers) or a full pre/post-order traversal (without).
type Values []int64

func (Values) isInput() {}

// Text is a textual tree expression in parenthesized notation.
type Text string

func (Text) isInput() {}

// Build reconstructs a tree from in, detecting the format with DetectFormat
// and dispatching to the matching constructor. Empty or nil input yields the
// empty (nil) tree with no error.
//
// Errors are those of BuildAs for the detected format.
// Complexity: detection O(n) + the selected constructor's cost.
func Build(in Input, opts ...BuildOption) (*core.Node, error) {
	method := DetectFormat(in, opts...)
	if method == FormatNone {
		// Empty input: empty tree, not an error.
		return nil, nil
	}

	return BuildAs(in, method, opts...)
}

// BuildAs reconstructs a tree from in using the explicitly named method.
// The explicit name takes precedence over any detection heuristic.
//
// Errors:
//   - ErrUnsupportedMethod — method is outside the closed format set.
//   - ErrInsufficientInfo  — method is InOrder (never reconstructable alone).
//   - ErrInputKind         — in's kind does not match the method (e.g. Text
//     fed to a sequence format).
//   - constructor errors   — see FromParenthesis / FromPreOrder / FromPostOrder.
//
// Complexity: O(1) dispatch + the selected constructor's cost.
func BuildAs(in Input, method Format, opts ...BuildOption) (*core.Node, error) {
	switch method {
	case LevelOrder:
		values, ok := in.(Values)
		if !ok {
			return nil, fmt.Errorf("BuildAs: %s wants a value sequence: %w", method, ErrInputKind)
		}

		return FromLevelOrder(values, opts...)

	case PreOrder:
		values, ok := in.(Values)
		if !ok {
			return nil, fmt.Errorf("BuildAs: %s wants a value sequence: %w", method, ErrInputKind)
		}

		return FromPreOrder(values, opts...)

	case PostOrder:
		values, ok := in.(Values)
		if !ok {
			return nil, fmt.Errorf("BuildAs: %s wants a value sequence: %w", method, ErrInputKind)
		}

		return FromPostOrder(values, opts...)

	case Parenthesis:
		text, ok := in.(Text)
		if !ok {
			return nil, fmt.Errorf("BuildAs: %s wants text: %w", method, ErrInputKind)
		}

		return FromParenthesis(string(text), opts...)

	case InOrder:
		// Recognized and deliberately rejected: shape is ambiguous without
		// an auxiliary traversal.
		return nil, fmt.Errorf("BuildAs: %s: %w", method, ErrInsufficientInfo)

	default:
		return nil, fmt.Errorf("BuildAs: method %q: %w", string(method), ErrUnsupportedMethod)
	}
}
