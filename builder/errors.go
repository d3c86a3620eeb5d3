// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Reconstruction MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap lower-level errors with method context: fmt.Errorf("FromParenthesis: ...: %w", err).
//   • Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import "errors"

// ErrUnsupportedMethod indicates an explicit format name outside the closed
// set of construction methods. Construction aborts; no partial tree.
// Usage: if errors.Is(err, ErrUnsupportedMethod) { /* reject format name */ }.
var ErrUnsupportedMethod = errors.New("builder: unsupported construction method")

// ErrInsufficientInfo indicates an in-order reconstruction request.
// An in-order traversal alone never uniquely determines tree shape, so the
// format is recognized but always rejected rather than guessed at.
// Usage: if errors.Is(err, ErrInsufficientInfo) { /* supply another format */ }.
var ErrInsufficientInfo = errors.New("builder: in-order traversal alone cannot determine tree shape")

// ErrMalformedText indicates parenthesized input whose value token is not a
// valid integer, or text remaining after a complete tree was parsed.
// Usage: if errors.Is(err, ErrMalformedText) { /* reject input text */ }.
var ErrMalformedText = errors.New("builder: malformed parenthesized text")

// ErrUnbalancedParens indicates parenthesized input with a missing or
// mismatched closing parenthesis.
// Usage: if errors.Is(err, ErrUnbalancedParens) { /* reject input text */ }.
var ErrUnbalancedParens = errors.New("builder: unbalanced parentheses")

// ErrInputKind indicates a mismatch between the input kind and the resolved
// format: a sequence format fed Text, or the parenthesis format fed Values.
// Usage: if errors.Is(err, ErrInputKind) { /* fix input or format */ }.
var ErrInputKind = errors.New("builder: input kind does not match format")

// ErrLengthMismatch indicates that strict validation (WithNodeCountCheck)
// found a reconstructed node count diverging from the input length for a
// pre-order or post-order build.
// Usage: if errors.Is(err, ErrLengthMismatch) { /* input is not a full traversal */ }.
var ErrLengthMismatch = errors.New("builder: node count does not match input length")
