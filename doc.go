// Package treebuild is your in-memory toolkit for rebuilding binary trees
// from serialized traversal formats and measuring their structure.
//
// 🚀 What is treebuild?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core primitives: a plain binary Node with exclusively owned children
//		• Format detection: level-order / parenthesized / pre-order heuristic
//		• Reconstruction: level-order (null markers), full pre-order,
//		  full post-order, parenthesized text
//		• Serializers: level-order and parenthesized inverses for round-trips
//		• Metrics: max depth, height-balance check, diameter — one pass each
//
// ✨ Why choose treebuild?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions of their input, no global state
//   - Pure Go – no cgo, no hidden deps
//   - Strict – sentinel errors, no silent fallbacks, no partial trees
//
// Under the hood, everything is organized under three subpackages:
//
//	builder/ — format detection, per-format reconstruction, dispatch, serializers
//	core/    — the fundamental Node type & structural helpers
//	metrics/ — depth, balance and diameter measurements
//
// Quick ASCII example:
//
//	    3
//	   / \
//	  1   2
//
//	is reconstructed from the level-order sequence [3,1,2,-1,-1,-1,-1],
//	from the pre-order "cursor" rule, or from the text "3(1)(2)".
//
// In-order input is deliberately unsupported: an in-order traversal alone
// never determines tree shape, and treebuild fails loudly instead of
// guessing. Dive into the builder package docs for the detection heuristic
// and its documented blind spots.
//
//	go get github.com/katalvlaran/treebuild
package treebuild
