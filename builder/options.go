// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuildOption func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Reconstruction itself MUST NOT panic.
//   • No hidden globals; everything flows through buildConfig.
//
// AI-Hints:
//   • WithNullMarkers REPLACES the default {-1, -999} set; pass every
//     marker the input may contain.
//   • WithNodeCountCheck only affects pre/post-order builds; level-order
//     and parenthesis formats are self-delimiting and ignore it.

package builder

// BuildOption customizes detection and reconstruction by mutating a
// buildConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuildOption func(*buildConfig)

// WithNullMarkers replaces the level-order null-marker set with the given
// values. Panics on an empty list to surface programmer error early — a
// level-order build without any marker cannot express absent children.
// Complexity: O(len(markers)) time and space.
func WithNullMarkers(markers ...int64) BuildOption {
	if len(markers) == 0 {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithNullMarkers() requires at least one marker")
	}
	return func(c *buildConfig) {
		set := make(map[int64]struct{}, len(markers))
		for _, m := range markers {
			set[m] = struct{}{}
		}
		c.markers = set
	}
}

// WithNodeCountCheck enables strict validation for pre-order and post-order
// builds: after reconstruction the built node count must equal the input
// length, otherwise the build fails with ErrLengthMismatch.
// Complexity: O(1) time, O(1) space.
func WithNodeCountCheck() BuildOption {
	return func(c *buildConfig) {
		c.strict = true
	}
}
