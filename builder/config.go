// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • markers = {DefaultNullMarker, AltNullMarker} = {-1, -999}
//   • strict  = false (no node-count validation for pre/post-order)

package builder

// Conventional null-marker values for level-order input. Callers may
// replace the whole set via WithNullMarkers.
const (
	// DefaultNullMarker is the primary "no child here" sentinel value.
	DefaultNullMarker int64 = -1

	// AltNullMarker is the alternative sentinel accepted by default.
	AltNullMarker int64 = -999
)

// buildConfig aggregates all knobs used by detection and reconstruction.
// It is passed by VALUE to constructors (immutable to callers); the marker
// set is only ever read after resolution.
type buildConfig struct {
	// markers is the level-order null-marker set.
	markers map[int64]struct{}

	// strict enables node-count validation for pre/post-order builds.
	strict bool
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		markers: map[int64]struct{}{
			DefaultNullMarker: {},
			AltNullMarker:     {},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// isMarker reports whether v belongs to the resolved null-marker set.
// Complexity: O(1)
func (c buildConfig) isMarker(v int64) bool {
	_, ok := c.markers[v]

	return ok
}
