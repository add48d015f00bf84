// SPDX-License-Identifier: MIT
// Package: subway/builder
//
// config.go - builder configuration and functional options.
//
// Deterministic defaults:
//   • lenientStations = false (unknown section endpoints are an error)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// lenientStations adds unknown section endpoints as unlabeled vertices
	// instead of failing with ErrUnknownStation.
	lenientStations bool
}

// BuilderOption customizes constructors by mutating builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithLenientStations lets Sections add endpoints that Stations did not
// declare. Useful for partial snapshots in tooling; the route facade keeps
// the strict default.
func WithLenientStations() BuilderOption {
	return func(c *builderConfig) { c.lenientStations = true }
}

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
