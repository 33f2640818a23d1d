// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn  ("1","2",...)
//   • rng  = rand.New(rand.NewSource(DefaultSeed))
//
// newBuilderConfig applies options in order; later options override earlier ones.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Interior vertex ID strategy: position -> ID.
	idFn IDFn
	// Random source for fuel and cost draws; never nil after resolution.
	rng *rand.Rand
}

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
