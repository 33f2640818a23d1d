// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil).
//     Constructors themselves never panic; they return sentinel errors.
//   • Seeding is explicit via WithSeed or WithRand; there is no global source.

package builder

import "math/rand"

// BuilderOption customizes generation by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the interior vertex ID generator: position -> label.
// The scheme is called for positions 1..n-2 and must not return "", SourceID,
// SinkID or the same label twice; Chain reports ErrBadIDScheme otherwise.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit random source. The source is consumed, so
// sharing it across runs couples their outcomes. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
