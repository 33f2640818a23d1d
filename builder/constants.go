// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// constants.go — fixed labels, method tokens and generation coefficients.

package builder

import "math"

// Endpoint labels. They are never produced by an ID scheme.
const (
	// SourceID is the label of the origin (position 0).
	SourceID = "s"
	// SinkID is the label of the destination (last position).
	SinkID = "t"
)

// Method tokens used as error prefixes.
const (
	methodChain = "Chain"
	methodFuel  = "FuelBounds"
	methodCost  = "ArcCost"
)

// DefaultSeed seeds the random source when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 42

// MinNetworkSize is the smallest chain: s, one interior node, t.
const MinNetworkSize = 3

// Generation coefficients.
const (
	// fuelRateFactor scales the initial upper bound into b0 and shrinks each
	// new upper bound into the next lower bound.
	fuelRateFactor = 0.9

	// costJitterLow and costJitterHigh bound the multiplicative cost noise.
	costJitterLow  = 0.95
	costJitterHigh = 1.05

	// maxFuel is 2^63; fuel draws must stay strictly below it to fit int64.
	maxFuel = float64(math.MaxInt64)
)
