// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// fuel.go — distance-correlated fuel and cost draws.
//
// Contract:
//   • FuelBounds is pure; FuelDistribution and ArcCost consume exactly one
//     Float64 from the supplied source.
//   • Invalid inputs fail with sentinels; nothing is clamped.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// FuelBounds returns the sampling interval of an arc spanning k positions.
//
// With b0 = 0.9·initialUpperBound the interval starts at [b0, b0]; each unit of
// distance beyond the first sets upper = b0 + lower, then lower = 0.9·upper.
// Both bounds grow strictly with k.
//
// Errors: ErrInvalidDistance (k < 1), ErrInvalidBound (bound not finite and
// positive, or an upper fuel bound that does not fit int64).
// Complexity: O(k).
func FuelBounds(k int, initialUpperBound float64) (lower, upper float64, err error) {
	if k < 1 {
		return 0, 0, fmt.Errorf("%s: k=%d: %w", methodFuel, k, ErrInvalidDistance)
	}
	if !(initialUpperBound > 0) || math.IsInf(initialUpperBound, 0) {
		return 0, 0, fmt.Errorf("%s: initial upper bound %v: %w", methodFuel, initialUpperBound, ErrInvalidBound)
	}

	b0 := fuelRateFactor * initialUpperBound
	lower, upper = b0, b0
	for step := 1; step < k; step++ {
		upper = b0 + lower
		lower = fuelRateFactor * upper
	}

	if upper >= maxFuel {
		return 0, 0, fmt.Errorf("%s: k=%d, initial upper bound %v: fuel bound %v exceeds int64: %w",
			methodFuel, k, initialUpperBound, upper, ErrInvalidBound)
	}

	return lower, upper, nil
}

// FuelDistribution draws the fuel consumed by an arc spanning k positions:
// a uniform value in FuelBounds(k, initialUpperBound), rounded to the nearest integer.
func FuelDistribution(rng *rand.Rand, k int, initialUpperBound float64) (int64, error) {
	lower, upper, err := FuelBounds(k, initialUpperBound)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(uniform(rng, lower, upper))), nil
}

// ArcCost draws the travel cost of an arc burning fuel units:
// round(U(0.95, 1.05)·psi·fuel).
func ArcCost(rng *rand.Rand, psi float64, fuel int64) (float64, error) {
	if psi < 0 || math.IsNaN(psi) || math.IsInf(psi, 0) {
		return 0, fmt.Errorf("%s: psi=%v: %w", methodCost, psi, ErrInvalidCostScale)
	}

	return math.Round(uniform(rng, costJitterLow, costJitterHigh) * psi * float64(fuel)), nil
}

// uniform returns a draw from [a, b].
func uniform(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}
