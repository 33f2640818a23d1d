// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// errors.go — sentinel errors for network generation.
//
// Wrapping style:
//
//	return fmt.Errorf("%s: k=%d: %w", methodFuel, k, ErrInvalidDistance)
//
// keeps the sentinel reachable through errors.Is while prefixing the
// constructor name.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a network smaller than origin, one interior node and destination.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidDistance indicates a fuel draw for a hop distance below 1.
	ErrInvalidDistance = errors.New("builder: distance must be >= 1")

	// ErrInvalidBound indicates a non-positive or non-finite initial fuel upper
	// bound, or one whose fuel draws would overflow int64.
	ErrInvalidBound = errors.New("builder: initial upper bound must be finite, > 0 and keep fuel within int64")

	// ErrInvalidInterval indicates a refueling interval m < 1.
	ErrInvalidInterval = errors.New("builder: refueling interval must be >= 1")

	// ErrInvalidCostScale indicates a negative or non-finite psi.
	ErrInvalidCostScale = errors.New("builder: cost scale must be finite and >= 0")

	// ErrBadIDScheme indicates an ID scheme that yields an empty, reserved or duplicate label.
	ErrBadIDScheme = errors.New("builder: ID scheme produced an invalid label")

	// ErrConstructFailed indicates a nil constructor was handed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
