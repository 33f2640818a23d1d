// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generate is the one-call form for a parameter set.
//   - Same parameters, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/params"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate builds the forward chain network for p.
// Only the generation fields of p are checked (NetworkSize, M,
// InitialUpperBound, Psi); callers wanting full validation use p.Validate.
func Generate(p params.Params, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph([]core.GraphOption{core.WithCapacity(p.NetworkSize)}, opts, Chain(p))
}
