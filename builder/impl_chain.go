// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// impl_chain.go — the forward chain network.
//
// Contract:
//   • NetworkSize ≥ 3 (else ErrTooFewVertices), M ≥ 1 (else ErrInvalidInterval).
//   • Vertices are added by ascending position: s, idFn(1)..idFn(n-2), t.
//   • Position p refuels iff p % M == 0.
//   • Arcs (i → j), i < j, are emitted in lexicographic (i, j) order; each draws
//     its fuel, then its cost, from cfg.rng.
//
// Complexity: O(n) vertices, O(n²) arcs, O(n³) worst case for the bound
// recurrence (dominated by solver work downstream).

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/params"
)

// Chain returns a Constructor that builds the fully connected forward chain
// described by p.
func Chain(p params.Params) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := p.NetworkSize
		if n < MinNetworkSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, MinNetworkSize, ErrTooFewVertices)
		}
		if p.M < 1 {
			return fmt.Errorf("%s: m=%d: %w", methodChain, p.M, ErrInvalidInterval)
		}

		ids, err := chainIDs(n, cfg.idFn)
		if err != nil {
			return err
		}

		for pos, id := range ids {
			if err = g.AddVertex(id, core.WithRefuel(pos%p.M == 0)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodChain, id, err)
			}
		}

		var (
			i, j int
			fuel int64
			cost float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if fuel, err = FuelDistribution(cfg.rng, j-i, p.InitialUpperBound); err != nil {
					return fmt.Errorf("%s: %w", methodChain, err)
				}
				if cost, err = ArcCost(cfg.rng, p.Psi, fuel); err != nil {
					return fmt.Errorf("%s: %w", methodChain, err)
				}
				if _, err = g.AddEdge(ids[i], ids[j], fuel, cost); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodChain, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// chainIDs resolves every label by position and rejects collisions.
func chainIDs(n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	ids[0], ids[n-1] = SourceID, SinkID
	seen := map[string]struct{}{SourceID: {}, SinkID: {}}
	for pos := 1; pos < n-1; pos++ {
		id := idFn(pos)
		if _, dup := seen[id]; dup || id == "" {
			return nil, fmt.Errorf("%s: position %d → %q: %w", methodChain, pos, id, ErrBadIDScheme)
		}
		seen[id] = struct{}{}
		ids[pos] = id
	}

	return ids, nil
}
