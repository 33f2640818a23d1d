// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and adjacency queries.
// Policy:
//   - Lock order is always muVert before muEdgeAdj; never the reverse.
//   - One edge per ordered pair; no self-loops.
//   - Listings are sorted by endpoint Position for deterministic iteration.

package core

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates the directed edge from→to with the given fuel and cost and
// returns its unique Edge.ID. Both endpoints must already exist.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed, ErrBadFuel, ErrBadCost.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, fuel int64, cost float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if fuel < 0 {
		return "", ErrBadFuel
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return "", ErrBadCost
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.out[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Fuel: fuel, Cost: cost}
	if g.out[from] == nil {
		g.out[from] = make(map[string]string)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[string]string)
	}
	g.out[from][to] = eid
	g.in[to][from] = eid

	return eid, nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edge returns a copy of the edge from→to.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.out[from][to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Edges returns copies of all edges ordered by (Position(From), Position(To)).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	pos := g.positions()

	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if pos[out[i].From] != pos[out[j].From] {
			return pos[out[i].From] < pos[out[j].From]
		}

		return pos[out[i].To] < pos[out[j].To]
	})

	return out
}

// Neighbors returns the outgoing edges of id ordered by Position(To).
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	return g.incident(id, true)
}

// Predecessors returns the incoming edges of id ordered by Position(From).
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) ([]Edge, error) {
	return g.incident(id, false)
}

func (g *Graph) incident(id string, outgoing bool) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	pos := g.positions()

	g.muEdgeAdj.RLock()
	adj := g.in[id]
	if outgoing {
		adj = g.out[id]
	}
	out := make([]Edge, 0, len(adj))
	for _, eid := range adj {
		out = append(out, *g.edges[eid])
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if outgoing {
			return pos[out[i].To] < pos[out[j].To]
		}

		return pos[out[i].From] < pos[out[j].From]
	})

	return out, nil
}

// positions snapshots ID → Position under the vertex lock.
func (g *Graph) positions() map[string]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	pos := make(map[string]int, len(g.vertices))
	for id, v := range g.vertices {
		pos[id] = v.Position
	}

	return pos
}

// nextEdgeID returns "e<N>" with a monotonically increasing N.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return fmt.Sprintf("%s%d", edgeIDPrefix, n)
}
