// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: capability flags and summary statistics.

package core

// Directed reports that every edge is one-way. Always true; kept so traversal
// packages can gate on orientation the same way for any graph source.
func (g *Graph) Directed() bool { return true }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	RefuelCount int

	// TotalFuel and TotalCost sum the attributes over all edges.
	TotalFuel int64
	TotalCost float64
}

// Stats returns an O(V+E) snapshot of counts and attribute totals.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	for _, v := range g.vertices {
		if v.Refuel {
			stats.RefuelCount++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalFuel += e.Fuel
		stats.TotalCost += e.Cost
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
