// Package netmodel flattens a generated network into the data the routing
// formulation consumes.
//
// Derive is pure and deterministic: given the same graph it returns the same
// Data, with every slice in vertex Position order (arcs by tail, then head).
//
//	data, err := netmodel.Derive(g)
//	data.NodesRefuel    // refueling points
//	data.Cost[arc]      // travel cost of an arc
//	data.TimeSteps      // 1..len(Nodes) unless WithHorizon tightens it
//
// Before flattening, Derive certifies that the graph is acyclic
// (dfs.TopologicalSort) and that both endpoints exist.
package netmodel
