// Package dfs implements depth-first topological sorting on a core.Graph.
//
// The planner relies on it to certify that a network is acyclic before a
// time-indexed model is built on top of it: a forward chain always sorts,
// and any back arc is reported as ErrCycleDetected.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrCycleDetected   cycle discovered
//   - ErrNeighborFetch   adjacency lookup failed
//   - context.Canceled   sort canceled via WithCancelContext
package dfs
