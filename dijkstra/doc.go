// Package dijkstra computes single-source cheapest paths over a *core.Graph
// with non-negative arc prices.
//
// Overview:
//
//   - Dijkstra expands the next-closest vertex from a min-heap with lazy
//     decrease-key and relaxes its outgoing arcs in Position order.
//   - Arcs are priced by a WeightFn. CostWeight uses the travel cost;
//     ObjectiveWeight(w1, w2) reproduces the routing objective with fuel
//     ignored.
//   - Relaxed runs the search from s to t under ObjectiveWeight. Dropping the
//     fuel limits only removes constraints, so its weight is a lower bound on
//     the fuel-constrained optimum and a cheap cross-check of solver output.
//
// Options:
//
//   - Source(id)            required starting vertex.
//   - WithReturnPath()      also return the predecessor map (see PathTo).
//   - WithMaxDistance(x)    stop expanding past distance x (x ≥ 0, panics otherwise).
//   - WithWeight(fn)        replace the arc price (panics on nil).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Thread safety: the search only reads g; concurrent writers must be
// synchronized by the caller.
package dijkstra
