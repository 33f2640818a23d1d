// Package builder generates the forward chain network that the fuel-constrained
// routing model is solved on.
//
// A network of size n has the nodes
//
//	s, 1, 2, …, n-2, t
//
// in that positional order, and one directed arc (i → j) for every pair with
// position(i) < position(j). Skip arcs are therefore allowed and the graph is
// acyclic by construction. The node at position p is a refueling point when
// p % m == 0, so the origin always refuels.
//
// Arc attributes are drawn from an injected random source:
//
//   - Fuel grows with the hop distance k = position(j) - position(i). With
//     b0 = 0.9·initial_upper_bound the bounds start at [b0, b0] and, for every
//     unit of distance beyond the first, become upper = b0 + lower and
//     lower = 0.9·upper. The fuel of the arc is a uniform draw from the final
//     interval, rounded to the nearest integer (FuelBounds, FuelDistribution).
//   - Cost tracks fuel with ±5% jitter: round(U(0.95, 1.05)·psi·fuel) (ArcCost).
//
// Configuration follows the functional-options style:
//
//	g, err := builder.Generate(p, builder.WithSeed(7))
//
// Options:
//
//   - WithSeed / WithRand   random source; a fixed DefaultSeed is used otherwise.
//   - WithIDScheme          labels of interior nodes (index → ID); s and t are fixed.
//
// Determinism: the same parameters, options and seed always yield the same graph.
// Vertices are inserted by position and arcs in (i, j) lexicographic order, so
// the random stream is consumed in a stable sequence.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidDistance, ErrInvalidBound,
// ErrInvalidInterval, ErrBadIDScheme) wrapped with the constructor name; branch
// with errors.Is.
package builder
