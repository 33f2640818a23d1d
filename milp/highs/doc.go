// Package highs runs milp models on the HiGHS solver through the
// github.com/bartolsthoorn/gohighs binding (cgo).
//
// The model is recorded in an embedded *milp.Problem and translated into a
// highs.Model on Optimize: one column per variable, one sparse row per
// constraint (EQ → [rhs, rhs], LE → [-inf, rhs], GE → [rhs, +inf]), the
// sense in Model.Maximize and the objective constant in Model.Offset. Binary
// columns are marked highs.Integer with [0, 1] bounds.
//
// Both Infeasible and UnboundedOrInfeasible map to milp.StatusInfeasible.
// A model with a bounded feasible region, such as the fuelpath formulation,
// cannot be unbounded, so the second status means no solution.
//
// HiGHS does not observe contexts. Optimize checks ctx before solving and
// shortens the time limit to the context deadline when it is earlier.
package highs
