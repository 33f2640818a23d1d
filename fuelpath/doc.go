// Package fuelpath formulates the fuel-constrained shortest path as a
// time-indexed mixed-integer program, solves it through a milp.Solver and
// decodes the assignment into a route and fuel profile.
//
// Variables:
//
//	X[i,j,τ] ∈ {0,1}  arc (i,j) is the τ-th arc of the route
//	F[τ]     ≥ 0      fuel at the start of step τ
//
// Constraint families, for steps τ = 1..T and capacity Q:
//
//	C1  Σ_j X[s,j,1] = 1, and Σ_j X[s,j,τ] = 0 for τ > 1
//	C2  Σ_j X[i,j,τ+1] = Σ_j X[j,i,τ] for interior i and τ < T;
//	    Σ_j X[j,i,T] = 0 closes the last step
//	C3  Σ_{i,τ} X[i,t,τ] = 1
//	C4  F[1] = Q
//	C5  F[τ] ≤ F[τ-1] − Σ fuel·X[·,·,τ-1] + Σ_{j refuels} Q·X[·,j,τ-1]
//	C6  F[τ] ≤ Q for τ > 1
//	C7  F[τ] ≥ 0
//	C8  F[τ-1] ≥ Σ fuel·X[·,·,τ-1]
//
// C8 follows from C5 and C7; it is submitted anyway as a cut.
//
// Objective (minimize): w1·Σ cost·X + w2·Σ_{j refuels} X[·,j,·].
//
// Every variable and row name is prefixed with a per-build UUID namespace, so
// several formulations may share one solver. Variables are tracked by Key, a
// structured (from, to, step) triple; names are never parsed back.
//
// Outcomes of Solve:
//
//   - StatusOptimal    → *Result
//   - StatusInfeasible → *InfeasibleError (errors.Is ErrInfeasible), carrying the parameters
//   - anything else    → *UnresolvedError (errors.Is ErrUnresolved), carrying the status
//
// Decode turns a Result into a Route and FuelProfile and fails with ErrDecode
// on any assignment that is not a single simple s→t path with one arc per step.
package fuelpath
