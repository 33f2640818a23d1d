// Package fuelroute computes a minimum-cost, fuel-feasible route for a single
// vehicle across a forward chain network in which some nodes refuel the tank.
//
// The pipeline runs in four stages, each in its own package:
//
//	params    → the parameter set (defaults, per-name overrides, YAML)
//	builder   → the chain network with distance-correlated fuel and cost
//	netmodel  → node partitions, arc lookups and the time horizon
//	fuelpath  → the time-indexed MILP, its solve, and route decoding
//
// The solver itself is external and reached through milp.Solver; milp/highs
// runs models on HiGHS and milp/milptest scripts outcomes for tests.
//
// Run wires the stages together:
//
//	out, err := fuelroute.Run(ctx, params.Default(), highs.New(), fuelroute.Options{Seed: 42})
//	var inf *fuelpath.InfeasibleError
//	switch {
//	case errors.As(err, &inf):
//		// no fuel-feasible route for inf.Params
//	case err != nil:
//		// generation, solver or decoding failure
//	default:
//		fmt.Println(report.RouteTable(out.Route, out.Profile, out.Data))
//	}
//
// Before solving, Run also prices the cheapest route with fuel ignored
// (dijkstra.Relaxed); Outcome.LowerBound never exceeds Outcome.Objective.
//
// Supporting packages: core (thread-safe directed graph), dfs (acyclicity
// certificate), report (text tables) and metrics (Prometheus collectors).
package fuelroute
