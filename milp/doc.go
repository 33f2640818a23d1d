// Package milp is the narrow contract between the routing formulation and an
// external mixed-integer linear programming solver.
//
// A Solver accepts variables (with a domain and bounds), linear constraints, a
// linear objective with a sense, and answers Optimize with a Status. Values are
// readable only after StatusOptimal.
//
// Problem is an in-memory model that records everything submitted to it. Solver
// backends embed it to get declaration bookkeeping for free, and callers use
// Problem.Violations to re-check an assignment against every recorded row.
//
//	var x, y milp.Var
//	e := milp.NewExpr().Add(x, 1).Add(y, 2) // x + 2y
//	s.AddConstraint(e, milp.LE, 10, "cap")
package milp
