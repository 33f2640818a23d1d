package highs

import (
	"math"
	"sort"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/fuelroute/milp"
)

// buildModel translates a recorded problem into a HiGHS model: one column per
// variable, one sparse row per constraint, the objective constant as Offset.
func buildModel(p *milp.Problem) *highs.Model {
	cols := p.Columns()
	obj, sense := p.Objective()

	m := &highs.Model{
		Maximize: sense == milp.Maximize,
		Offset:   obj.Const,
		ColCosts: make([]float64, len(cols)),
		ColLower: make([]float64, len(cols)),
		ColUpper: make([]float64, len(cols)),
		VarTypes: make([]highs.VariableType, len(cols)),
	}

	for idx, c := range obj.Coefficients() {
		m.ColCosts[idx] = c
	}
	for i, c := range cols {
		m.ColLower[i], m.ColUpper[i] = c.Lower, c.Upper
		m.VarTypes[i] = highs.Continuous
		if c.Domain == milp.Binary {
			m.VarTypes[i] = highs.Integer
		}
	}

	for _, r := range p.Rows() {
		idx, vals := sparse(r.Expr)
		lo, hi := rowBounds(r.Rel, r.RHS-r.Expr.Const)
		m.AddSparseRow(lo, idx, vals, hi)
	}

	return m
}

// sparse returns the merged coefficients of e by ascending column.
func sparse(e milp.Expr) ([]int, []float64) {
	coeffs := e.Coefficients()
	idx := make([]int, 0, len(coeffs))
	for i := range coeffs {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	vals := make([]float64, len(idx))
	for n, i := range idx {
		vals[n] = coeffs[i]
	}

	return idx, vals
}

// rowBounds maps a relation onto HiGHS row bounds.
func rowBounds(rel milp.Relation, rhs float64) (lower, upper float64) {
	switch rel {
	case milp.EQ:
		return rhs, rhs
	case milp.LE:
		return math.Inf(-1), rhs
	default:
		return rhs, math.Inf(1)
	}
}

// status maps HiGHS model statuses onto milp statuses.
func status(sol *highs.Solution) milp.Status {
	switch {
	case sol.IsOptimal():
		return milp.StatusOptimal
	case sol.IsInfeasible():
		// includes UnboundedOrInfeasible; bounded models read it as infeasible
		return milp.StatusInfeasible
	default:
		return milp.StatusOther
	}
}
