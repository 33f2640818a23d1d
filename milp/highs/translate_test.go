package highs

import (
	"math"
	"testing"

	"github.com/bartolsthoorn/gohighs/highs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuelroute/milp"
)

// TestRowBounds maps every relation.
func TestRowBounds(t *testing.T) {
	lo, hi := rowBounds(milp.EQ, 2)
	assert.Equal(t, [2]float64{2, 2}, [2]float64{lo, hi})
	lo, hi = rowBounds(milp.LE, 2)
	assert.True(t, math.IsInf(lo, -1))
	assert.Equal(t, 2.0, hi)
	lo, hi = rowBounds(milp.GE, 2)
	assert.Equal(t, 2.0, lo)
	assert.True(t, math.IsInf(hi, 1))
}

// TestBuildModel checks columns, costs, sense, integrality and sparse rows.
func TestBuildModel(t *testing.T) {
	s := New()
	x, err := s.DeclareVariable("x", milp.Binary, 0, 1)
	require.NoError(t, err)
	y, err := s.DeclareVariable("y", milp.Continuous, 0, 8)
	require.NoError(t, err)
	z, err := s.DeclareVariable("z", milp.Continuous, 0, math.Inf(1))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(milp.Sum(y, x).Plus(1), milp.LE, 4, "r"))
	require.NoError(t, s.AddConstraint(milp.NewExpr().Add(z, 2).Add(z, 1), milp.GE, 3, "q"))
	require.NoError(t, s.SetObjective(milp.NewExpr().Add(x, 2).Add(y, 3).Plus(5), milp.Maximize))

	m := buildModel(s.Problem)
	assert.True(t, m.Maximize)
	assert.Equal(t, 5.0, m.Offset)
	assert.Equal(t, []float64{2, 3, 0}, m.ColCosts)
	assert.Equal(t, []float64{0, 0, 0}, m.ColLower)
	assert.Equal(t, []float64{1, 8, math.Inf(1)}, m.ColUpper)
	assert.Equal(t, []highs.VariableType{highs.Integer, highs.Continuous, highs.Continuous}, m.VarTypes)

	require.Len(t, m.RowLower, 2)
	assert.True(t, math.IsInf(m.RowLower[0], -1))
	assert.Equal(t, []float64{3, 3}, []float64{m.RowUpper[0], m.RowLower[1]})
	assert.True(t, math.IsInf(m.RowUpper[1], 1))
	assert.Equal(t, []highs.Nonzero{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 2, Val: 3},
	}, m.ConstMatrix)
}

// TestBuildModel_Minimize leaves the sense unset.
func TestBuildModel_Minimize(t *testing.T) {
	s := New()
	x, err := s.DeclareVariable("x", milp.Continuous, 0, 1)
	require.NoError(t, err)
	require.NoError(t, s.SetObjective(milp.Sum(x), milp.Minimize))

	m := buildModel(s.Problem)
	assert.False(t, m.Maximize)
	assert.Equal(t, []float64{1}, m.ColCosts)
	assert.Empty(t, m.ConstMatrix)
}

// TestStatus maps every HiGHS outcome onto a milp status.
func TestStatus(t *testing.T) {
	cases := []struct {
		in   highs.ModelStatus
		want milp.Status
	}{
		{highs.ModelStatusOptimal, milp.StatusOptimal},
		{highs.ModelStatusInfeasible, milp.StatusInfeasible},
		{highs.ModelStatusUnboundedOrInfeasible, milp.StatusInfeasible},
		{highs.ModelStatusUnbounded, milp.StatusOther},
		{highs.ModelStatusTimeLimit, milp.StatusOther},
		{highs.ModelStatusIterationLimit, milp.StatusOther},
		{highs.ModelStatusSolveError, milp.StatusOther},
		{highs.ModelStatusNotSet, milp.StatusOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, status(&highs.Solution{Status: tc.in}), tc.in.String())
	}
}
