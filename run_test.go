package fuelroute_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuelroute"
	"github.com/katalvlaran/fuelroute/builder"
	"github.com/katalvlaran/fuelroute/fuelpath"
	"github.com/katalvlaran/fuelroute/metrics"
	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/milp/milptest"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// small is s, 1, t with t refueling.
func small() params.Params {
	p := params.Default()
	p.NetworkSize, p.M = 3, 2

	return p
}

// direct answers with the single arc s→t and a full tank at every step.
func direct(capacity float64) milptest.Script {
	return func(prob *milp.Problem) (milp.Status, []float64, error) {
		vals := make([]float64, prob.NumVars())
		for _, c := range prob.Columns() {
			name := c.Var.Name()
			switch {
			case strings.HasSuffix(name, "/x[s,t,1]"):
				vals[c.Var.Index()] = 1
			case strings.Contains(name, "/F["):
				vals[c.Var.Index()] = capacity
			}
		}

		return milp.StatusOptimal, vals, nil
	}
}

// TestRun_DirectRoute runs the full pipeline on a scripted solver.
func TestRun_DirectRoute(t *testing.T) {
	p := small()
	reg := metrics.NewRegistry()
	solver := milptest.New(direct(p.FuelCapacity))

	out, err := fuelroute.Run(context.Background(), p, solver, fuelroute.Options{Seed: 3, Metrics: reg})
	require.NoError(t, err)

	assert.Equal(t, fuelpath.Route{"s", "t"}, out.Route)
	a := netmodel.Arc{From: "s", To: "t"}
	assert.InDelta(t, p.W1*out.Data.Cost[a]+p.W2, out.Objective, 1e-9)
	assert.Equal(t, []float64{p.FuelCapacity, p.FuelCapacity}, out.Profile.Takeoff)
	assert.Equal(t, p.FuelCapacity-float64(out.Data.Fuel[a]), out.Profile.Landing[1])

	assert.LessOrEqual(t, out.LowerBound, out.Objective+1e-9)
	assert.Equal(t, "s", out.Relaxed[0])

	viol, err := fuelpath.Verify(out.Result, 1e-6)
	require.NoError(t, err)
	assert.Empty(t, viol)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SolvesTotal.WithLabelValues("OPTIMAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.BuildsTotal))
	assert.Equal(t, out.Objective, testutil.ToFloat64(reg.RouteObjective))
}

// TestRun_Seeded reproduces the network for equal seeds.
func TestRun_Seeded(t *testing.T) {
	p := small()
	run := func(seed int64) *fuelroute.Outcome {
		out, err := fuelroute.Run(context.Background(), p, milptest.New(direct(p.FuelCapacity)), fuelroute.Options{Seed: seed})
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, run(7).Graph.Edges(), run(7).Graph.Edges())
	assert.Equal(t, run(0).Graph.Edges(), run(builder.DefaultSeed).Graph.Edges())
}

// TestRun_Infeasible surfaces the parameters that failed.
func TestRun_Infeasible(t *testing.T) {
	p := small()
	reg := metrics.NewRegistry()

	_, err := fuelroute.Run(context.Background(), p, milptest.New(milptest.Status(milp.StatusInfeasible)), fuelroute.Options{Metrics: reg})
	var inf *fuelpath.InfeasibleError
	require.True(t, errors.As(err, &inf))
	assert.Equal(t, p, inf.Params)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RunFailuresTotal.WithLabelValues(fuelroute.StageSolve)))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SolvesTotal.WithLabelValues("INFEASIBLE")))
}

// TestRun_StageErrors keeps every stage's sentinel.
func TestRun_StageErrors(t *testing.T) {
	ctx := context.Background()

	bad := small()
	bad.M = 0
	_, err := fuelroute.Run(ctx, bad, milptest.New(nil), fuelroute.Options{})
	assert.ErrorIs(t, err, params.ErrInvalid)

	_, err = fuelroute.Run(ctx, small(), milptest.New(nil), fuelroute.Options{Horizon: 9})
	assert.ErrorIs(t, err, netmodel.ErrInvalidHorizon)

	_, err = fuelroute.Run(ctx, small(), nil, fuelroute.Options{})
	assert.ErrorIs(t, err, fuelpath.ErrNilSolver)

	_, err = fuelroute.Run(ctx, small(), milptest.New(direct(small().FuelCapacity)),
		fuelroute.Options{IDScheme: func(int) string { return "t" }})
	assert.ErrorIs(t, err, builder.ErrBadIDScheme)

	_, err = fuelroute.Run(ctx, small(), milptest.New(milptest.Assign(nil)), fuelroute.Options{})
	assert.ErrorIs(t, err, milptest.ErrScript)

	_, err = fuelroute.Run(ctx, small(), milptest.New(milptest.Status(milp.StatusOther)), fuelroute.Options{})
	assert.ErrorIs(t, err, fuelpath.ErrUnresolved)
}

// TestRun_DecodeFailure rejects an assignment with no active arc.
func TestRun_DecodeFailure(t *testing.T) {
	zero := func(prob *milp.Problem) (milp.Status, []float64, error) {
		return milp.StatusOptimal, make([]float64, prob.NumVars()), nil
	}
	_, err := fuelroute.Run(context.Background(), small(), milptest.New(zero), fuelroute.Options{})
	assert.ErrorIs(t, err, fuelpath.ErrDecode)
}
