package fuelpath_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fuelroute/fuelpath"
	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/milp/milptest"
	"github.com/katalvlaran/fuelroute/params"
)

// FormulationSuite groups model construction and solve outcomes.
type FormulationSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *FormulationSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestModelSize counts variables and rows for four nodes.
func (s *FormulationSuite) TestModelSize() {
	p, d := network(s.T(), 4, 2, 1, nil)
	ns := uuid.MustParse("6f1c2b7e-2f43-4a55-9d7a-0c1d2e3f4a5b")
	solver := milptest.New(milptest.Status(milp.StatusOther))

	fm, err := fuelpath.Build(d, p, solver, fuelpath.WithNamespace(ns))
	require.NoError(s.T(), err)

	// 6 arcs × 4 steps + 4 fuel levels
	s.Equal(28, fm.NumVars())
	s.Equal(28, solver.NumVars())
	// C1 4, C2 2×4, C3 1, C4 1, C5 3, C6 3, C7 4, C8 3
	s.Len(fm.Rows(), 27)
	s.Equal(27, solver.NumRows())
	s.Equal(ns.String(), fm.Namespace())
	s.Len(fm.Keys(), 24)
	s.Equal(fuelpath.Key{From: "s", To: "1", Step: 1}, fm.Keys()[0])

	for _, r := range fm.Rows() {
		s.True(strings.HasPrefix(r.Name, ns.String()+"/"), r.Name)
	}
	v, ok := fm.X(fuelpath.Key{From: "1", To: "t", Step: 3})
	s.True(ok)
	s.Equal(ns.String()+"/x[1,t,3]", v.Name())
	_, ok = fm.X(fuelpath.Key{From: "t", To: "1", Step: 1})
	s.False(ok)
	_, ok = fm.F(0)
	s.False(ok)
	f4, ok := fm.F(4)
	s.True(ok)
	s.Equal(ns.String()+"/F[4]", f4.Name())

	obj, sense := solver.Objective()
	s.Equal(milp.Minimize, sense)
	s.Equal(24, obj.Len())
}

// TestObjectiveCoefficients checks cost weighting and the refuel penalty.
func (s *FormulationSuite) TestObjectiveCoefficients() {
	p, d := network(s.T(), 4, 2, 3, func(p *params.Params) { p.W1, p.W2 = 2, 7 })
	solver := milptest.New(milptest.Status(milp.StatusOther))
	fm, err := fuelpath.Build(d, p, solver)
	require.NoError(s.T(), err)

	obj, _ := solver.Objective()
	coefs := obj.Coefficients()
	for _, k := range fm.Keys() {
		v, _ := fm.X(k)
		want := 2 * d.Cost[k.Arc()]
		if d.IsRefuel(k.To) {
			want += 7
		}
		s.InDelta(want, coefs[v.Index()], 1e-9, k.String())
	}
}

// TestNamespacesIsolateBuilds shares one solver between builds.
func (s *FormulationSuite) TestNamespacesIsolateBuilds() {
	p, d := network(s.T(), 4, 2, 1, nil)
	solver := milptest.New(milptest.Status(milp.StatusOther))

	a, err := fuelpath.Build(d, p, solver)
	require.NoError(s.T(), err)
	b, err := fuelpath.Build(d, p, solver)
	require.NoError(s.T(), err)
	s.NotEqual(a.Namespace(), b.Namespace())
	s.Equal(2*a.NumVars(), solver.NumVars())

	ns := uuid.New()
	_, err = fuelpath.Build(d, p, solver, fuelpath.WithNamespace(ns))
	require.NoError(s.T(), err)
	_, err = fuelpath.Build(d, p, solver, fuelpath.WithNamespace(ns))
	s.ErrorIs(err, milp.ErrDuplicateName)
}

// TestBuildErrors covers argument checks.
func (s *FormulationSuite) TestBuildErrors() {
	p, d := network(s.T(), 4, 2, 1, nil)
	solver := milptest.New(nil)

	_, err := fuelpath.Build(nil, p, solver)
	s.ErrorIs(err, fuelpath.ErrNilData)
	_, err = fuelpath.Build(d, p, nil)
	s.ErrorIs(err, fuelpath.ErrNilSolver)

	bad := p
	bad.Epsilon = 2
	_, err = fuelpath.Build(d, bad, solver)
	s.ErrorIs(err, params.ErrInvalid)
}

// TestOptimalSatisfiesEveryRow solves instances by enumeration and re-checks them.
func (s *FormulationSuite) TestOptimalSatisfiesEveryRow() {
	for n := 3; n <= 7; n++ {
		for m := 1; m <= 3; m++ {
			p, d := network(s.T(), n, m, int64(10*n+m), nil)
			want, ok := best(d, p)
			require.True(s.T(), ok, "n=%d m=%d", n, m)

			_, res, err := solveWith(s.T(), d, p, oracle)
			require.NoError(s.T(), err, "n=%d m=%d", n, m)

			viol, err := fuelpath.Verify(res, 1e-6)
			require.NoError(s.T(), err)
			s.Empty(viol, "n=%d m=%d", n, m)

			r, fp, err := fuelpath.Decode(res, d, p)
			require.NoError(s.T(), err)
			s.Equal(want, r)
			s.InDelta(routeObjective(d, p, r), res.Objective, 1e-6)
			s.True(fp.Feasible())

			s.assertRouteProperties(res, r, p)
		}
	}
}

// assertRouteProperties checks start, terminal and fuel-level properties.
func (s *FormulationSuite) assertRouteProperties(res *fuelpath.Result, r fuelpath.Route, p params.Params) {
	departures, arrivals := 0, 0
	for _, k := range res.Active() {
		if k.From == "s" {
			departures++
			s.Equal(1, k.Step)
		}
		if k.To == "t" {
			arrivals++
		}
	}
	s.Equal(1, departures)
	s.Equal(1, arrivals)

	s.Equal(p.FuelCapacity, res.F[0])
	for _, f := range res.F {
		s.GreaterOrEqual(f, 0.0)
		s.LessOrEqual(f, p.FuelCapacity)
	}

	seen := make(map[string]bool)
	for _, id := range r {
		s.False(seen[id], "node %s repeated", id)
		seen[id] = true
	}
	s.Equal("s", r[0])
	s.Equal("t", r[len(r)-1])
}

// TestRefuelStopScenario forces the route s→2→t with a 30000 tank.
func (s *FormulationSuite) TestRefuelStopScenario() {
	p, d := network(s.T(), 4, 2, 2, func(p *params.Params) { p.FuelCapacity = 30000 })
	require.True(s.T(), d.IsRefuel("2"))

	script := func(fm **fuelpath.Formulation) milptest.Script { return route(fm, fuelpath.Route{"s", "2", "t"}) }
	_, res, err := solveWith(s.T(), d, p, script)
	require.NoError(s.T(), err)

	viol, err := fuelpath.Verify(res, 1e-6)
	require.NoError(s.T(), err)
	s.Empty(viol)

	r, fp, err := fuelpath.Decode(res, d, p)
	require.NoError(s.T(), err)
	s.Equal(fuelpath.Route{"s", "2", "t"}, r)
	s.Equal(30000.0, fp.Takeoff[1])
	s.GreaterOrEqual(fp.Landing[2], 0.0)
	s.Equal(30000-float64(d.Fuel[r.Arcs()[0]]), fp.Landing[1])
}

// TestInfeasibleScenario makes every arc longer than the tank.
func (s *FormulationSuite) TestInfeasibleScenario() {
	p, d := network(s.T(), 5, 2, 4, func(p *params.Params) { p.InitialUpperBound = 100000 })

	fm, res, err := solveWith(s.T(), d, p, oracle)
	s.Nil(res)
	s.ErrorIs(err, fuelpath.ErrInfeasible)

	var ie *fuelpath.InfeasibleError
	require.True(s.T(), errors.As(err, &ie))
	s.Equal(p, ie.Params)
	s.Equal(fm.Namespace(), ie.Namespace)
	s.Contains(ie.Error(), "infeasible")

	// Every route breaks the sufficiency cut at its first arc.
	for _, r := range paths(d) {
		probe, err := fuelpath.Build(d, p, milptest.New(nil), fuelpath.WithNamespace(uuid.New()))
		require.NoError(s.T(), err)
		rows := probe.Rows()
		vals := assignment(probe, probe.NumVars(), r)
		viol := milp.Check(rows, func(v milp.Var) float64 { return vals[v.Index()] }, 1e-6)
		names := make([]string, 0, len(viol))
		for _, v := range viol {
			names = append(names, v.Name)
		}
		s.Contains(names, probe.Namespace()+"/C8[2]", "route %v", r)
	}
}

// TestUnresolvedAndFailures covers the remaining outcomes.
func (s *FormulationSuite) TestUnresolvedAndFailures() {
	p, d := network(s.T(), 4, 2, 1, nil)

	_, _, err := solveWith(s.T(), d, p, func(**fuelpath.Formulation) milptest.Script {
		return milptest.Status(milp.StatusOther)
	})
	s.ErrorIs(err, fuelpath.ErrUnresolved)
	var ue *fuelpath.UnresolvedError
	require.True(s.T(), errors.As(err, &ue))
	s.Equal(milp.StatusOther, ue.Status)
	s.False(errors.Is(err, fuelpath.ErrInfeasible))

	boom := errors.New("license expired")
	_, _, err = solveWith(s.T(), d, p, func(**fuelpath.Formulation) milptest.Script {
		return milptest.Fail(boom)
	})
	s.ErrorIs(err, boom)

	solver := milptest.New(milptest.Status(milp.StatusOther))
	fm, err := fuelpath.Build(d, p, solver)
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = fm.Solve(ctx)
	s.ErrorIs(err, context.Canceled)
}

// TestLimitsPassedThrough checks max_time and epsilon reach the solver.
func (s *FormulationSuite) TestLimitsPassedThrough() {
	p, d := network(s.T(), 4, 2, 1, func(p *params.Params) { p.MaxTime, p.Epsilon = 12.5, 0.03 })
	solver := milptest.New(milptest.Status(milp.StatusInfeasible))

	_, err := fuelpath.BuildAndSolve(s.ctx, d, p, solver)
	s.ErrorIs(err, fuelpath.ErrInfeasible)

	limit, gap := solver.LastLimits()
	s.Equal(12500*time.Millisecond, limit)
	s.Equal(0.03, gap)
}

type recorder struct {
	vars, rows int
	statuses   []milp.Status
}

func (r *recorder) ObserveBuild(vars, rows int) { r.vars, r.rows = vars, rows }

func (r *recorder) ObserveSolve(st milp.Status, _ time.Duration) { r.statuses = append(r.statuses, st) }

// TestLoggingAndObserver checks the structured log and instrumentation hooks.
func (s *FormulationSuite) TestLoggingAndObserver() {
	p, d := network(s.T(), 4, 2, 1, nil)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := &recorder{}

	fm, res, err := solveWith(s.T(), d, p, oracle, fuelpath.WithLogger(logger), fuelpath.WithObserver(rec))
	require.NoError(s.T(), err)
	s.NotNil(res)

	s.Equal(fm.NumVars(), rec.vars)
	s.Equal(len(fm.Rows()), rec.rows)
	s.Equal([]milp.Status{milp.StatusOptimal}, rec.statuses)

	out := buf.String()
	s.Contains(out, `"msg":"formulation built"`)
	s.Contains(out, `"msg":"model solved"`)
	s.Contains(out, fm.Namespace())
}

func TestFormulationSuite(t *testing.T) {
	suite.Run(t, new(FormulationSuite))
}

// TestVerifyNeedsFormulation rejects hand-made results.
func TestVerifyNeedsFormulation(t *testing.T) {
	_, err := fuelpath.Verify(&fuelpath.Result{}, 1e-6)
	assert.Error(t, err)
	_, err = fuelpath.Verify(nil, 1e-6)
	assert.Error(t, err)
}
