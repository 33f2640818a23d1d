package fuelpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuelroute/builder"
	"github.com/katalvlaran/fuelroute/fuelpath"
	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/milp/milptest"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// network generates and derives a chain of n nodes with interval m.
func network(t testing.TB, n, m int, seed int64, mutate func(*params.Params)) (params.Params, *netmodel.Data) {
	t.Helper()
	p := params.Default()
	p.NetworkSize, p.M = n, m
	if mutate != nil {
		mutate(&p)
	}
	g, err := builder.Generate(p, builder.WithSeed(seed))
	require.NoError(t, err)
	d, err := netmodel.Derive(g)
	require.NoError(t, err)

	return p, d
}

// paths enumerates every s→t path of d.
func paths(d *netmodel.Data) []fuelpath.Route {
	var out []fuelpath.Route
	var walk func(r fuelpath.Route)
	walk = func(r fuelpath.Route) {
		last := r[len(r)-1]
		if last == d.Sink {
			out = append(out, append(fuelpath.Route(nil), r...))
			return
		}
		for _, a := range d.Out(last) {
			walk(append(r, a.To))
		}
	}
	walk(fuelpath.Route{d.Source})

	return out
}

// routeObjective prices r the way the objective does.
func routeObjective(d *netmodel.Data, p params.Params, r fuelpath.Route) float64 {
	total := 0.0
	for _, a := range r.Arcs() {
		total += p.W1 * d.Cost[a]
		if d.IsRefuel(a.To) {
			total += p.W2
		}
	}

	return total
}

// best returns the cheapest fuel-feasible route within the horizon.
func best(d *netmodel.Data, p params.Params) (fuelpath.Route, bool) {
	var (
		found   fuelpath.Route
		bestObj float64
	)
	for _, r := range paths(d) {
		if len(r)-1 > d.Horizon() || !fuelpath.Profile(r, d, p.FuelCapacity).Feasible() {
			continue
		}
		if obj := routeObjective(d, p, r); found == nil || obj < bestObj {
			found, bestObj = r, obj
		}
	}

	return found, found != nil
}

// assignment encodes r as column values for fm on a model of width columns.
func assignment(fm *fuelpath.Formulation, width int, r fuelpath.Route) []float64 {
	d, p := fm.Data(), fm.Params()
	vals := make([]float64, width)
	for n, a := range r.Arcs() {
		if v, ok := fm.X(fuelpath.Key{From: a.From, To: a.To, Step: n + 1}); ok {
			vals[v.Index()] = 1
		}
	}

	fp := fuelpath.Profile(r, d, p.FuelCapacity)
	level := p.FuelCapacity
	for step := 1; step <= d.Horizon(); step++ {
		if step-1 < len(r) {
			level = fp.Takeoff[step-1]
		}
		v, _ := fm.F(step)
		vals[v.Index()] = level
	}

	return vals
}

// oracle answers Optimize with the enumerated optimum of *fm.
func oracle(fm **fuelpath.Formulation) milptest.Script {
	return func(prob *milp.Problem) (milp.Status, []float64, error) {
		r, ok := best((*fm).Data(), (*fm).Params())
		if !ok {
			return milp.StatusInfeasible, nil, nil
		}

		return milp.StatusOptimal, assignment(*fm, prob.NumVars(), r), nil
	}
}

// route returns a Script that answers with the fixed route r.
func route(fm **fuelpath.Formulation, r fuelpath.Route) milptest.Script {
	return func(prob *milp.Problem) (milp.Status, []float64, error) {
		return milp.StatusOptimal, assignment(*fm, prob.NumVars(), r), nil
	}
}

// solveWith builds on a scripted solver and solves.
func solveWith(t testing.TB, d *netmodel.Data, p params.Params, script func(**fuelpath.Formulation) milptest.Script, opts ...fuelpath.Option) (*fuelpath.Formulation, *fuelpath.Result, error) {
	t.Helper()
	var fm *fuelpath.Formulation
	s := milptest.New(script(&fm))
	fm, err := fuelpath.Build(d, p, s, opts...)
	require.NoError(t, err)
	res, err := fm.Solve(context.Background())

	return fm, res, err
}
