package fuelpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// Decode reconstructs the route and its fuel profile from an optimal result.
//
// The active arcs (X rounding to 1) sorted by step must form exactly one arc
// per step for steps 1..k, chain head to tail, start at the origin, end at the
// destination and visit no node twice. Any other shape fails with ErrDecode.
//
// Fuel profile, with Q = p.FuelCapacity:
//
//	Takeoff[0] = Landing[0] = Q
//	Landing[n] = Takeoff[n-1] − fuel(route[n-1], route[n])
//	Takeoff[n] = Q if route[n] refuels, else Landing[n]
//
// Decode is pure: the same inputs always give the same outputs.
func Decode(res *Result, data *netmodel.Data, p params.Params) (Route, FuelProfile, error) {
	if res == nil {
		return nil, FuelProfile{}, decodeErrorf("nil result")
	}
	if data == nil {
		return nil, FuelProfile{}, ErrNilData
	}

	for k, v := range res.X {
		if math.Abs(v-math.Round(v)) > IntegralityTol {
			return nil, FuelProfile{}, decodeErrorf("X%s = %g is fractional", k, v)
		}
	}

	active := res.Active()
	if len(active) == 0 {
		return nil, FuelProfile{}, decodeErrorf("no active arc")
	}

	route := Route{active[0].From}
	seen := map[string]struct{}{active[0].From: {}}
	for n, k := range active {
		switch {
		case k.Step != n+1 && n > 0 && k.Step == active[n-1].Step:
			return nil, FuelProfile{}, decodeErrorf("step %d has more than one arc", k.Step)
		case k.Step != n+1:
			return nil, FuelProfile{}, decodeErrorf("expected step %d, found X%s", n+1, k)
		case k.From != route[len(route)-1]:
			return nil, FuelProfile{}, decodeErrorf("X%s does not continue from %s", k, route[len(route)-1])
		}
		if _, ok := data.Fuel[k.Arc()]; !ok {
			return nil, FuelProfile{}, decodeErrorf("X%s is not an arc of the network", k)
		}
		if _, dup := seen[k.To]; dup {
			return nil, FuelProfile{}, decodeErrorf("node %s visited twice", k.To)
		}
		seen[k.To] = struct{}{}
		route = append(route, k.To)
	}

	if route[0] != data.Source {
		return nil, FuelProfile{}, decodeErrorf("route starts at %s, not %s", route[0], data.Source)
	}
	if last := route[len(route)-1]; last != data.Sink {
		return nil, FuelProfile{}, decodeErrorf("route ends at %s, not %s", last, data.Sink)
	}

	return route, Profile(route, data, p.FuelCapacity), nil
}

// Profile computes takeoff and landing fuel levels along route.
// Arcs missing from data count as zero consumption.
func Profile(route Route, data *netmodel.Data, capacity float64) FuelProfile {
	fp := FuelProfile{
		Takeoff: make([]float64, len(route)),
		Landing: make([]float64, len(route)),
	}
	if len(route) == 0 {
		return fp
	}
	fp.Takeoff[0], fp.Landing[0] = capacity, capacity
	for n := 1; n < len(route); n++ {
		burn := float64(data.Fuel[netmodel.Arc{From: route[n-1], To: route[n]}])
		fp.Landing[n] = fp.Takeoff[n-1] - burn
		fp.Takeoff[n] = fp.Landing[n]
		if data.IsRefuel(route[n]) {
			fp.Takeoff[n] = capacity
		}
	}

	return fp
}

// Feasible reports whether every landing level is non-negative.
func (fp FuelProfile) Feasible() bool {
	for _, l := range fp.Landing {
		if l < 0 {
			return false
		}
	}

	return true
}

// Verify re-evaluates every row the formulation submitted against res and
// returns the rows broken by more than tol.
func Verify(res *Result, tol float64) ([]milp.Violation, error) {
	if res == nil || res.form == nil {
		return nil, fmt.Errorf("fuelpath: verify: result has no formulation")
	}

	value := func(v milp.Var) float64 { return res.values[v] }

	return milp.Check(res.form.rows, value, tol), nil
}
