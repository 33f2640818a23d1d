package netmodel

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/dfs"
)

// Derive partitions the nodes of g by refueling flag, flattens its arcs into
// lookup maps and sets the time horizon.
//
// Errors: ErrNilGraph, ErrCyclic, ErrMissingEndpoint, ErrInvalidHorizon.
// Complexity: O(V + E log E).
func Derive(g *core.Graph, opts ...Option) (*Data, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := dfs.TopologicalSort(g); err != nil {
		return nil, fmt.Errorf("netmodel: %w: %w", ErrCyclic, err)
	}
	for _, id := range []string{o.source, o.sink} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("netmodel: %q: %w", id, ErrMissingEndpoint)
		}
	}
	if o.source == o.sink {
		return nil, fmt.Errorf("netmodel: source equals sink %q: %w", o.source, ErrMissingEndpoint)
	}

	verts := g.VertexList()
	horizon := len(verts)
	if o.horizonSet {
		if o.horizon < 1 || o.horizon > len(verts) {
			return nil, fmt.Errorf("netmodel: horizon %d outside [1,%d]: %w", o.horizon, len(verts), ErrInvalidHorizon)
		}
		horizon = o.horizon
	}

	d := &Data{
		Source: o.source,
		Sink:   o.sink,
		Nodes:  make([]string, 0, len(verts)),
		refuel: make(map[string]bool, len(verts)),
		out:    make(map[string][]Arc, len(verts)),
		in:     make(map[string][]Arc, len(verts)),
	}
	for _, v := range verts {
		d.Nodes = append(d.Nodes, v.ID)
		d.refuel[v.ID] = v.Refuel
		if v.Refuel {
			d.NodesRefuel = append(d.NodesRefuel, v.ID)
		} else {
			d.NodesNotRefuel = append(d.NodesNotRefuel, v.ID)
		}
	}

	edges := g.Edges()
	d.Arcs = make([]Arc, 0, len(edges))
	d.Cost = make(map[Arc]float64, len(edges))
	d.Fuel = make(map[Arc]int64, len(edges))
	for _, e := range edges {
		a := Arc{From: e.From, To: e.To}
		d.Arcs = append(d.Arcs, a)
		d.Cost[a] = e.Cost
		d.Fuel[a] = e.Fuel
		d.out[a.From] = append(d.out[a.From], a)
		d.in[a.To] = append(d.in[a.To], a)
	}

	d.TimeSteps = make([]int, horizon)
	for i := range d.TimeSteps {
		d.TimeSteps[i] = i + 1
	}

	return d, nil
}

// IsRefuel reports whether id is a refueling point.
func (d *Data) IsRefuel(id string) bool { return d.refuel[id] }

// HasNode reports whether id is a node of the network.
func (d *Data) HasNode(id string) bool {
	_, ok := d.refuel[id]
	return ok
}

// Out returns the arcs leaving id in head Position order.
func (d *Data) Out(id string) []Arc { return d.out[id] }

// In returns the arcs entering id in tail Position order.
func (d *Data) In(id string) []Arc { return d.in[id] }

// Horizon returns the last time step.
func (d *Data) Horizon() int { return len(d.TimeSteps) }

// Interior returns every node except Source and Sink, in Position order.
func (d *Data) Interior() []string {
	out := make([]string, 0, len(d.Nodes))
	for _, id := range d.Nodes {
		if id != d.Source && id != d.Sink {
			out = append(out, id)
		}
	}

	return out
}
