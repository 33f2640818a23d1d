package netmodel

import (
	"errors"

	"github.com/katalvlaran/fuelroute/builder"
)

var (
	// ErrNilGraph is returned when Derive receives a nil graph.
	ErrNilGraph = errors.New("netmodel: graph is nil")

	// ErrCyclic indicates a graph with a directed cycle.
	ErrCyclic = errors.New("netmodel: graph is not acyclic")

	// ErrMissingEndpoint indicates the origin or destination vertex is absent.
	ErrMissingEndpoint = errors.New("netmodel: missing endpoint")

	// ErrInvalidHorizon indicates a horizon outside [1, node count].
	ErrInvalidHorizon = errors.New("netmodel: invalid horizon")
)

// Arc is an ordered node pair.
type Arc struct {
	From, To string
}

// Data is the flat view of a network used by the formulation.
// All fields are populated by Derive and must be treated as read-only.
type Data struct {
	// Source and Sink are the route endpoints.
	Source, Sink string

	// Nodes lists every node in Position order.
	Nodes []string

	// NodesRefuel and NodesNotRefuel partition Nodes, each in Position order.
	NodesRefuel    []string
	NodesNotRefuel []string

	// Arcs lists every arc ordered by (Position(From), Position(To)).
	Arcs []Arc

	// Cost and Fuel are per-arc lookups.
	Cost map[Arc]float64
	Fuel map[Arc]int64

	// TimeSteps is 1..horizon.
	TimeSteps []int

	refuel map[string]bool
	out    map[string][]Arc
	in     map[string][]Arc
}

// Option configures Derive.
type Option func(*options)

type options struct {
	source, sink string
	horizon      int
	horizonSet   bool
}

func defaultOptions() options {
	return options{source: builder.SourceID, sink: builder.SinkID}
}

// WithEndpoints overrides the origin and destination labels.
func WithEndpoints(source, sink string) Option {
	return func(o *options) {
		o.source, o.sink = source, sink
	}
}

// WithHorizon bounds the number of time steps. A simple path never needs more
// steps than it has arcs, so any h ≥ the longest useful route is safe.
// h must lie in [1, node count]; Derive rejects anything else, zero included,
// with ErrInvalidHorizon. Without the option the horizon is the node count.
func WithHorizon(h int) Option {
	return func(o *options) {
		o.horizon, o.horizonSet = h, true
	}
}
