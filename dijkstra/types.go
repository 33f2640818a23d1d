// Package dijkstra defines the types and options of the single-source
// cheapest-path search over a *core.Graph.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond it stay unreached.
//	– Weight:      prices an arc; defaults to CostWeight.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or a requested target) does not exist.
//	– ErrNegativeWeight  if the weight function yields a negative or NaN price.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrNoPath          if PathTo cannot reach the target.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/fuelroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that an arc was priced below zero or as NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadWeightFn indicates a nil weight function.
	ErrBadWeightFn = errors.New("dijkstra: weight function is nil")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// WeightFn prices the arc e, whose head vertex is head.
type WeightFn func(e core.Edge, head core.Vertex) float64

// CostWeight prices an arc by its travel cost.
func CostWeight(e core.Edge, _ core.Vertex) float64 { return e.Cost }

// ObjectiveWeight prices an arc as w1·cost, plus w2 when the head refuels.
// Summed along a route it equals the route objective with fuel ignored.
func ObjectiveWeight(w1, w2 float64) WeightFn {
	return func(e core.Edge, head core.Vertex) float64 {
		w := w1 * e.Cost
		if head.Refuel {
			w += w2
		}

		return w
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string   // The ID of the source vertex
	ReturnPath  bool     // Whether to return the predecessor map
	MaxDistance float64  // Maximum distance to explore
	Weight      WeightFn // Arc price
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithWeight replaces the arc price. Panics on nil.
func WithWeight(fn WeightFn) Option {
	if fn == nil {
		panic(ErrBadWeightFn.Error())
	}

	return func(o *Options) {
		o.Weight = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Weight:      CostWeight,
	}
}
