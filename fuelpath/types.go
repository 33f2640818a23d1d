package fuelpath

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/netmodel"
)

// IntegralityTol is how far a binary value may sit from 0 or 1 and still be
// read as that integer.
const IntegralityTol = 1e-5

// Key identifies X[From,To,Step].
type Key struct {
	From, To string
	Step     int
}

func (k Key) String() string { return fmt.Sprintf("(%s,%s,%d)", k.From, k.To, k.Step) }

// Arc returns the arc of k.
func (k Key) Arc() netmodel.Arc { return netmodel.Arc{From: k.From, To: k.To} }

// Result is the optimal assignment of one formulation.
type Result struct {
	// Namespace is the formulation's variable prefix.
	Namespace string
	// Objective is the optimal objective value.
	Objective float64
	// X holds every arc-step value.
	X map[Key]float64
	// F holds F[τ] at index τ-1.
	F []float64
	// Elapsed is the wall time spent in Optimize.
	Elapsed time.Duration

	form   *Formulation
	values map[milp.Var]float64
}

// Active returns the keys whose X value rounds to 1, ordered by step, then arc.
func (r *Result) Active() []Key {
	var keys []Key
	for k, v := range r.X {
		if v >= 0.5 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Step != keys[j].Step {
			return keys[i].Step < keys[j].Step
		}
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}

		return keys[i].To < keys[j].To
	})

	return keys
}

// Route is an ordered node sequence from origin to destination.
type Route []string

// Arcs returns the consecutive node pairs of r.
func (r Route) Arcs() []netmodel.Arc {
	if len(r) < 2 {
		return nil
	}
	out := make([]netmodel.Arc, 0, len(r)-1)
	for i := 1; i < len(r); i++ {
		out = append(out, netmodel.Arc{From: r[i-1], To: r[i]})
	}

	return out
}

// RefuelStops counts the route nodes after the origin that refuel, the same
// stops the objective penalizes.
func (r Route) RefuelStops(d *netmodel.Data) int {
	stops := 0
	for n := 1; n < len(r); n++ {
		if d.IsRefuel(r[n]) {
			stops++
		}
	}

	return stops
}

// FuelProfile holds the fuel level when leaving (Takeoff) and reaching
// (Landing) each route node, aligned with the Route.
type FuelProfile struct {
	Takeoff []float64
	Landing []float64
}

// Observer receives model-size and solve events. metrics.Collector implements it.
type Observer interface {
	ObserveBuild(vars, rows int)
	ObserveSolve(status milp.Status, elapsed time.Duration)
}

// Option configures Build.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	observer  Observer
	namespace string
}

func defaultConfig() config {
	return config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches build and solve instrumentation.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithNamespace fixes the name prefix instead of drawing a random UUID.
func WithNamespace(id uuid.UUID) Option {
	return func(c *config) {
		c.namespace = id.String()
	}
}
