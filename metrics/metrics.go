package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/fuelroute/milp"
)

const namespace = "fuelroute"

// Registry holds every collector.
type Registry struct {
	registry *prometheus.Registry

	BuildsTotal      prometheus.Counter
	ModelVariables   prometheus.Gauge
	ModelRows        prometheus.Gauge
	SolvesTotal      *prometheus.CounterVec
	SolveDuration    prometheus.Histogram
	RouteRefuelStops prometheus.Histogram
	RouteArcs        prometheus.Histogram
	RouteObjective   prometheus.Gauge
	RunFailuresTotal *prometheus.CounterVec
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.BuildsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "builds_total",
		Help:      "Number of formulations built",
	})
	r.ModelVariables = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_variables",
		Help:      "Variables in the most recent formulation",
	})
	r.ModelRows = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_rows",
		Help:      "Constraints in the most recent formulation",
	})
	r.SolvesTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "solves_total",
		Help:      "Solver runs by outcome",
	}, []string{"status"}) // OPTIMAL, INFEASIBLE, OTHER
	r.SolveDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "solve_duration_seconds",
		Help:      "Wall time of solver runs",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120, 600, 3600},
	})
	r.RouteRefuelStops = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "route_refuel_stops",
		Help:      "Refueling stops on decoded routes",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})
	r.RouteArcs = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "route_arcs",
		Help:      "Arcs on decoded routes",
		Buckets:   prometheus.LinearBuckets(1, 1, 20),
	})
	r.RouteObjective = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "route_objective",
		Help:      "Objective value of the most recent route",
	})
	r.RunFailuresTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "run_failures_total",
		Help:      "Failed runs by stage",
	}, []string{"stage"}) // generate, derive, solve, decode

	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns a process-wide registry.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Gatherer returns the underlying Prometheus registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveBuild records the size of a new formulation.
func (r *Registry) ObserveBuild(vars, rows int) {
	r.BuildsTotal.Inc()
	r.ModelVariables.Set(float64(vars))
	r.ModelRows.Set(float64(rows))
}

// ObserveSolve records a solver run.
func (r *Registry) ObserveSolve(status milp.Status, elapsed time.Duration) {
	r.SolvesTotal.WithLabelValues(status.String()).Inc()
	r.SolveDuration.Observe(elapsed.Seconds())
}

// RecordRoute records a decoded route.
func (r *Registry) RecordRoute(arcs, refuelStops int, objective float64) {
	r.RouteArcs.Observe(float64(arcs))
	r.RouteRefuelStops.Observe(float64(refuelStops))
	r.RouteObjective.Set(objective)
}

// RecordFailure counts a failed run at stage.
func (r *Registry) RecordFailure(stage string) {
	r.RunFailuresTotal.WithLabelValues(stage).Inc()
}
