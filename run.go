package fuelroute

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/fuelroute/builder"
	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/dijkstra"
	"github.com/katalvlaran/fuelroute/fuelpath"
	"github.com/katalvlaran/fuelroute/metrics"
	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// Failure stages reported to metrics.
const (
	StageValidate = "validate"
	StageGenerate = "generate"
	StageDerive   = "derive"
	StageSolve    = "solve"
	StageDecode   = "decode"
)

// Options controls a Run. The zero value is usable.
type Options struct {
	// Seed seeds network generation when Rand is nil; zero selects builder.DefaultSeed.
	Seed int64
	// Rand overrides Seed with an explicit source.
	Rand *rand.Rand
	// IDScheme labels interior nodes; nil keeps decimal positions.
	IDScheme builder.IDFn
	// Horizon tightens the number of time steps; zero uses the node count.
	Horizon int
	// Logger receives structured progress; nil discards.
	Logger *slog.Logger
	// Metrics records builds, solves and routes; nil disables.
	Metrics *metrics.Registry
}

// Outcome is a solved run.
type Outcome struct {
	Params    params.Params
	Graph     *core.Graph
	Data      *netmodel.Data
	Result    *fuelpath.Result
	Route     fuelpath.Route
	Profile   fuelpath.FuelProfile
	Objective float64
	Elapsed   time.Duration

	// Relaxed is the cheapest s→t route with fuel ignored; LowerBound is its
	// objective and never exceeds Objective.
	Relaxed    []string
	LowerBound float64
}

// Run validates p, generates the network, derives the model data, builds and
// solves the formulation on solver and decodes the route.
//
// Errors keep their sentinels: params.ErrInvalid, builder.Err*, netmodel.Err*,
// *fuelpath.InfeasibleError, *fuelpath.UnresolvedError, fuelpath.ErrDecode.
func Run(ctx context.Context, p params.Params, solver milp.Solver, opts Options) (*Outcome, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := time.Now()

	fail := func(stage string, err error) (*Outcome, error) {
		if opts.Metrics != nil {
			opts.Metrics.RecordFailure(stage)
		}
		log.Error("run failed", slog.String("stage", stage), slog.Any("error", err))

		return nil, fmt.Errorf("fuelroute: %s: %w", stage, err)
	}

	if err := p.Validate(); err != nil {
		return fail(StageValidate, err)
	}

	g, err := builder.Generate(p, opts.builderOptions()...)
	if err != nil {
		return fail(StageGenerate, err)
	}
	log.Debug("network generated", slog.Int("nodes", g.VertexCount()), slog.Int("arcs", g.EdgeCount()))

	relaxed, bound, err := dijkstra.Relaxed(g, builder.SourceID, builder.SinkID, p.W1, p.W2)
	if err != nil {
		return fail(StageGenerate, err)
	}
	log.Debug("relaxed bound", slog.Any("route", relaxed), slog.Float64("bound", bound))

	var dopts []netmodel.Option
	if opts.Horizon != 0 {
		dopts = append(dopts, netmodel.WithHorizon(opts.Horizon))
	}
	data, err := netmodel.Derive(g, dopts...)
	if err != nil {
		return fail(StageDerive, err)
	}

	fopts := []fuelpath.Option{fuelpath.WithLogger(log)}
	if opts.Metrics != nil {
		fopts = append(fopts, fuelpath.WithObserver(opts.Metrics))
	}
	res, err := fuelpath.BuildAndSolve(ctx, data, p, solver, fopts...)
	if err != nil {
		return fail(StageSolve, err)
	}

	route, profile, err := fuelpath.Decode(res, data, p)
	if err != nil {
		return fail(StageDecode, err)
	}
	if opts.Metrics != nil {
		opts.Metrics.RecordRoute(len(route.Arcs()), route.RefuelStops(data), res.Objective)
	}

	out := &Outcome{
		Params:    p,
		Graph:     g,
		Data:      data,
		Result:    res,
		Route:     route,
		Profile:   profile,
		Objective: res.Objective,
		Elapsed:   time.Since(start),

		Relaxed:    relaxed,
		LowerBound: bound,
	}
	log.Info("route found",
		slog.String("namespace", res.Namespace),
		slog.Any("route", []string(route)),
		slog.Float64("objective", out.Objective),
		slog.Duration("elapsed", out.Elapsed))

	return out, nil
}

func (o Options) builderOptions() []builder.BuilderOption {
	var bopts []builder.BuilderOption
	switch {
	case o.Rand != nil:
		bopts = append(bopts, builder.WithRand(o.Rand))
	case o.Seed != 0:
		bopts = append(bopts, builder.WithSeed(o.Seed))
	}
	if o.IDScheme != nil {
		bopts = append(bopts, builder.WithIDScheme(o.IDScheme))
	}

	return bopts
}
