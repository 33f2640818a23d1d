package fuelpath

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// Solve runs the solver with the parameters' time limit and gap and reads
// back every variable of this formulation.
//
// Errors: *InfeasibleError, *UnresolvedError, or a wrapped solver error.
func (fm *Formulation) Solve(ctx context.Context) (*Result, error) {
	log := fm.cfg.logger.With(slog.String("namespace", fm.ns))

	start := time.Now()
	status, err := fm.solver.Optimize(ctx, fm.params.TimeLimit(), fm.params.Epsilon)
	elapsed := time.Since(start)
	if fm.cfg.observer != nil {
		fm.cfg.observer.ObserveSolve(status, elapsed)
	}
	if err != nil {
		log.Error("optimize failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
		return nil, fmt.Errorf("fuelpath: optimize %s: %w", fm.ns, err)
	}

	switch status {
	case milp.StatusOptimal:
	case milp.StatusInfeasible:
		log.Info("model infeasible", slog.Duration("elapsed", elapsed))
		return nil, &InfeasibleError{Namespace: fm.ns, Params: fm.params}
	default:
		log.Warn("model unresolved", slog.String("status", status.String()), slog.Duration("elapsed", elapsed))
		return nil, &UnresolvedError{Namespace: fm.ns, Status: status, Params: fm.params}
	}

	res := &Result{
		Namespace: fm.ns,
		X:         make(map[Key]float64, len(fm.keys)),
		F:         make([]float64, len(fm.f)),
		Elapsed:   elapsed,
		form:      fm,
		values:    make(map[milp.Var]float64, fm.NumVars()),
	}
	for _, k := range fm.keys {
		v := fm.x[k]
		if res.X[k], err = fm.value(v); err != nil {
			return nil, err
		}
		res.values[v] = res.X[k]
	}
	for i, v := range fm.f {
		if res.F[i], err = fm.value(v); err != nil {
			return nil, err
		}
		res.values[v] = res.F[i]
	}
	if res.Objective, err = fm.solver.ObjectiveValue(); err != nil {
		return nil, fmt.Errorf("fuelpath: objective of %s: %w", fm.ns, err)
	}

	log.Info("model solved",
		slog.String("status", status.String()),
		slog.Float64("objective", res.Objective),
		slog.Duration("elapsed", elapsed))

	return res, nil
}

func (fm *Formulation) value(v milp.Var) (float64, error) {
	x, err := fm.solver.ValueOf(v)
	if err != nil {
		return 0, fmt.Errorf("fuelpath: value of %s: %w", v.Name(), err)
	}

	return x, nil
}

// BuildAndSolve is Build followed by Solve.
func BuildAndSolve(ctx context.Context, data *netmodel.Data, p params.Params, solver milp.Solver, opts ...Option) (*Result, error) {
	fm, err := Build(data, p, solver, opts...)
	if err != nil {
		return nil, err
	}

	return fm.Solve(ctx)
}
