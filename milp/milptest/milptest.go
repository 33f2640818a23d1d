// Package milptest provides a scripted milp.Solver for tests and for callers
// that need the formulation without a native backend.
//
// The script sees the recorded model at Optimize time and decides the status
// and, for StatusOptimal, one value per column:
//
//	s := milptest.New(func(p *milp.Problem) (milp.Status, []float64, error) {
//		return milp.StatusInfeasible, nil, nil
//	})
package milptest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/fuelroute/milp"
)

// ErrScript indicates a script returned an assignment of the wrong length.
var ErrScript = errors.New("milptest: script returned a malformed assignment")

// Script decides the outcome of Optimize for the recorded model.
type Script func(p *milp.Problem) (milp.Status, []float64, error)

// Solver records the model in an embedded *milp.Problem and answers Optimize
// from its Script.
type Solver struct {
	*milp.Problem

	script Script

	mu        sync.Mutex
	status    milp.Status
	values    []float64
	objective float64
	calls     int
	timeLimit time.Duration
	gap       float64
}

var _ milp.Solver = (*Solver)(nil)

// New returns a solver driven by script.
func New(script Script) *Solver {
	return &Solver{Problem: milp.NewProblem(), script: script}
}

// Status returns a Script that always reports st without values.
func Status(st milp.Status) Script {
	return func(*milp.Problem) (milp.Status, []float64, error) {
		return st, nil, nil
	}
}

// Assign returns a Script that reports StatusOptimal with a fixed assignment.
func Assign(values []float64) Script {
	return func(*milp.Problem) (milp.Status, []float64, error) {
		return milp.StatusOptimal, append([]float64(nil), values...), nil
	}
}

// Fail returns a Script that makes Optimize fail with err.
func Fail(err error) Script {
	return func(*milp.Problem) (milp.Status, []float64, error) {
		return milp.StatusOther, nil, err
	}
}

// Optimize runs the script. The context is checked before the script runs.
func (s *Solver) Optimize(ctx context.Context, timeLimit time.Duration, gap float64) (milp.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.timeLimit, s.gap = timeLimit, gap
	s.status, s.values, s.objective = milp.StatusOther, nil, 0

	if err := ctx.Err(); err != nil {
		return milp.StatusOther, err
	}
	if s.script == nil {
		return milp.StatusOther, fmt.Errorf("milptest: nil script: %w", ErrScript)
	}

	st, values, err := s.script(s.Problem)
	if err != nil {
		return milp.StatusOther, err
	}
	if st != milp.StatusOptimal {
		s.status = st
		return st, nil
	}
	if len(values) != s.NumVars() {
		return milp.StatusOther, fmt.Errorf("milptest: %d values for %d columns: %w", len(values), s.NumVars(), ErrScript)
	}
	obj, err := s.EvalObjective(values)
	if err != nil {
		return milp.StatusOther, err
	}
	s.status, s.values, s.objective = st, values, obj

	return st, nil
}

// ValueOf returns the scripted value of v.
func (s *Solver) ValueOf(v milp.Var) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != milp.StatusOptimal {
		return 0, milp.ErrNotSolved
	}
	if !s.Owns(v) {
		return 0, fmt.Errorf("milptest: %q: %w", v.Name(), milp.ErrUnknownVar)
	}

	return s.values[v.Index()], nil
}

// ObjectiveValue returns the objective evaluated at the scripted assignment.
func (s *Solver) ObjectiveValue() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != milp.StatusOptimal {
		return 0, milp.ErrNotSolved
	}

	return s.objective, nil
}

// Calls returns how many times Optimize ran.
func (s *Solver) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

// LastLimits returns the time limit and gap of the latest Optimize call.
func (s *Solver) LastLimits() (time.Duration, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timeLimit, s.gap
}
