package highs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/fuelroute/milp"
)

// Solver is a milp.Solver backed by HiGHS.
type Solver struct {
	*milp.Problem

	logger *slog.Logger
	output bool

	mu        sync.Mutex
	solution  *highs.Solution
	objective float64
}

var _ milp.Solver = (*Solver)(nil)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger for solve summaries.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOutput toggles the native HiGHS console log.
func WithOutput(on bool) Option {
	return func(s *Solver) {
		s.output = on
	}
}

// New returns an empty HiGHS-backed model.
func New(opts ...Option) *Solver {
	s := &Solver{
		Problem: milp.NewProblem(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Optimize translates the recorded model and runs HiGHS.
func (s *Solver) Optimize(ctx context.Context, timeLimit time.Duration, gap float64) (milp.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solution, s.objective = nil, 0

	if err := ctx.Err(); err != nil {
		return milp.StatusOther, err
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); timeLimit <= 0 || left < timeLimit {
			timeLimit = left
		}
	}

	opts := []highs.SolveOption{highs.WithOutput(s.output), highs.WithMIPRelGap(gap)}
	if timeLimit > 0 {
		opts = append(opts, highs.WithTimeLimit(timeLimit.Seconds()))
	}

	start := time.Now()
	sol, err := buildModel(s.Problem).Solve(opts...)
	if err != nil {
		return milp.StatusOther, fmt.Errorf("highs: solve: %w", err)
	}
	st := status(sol)
	s.logger.Debug("highs solve",
		"status", st.String(),
		"vars", s.NumVars(),
		"rows", s.NumRows(),
		"elapsed", time.Since(start))

	if st != milp.StatusOptimal {
		return st, nil
	}
	s.solution = sol
	s.objective = sol.Objective

	return st, nil
}

// ValueOf returns the column value of v.
func (s *Solver) ValueOf(v milp.Var) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.solution == nil {
		return 0, milp.ErrNotSolved
	}
	if !s.Owns(v) {
		return 0, fmt.Errorf("highs: %q: %w", v.Name(), milp.ErrUnknownVar)
	}

	return s.solution.Value(v.Index()), nil
}

// ObjectiveValue returns the optimal objective in the caller's sense.
func (s *Solver) ObjectiveValue() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.solution == nil {
		return 0, milp.ErrNotSolved
	}

	return s.objective, nil
}
