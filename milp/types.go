package milp

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownVar indicates a handle not declared on this model.
	ErrUnknownVar = errors.New("milp: unknown variable")

	// ErrNotSolved indicates values were requested without an optimal solve.
	ErrNotSolved = errors.New("milp: no optimal solution")

	// ErrDuplicateName indicates a variable or constraint name used twice.
	ErrDuplicateName = errors.New("milp: duplicate name")

	// ErrEmptyName indicates a missing variable or constraint name.
	ErrEmptyName = errors.New("milp: empty name")

	// ErrBadBounds indicates lower > upper or a NaN bound.
	ErrBadBounds = errors.New("milp: invalid bounds")

	// ErrBadRelation indicates a relation or sense outside the declared constants.
	ErrBadRelation = errors.New("milp: invalid relation or sense")
)

// Domain is the value domain of a variable.
type Domain int

const (
	// Continuous variables take any real value within bounds.
	Continuous Domain = iota
	// Binary variables take 0 or 1.
	Binary
)

func (d Domain) String() string {
	switch d {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Relation compares a linear expression with a right-hand side.
type Relation int

const (
	// EQ is expr = rhs.
	EQ Relation = iota
	// LE is expr ≤ rhs.
	LE
	// GE is expr ≥ rhs.
	GE
)

func (r Relation) String() string {
	switch r {
	case EQ:
		return "="
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Sense is the optimization direction.
type Sense int

const (
	// Minimize the objective.
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Status is the outcome of Optimize.
type Status int

const (
	// StatusOther covers every outcome that is neither optimal nor infeasible
	// (time limit, unbounded, interrupted, numerical trouble).
	StatusOther Status = iota
	// StatusOptimal means a proven optimum within the gap tolerance.
	StatusOptimal
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "OTHER"
	}
}

// Var is a variable handle. Handles are only meaningful on the model that
// issued them.
type Var struct {
	index int
	name  string
}

// Index returns the column index of v in declaration order.
func (v Var) Index() int { return v.index }

// Name returns the name v was declared with.
func (v Var) Name() string { return v.name }

// Solver is the external solver interface consumed by the formulation.
type Solver interface {
	// DeclareVariable adds a column with the given domain and bounds.
	DeclareVariable(name string, domain Domain, lower, upper float64) (Var, error)

	// AddConstraint adds the row expr rel rhs.
	AddConstraint(expr Expr, rel Relation, rhs float64, name string) error

	// SetObjective replaces the objective.
	SetObjective(expr Expr, sense Sense) error

	// Optimize solves the model within timeLimit and the relative gap.
	// A zero timeLimit means no limit. Only solver failures are returned as
	// errors; an infeasible model is a Status, not an error.
	Optimize(ctx context.Context, timeLimit time.Duration, gap float64) (Status, error)

	// ValueOf returns the value of v in the optimal solution.
	ValueOf(v Var) (float64, error)

	// ObjectiveValue returns the optimal objective value.
	ObjectiveValue() (float64, error)
}
