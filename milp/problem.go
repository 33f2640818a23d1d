package milp

import (
	"fmt"
	"math"
	"sync"
)

// Column is a declared variable.
type Column struct {
	Var    Var
	Domain Domain
	Lower  float64
	Upper  float64
}

// Row is a declared constraint: Expr Rel RHS.
type Row struct {
	Name string
	Expr Expr
	Rel  Relation
	RHS  float64
}

// Violation describes a row or column an assignment breaks.
type Violation struct {
	// Name is the row or variable name.
	Name string
	// Lhs is the evaluated left-hand side (or the variable value).
	Lhs float64
	// Rel and Rhs describe the broken relation.
	Rel Relation
	Rhs float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %g %s %g", v.Name, v.Lhs, v.Rel, v.Rhs)
}

// Problem records a model. Its declaration methods satisfy the corresponding
// Solver methods, so backends embed *Problem and add Optimize, ValueOf and
// ObjectiveValue. Problem is safe for concurrent use.
type Problem struct {
	mu        sync.RWMutex
	cols      []Column
	rows      []Row
	names     map[string]struct{}
	objective Expr
	sense     Sense
}

// NewProblem returns an empty model.
func NewProblem() *Problem {
	return &Problem{names: make(map[string]struct{})}
}

// DeclareVariable records a column. Binary bounds are intersected with [0, 1].
func (p *Problem) DeclareVariable(name string, domain Domain, lower, upper float64) (Var, error) {
	if name == "" {
		return Var{}, ErrEmptyName
	}
	if domain != Continuous && domain != Binary {
		return Var{}, fmt.Errorf("milp: variable %s: %v: %w", name, domain, ErrBadRelation)
	}
	if domain == Binary {
		lower, upper = math.Max(lower, 0), math.Min(upper, 1)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Var{}, fmt.Errorf("milp: variable %s [%g,%g]: %w", name, lower, upper, ErrBadBounds)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.claim(name); err != nil {
		return Var{}, err
	}
	v := Var{index: len(p.cols), name: name}
	p.cols = append(p.cols, Column{Var: v, Domain: domain, Lower: lower, Upper: upper})

	return v, nil
}

// AddConstraint records a row. Every variable must belong to this model.
func (p *Problem) AddConstraint(expr Expr, rel Relation, rhs float64, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if rel != EQ && rel != LE && rel != GE {
		return fmt.Errorf("milp: row %s: %v: %w", name, rel, ErrBadRelation)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.owns(expr); err != nil {
		return fmt.Errorf("milp: row %s: %w", name, err)
	}
	if err := p.claim(name); err != nil {
		return err
	}
	p.rows = append(p.rows, Row{Name: name, Expr: expr, Rel: rel, RHS: rhs})

	return nil
}

// SetObjective replaces the objective.
func (p *Problem) SetObjective(expr Expr, sense Sense) error {
	if sense != Minimize && sense != Maximize {
		return fmt.Errorf("milp: objective: %v: %w", sense, ErrBadRelation)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.owns(expr); err != nil {
		return fmt.Errorf("milp: objective: %w", err)
	}
	p.objective, p.sense = expr, sense

	return nil
}

// Columns returns a copy of the declared columns in index order.
func (p *Problem) Columns() []Column {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]Column(nil), p.cols...)
}

// Rows returns a copy of the declared rows in submission order.
func (p *Problem) Rows() []Row {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]Row(nil), p.rows...)
}

// Objective returns the objective and its sense.
func (p *Problem) Objective() (Expr, Sense) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.objective, p.sense
}

// NumVars returns the number of declared columns.
func (p *Problem) NumVars() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.cols)
}

// NumRows returns the number of declared rows.
func (p *Problem) NumRows() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.rows)
}

// Violations evaluates every bound, integrality requirement and row under
// values (indexed by column) and returns those broken by more than tol.
// It fails with ErrUnknownVar if values does not cover every column.
func (p *Problem) Violations(values []float64, tol float64) ([]Violation, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(values) != len(p.cols) {
		return nil, fmt.Errorf("milp: %d values for %d columns: %w", len(values), len(p.cols), ErrUnknownVar)
	}

	var out []Violation
	for _, c := range p.cols {
		x := values[c.Var.index]
		if x < c.Lower-tol {
			out = append(out, Violation{Name: c.Var.name, Lhs: x, Rel: GE, Rhs: c.Lower})
		}
		if x > c.Upper+tol {
			out = append(out, Violation{Name: c.Var.name, Lhs: x, Rel: LE, Rhs: c.Upper})
		}
		if c.Domain == Binary && math.Abs(x-math.Round(x)) > tol {
			out = append(out, Violation{Name: c.Var.name, Lhs: x, Rel: EQ, Rhs: math.Round(x)})
		}
	}

	out = append(out, Check(p.rows, func(v Var) float64 { return values[v.index] }, tol)...)

	return out, nil
}

// Check evaluates rows under value and returns those broken by more than tol,
// in row order.
func Check(rows []Row, value func(Var) float64, tol float64) []Violation {
	var out []Violation
	for _, r := range rows {
		lhs := r.Expr.Eval(value)
		if !holds(lhs, r.Rel, r.RHS, tol) {
			out = append(out, Violation{Name: r.Name, Lhs: lhs, Rel: r.Rel, Rhs: r.RHS})
		}
	}

	return out
}

// EvalObjective returns the objective value under values.
func (p *Problem) EvalObjective(values []float64) (float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(values) != len(p.cols) {
		return 0, fmt.Errorf("milp: %d values for %d columns: %w", len(values), len(p.cols), ErrUnknownVar)
	}

	return p.objective.Eval(func(v Var) float64 { return values[v.index] }), nil
}

// Owns reports whether v was issued by this model.
func (p *Problem) Owns(v Var) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.ownsVar(v)
}

func (p *Problem) ownsVar(v Var) bool {
	return v.index >= 0 && v.index < len(p.cols) && p.cols[v.index].Var == v
}

func (p *Problem) owns(e Expr) error {
	for _, t := range e.Terms {
		if !p.ownsVar(t.Var) {
			return fmt.Errorf("%q: %w", t.Var.name, ErrUnknownVar)
		}
	}

	return nil
}

// claim reserves a name shared by columns and rows. Caller holds mu.
func (p *Problem) claim(name string) error {
	if _, dup := p.names[name]; dup {
		return fmt.Errorf("milp: %q: %w", name, ErrDuplicateName)
	}
	p.names[name] = struct{}{}

	return nil
}

func holds(lhs float64, rel Relation, rhs, tol float64) bool {
	switch rel {
	case EQ:
		return math.Abs(lhs-rhs) <= tol
	case LE:
		return lhs <= rhs+tol
	default:
		return lhs >= rhs-tol
	}
}
