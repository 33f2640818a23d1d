package fuelpath

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/netmodel"
	"github.com/katalvlaran/fuelroute/params"
)

// Formulation is one built model: its variables, its submitted rows and the
// solver they live on.
type Formulation struct {
	data   *netmodel.Data
	params params.Params
	solver milp.Solver
	cfg    config
	ns     string

	keys []Key // X keys by step, then arc order
	x    map[Key]milp.Var
	f    []milp.Var // F[τ] at index τ-1
	rows []milp.Row
}

// Build declares X and F on solver and submits C1–C8 and the objective.
//
// Errors: ErrNilData, ErrNilSolver, params.ErrInvalid, or a wrapped solver error.
// Complexity: O(T·|A|) variables and O(T·(|A| + |V|)) row terms.
func Build(data *netmodel.Data, p params.Params, solver milp.Solver, opts ...Option) (*Formulation, error) {
	if data == nil {
		return nil, ErrNilData
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("fuelpath: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ns := cfg.namespace
	if ns == "" {
		ns = uuid.NewString()
	}

	fm := &Formulation{
		data:   data,
		params: p,
		solver: solver,
		cfg:    cfg,
		ns:     ns,
		x:      make(map[Key]milp.Var, len(data.Arcs)*len(data.TimeSteps)),
	}

	steps := []func() error{
		fm.declare,
		fm.startDegree,
		fm.flowConservation,
		fm.terminalOnce,
		fm.fuelBalance,
		fm.objective,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	cfg.logger.Debug("formulation built",
		slog.String("namespace", ns),
		slog.Int("vars", len(fm.keys)+len(fm.f)),
		slog.Int("rows", len(fm.rows)))
	if cfg.observer != nil {
		cfg.observer.ObserveBuild(len(fm.keys)+len(fm.f), len(fm.rows))
	}

	return fm, nil
}

// Namespace returns the name prefix of every variable and row.
func (fm *Formulation) Namespace() string { return fm.ns }

// Data returns the network data the model was built from.
func (fm *Formulation) Data() *netmodel.Data { return fm.data }

// Params returns the parameters the model was built with.
func (fm *Formulation) Params() params.Params { return fm.params }

// Keys returns every X key ordered by step, then arc.
func (fm *Formulation) Keys() []Key { return append([]Key(nil), fm.keys...) }

// X returns the variable of k.
func (fm *Formulation) X(k Key) (milp.Var, bool) {
	v, ok := fm.x[k]
	return v, ok
}

// F returns the fuel variable of step τ (1-based).
func (fm *Formulation) F(step int) (milp.Var, bool) {
	if step < 1 || step > len(fm.f) {
		return milp.Var{}, false
	}

	return fm.f[step-1], true
}

// Rows returns the submitted rows in submission order.
func (fm *Formulation) Rows() []milp.Row { return append([]milp.Row(nil), fm.rows...) }

// NumVars returns the number of declared variables.
func (fm *Formulation) NumVars() int { return len(fm.keys) + len(fm.f) }

func (fm *Formulation) declare() error {
	for _, step := range fm.data.TimeSteps {
		for _, a := range fm.data.Arcs {
			k := Key{From: a.From, To: a.To, Step: step}
			v, err := fm.solver.DeclareVariable(fm.name("x[%s,%s,%d]", a.From, a.To, step), milp.Binary, 0, 1)
			if err != nil {
				return fmt.Errorf("fuelpath: declare X%s: %w", k, err)
			}
			fm.keys = append(fm.keys, k)
			fm.x[k] = v
		}
	}

	fm.f = make([]milp.Var, 0, len(fm.data.TimeSteps))
	for _, step := range fm.data.TimeSteps {
		v, err := fm.solver.DeclareVariable(fm.name("F[%d]", step), milp.Continuous, 0, math.Inf(1))
		if err != nil {
			return fmt.Errorf("fuelpath: declare F[%d]: %w", step, err)
		}
		fm.f = append(fm.f, v)
	}

	return nil
}

// startDegree submits C1.
func (fm *Formulation) startDegree() error {
	for _, step := range fm.data.TimeSteps {
		rhs := 0.0
		if step == 1 {
			rhs = 1
		}
		e := fm.sumX(fm.data.Out(fm.data.Source), step, nil)
		if err := fm.add(e, milp.EQ, rhs, "C1[%d]", step); err != nil {
			return err
		}
	}

	return nil
}

// flowConservation submits C2: what lands on an interior node at τ leaves it
// at τ+1, and nothing lands on one at the last step.
func (fm *Formulation) flowConservation() error {
	last := fm.data.Horizon()
	for _, i := range fm.data.Interior() {
		for step := 1; step < last; step++ {
			e := fm.sumX(fm.data.Out(i), step+1, nil).AddExpr(fm.sumX(fm.data.In(i), step, nil), -1)
			if err := fm.add(e, milp.EQ, 0, "C2[%s,%d]", i, step); err != nil {
				return err
			}
		}
		if err := fm.add(fm.sumX(fm.data.In(i), last, nil), milp.EQ, 0, "C2[%s,%d]", i, last); err != nil {
			return err
		}
	}

	return nil
}

// terminalOnce submits C3.
func (fm *Formulation) terminalOnce() error {
	e := milp.NewExpr()
	for _, step := range fm.data.TimeSteps {
		e = e.AddExpr(fm.sumX(fm.data.In(fm.data.Sink), step, nil), 1)
	}

	return fm.add(e, milp.EQ, 1, "C3")
}

// fuelBalance submits C4–C8.
func (fm *Formulation) fuelBalance() error {
	capacity := fm.params.FuelCapacity
	if err := fm.add(milp.Sum(fm.f[0]), milp.EQ, capacity, "C4"); err != nil {
		return err
	}

	for _, step := range fm.data.TimeSteps {
		cur := fm.f[step-1]
		if step > 1 {
			prev := fm.f[step-2]
			burn := fm.burn(step - 1)

			// F[τ] − F[τ-1] + Σ fuel·X − Σ Q·X(refuel) ≤ 0
			refill := fm.sumX(fm.data.Arcs, step-1, fm.data.IsRefuel)
			c5 := milp.Sum(cur).Add(prev, -1).AddExpr(burn, 1).AddExpr(refill, -capacity)
			if err := fm.add(c5, milp.LE, 0, "C5[%d]", step); err != nil {
				return err
			}
			if err := fm.add(milp.Sum(cur), milp.LE, capacity, "C6[%d]", step); err != nil {
				return err
			}
		}
		if err := fm.add(milp.Sum(cur), milp.GE, 0, "C7[%d]", step); err != nil {
			return err
		}
		if step > 1 {
			// F[τ-1] − Σ fuel·X ≥ 0
			c8 := milp.Sum(fm.f[step-2]).AddExpr(fm.burn(step-1), -1)
			if err := fm.add(c8, milp.GE, 0, "C8[%d]", step); err != nil {
				return err
			}
		}
	}

	return nil
}

// objective sets w1·Σ cost·X + w2·Σ_{j refuels} X.
func (fm *Formulation) objective() error {
	e := milp.NewExpr()
	for _, k := range fm.keys {
		a := k.Arc()
		coef := fm.params.W1 * fm.data.Cost[a]
		if fm.data.IsRefuel(a.To) {
			coef += fm.params.W2
		}
		e = e.Add(fm.x[k], coef)
	}
	if err := fm.solver.SetObjective(e, milp.Minimize); err != nil {
		return fmt.Errorf("fuelpath: objective: %w", err)
	}

	return nil
}

// burn returns Σ fuel(a)·X[a,step] over all arcs.
func (fm *Formulation) burn(step int) milp.Expr {
	e := milp.NewExpr()
	for _, a := range fm.data.Arcs {
		e = e.Add(fm.x[Key{From: a.From, To: a.To, Step: step}], float64(fm.data.Fuel[a]))
	}

	return e
}

// sumX returns Σ X[a,step] over arcs whose head passes keep (nil keeps all).
func (fm *Formulation) sumX(arcs []netmodel.Arc, step int, keep func(head string) bool) milp.Expr {
	e := milp.NewExpr()
	for _, a := range arcs {
		if keep != nil && !keep(a.To) {
			continue
		}
		e = e.Add(fm.x[Key{From: a.From, To: a.To, Step: step}], 1)
	}

	return e
}

func (fm *Formulation) add(e milp.Expr, rel milp.Relation, rhs float64, format string, args ...any) error {
	name := fm.name(format, args...)
	if err := fm.solver.AddConstraint(e, rel, rhs, name); err != nil {
		return fmt.Errorf("fuelpath: constraint %s: %w", name, err)
	}
	fm.rows = append(fm.rows, milp.Row{Name: name, Expr: e, Rel: rel, RHS: rhs})

	return nil
}

func (fm *Formulation) name(format string, args ...any) string {
	return fm.ns + "/" + fmt.Sprintf(format, args...)
}
