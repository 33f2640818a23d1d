package milp

// Term is coef·var.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is Σ coef·var + Const. The zero value is the empty expression.
type Expr struct {
	Terms []Term
	Const float64
}

// NewExpr returns an empty expression.
func NewExpr() Expr { return Expr{} }

// Sum returns Σ vars with unit coefficients.
func Sum(vars ...Var) Expr {
	e := Expr{Terms: make([]Term, 0, len(vars))}
	for _, v := range vars {
		e.Terms = append(e.Terms, Term{Var: v, Coef: 1})
	}

	return e
}

// Add returns e + coef·v. Zero coefficients are dropped.
func (e Expr) Add(v Var, coef float64) Expr {
	if coef == 0 {
		return e
	}
	e.Terms = append(e.Terms[:len(e.Terms):len(e.Terms)], Term{Var: v, Coef: coef})

	return e
}

// AddExpr returns e + scale·o.
func (e Expr) AddExpr(o Expr, scale float64) Expr {
	for _, t := range o.Terms {
		e = e.Add(t.Var, scale*t.Coef)
	}
	e.Const += scale * o.Const

	return e
}

// Plus returns e + c.
func (e Expr) Plus(c float64) Expr {
	e.Const += c
	return e
}

// Len returns the number of terms.
func (e Expr) Len() int { return len(e.Terms) }

// Coefficients merges duplicate variables and returns column index → coefficient.
func (e Expr) Coefficients() map[int]float64 {
	out := make(map[int]float64, len(e.Terms))
	for _, t := range e.Terms {
		out[t.Var.index] += t.Coef
	}

	return out
}

// Eval returns the value of e under value(v).
func (e Expr) Eval(value func(Var) float64) float64 {
	total := e.Const
	for _, t := range e.Terms {
		total += t.Coef * value(t.Var)
	}

	return total
}
