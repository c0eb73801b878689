package symfunc

// This file holds the binary algebra over expression trees. Every
// combinator returns a brand-new node; receivers and operands are never
// modified, so operands may be shared with other trees.
//
// The only simplification performed is constant folding: combining two
// literals yields a single interned literal with the IEEE result of the
// operation (0/0 folds to NaN, 1/0 to +Inf). No algebraic rewriting
// such as x*0 -> 0 happens here: it would have to prove x is finite.

// newBinary builds a binary node, folding the constant-constant case
// through the shared interner.
func newBinary(kind Kind, l, r *Expr) *Expr {
	if l.kind == KindConst && r.kind == KindConst {
		return Const(foldConst(kind, l.val, r.val))
	}

	vars := mergeVars(make([]string, 0, len(l.vars)+len(r.vars)), l.vars)
	vars = mergeVars(vars, r.vars)

	return &Expr{kind: kind, left: l, right: r, vars: vars}
}

func foldConst(kind Kind, a, b float64) float64 {
	switch kind {
	case KindAdd:
		return a + b
	case KindSub:
		return a - b
	case KindMul:
		return a * b
	case KindDiv:
		return a / b
	default:
		panic("symfunc: foldConst on non-binary kind")
	}
}

// Add returns f + g.
func (f *Expr) Add(g *Expr) *Expr { return newBinary(KindAdd, f, g) }

// Sub returns f - g.
func (f *Expr) Sub(g *Expr) *Expr { return newBinary(KindSub, f, g) }

// Mul returns f * g.
func (f *Expr) Mul(g *Expr) *Expr { return newBinary(KindMul, f, g) }

// Div returns f / g. Division by a zero value follows IEEE semantics at
// evaluation time (±Inf or NaN), it is not a construction error.
func (f *Expr) Div(g *Expr) *Expr { return newBinary(KindDiv, f, g) }

// AddConst returns f + v with v interned as a constant node.
func (f *Expr) AddConst(v float64) *Expr { return f.Add(Const(v)) }

// SubConst returns f - v.
func (f *Expr) SubConst(v float64) *Expr { return f.Sub(Const(v)) }

// MulConst returns f * v.
func (f *Expr) MulConst(v float64) *Expr { return f.Mul(Const(v)) }

// DivConst returns f / v.
func (f *Expr) DivConst(v float64) *Expr { return f.Div(Const(v)) }

// Neg returns -f, built as (-1) * f.
func (f *Expr) Neg() *Expr { return Cm1.Mul(f) }
