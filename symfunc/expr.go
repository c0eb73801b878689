package symfunc

// This file holds the leaf and n-ary constructors plus the calculus
// helpers (Sum, Grad, Divergence). Binary algebra lives in algebra.go.

// Const returns the canonical constant node for v from the shared
// package interner. Use (*Interner).Const for an isolated cache.
func Const(v float64) *Expr { return defaultInterner.Const(v) }

// Var returns a free-variable leaf named name.
func Var(name string) *Expr {
	return &Expr{kind: KindVar, name: name, vars: []string{name}}
}

// Predefined axis and reference-coordinate variables.
var (
	// X, Y, Z are the usual spatial coordinates.
	X = Var("x")
	Y = Var("y")
	Z = Var("z")

	// R, S, T are reference-element coordinates.
	R = Var("r")
	S = Var("s")
	T = Var("t")
)

// mergeVars appends the names of src not yet present in dst, preserving
// first-occurrence order. Linear scans keep small lists allocation-lean;
// free-variable lists are expected to stay tiny (a handful of axes).
func mergeVars(dst, src []string) []string {
	for _, n := range src {
		if !containsName(dst, n) {
			dst = append(dst, n)
		}
	}

	return dst
}

func containsName(names []string, n string) bool {
	for _, have := range names {
		if have == n {
			return true
		}
	}

	return false
}

// unaryVars copies the argument's free variables for a fresh node.
func unaryVars(arg *Expr) []string {
	return mergeVars(make([]string, 0, len(arg.vars)), arg.vars)
}

// Sqrt returns sqrt(f).
func Sqrt(f *Expr) *Expr {
	return &Expr{kind: KindSqrt, arg: f, vars: unaryVars(f)}
}

// Pow returns f raised to the fixed real exponent p.
func Pow(f *Expr, p float64) *Expr {
	return &Expr{kind: KindPow, arg: f, val: p, vars: unaryVars(f)}
}

// Abs returns |f|.
func Abs(f *Expr) *Expr {
	return &Expr{kind: KindAbs, arg: f, vars: unaryVars(f)}
}

// LinearCombination returns the single flat node
//
//	coeffs[0]*terms[0] + coeffs[1]*terms[1] + ... + coeffs[n-1]*terms[n-1].
//
// Errors:
//   - ErrEmptyCombination — no terms were supplied.
//   - ErrLengthMismatch   — len(coeffs) != len(terms).
//
// Complexity: O(total free variables)
func LinearCombination(coeffs []float64, terms []*Expr) (*Expr, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyCombination
	}
	if len(coeffs) != len(terms) {
		return nil, ErrLengthMismatch
	}

	return newLinearComb(coeffs, terms), nil
}

// LinearCombination2 returns c1*f1 + c2*f2, the common two-term case.
func LinearCombination2(c1 float64, f1 *Expr, c2 float64, f2 *Expr) *Expr {
	return newLinearComb([]float64{c1, c2}, []*Expr{f1, f2})
}

// newLinearComb copies its inputs; lengths were validated by the caller.
func newLinearComb(coeffs []float64, terms []*Expr) *Expr {
	cs := make([]float64, len(coeffs))
	copy(cs, coeffs)
	ts := make([]*Expr, len(terms))
	copy(ts, terms)

	var vars []string
	for _, t := range ts {
		vars = mergeVars(vars, t.vars)
	}

	return &Expr{kind: KindLinearComb, coeffs: cs, terms: ts, vars: vars}
}

// Sum returns fs[0] + fs[1] + ... + fs[n-1] as a chain of binary sums.
// Returns ErrEmptySum when called with no operands.
func Sum(fs ...*Expr) (*Expr, error) {
	if len(fs) == 0 {
		return nil, ErrEmptySum
	}
	total := fs[0]
	for _, f := range fs[1:] {
		total = total.Add(f)
	}

	return total, nil
}

// Grad returns the gradient of f: one partial derivative per free
// variable, in the free-variable order of f.
// Complexity: O(NumVars * tree size)
func Grad(f *Expr) []*Expr {
	return GradVars(f, f.vars...)
}

// GradVars returns the partial derivatives of f with respect to the
// given names, in the given order. Useful when f is a composition and
// the differentiation variables differ from f.Vars().
func GradVars(f *Expr, names ...string) []*Expr {
	out := make([]*Expr, len(names))
	for i, n := range names {
		out[i] = f.Diff(n)
	}

	return out
}

// Divergence returns Σ d(fs[i])/d(names[i]).
// Returns ErrLengthMismatch when fs and names differ in length and
// ErrEmptySum when both are empty.
func Divergence(fs []*Expr, names []string) (*Expr, error) {
	if len(fs) != len(names) {
		return nil, ErrLengthMismatch
	}
	if len(fs) == 0 {
		return nil, ErrEmptySum
	}
	total := fs[0].Diff(names[0])
	for i := 1; i < len(fs); i++ {
		total = total.Add(fs[i].Diff(names[i]))
	}

	return total, nil
}
