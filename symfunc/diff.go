package symfunc

// Diff returns the partial derivative of f with respect to varName as a
// new tree. The input tree is never modified.
//
// One structural rule per node kind:
//
//	d(c)/dv          = 0
//	d(x)/dv          = 1 if x == v else 0
//	d(a ± b)/dv      = da/dv ± db/dv
//	d(a*b)/dv        = da/dv*b + a*db/dv            (product rule)
//	d(a/b)/dv        = (da/dv*b - a*db/dv) / (b*b)  (quotient rule)
//	d(g^p)/dv        = p * g^(p-1) * dg/dv          (chain rule, p fixed)
//	d(sqrt(g))/dv    = 0.5 * g^-0.5 * dg/dv
//	d(|g|)/dv        = g/|g| * dg/dv                (NaN at g == 0)
//	d(Σ ci*fi)/dv    = Σ ci * dfi/dv
//	d(outer∘subs)/dv = Σ_k (d(outer)/dk ∘ subs) * d(subs[k])/dv
//	                   [+ d(outer)/dv ∘ subs, if v stays free in outer]
//
// Results are not simplified beyond the constant folding the algebra
// combinators already perform; d(x*x)/dx prints as 1*x + x*1.
//
// Complexity: O(tree size) node visits; the produced tree can be larger
// than the input (product and quotient rules duplicate references).
func (f *Expr) Diff(varName string) *Expr {
	switch f.kind {
	case KindConst:
		return C0

	case KindVar:
		if f.name == varName {
			return C1
		}

		return C0

	case KindAdd:
		return f.left.Diff(varName).Add(f.right.Diff(varName))

	case KindSub:
		return f.left.Diff(varName).Sub(f.right.Diff(varName))

	case KindMul:
		return f.left.Diff(varName).Mul(f.right).
			Add(f.left.Mul(f.right.Diff(varName)))

	case KindDiv:
		num := f.left.Diff(varName).Mul(f.right).
			Sub(f.left.Mul(f.right.Diff(varName)))

		return num.Div(f.right.Mul(f.right))

	case KindPow:
		return Const(f.val).Mul(Pow(f.arg, f.val-1)).Mul(f.arg.Diff(varName))

	case KindSqrt:
		return Const(0.5).Mul(Pow(f.arg, -0.5)).Mul(f.arg.Diff(varName))

	case KindAbs:
		return f.arg.Div(Abs(f.arg)).Mul(f.arg.Diff(varName))

	case KindLinearComb:
		dterms := make([]*Expr, len(f.terms))
		for i, t := range f.terms {
			dterms[i] = t.Diff(varName)
		}

		return newLinearComb(f.coeffs, dterms)

	case KindComposite:
		return f.diffComposite(varName)

	default:
		return C0
	}
}

// diffComposite applies the multivariable chain rule. Each substituted
// inner variable k contributes (d outer/dk ∘ subs) * d(subs[k])/dv; a
// variable v that survives substitution contributes the direct term
// d(outer)/dv ∘ subs. When v neither is a substitution target nor stays
// free in the outer tree, the sum is empty and the derivative is 0.
func (f *Expr) diffComposite(varName string) *Expr {
	var total *Expr
	for _, k := range f.innerOrder {
		term := f.outer.Diff(k).Compose(f.inners).Mul(f.inners[k].Diff(varName))
		if total == nil {
			total = term
		} else {
			total = total.Add(term)
		}
	}

	if _, substituted := f.inners[varName]; !substituted && containsName(f.outer.vars, varName) {
		direct := f.outer.Diff(varName).Compose(f.inners)
		if total == nil {
			total = direct
		} else {
			total = total.Add(direct)
		}
	}

	if total == nil {
		return C0
	}

	return total
}
