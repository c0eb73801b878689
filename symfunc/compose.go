package symfunc

// Compose substitutes whole trees for named free variables of f.
//
// Every free variable of f that appears as a key in subs is replaced by
// the mapped tree; names absent from subs stay free. The result's free
// variables are recomputed as the order-preserving union of the
// surviving outer names and the free variables of every substituted
// tree. Keys of subs that are not free in f are ignored; if nothing
// matches, f itself is returned.
//
// Name collisions are not detected: if a substituted tree reintroduces
// a name that also stays free in f, both refer to the same variable
// from then on. Callers that need distinct variables must rename before
// composing.
//
// The substitution is lazy — the result is a single composite node
// holding f and the matched subtrees. Flatten rebuilds it into a plain
// tree when a structural form is needed (printing and compilation do
// this internally).
//
// Complexity: O(free variables of f and of the matched subtrees)
func (f *Expr) Compose(subs map[string]*Expr) *Expr {
	var order []string
	for _, n := range f.vars {
		if _, ok := subs[n]; ok {
			order = append(order, n)
		}
	}
	if len(order) == 0 {
		return f
	}

	inners := make(map[string]*Expr, len(order))
	for _, n := range order {
		inners[n] = subs[n]
	}

	var vars []string
	for _, n := range f.vars {
		if inner, ok := inners[n]; ok {
			vars = mergeVars(vars, inner.vars)
		} else {
			vars = mergeVars(vars, []string{n})
		}
	}

	return &Expr{
		kind:       KindComposite,
		outer:      f,
		inners:     inners,
		innerOrder: order,
		vars:       vars,
	}
}

// Flatten returns an equivalent tree with every composite node expanded
// by structural substitution: the path from each root to each replaced
// variable leaf is rebuilt, untouched subtrees stay shared. A tree
// without composite nodes is returned as-is.
// Complexity: O(result size)
func (f *Expr) Flatten() *Expr {
	switch f.kind {
	case KindConst, KindVar:
		return f

	case KindAdd, KindSub, KindMul, KindDiv:
		l, r := f.left.Flatten(), f.right.Flatten()
		if l == f.left && r == f.right {
			return f
		}

		return newBinary(f.kind, l, r)

	case KindSqrt, KindPow, KindAbs:
		arg := f.arg.Flatten()
		if arg == f.arg {
			return f
		}

		return rebuildUnary(f, arg)

	case KindLinearComb:
		terms, changed := flattenAll(f.terms)
		if !changed {
			return f
		}

		return newLinearComb(f.coeffs, terms)

	case KindComposite:
		inners := make(map[string]*Expr, len(f.inners))
		for n, inner := range f.inners {
			inners[n] = inner.Flatten()
		}

		return substitute(f.outer.Flatten(), inners)

	default:
		return f
	}
}

// substitute structurally replaces variable leaves of e according to
// subs. e must already be composite-free (Flatten guarantees this).
func substitute(e *Expr, subs map[string]*Expr) *Expr {
	// Subtrees without any substituted name are shared untouched.
	if !anyNameIn(e.vars, subs) {
		return e
	}

	switch e.kind {
	case KindVar:
		if r, ok := subs[e.name]; ok {
			return r
		}

		return e

	case KindAdd, KindSub, KindMul, KindDiv:
		return newBinary(e.kind, substitute(e.left, subs), substitute(e.right, subs))

	case KindSqrt, KindPow, KindAbs:
		return rebuildUnary(e, substitute(e.arg, subs))

	case KindLinearComb:
		terms := make([]*Expr, len(e.terms))
		for i, t := range e.terms {
			terms[i] = substitute(t, subs)
		}

		return newLinearComb(e.coeffs, terms)

	default:
		return e
	}
}

func rebuildUnary(proto *Expr, arg *Expr) *Expr {
	switch proto.kind {
	case KindSqrt:
		return Sqrt(arg)
	case KindPow:
		return Pow(arg, proto.val)
	default:
		return Abs(arg)
	}
}

func flattenAll(terms []*Expr) (out []*Expr, changed bool) {
	out = make([]*Expr, len(terms))
	for i, t := range terms {
		out[i] = t.Flatten()
		if out[i] != t {
			changed = true
		}
	}

	return out, changed
}

func anyNameIn(names []string, subs map[string]*Expr) bool {
	for _, n := range names {
		if _, ok := subs[n]; ok {
			return true
		}
	}

	return false
}
