package symfunc

import (
	"fmt"
	"math"
)

// Apply evaluates the tree at one context by structural tree walking.
//
// Numeric edge cases follow IEEE-754 double semantics: division by
// zero yields ±Inf or NaN, sqrt of a negative yields NaN; none of them
// is an engine error. The only evaluation error is a variable the
// context does not bind.
//
// Errors: ErrUnboundVariable.
// Complexity: O(tree size)
func (f *Expr) Apply(ctx Context) (float64, error) {
	return f.eval(ctx, nil)
}

// ApplyCached evaluates like Apply but memoizes every node's value in
// cache, keyed by node identity. Subtrees shared between several
// parents (e.g. a Jacobian factor reused across an integrand) are then
// evaluated once per context instead of once per occurrence.
//
// The cache is scoped to one context: Reset it before reusing with a
// different point. Passing a nil cache degrades to plain Apply.
func (f *Expr) ApplyCached(ctx Context, cache *Cache) (float64, error) {
	return f.eval(ctx, cache)
}

// ApplyBatch evaluates the tree at every context of ctxs and returns
// the values in matching order. The result is element-for-element equal
// to calling Apply once per context; the batch form exists to amortize
// memo-cache reuse across points.
// Complexity: O(len(ctxs) * tree size)
func (f *Expr) ApplyBatch(ctxs []Context) ([]float64, error) {
	out := make([]float64, len(ctxs))
	cache := NewCache()
	for i, ctx := range ctxs {
		cache.Reset() // memoized values are only valid per context
		v, err := f.eval(ctx, cache)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (f *Expr) eval(ctx Context, cache *Cache) (float64, error) {
	if cache != nil {
		if v, ok := cache.vals[f]; ok {
			return v, nil
		}
	}

	v, err := f.evalNode(ctx, cache)
	if err != nil {
		return 0, err
	}
	if cache != nil {
		cache.vals[f] = v
	}

	return v, nil
}

func (f *Expr) evalNode(ctx Context, cache *Cache) (float64, error) {
	switch f.kind {
	case KindConst:
		return f.val, nil

	case KindVar:
		v, ok := ctx[f.name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, f.name)
		}

		return v, nil

	case KindAdd, KindSub, KindMul, KindDiv:
		l, err := f.left.eval(ctx, cache)
		if err != nil {
			return 0, err
		}
		r, err := f.right.eval(ctx, cache)
		if err != nil {
			return 0, err
		}

		return foldConst(f.kind, l, r), nil

	case KindSqrt:
		a, err := f.arg.eval(ctx, cache)
		if err != nil {
			return 0, err
		}

		return math.Sqrt(a), nil

	case KindPow:
		a, err := f.arg.eval(ctx, cache)
		if err != nil {
			return 0, err
		}

		return math.Pow(a, f.val), nil

	case KindAbs:
		a, err := f.arg.eval(ctx, cache)
		if err != nil {
			return 0, err
		}

		return math.Abs(a), nil

	case KindLinearComb:
		total := 0.0
		for i, t := range f.terms {
			v, err := t.eval(ctx, cache)
			if err != nil {
				return 0, err
			}
			total += f.coeffs[i] * v
		}

		return total, nil

	case KindComposite:
		return f.evalComposite(ctx, cache)

	default:
		return 0, fmt.Errorf("symfunc: unknown node kind %d", f.kind)
	}
}

// evalComposite evaluates each substituted inner tree once under the
// caller's context, binds the results to the outer tree's variable
// names alongside the surviving free variables, then evaluates the
// outer tree in that derived context. The derived context lives in a
// different variable space, so the outer walk gets no memo cache.
func (f *Expr) evalComposite(ctx Context, cache *Cache) (float64, error) {
	inner := make(Context, len(f.outer.vars))
	for _, n := range f.outer.vars {
		if sub, ok := f.inners[n]; ok {
			v, err := sub.eval(ctx, cache)
			if err != nil {
				return 0, err
			}
			inner[n] = v
		} else if v, ok := ctx[n]; ok {
			inner[n] = v
		}
		// A name bound by neither map surfaces as ErrUnboundVariable
		// from the outer walk below.
	}

	return f.outer.eval(inner, nil)
}
