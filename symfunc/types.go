// Package symfunc defines the Expr node model, evaluation contexts,
// and provides constructors and sentinel errors for the symbolic
// function engine.
//
// All trees are immutable after construction; transformations (Diff,
// Compose, algebra) always return new trees, so subtrees may be shared
// between parents (DAG sharing) and read concurrently without locks.
//
// This file declares Kind, Expr, Context, Cache, operator-precedence
// constants, sentinel errors, and basic Expr accessors.
//
// Errors:
//
//	ErrLengthMismatch   - coefficient and term (or name and value) counts differ.
//	ErrEmptyCombination - linear combination constructed with zero terms.
//	ErrEmptySum         - Sum called with zero operands.
//	ErrUnboundVariable  - evaluation context is missing a required variable.
//	ErrMissingVariable  - compile argument order omits a free variable.
package symfunc

import "errors"

// Sentinel errors for construction, evaluation and compilation.
var (
	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("symfunc: coefficient and term counts differ")

	// ErrEmptyCombination indicates a linear combination with no terms.
	ErrEmptyCombination = errors.New("symfunc: linear combination needs at least one term")

	// ErrEmptySum indicates Sum was called with no operands.
	ErrEmptySum = errors.New("symfunc: sum needs at least one operand")

	// ErrUnboundVariable indicates the context lacks a variable the tree requires.
	ErrUnboundVariable = errors.New("symfunc: unbound variable")

	// ErrMissingVariable indicates a compile argument order omits a free variable.
	ErrMissingVariable = errors.New("symfunc: argument order omits a free variable")
)

// Kind discriminates the closed set of expression node variants.
// Every algorithm in this package (Apply, Diff, Compose, Compile,
// ExprString) switches exhaustively over Kind.
type Kind uint8

const (
	// KindConst is a numeric literal leaf.
	KindConst Kind = iota

	// KindVar is a named free-variable leaf.
	KindVar

	// KindAdd is a binary sum left + right.
	KindAdd

	// KindSub is a binary difference left - right.
	KindSub

	// KindMul is a binary product left * right.
	KindMul

	// KindDiv is a binary quotient left / right.
	KindDiv

	// KindSqrt is the square root of its argument.
	KindSqrt

	// KindPow raises its argument to a fixed real exponent.
	KindPow

	// KindAbs is the absolute value of its argument.
	KindAbs

	// KindLinearComb is an n-ary linear combination c1*f1 + ... + cN*fN.
	KindLinearComb

	// KindComposite is an outer tree with named variables substituted
	// by inner trees.
	KindComposite
)

// Operator precedence for printing, matching conventional infix grouping.
const (
	// OpOrderAtom marks leaves and parenthesized forms (bind tightest).
	OpOrderAtom = 0

	// OpOrderPower marks exponents and unary functions.
	OpOrderPower = 1

	// OpOrderMulDiv marks multiplication and division.
	OpOrderMulDiv = 2

	// OpOrderAddSub marks addition and subtraction (bind loosest).
	OpOrderAddSub = 3
)

// Expr is one immutable node of an expression tree.
//
// An Expr is only ever created by the constructors in this package
// (Const, Var, the algebra methods, Diff, Compose, ...); its fields are
// never mutated afterwards, which makes sharing a node between several
// parent trees sound. Constants produced by an Interner may be compared
// by pointer identity.
type Expr struct {
	kind Kind

	// val holds the literal for KindConst and the exponent for KindPow.
	val float64

	// name holds the variable name for KindVar.
	name string

	// left and right hold the operands of the four binary kinds.
	left, right *Expr

	// arg holds the operand of the unary kinds (Sqrt, Pow, Abs).
	arg *Expr

	// coeffs and terms hold a KindLinearComb; always the same length.
	coeffs []float64
	terms  []*Expr

	// outer, inners and innerOrder hold a KindComposite. innerOrder
	// fixes a deterministic iteration order over inners.
	outer      *Expr
	inners     map[string]*Expr
	innerOrder []string

	// vars is the deduplicated free-variable list in first-occurrence
	// order, recomputed at construction from the children.
	vars []string
}

// Kind reports which variant this node is.
func (f *Expr) Kind() Kind { return f.kind }

// Value returns the literal of a KindConst node, or the exponent of a
// KindPow node. It is zero for every other kind.
func (f *Expr) Value() float64 { return f.val }

// Name returns the variable name of a KindVar node, or "" otherwise.
func (f *Expr) Name() string { return f.name }

// Vars returns a copy of the node's free-variable names in
// first-occurrence order. The order is significant: it is the default
// argument order used by Compile.
func (f *Expr) Vars() []string {
	out := make([]string, len(f.vars))
	copy(out, f.vars)

	return out
}

// NumVars reports how many distinct free variables the tree has.
func (f *Expr) NumVars() int { return len(f.vars) }

// IsConstant reports whether the node is a numeric literal.
func (f *Expr) IsConstant() bool { return f.kind == KindConst }

// IsZero reports whether the node is the literal 0.
func (f *Expr) IsZero() bool { return f.kind == KindConst && f.val == 0 }

// OpOrder returns the operator precedence used for printing:
// 0 atoms, 1 powers/functions, 2 mul/div, 3 add/sub.
func (f *Expr) OpOrder() int {
	switch f.kind {
	case KindConst, KindVar:
		return OpOrderAtom
	case KindSqrt, KindPow, KindAbs:
		return OpOrderPower
	case KindMul, KindDiv:
		return OpOrderMulDiv
	case KindAdd, KindSub, KindLinearComb:
		return OpOrderAddSub
	case KindComposite:
		// Substitution only swaps leaves, so the root operator is the
		// outer root's — unless the outer root is itself a replaced
		// variable, in which case the inner tree's root decides.
		if f.outer.kind == KindVar {
			if inner, ok := f.inners[f.outer.name]; ok {
				return inner.OpOrder()
			}
		}

		return f.outer.OpOrder()
	default:
		return OpOrderAtom
	}
}

// Context binds variable names to numeric values for one evaluation
// point.
type Context map[string]float64

// NewContext builds a Context from parallel name and value slices.
// Returns ErrLengthMismatch when the slices differ in length.
// Complexity: O(len(names))
func NewContext(names []string, values []float64) (Context, error) {
	if len(names) != len(values) {
		return nil, ErrLengthMismatch
	}
	ctx := make(Context, len(names))
	for i, n := range names {
		ctx[n] = values[i]
	}

	return ctx, nil
}

// Cache memoizes node values during a single evaluation call, keyed by
// node identity. A shared subtree is then evaluated at most once per
// context instead of once per occurrence.
//
// A Cache is only meaningful for one Context at a time; call Reset
// before reusing it for another point. Caches must not be shared across
// goroutines.
type Cache struct {
	vals map[*Expr]float64
}

// NewCache returns an empty evaluation memo cache.
func NewCache() *Cache {
	return &Cache{vals: make(map[*Expr]float64)}
}

// Reset drops all memoized values so the Cache can serve a new context.
func (c *Cache) Reset() {
	clear(c.vals)
}

// Len reports how many node values are currently memoized.
func (c *Cache) Len() int { return len(c.vals) }
