package symfunc_test

import (
	"testing"

	"github.com/katalvlaran/lvlfunc/symfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExprString_Leaves covers literal and variable rendering.
func TestExprString_Leaves(t *testing.T) {
	assert.Equal(t, "x", symfunc.X.ExprString())
	assert.Equal(t, "3", symfunc.Const(3).ExprString())
	assert.Equal(t, "2.5", symfunc.Const(2.5).ExprString())
	assert.Equal(t, "-1", symfunc.Cm1.ExprString())
}

// TestExprString_NumeratorParens reproduces the canonical grouping
// case: (x + y)/z parenthesizes the lower-precedence numerator.
func TestExprString_NumeratorParens(t *testing.T) {
	f := symfunc.X.Add(symfunc.Y).Div(symfunc.Z)
	assert.Equal(t, "(x + y)/z", f.ExprString())
}

// TestExprString_RightAssociativeParens checks the inclusive rule on
// the right of the non-commutative operators.
func TestExprString_RightAssociativeParens(t *testing.T) {
	assert.Equal(t, "x - (y + z)", symfunc.X.Sub(symfunc.Y.Add(symfunc.Z)).ExprString())
	assert.Equal(t, "x/(y*z)", symfunc.X.Div(symfunc.Y.Mul(symfunc.Z)).ExprString())
	assert.Equal(t, "x/(y/z)", symfunc.X.Div(symfunc.Y.Div(symfunc.Z)).ExprString())
}

// TestExprString_NoRedundantParens verifies left-associative chains and
// higher-precedence children print bare.
func TestExprString_NoRedundantParens(t *testing.T) {
	assert.Equal(t, "x + y + z", symfunc.X.Add(symfunc.Y).Add(symfunc.Z).ExprString())
	assert.Equal(t, "x*y + z", symfunc.X.Mul(symfunc.Y).Add(symfunc.Z).ExprString())
	assert.Equal(t, "x*(y + z)", symfunc.X.Mul(symfunc.Y.Add(symfunc.Z)).ExprString())
	assert.Equal(t, "x + y - z", symfunc.X.Add(symfunc.Y).Sub(symfunc.Z).ExprString())
}

// TestExprString_Functions covers the function-call and power forms.
func TestExprString_Functions(t *testing.T) {
	assert.Equal(t, "sqrt(x + y)", symfunc.Sqrt(symfunc.X.Add(symfunc.Y)).ExprString())
	assert.Equal(t, "abs(x)", symfunc.Abs(symfunc.X).ExprString())
	assert.Equal(t, "(x)^2", symfunc.Pow(symfunc.X, 2).ExprString())
	assert.Equal(t, "(x + 1)^-0.5", symfunc.Pow(symfunc.X.AddConst(1), -0.5).ExprString())
}

// TestExprString_LinearCombination renders coefficient*term pairs with
// parens only where the term binds looser than a product.
func TestExprString_LinearCombination(t *testing.T) {
	lc, err := symfunc.LinearCombination(
		[]float64{2, 3},
		[]*symfunc.Expr{symfunc.X, symfunc.Y},
	)
	require.NoError(t, err)
	assert.Equal(t, "2*x + 3*y", lc.ExprString())

	wrapped, err := symfunc.LinearCombination(
		[]float64{1.5},
		[]*symfunc.Expr{symfunc.X.Add(symfunc.Y)},
	)
	require.NoError(t, err)
	assert.Equal(t, "1.5*(x + y)", wrapped.ExprString())
}

// TestExprString_Composite prints the substituted form of a lazily
// composed tree.
func TestExprString_Composite(t *testing.T) {
	outer := symfunc.R.Mul(symfunc.S).AddConst(1)
	comp := outer.Compose(map[string]*symfunc.Expr{
		"r": symfunc.X.Mul(symfunc.X),
		"s": symfunc.Y.AddConst(1),
	})
	assert.Equal(t, "x*x*(y + 1) + 1", comp.ExprString())
}

// TestExprString_CompositePrecedence guards the case where the outer
// root is itself a substituted variable: the inner tree's precedence
// must drive the parent's grouping decision.
func TestExprString_CompositePrecedence(t *testing.T) {
	sum := symfunc.R.Compose(map[string]*symfunc.Expr{"r": symfunc.X.Add(symfunc.Y)})
	f := sum.Mul(symfunc.Z)
	assert.Equal(t, "(x + y)*z", f.ExprString())
}

// TestString_ImplementsStringer checks the fmt.Stringer alias.
func TestString_ImplementsStringer(t *testing.T) {
	f := symfunc.X.Div(symfunc.Y)
	assert.Equal(t, f.ExprString(), f.String())
}
