package symfunc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfunc/symfunc"
	"github.com/stretchr/testify/assert"
)

// TestInterner_IdentityPerValue verifies that one Interner hands out a
// single shared node per distinct float64 value, comparable by pointer.
func TestInterner_IdentityPerValue(t *testing.T) {
	it := symfunc.NewInterner()

	a := it.Const(1.5)
	b := it.Const(1.5)
	assert.Same(t, a, b, "equal literals intern to one node")
	assert.Equal(t, 1.5, a.Value())

	c := it.Const(-1.5)
	assert.NotSame(t, a, c, "distinct values get distinct nodes")
	assert.Equal(t, 2, it.Len())
}

// TestInterner_Isolation checks that separate interners never share
// nodes, so tests and short-lived computations can cache independently.
func TestInterner_Isolation(t *testing.T) {
	it1 := symfunc.NewInterner()
	it2 := symfunc.NewInterner()

	assert.NotSame(t, it1.Const(2), it2.Const(2), "interners are isolated")
	assert.Same(t, it1.Const(2), it1.Const(2))

	// The package-default interner is yet another instance.
	assert.NotSame(t, it1.Const(2), symfunc.Const(2))
}

// TestInterner_NaNNotInterned ensures NaN literals are minted fresh
// every time and never counted: NaN can't serve as a map key.
func TestInterner_NaNNotInterned(t *testing.T) {
	it := symfunc.NewInterner()

	a := it.Const(math.NaN())
	b := it.Const(math.NaN())
	assert.NotSame(t, a, b, "NaN is never interned")
	assert.True(t, math.IsNaN(a.Value()))
	assert.Equal(t, 0, it.Len(), "NaN leaves the cache untouched")
}

// TestPredefinedConstants spot-checks the shared C0/C1/Cm1/CPi/CE nodes
// and their identity with freshly requested literals.
func TestPredefinedConstants(t *testing.T) {
	assert.True(t, symfunc.C0.IsZero())
	assert.True(t, symfunc.C1.IsConstant())
	assert.Equal(t, -1.0, symfunc.Cm1.Value())
	assert.Equal(t, math.Pi, symfunc.CPi.Value())
	assert.Equal(t, math.E, symfunc.CE.Value())

	assert.Same(t, symfunc.C1, symfunc.Const(1), "predefined nodes come from the default interner")
	assert.Same(t, symfunc.C0, symfunc.Const(0))
}

// TestPredefinedVariables spot-checks the axis and reference variables.
func TestPredefinedVariables(t *testing.T) {
	assert.Equal(t, "x", symfunc.X.Name())
	assert.Equal(t, "y", symfunc.Y.Name())
	assert.Equal(t, "z", symfunc.Z.Name())
	assert.Equal(t, "r", symfunc.R.Name())
	assert.Equal(t, "s", symfunc.S.Name())
	assert.Equal(t, "t", symfunc.T.Name())
}
