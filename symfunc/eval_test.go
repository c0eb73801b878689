package symfunc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfunc/symfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_Polynomial reproduces f(x,y) = x*x + y*y at (3,4) = 25.
func TestApply_Polynomial(t *testing.T) {
	f := symfunc.X.Mul(symfunc.X).Add(symfunc.Y.Mul(symfunc.Y))

	v, err := f.Apply(symfunc.Context{"x": 3, "y": 4})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, v, 1e-12)
}

// TestApply_UnboundVariable ensures a context missing a required name
// surfaces ErrUnboundVariable instead of a silent zero.
func TestApply_UnboundVariable(t *testing.T) {
	f := symfunc.X.Add(symfunc.Y)

	_, err := f.Apply(symfunc.Context{"x": 3})
	assert.ErrorIs(t, err, symfunc.ErrUnboundVariable)
	assert.Contains(t, err.Error(), `"y"`, "error names the missing variable")
}

// TestApply_IEEEEdgeCases verifies division by zero and sqrt of a
// negative propagate IEEE results rather than erroring.
func TestApply_IEEEEdgeCases(t *testing.T) {
	inv := symfunc.C1.Div(symfunc.X)
	v, err := inv.Apply(symfunc.Context{"x": 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "1/0 is +Inf")

	root := symfunc.Sqrt(symfunc.X)
	v, err = root.Apply(symfunc.Context{"x": -1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "sqrt(-1) is NaN")
}

// TestApplyCached_Transparency checks that enabling the memo cache
// never changes the computed value, and that shared subtrees do land in
// the cache.
func TestApplyCached_Transparency(t *testing.T) {
	// shared appears three times in f via DAG sharing.
	shared := symfunc.X.Mul(symfunc.Y).Add(symfunc.Sqrt(symfunc.X))
	f := shared.Mul(shared).Add(shared)

	ctx := symfunc.Context{"x": 2.25, "y": -1.5}
	plain, err := f.Apply(ctx)
	require.NoError(t, err)

	cache := symfunc.NewCache()
	cached, err := f.ApplyCached(ctx, cache)
	require.NoError(t, err)

	assert.Equal(t, plain, cached, "cache must be transparent")
	assert.Positive(t, cache.Len(), "shared subtrees were memoized")

	// A reset cache serves a new context correctly.
	cache.Reset()
	assert.Zero(t, cache.Len())
	ctx2 := symfunc.Context{"x": 1, "y": 1}
	plain2, err := f.Apply(ctx2)
	require.NoError(t, err)
	cached2, err := f.ApplyCached(ctx2, cache)
	require.NoError(t, err)
	assert.Equal(t, plain2, cached2)
}

// TestApplyCached_NilCacheDegrades verifies a nil cache behaves like
// plain Apply.
func TestApplyCached_NilCacheDegrades(t *testing.T) {
	f := symfunc.X.AddConst(1)
	v, err := f.ApplyCached(symfunc.Context{"x": 41}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, v, 1e-12)
}

// TestApplyBatch_MatchesSingleApply checks element-for-element
// equivalence between the batch path and per-context Apply.
func TestApplyBatch_MatchesSingleApply(t *testing.T) {
	f := symfunc.Sqrt(symfunc.X.Mul(symfunc.X).Add(symfunc.Y.Mul(symfunc.Y)))

	ctxs := []symfunc.Context{
		{"x": 3, "y": 4},
		{"x": 0, "y": 0},
		{"x": -5, "y": 12},
	}
	batch, err := f.ApplyBatch(ctxs)
	require.NoError(t, err)
	require.Len(t, batch, len(ctxs))

	for i, ctx := range ctxs {
		single, err := f.Apply(ctx)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i], "element %d must match single Apply", i)
	}
}

// TestApplyBatch_UnboundVariable ensures a bad element fails the whole
// batch with the evaluation error.
func TestApplyBatch_UnboundVariable(t *testing.T) {
	f := symfunc.X.Add(symfunc.Y)
	_, err := f.ApplyBatch([]symfunc.Context{{"x": 1, "y": 2}, {"x": 1}})
	assert.ErrorIs(t, err, symfunc.ErrUnboundVariable)
}

// TestNewContext covers the parallel-slice context builder and its
// length validation.
func TestNewContext(t *testing.T) {
	ctx, err := symfunc.NewContext([]string{"x", "y"}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, symfunc.Context{"x": 3, "y": 4}, ctx)

	_, err = symfunc.NewContext([]string{"x"}, []float64{1, 2})
	assert.ErrorIs(t, err, symfunc.ErrLengthMismatch)
}

// TestApplyCached_Composite evaluates a composed tree through the
// cache path: outer(r,s) = r*s + 1 with r := x*x, s := y+1 at (2,1) = 9.
func TestApplyCached_Composite(t *testing.T) {
	outer := symfunc.R.Mul(symfunc.S).AddConst(1)
	comp := outer.Compose(map[string]*symfunc.Expr{
		"r": symfunc.X.Mul(symfunc.X),
		"s": symfunc.Y.AddConst(1),
	})

	v, err := comp.ApplyCached(symfunc.Context{"x": 2, "y": 1}, symfunc.NewCache())
	require.NoError(t, err)
	assert.InDelta(t, 9.0, v, 1e-12)
}
