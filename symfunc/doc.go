// Package symfunc builds, differentiates, composes, evaluates, and
// compiles symbolic real-valued functions over named variables.
//
// 🚀 What is symfunc?
//
//	An immutable expression-tree engine for numerical kernels:
//	  • Leaves: interned constants (Const) and named variables (Var)
//	  • Operators: Add/Sub/Mul/Div, Sqrt, fixed-exponent Pow, Abs
//	  • LinearCombination: Σ cᵢ·fᵢ as one flat node
//	  • Diff: symbolic partial derivatives (product/quotient/chain rules)
//	  • Compose: substitute whole trees for variables, lazily
//	  • Apply/ApplyBatch: tree-walking evaluation with optional memo Cache
//	  • Compile: flat instruction tape + stack machine for hot loops
//	  • ExprString: precedence-correct diagnostic printing
//
// ✨ Key guarantees:
//
//   - Immutability — every transformation returns a new tree; subtrees
//     are freely shared between parents (DAG, never cycles)
//   - Identity-comparable constants via the Interner
//   - IEEE-754 semantics everywhere: 1/0 is +Inf, sqrt(-1) is NaN,
//     never an engine error
//   - Concurrent read-only use of any tree or CompiledFunc is safe;
//     only Cache instances are per-goroutine
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlfunc/symfunc"
//
//	f := symfunc.X.Mul(symfunc.X).Add(symfunc.Y.Mul(symfunc.Y)) // x*x + y*y
//	v, err := f.Apply(symfunc.Context{"x": 3, "y": 4})          // 25, nil
//
//	dfdx := f.Diff("x")                  // symbolic ∂f/∂x
//	g := symfunc.Grad(f)                 // [∂f/∂x, ∂f/∂y]
//
//	cf, err := f.Compile("x", "y")       // compile once ...
//	v = cf.Evaluate([]float64{3, 4})     // ... evaluate many times
//
// Two evaluation paths:
//
//	Apply    — tree walk; flexible, right for prototyping and low volume
//	Compile  — instruction tape; 1–2 orders of magnitude faster when the
//	           same function is evaluated at thousands of points, e.g.
//	           inside quadrature/assembly loops
//
// Performance:
//
//   - Construction, Diff, Compose, Compile: O(tree size), done once
//   - Apply: O(tree size) per point; ApplyCached evaluates shared
//     subtrees once per context
//   - CompiledFunc.Evaluate: O(tape length), allocation-free
//
// See example_test.go for runnable scenarios.
package symfunc
