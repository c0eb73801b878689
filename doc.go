// Package lvlfunc is your in-memory toolkit for building, differentiating,
// and evaluating symbolic real-valued functions — from single variables to
// composed multivariate expressions compiled for tight numeric loops.
//
// 🚀 What is lvlfunc?
//
//	A thread-friendly library that brings together:
//		• Expression trees: constants, variables, +, -, *, /, sqrt, pow, abs
//		• Linear combinations: c1*f1 + c2*f2 + ... in a single flat node
//		• Symbolic differentiation: product, quotient and chain rules
//		• Composition: substitute whole trees for named variables
//		• Batched evaluation with per-call memo caches for shared subtrees
//		• Compilation: a flat instruction tape + stack machine for hot loops
//		• Printing: precedence-correct algebraic strings for diagnostics
//
// ✨ Why choose lvlfunc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable trees, safe concurrent evaluation
//   - Pure Go – no cgo, no run-time code generation, no hidden deps
//   - Fast – compile once, evaluate the tape thousands of times per loop
//
// Everything lives in one subpackage:
//
//	symfunc/ — expression nodes, interner, algebra, Diff, Compose, Apply,
//	           Compile and printing
//
// Quick taste:
//
//	f := symfunc.X.Mul(symfunc.X).Add(symfunc.Y.Mul(symfunc.Y)) // x*x + y*y
//	v, _ := f.Apply(symfunc.Context{"x": 3, "y": 4})            // 25
//	df := f.Diff("x")                                           // d/dx, a new tree
//
// Dive into symfunc's doc.go for the full contract, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlfunc/symfunc
package lvlfunc
