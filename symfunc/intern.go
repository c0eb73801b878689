package symfunc

import (
	"math"
	"sync"
)

// Interner deduplicates constant nodes: at most one *Expr exists per
// distinct float64 value for the lifetime of the Interner. Constants
// obtained through the same Interner may be compared by pointer
// identity as a fast path before value equality.
//
// Entries are never evicted. Do not mint very large numbers of distinct
// uncommon literals through a long-lived Interner if memory matters.
//
// All methods are safe for concurrent use.
type Interner struct {
	mu     sync.RWMutex
	consts map[float64]*Expr
}

// NewInterner returns an empty, isolated constant interner.
// Tests and short-lived computations can use their own instance instead
// of the shared package default.
func NewInterner() *Interner {
	return &Interner{consts: make(map[float64]*Expr)}
}

// Const returns the canonical constant node for v, creating and caching
// it on first use.
//
// NaN is the one value that is never interned: NaN never compares equal
// to itself as a map key, so each call returns a fresh node.
// Complexity: O(1)
func (it *Interner) Const(v float64) *Expr {
	if math.IsNaN(v) {
		return &Expr{kind: KindConst, val: v}
	}

	it.mu.RLock()
	c, ok := it.consts[v]
	it.mu.RUnlock()
	if ok {
		return c
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	// Re-check: another goroutine may have inserted v between the locks.
	if c, ok = it.consts[v]; ok {
		return c
	}
	c = &Expr{kind: KindConst, val: v}
	it.consts[v] = c

	return c
}

// Len reports how many distinct constants are interned.
func (it *Interner) Len() int {
	it.mu.RLock()
	defer it.mu.RUnlock()

	return len(it.consts)
}

// defaultInterner backs the package-level Const and the literal forms
// of the algebra methods (AddConst, MulConst, ...).
var defaultInterner = NewInterner()

// Predefined constants, shared via the default interner.
var (
	// C0 is the constant 0.
	C0 = Const(0)

	// C1 is the constant 1.
	C1 = Const(1)

	// Cm1 is the constant -1.
	Cm1 = Const(-1)

	// CPi is the constant π.
	CPi = Const(math.Pi)

	// CE is Euler's number e.
	CE = Const(math.E)
)
