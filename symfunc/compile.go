package symfunc

import (
	"fmt"
	"strings"
	"sync"
)

// Compile translates the tree into a CompiledFunc: a flat instruction
// tape evaluated by a small stack machine, with no tree traversal and
// no variable-name lookup per call.
//
// order fixes the argument slots: order[i] is read from args[i] by
// Evaluate. It must cover every free variable of the tree; extra names
// are harmless ignored slots. Called with no names, the free-variable
// order of the tree itself is used (first-occurrence order, the same
// slice Vars returns).
//
// Compilation walks the tree once and is the expensive step; perform it
// once per (tree, order) pair — CompileCache does exactly that — and
// reuse the immutable CompiledFunc from any number of goroutines.
//
// Errors: ErrMissingVariable.
// Complexity: O(flattened tree size)
func (f *Expr) Compile(order ...string) (*CompiledFunc, error) {
	if len(order) == 0 {
		order = f.vars
	}

	slots := make(map[string]int, len(order))
	for i, n := range order {
		if _, dup := slots[n]; !dup {
			slots[n] = i
		}
	}

	flat := f.Flatten()
	for _, n := range flat.vars {
		if _, ok := slots[n]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingVariable, n)
		}
	}

	c := compiler{slots: slots}
	c.emit(flat)

	names := make([]string, len(order))
	copy(names, order)

	return &CompiledFunc{
		prog:      c.prog,
		stackNeed: c.maxDepth,
		argNames:  names,
	}, nil
}

// compiler accumulates the instruction tape and tracks the stack depth
// the finished program needs.
type compiler struct {
	slots    map[string]int
	prog     []instr
	depth    int
	maxDepth int
}

// push appends one instruction and applies its stack effect.
func (c *compiler) push(in instr, delta int) {
	c.prog = append(c.prog, in)
	c.depth += delta
	if c.depth > c.maxDepth {
		c.maxDepth = c.depth
	}
}

func (c *compiler) emit(e *Expr) {
	switch e.kind {
	case KindConst:
		c.push(instr{op: opConst, val: e.val}, 1)

	case KindVar:
		c.push(instr{op: opLoad, slot: c.slots[e.name]}, 1)

	case KindAdd, KindSub, KindMul, KindDiv:
		c.emit(e.left)
		c.emit(e.right)
		c.push(instr{op: binaryOpcode(e.kind)}, -1)

	case KindSqrt:
		c.emit(e.arg)
		c.push(instr{op: opSqrt}, 0)

	case KindAbs:
		c.emit(e.arg)
		c.push(instr{op: opAbs}, 0)

	case KindPow:
		c.emit(e.arg)
		c.push(instr{op: opPow, val: e.val}, 0)

	case KindLinearComb:
		for i, t := range e.terms {
			c.push(instr{op: opConst, val: e.coeffs[i]}, 1)
			c.emit(t)
			c.push(instr{op: opMul}, -1)
			if i > 0 {
				c.push(instr{op: opAdd}, -1)
			}
		}

	case KindComposite:
		// Flatten removed every composite before emission; a stray one
		// (defensive) is expanded in place.
		c.emit(e.Flatten())
	}
}

func binaryOpcode(kind Kind) opcode {
	switch kind {
	case KindAdd:
		return opAdd
	case KindSub:
		return opSub
	case KindMul:
		return opMul
	default:
		return opDiv
	}
}

// CompileCache memoizes CompiledFuncs per (tree identity, argument
// order) pair, so hot paths never recompile the integrand they are
// about to evaluate thousands of times.
//
// Safe for concurrent use.
type CompileCache struct {
	mu    sync.RWMutex
	funcs map[compileKey]*CompiledFunc
}

type compileKey struct {
	f     *Expr
	order string
}

// NewCompileCache returns an empty compilation cache.
func NewCompileCache() *CompileCache {
	return &CompileCache{funcs: make(map[compileKey]*CompiledFunc)}
}

// Compile returns the cached CompiledFunc for (f, order), compiling on
// first use. Repeated calls with the same tree pointer and order return
// the identical *CompiledFunc.
//
// Errors: ErrMissingVariable.
func (c *CompileCache) Compile(f *Expr, order ...string) (*CompiledFunc, error) {
	// "\x1f" cannot occur in reasonable variable names, making the
	// joined order an unambiguous key component.
	key := compileKey{f: f, order: strings.Join(order, "\x1f")}

	c.mu.RLock()
	cf, ok := c.funcs[key]
	c.mu.RUnlock()
	if ok {
		return cf, nil
	}

	cf, err := f.Compile(order...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.funcs[key]; ok {
		return prev, nil
	}
	c.funcs[key] = cf

	return cf, nil
}

// Len reports how many compiled programs the cache holds.
func (c *CompileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.funcs)
}
