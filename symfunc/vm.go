package symfunc

import "math"

// opcode is one primitive operation of the compiled tape.
type opcode uint8

const (
	opConst opcode = iota // push val
	opLoad                // push args[slot]
	opAdd                 // pop b, pop a, push a+b
	opSub                 // pop b, pop a, push a-b
	opMul                 // pop b, pop a, push a*b
	opDiv                 // pop b, pop a, push a/b
	opSqrt                // replace top with sqrt(top)
	opAbs                 // replace top with |top|
	opPow                 // replace top with top^val
)

type instr struct {
	op   opcode
	val  float64
	slot int
}

// inlineStack is the value-stack capacity kept on the goroutine stack.
// Deeper programs (unusual for hand-built integrands) fall back to one
// heap slice per Evaluate call.
const inlineStack = 16

// CompiledFunc is the allocation-free evaluator produced by Compile: a
// fixed instruction tape plus the argument-slot layout it was compiled
// against. It is immutable and safe to share across goroutines.
type CompiledFunc struct {
	prog      []instr
	stackNeed int
	argNames  []string
}

// Evaluate runs the tape against the flat argument array and returns
// the function value. args[i] supplies the variable named ArgNames()[i];
// args must have at least NumArgs elements or Evaluate panics on the
// out-of-range slot access.
//
// Semantically identical to Apply with the equivalent Context, but with
// no tree walk, no map lookups and no heap allocation on the hot path.
// Complexity: O(program length)
func (cf *CompiledFunc) Evaluate(args []float64) float64 {
	var buf [inlineStack]float64
	stack := buf[:0]
	if cf.stackNeed > inlineStack {
		stack = make([]float64, 0, cf.stackNeed)
	}

	for _, in := range cf.prog {
		switch in.op {
		case opConst:
			stack = append(stack, in.val)
		case opLoad:
			stack = append(stack, args[in.slot])
		case opAdd:
			n := len(stack) - 1
			stack[n-1] += stack[n]
			stack = stack[:n]
		case opSub:
			n := len(stack) - 1
			stack[n-1] -= stack[n]
			stack = stack[:n]
		case opMul:
			n := len(stack) - 1
			stack[n-1] *= stack[n]
			stack = stack[:n]
		case opDiv:
			n := len(stack) - 1
			stack[n-1] /= stack[n]
			stack = stack[:n]
		case opSqrt:
			stack[len(stack)-1] = math.Sqrt(stack[len(stack)-1])
		case opAbs:
			stack[len(stack)-1] = math.Abs(stack[len(stack)-1])
		case opPow:
			stack[len(stack)-1] = math.Pow(stack[len(stack)-1], in.val)
		}
	}

	return stack[0]
}

// EvaluateBatch runs the tape once per row of points and writes the
// results into a fresh slice, in matching order. Each row must satisfy
// the same length contract as Evaluate.
func (cf *CompiledFunc) EvaluateBatch(points [][]float64) []float64 {
	out := make([]float64, len(points))
	for i, args := range points {
		out[i] = cf.Evaluate(args)
	}

	return out
}

// NumArgs reports how many argument slots the program reads, i.e. the
// minimum length of the args slice passed to Evaluate.
func (cf *CompiledFunc) NumArgs() int { return len(cf.argNames) }

// ArgNames returns a copy of the argument order the program was
// compiled with: slot i holds the variable named ArgNames()[i].
func (cf *CompiledFunc) ArgNames() []string {
	out := make([]string, len(cf.argNames))
	copy(out, cf.argNames)

	return out
}

// Len reports the instruction count of the compiled tape.
func (cf *CompiledFunc) Len() int { return len(cf.prog) }
