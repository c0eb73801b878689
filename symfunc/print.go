package symfunc

import (
	"strconv"
	"strings"
)

// ExprString renders the tree as a conventional infix algebraic string.
//
// A child is parenthesized exactly when its operator precedence is
// numerically greater than its parent's, or greater-or-equal on the
// right-hand side of the non-commutative operators - and /. Powers
// print as (base)^p, sqrt and abs as function calls, composites in
// their flattened (substituted) form.
//
// Printing is a one-way diagnostic facility; there is no parser from
// strings back to trees.
// Complexity: O(result length)
func (f *Expr) ExprString() string {
	var sb strings.Builder
	writeExpr(&sb, f)

	return sb.String()
}

// String implements fmt.Stringer via ExprString.
func (f *Expr) String() string { return f.ExprString() }

func writeExpr(sb *strings.Builder, f *Expr) {
	switch f.kind {
	case KindConst:
		sb.WriteString(formatFloat(f.val))

	case KindVar:
		sb.WriteString(f.name)

	case KindAdd:
		writeChild(sb, f.left, OpOrderAddSub, false)
		sb.WriteString(" + ")
		writeChild(sb, f.right, OpOrderAddSub, false)

	case KindSub:
		writeChild(sb, f.left, OpOrderAddSub, false)
		sb.WriteString(" - ")
		writeChild(sb, f.right, OpOrderAddSub, true)

	case KindMul:
		writeChild(sb, f.left, OpOrderMulDiv, false)
		sb.WriteString("*")
		writeChild(sb, f.right, OpOrderMulDiv, false)

	case KindDiv:
		writeChild(sb, f.left, OpOrderMulDiv, false)
		sb.WriteString("/")
		writeChild(sb, f.right, OpOrderMulDiv, true)

	case KindSqrt:
		sb.WriteString("sqrt(")
		writeExpr(sb, f.arg)
		sb.WriteString(")")

	case KindAbs:
		sb.WriteString("abs(")
		writeExpr(sb, f.arg)
		sb.WriteString(")")

	case KindPow:
		sb.WriteString("(")
		writeExpr(sb, f.arg)
		sb.WriteString(")^")
		sb.WriteString(formatFloat(f.val))

	case KindLinearComb:
		for i, t := range f.terms {
			if i > 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(formatFloat(f.coeffs[i]))
			sb.WriteString("*")
			writeChild(sb, t, OpOrderMulDiv, false)
		}

	case KindComposite:
		writeExpr(sb, f.Flatten())
	}
}

// writeChild wraps child in parentheses when its precedence binds
// looser than the parent position allows. rightOfNonCommutative makes
// the comparison inclusive, so x - (y - z) and x/(y*z) keep their
// grouping.
func writeChild(sb *strings.Builder, child *Expr, parentOrder int, rightOfNonCommutative bool) {
	order := child.OpOrder()
	need := order > parentOrder || (rightOfNonCommutative && order >= parentOrder)
	if need {
		sb.WriteString("(")
		writeExpr(sb, child)
		sb.WriteString(")")
	} else {
		writeExpr(sb, child)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
