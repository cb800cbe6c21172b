package spokencalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind is the kind of operation an expression requests.
type Kind int8

const (
	// Arithmetic is the fallback: an expression of numbers, brackets, and
	// the operators in Operators.
	Arithmetic Kind = iota
	// Percent is "a outof b", a as a percentage of b.
	Percent
	// Sqrt is the principal square root.
	Sqrt
	// Cbrt is the real cube root.
	Cbrt
	// Pow is "a ^ b", a raised to b.
	Pow
	// Sin, Cos, and Tan are trigonometric functions of degrees.
	Sin
	Cos
	Tan
	// Log is the base-10 logarithm.
	Log
	// Ln is the natural logarithm.
	Ln
	// Factorial is "n !".
	Factorial
)

// markers lists the marker of each marked kind in the order Classify tests
// them. Markers are not mutually exclusive as substrings, so the order
// decides e.g. that "sin 30 + 1" is a sine.
var markers = [...]struct {
	marker string
	kind   Kind
}{
	{"outof", Percent},
	{"sqrt", Sqrt},
	{"cbrt", Cbrt},
	{"^", Pow},
	{"sin", Sin},
	{"cos", Cos},
	{"tan", Tan},
	{"log", Log},
	{"ln", Ln},
	{"!", Factorial},
}

// Marker returns the token that identifies the kind in a symbolic
// expression. Arithmetic has no marker.
func (k Kind) Marker() string {
	for _, m := range markers {
		if m.kind == k {
			return m.marker
		}
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Percent:
		return "percent"
	case Sqrt:
		return "sqrt"
	case Cbrt:
		return "cbrt"
	case Pow:
		return "pow"
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	case Log:
		return "log"
	case Ln:
		return "ln"
	case Factorial:
		return "factorial"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Classify selects the kind of operation a symbolic expression requests. The
// first marker found as a substring of expr decides the kind; if there is
// none, the expression is Arithmetic.
func Classify(expr string) Kind {
	for _, m := range markers {
		if strings.Contains(expr, m.marker) {
			return m.kind
		}
	}
	return Arithmetic
}

// Dispatch classifies a symbolic expression and evaluates it with the
// matching evaluator. Every failure is reported in the result's Err.
func (ctx *Context) Dispatch(expr string) Result {
	k := Classify(expr)
	r := Result{Kind: k, Expr: expr}
	var v *big.Float
	var err error
	if k == Arithmetic {
		v, err = ctx.arith(expr)
	} else {
		v, err = ctx.call(k, expr)
	}
	if err == nil {
		err = finite(k, v)
	}
	if err != nil {
		r.Err = err
		return r
	}
	r.Value = v
	return r
}

// arith evaluates the fallback arithmetic grammar. The result is a copy that
// later evaluations do not modify.
func (ctx *Context) arith(expr string) (*big.Float, error) {
	a, err := ParseString(expr)
	if err != nil {
		return nil, err
	}
	v := ctx.Eval(a)
	if v == nil {
		return nil, ctx.Err()
	}
	return new(big.Float).Copy(v), nil
}

// call evaluates a marked operation. One-operand operations take whatever is
// left after removing the first marker; two-operand operations split on
// every marker and need exactly two parts.
func (ctx *Context) call(k Kind, expr string) (*big.Float, error) {
	fn := funcs[k]
	if fn == nil {
		panic("spokencalc: no evaluator for " + k.String())
	}
	mk := k.Marker()
	var parts []string
	switch {
	case fn.CanCall(1):
		parts = []string{strings.Replace(expr, mk, "", 1)}
	case fn.CanCall(2):
		parts = strings.Split(expr, mk)
		if len(parts) != 2 {
			return nil, &OperandError{Func: mk, Text: expr, Want: 2, Got: len(parts)}
		}
	default:
		panic("spokencalc: evaluator for " + k.String() + " takes neither one nor two operands")
	}
	invoc := make([]*big.Float, len(parts))
	for i, p := range parts {
		x, err := ctx.operand(mk, p)
		if err != nil {
			return nil, err
		}
		invoc[i] = x
	}
	r := new(big.Float).SetPrec(ctx.prec)
	if err := fn.Call(ctx, invoc, r); err != nil {
		return nil, err
	}
	return r, nil
}

// finite checks that a result can be displayed as a finite float64. Results
// that overflow float64 are domain errors just like infinities.
func finite(k Kind, v *big.Float) error {
	if v.IsInf() {
		return &DomainError{X: v, Func: k.Marker()}
	}
	if f, _ := v.Float64(); math.IsInf(f, 0) {
		return &DomainError{X: v, Func: k.Marker()}
	}
	return nil
}
