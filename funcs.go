package spokencalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals which evaluates one marked
// operation. The function should set r to its result and should not use the
// value of r otherwise.
type Func interface {
	// Call evaluates the function. The operands are passed in invoc, which
	// has a length for which CanCall returned true. The function must set r
	// to its result and should not use the value of r otherwise. Call may
	// modify the elements of invoc.
	Call(ctx *Context, invoc []*big.Float, r *big.Float) error

	// CanCall returns whether the function can be called with n operands.
	// The dispatcher strips the marker from a one-operand expression and
	// splits a two-operand expression on it.
	CanCall(n int) bool
}

// funcs maps each marked kind of operation to its evaluator.
var funcs = map[Kind]Func{
	Percent:   Dyadic(percent),
	Sqrt:      Monadic(sqrt),
	Cbrt:      Monadic(cbrt),
	Pow:       Dyadic(pow),
	Sin:       Monadic(degrees(math.Sin)),
	Cos:       Monadic(degrees(math.Cos)),
	Tan:       Monadic(degrees(math.Tan)),
	Log:       Monadic(log10),
	Ln:        Monadic(ln),
	Factorial: Monadic(factorial),
}

// recoverDomain converts a panic with a domain error into an error result.
// Any other panic continues.
func recoverDomain(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	var de *DomainError
	var nan big.ErrNaN
	if errors.As(e, &de) || errors.As(e, &nan) {
		*err = e
		return
	}
	panic(e)
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, invoc []*big.Float, r *big.Float) (err error) {
	defer recoverDomain(&err)
	r.SetPrec(ctx.Prec())
	m.f(r, invoc[0])
	return nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f must set out to its
// result; its return value is always ignored. If f is called on an argument
// outside f's domain, it should panic with a *DomainError or a big.ErrNaN.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type dyadic struct {
	f func(out, x, y *big.Float) *big.Float
}

func (d dyadic) Call(ctx *Context, invoc []*big.Float, r *big.Float) (err error) {
	defer recoverDomain(&err)
	r.SetPrec(ctx.Prec())
	d.f(r, invoc[0], invoc[1])
	return nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func, with the same
// conventions as Monadic.
func Dyadic(f func(out, x, y *big.Float) *big.Float) Func {
	return dyadic{f}
}

var hundred = big.NewFloat(100)

func percent(out, a, b *big.Float) *big.Float {
	if b.Sign() == 0 {
		panic(&DomainError{X: b, Arg: 2, Func: "outof"})
	}
	out.Quo(a, b)
	return out.Mul(out, hundred)
}

func sqrt(out, in *big.Float) *big.Float {
	if in.Sign() < 0 {
		panic(&DomainError{X: in, Func: "sqrt"})
	}
	return out.Sqrt(in)
}

// cbrt computes the real cube root in float64, where it is exact for perfect
// cubes.
func cbrt(out, in *big.Float) *big.Float {
	x, _ := in.Float64()
	return out.SetFloat64(math.Cbrt(x))
}

func pow(out, x, y *big.Float) *big.Float {
	switch {
	case x.IsInf():
		panic(&DomainError{X: x, Arg: 1, Func: "^"})
	case y.IsInf():
		panic(&DomainError{X: y, Arg: 2, Func: "^"})
	case y.Sign() == 0:
		return out.SetInt64(1)
	case x.Sign() == 0:
		if y.Sign() < 0 {
			panic(&DomainError{X: x, Arg: 1, Func: "^"})
		}
		return out.SetInt64(0)
	}
	// Results outside the range of float64 cannot be displayed, so don't
	// spend time computing them precisely.
	xf, _ := x.Float64()
	yf, _ := y.Float64()
	switch est := math.Pow(math.Abs(xf), yf); {
	case math.IsInf(est, 0):
		panic(&DomainError{X: y, Arg: 2, Func: "^"})
	case est == 0:
		return out.SetInt64(0)
	}
	if x.Signbit() {
		// Negative bases only have real powers for integer exponents.
		if !y.IsInt() {
			panic(&DomainError{X: x, Arg: 1, Func: "^"})
		}
		odd := !new(big.Float).SetMantExp(y, -1).IsInt()
		bigfloat.Pow(out, new(big.Float).Abs(x), y)
		if odd {
			out.Neg(out)
		}
		return out
	}
	return bigfloat.Pow(out, x, y)
}

// degrees wraps a trigonometric function of radians into a function of
// degrees. The calculation happens in float64.
func degrees(f func(float64) float64) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		x, _ := in.Float64()
		return out.SetFloat64(f(x * math.Pi / 180))
	}
}

func log10(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(&DomainError{X: in, Func: "log"})
	}
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
	bigfloat.Log(ten, ten)
	return out.Quo(out, ten)
}

func ln(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(&DomainError{X: in, Func: "ln"})
	}
	return bigfloat.Log(out, in)
}

// MaxFactorial is the largest operand of factorial. Larger factorials exceed
// the range of float64.
const MaxFactorial = 170

// factorial computes n! exactly. The precision of out grows to hold every
// digit.
func factorial(out, in *big.Float) *big.Float {
	if in.Sign() < 0 || !in.IsInt() || in.Cmp(big.NewFloat(MaxFactorial)) > 0 {
		panic(&DomainError{X: in, Func: "!"})
	}
	n, _ := in.Int64()
	f := new(big.Int).MulRange(1, n)
	return out.SetPrec(0).SetInt(f)
}

// DomainError is an error returned when a function is called on arguments
// outside its domain or produces a value that is not a finite number.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument, or 0 if the function has
	// only one or the argument is the result.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	var r string
	if e := err.X.MantExp(nil); e < -1074 || e > 1024 {
		// Decimal conversion takes time proportional to the exponent.
		r = err.X.Text('p', 0)
	} else {
		r = err.X.String()
	}
	r += " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// OperandError is an error indicating that the operands of a marked operation
// could not be read.
type OperandError struct {
	// Func is the marker of the operation.
	Func string
	// Text is the operand text that could not be read, or the whole
	// expression when the number of operands was wrong.
	Text string
	// Want and Got are the numbers of operands needed and found. Both are
	// zero when the count was right but an operand was malformed.
	Want, Got int
	// Err is the lexer error that caused the failure, if any.
	Err error
}

func (err *OperandError) Error() string {
	if err.Want != err.Got {
		return err.Func + " needs " + strconv.Itoa(err.Want) + " operands, not " + strconv.Itoa(err.Got) + " in " + strconv.Quote(err.Text)
	}
	r := "invalid operand of " + err.Func + ": " + strconv.Quote(err.Text)
	if err.Err != nil {
		r += " (" + err.Err.Error() + ")"
	}
	return r
}

func (err *OperandError) Unwrap() error {
	return err.Err
}
