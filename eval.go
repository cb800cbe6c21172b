package spokencalc

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...Option) *Context {
	c := configure(opts)
	return &Context{nums: make(map[string]*big.Float), prec: c.prec}
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is nil and ctx.Err returns the
// error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("spokencalc: Eval during Eval")
	}
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("spokencalc: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("spokencalc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context. The returned context has no Result and
// is safe to use to evaluate an expression.
func (ctx *Context) Clone() *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	for k, v := range ctx.nums {
		n.nums[k] = v
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text. The result must not be
// modified.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// Numbers from the lexer are never negative.
		r = new(big.Float).SetInf(false)
	default:
		panic("spokencalc: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// operand parses the operand of a marked operation: an optional sign followed
// by exactly one number.
func (ctx *Context) operand(fn, s string) (*big.Float, error) {
	scan := lex(strings.NewReader(s))
	tok, err := scan.next()
	if err != nil {
		return nil, &OperandError{Func: fn, Text: s, Err: err}
	}
	neg := false
	if tok.kind == tokenOp && (tok.text == "-" || tok.text == "+") {
		neg = tok.text == "-"
		if tok, err = scan.next(); err != nil {
			return nil, &OperandError{Func: fn, Text: s, Err: err}
		}
	}
	if tok.kind != tokenNum {
		return nil, &OperandError{Func: fn, Text: s}
	}
	end, err := scan.next()
	if err != nil {
		return nil, &OperandError{Func: fn, Text: s, Err: err}
	}
	if end.kind != tokenEOF {
		return nil, &OperandError{Func: fn, Text: s}
	}
	r := new(big.Float).SetPrec(ctx.prec).Set(ctx.num(tok.text))
	if neg {
		r.Neg(r)
	}
	return r, nil
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.name))
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeAdd:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		// Guard against inf-inf, which big.Float reports with a panic.
		if l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit() {
			return &DomainError{X: r, Func: "+"}
		}
		l.Add(l, r)
	case nodeSub:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		if l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit() {
			return &DomainError{X: r, Func: "-"}
		}
		l.Sub(l, r)
	case nodeMul:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		// Guard against 0*inf.
		if l.Sign() == 0 && r.IsInf() || l.IsInf() && r.Sign() == 0 {
			return &DomainError{X: r, Func: "*"}
		}
		l.Mul(l, r)
	case nodeDiv:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		// Any zero divisor is an error, not only 0/0. So is inf/inf.
		if r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return &DomainError{X: r, Func: "/"}
		}
		l.Quo(l, r)
	case nodeMod:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		if r.Sign() == 0 || l.IsInf() {
			return &DomainError{X: r, Func: "%"}
		}
		if r.IsInf() {
			// l is its own remainder.
			break
		}
		rem(l, l, r)
	case nodeNop:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
	default:
		panic("spokencalc: invalid AST node " + n.kind.String())
	}
	return nil
}

// rem sets z to the remainder of x/y with the quotient truncated toward zero,
// so the result has the sign of x. x and y must be finite and y nonzero. The
// remainder is computed exactly and then rounded to z's precision.
func rem(z, x, y *big.Float) *big.Float {
	a, _ := x.Rat(nil)
	b, _ := y.Rat(nil)
	q := new(big.Rat).Quo(a, b)
	t := new(big.Int).Quo(q.Num(), q.Denom())
	a.Sub(a, b.Mul(b, new(big.Rat).SetInt(t)))
	return z.SetRat(a)
}

// Eval is a shortcut to parse an arithmetic expression and return its result.
func Eval(src io.RuneScanner, opts ...Option) (*big.Float, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string arithmetic
// expression.
func EvalString(src string, opts ...Option) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Eval evaluates the expression in a context. It is the same as ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) *big.Float {
	return ctx.Eval(e)
}
