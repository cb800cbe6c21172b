package spokencalc_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/spokencalc"
)

func TestDispatch(t *testing.T) {
	cases := []struct {
		name string
		expr string
		kind spokencalc.Kind
		r    float64
	}{
		{"arith", "2 + 2", spokencalc.Arithmetic, 4},
		{"arith-div", "10 / 2", spokencalc.Arithmetic, 5},
		{"arith-dec", "3.5 + 2.2", spokencalc.Arithmetic, 5.7},
		{"percent", "50 outof 100", spokencalc.Percent, 50},
		{"percent-frac", "1 outof 8", spokencalc.Percent, 12.5},
		{"percent-neg", "-3 outof 4", spokencalc.Percent, -75},
		{"sqrt", "sqrt 16", spokencalc.Sqrt, 4},
		{"sqrt-frac", "sqrt .25", spokencalc.Sqrt, 0.5},
		{"sqrt-zero", "sqrt 0", spokencalc.Sqrt, 0},
		{"cbrt", "cbrt 27", spokencalc.Cbrt, 3},
		{"cbrt-neg", "cbrt -8", spokencalc.Cbrt, -2},
		{"pow", "2 ^ 10", spokencalc.Pow, 1024},
		{"pow-neg-odd", "-2 ^ 3", spokencalc.Pow, -8},
		{"pow-neg-even", "-2 ^ 4", spokencalc.Pow, 16},
		{"pow-zero", "0 ^ 0", spokencalc.Pow, 1},
		{"pow-zero-base", "0 ^ 5", spokencalc.Pow, 0},
		{"pow-recip", "2 ^ -2", spokencalc.Pow, 0.25},
		{"pow-underflow", "10 ^ -400", spokencalc.Pow, 0},
		{"sin", "sin 30", spokencalc.Sin, math.Sin(30 * math.Pi / 180)},
		{"sin-zero", "sin 0", spokencalc.Sin, 0},
		{"cos", "cos 60", spokencalc.Cos, math.Cos(60 * math.Pi / 180)},
		{"cos-zero", "cos 0", spokencalc.Cos, 1},
		{"tan", "tan 45", spokencalc.Tan, math.Tan(45 * math.Pi / 180)},
		{"log", "log 100", spokencalc.Log, 2},
		{"factorial", "! 5", spokencalc.Factorial, 120},
		{"factorial-post", "5 !", spokencalc.Factorial, 120},
		{"factorial-zero", "! 0", spokencalc.Factorial, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := spokencalc.NewContext().Dispatch(c.expr)
			if r.Kind != c.kind {
				t.Errorf("%q dispatched to %v, want %v", c.expr, r.Kind, c.kind)
			}
			if r.Expr != c.expr {
				t.Errorf("%q recorded as %q", c.expr, r.Expr)
			}
			if !r.OK() {
				t.Fatalf("%q failed: %v", c.expr, r.Err)
			}
			if f, _ := r.Value.Float64(); f != c.r {
				t.Errorf("%q: want %g, got %g", c.expr, c.r, r.Value)
			}
		})
	}
}

func TestDispatchApprox(t *testing.T) {
	cases := []struct {
		name string
		expr string
		r    float64
	}{
		{"sqrt-two", "sqrt 2", math.Sqrt2},
		{"pow-frac", "2 ^ 0.5", math.Sqrt2},
		{"pow-large", "1.5 ^ 100", math.Pow(1.5, 100)},
		{"log-frac", "log 2", math.Log10(2)},
		{"ln", "ln 10", math.Ln10},
		{"ln-frac", "ln 0.5", -math.Ln2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := spokencalc.NewContext().Dispatch(c.expr)
			if !r.OK() {
				t.Fatalf("%q failed: %v", c.expr, r.Err)
			}
			f, _ := r.Value.Float64()
			if math.Abs(f-c.r) > 1e-12*math.Abs(c.r) {
				t.Errorf("%q: want %g, got %g", c.expr, c.r, f)
			}
		})
	}
}

func TestDispatchDomainError(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"div-zero", "7 / 0"},
		{"mod-zero", "7 % 0"},
		{"percent-zero", "5 outof 0"},
		{"sqrt-neg", "sqrt -4"},
		{"log-zero", "log 0"},
		{"log-neg", "log -10"},
		{"ln-zero", "ln 0"},
		{"factorial-neg", "! -1"},
		{"factorial-frac", "! 2.5"},
		{"factorial-big", "! 171"},
		{"pow-zero-neg", "0 ^ -1"},
		{"pow-neg-frac", "-8 ^ 0.5"},
		{"pow-overflow", "10 ^ 400"},
		{"arith-overflow", "1e300 * 1e300"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := spokencalc.NewContext().Dispatch(c.expr)
			if r.OK() {
				t.Fatalf("%q gave %g", c.expr, r.Value)
			}
			var de *spokencalc.DomainError
			if !errors.As(r.Err, &de) {
				t.Errorf("%#v is not *spokencalc.DomainError", r.Err)
			}
			if s := r.String(); s != spokencalc.Invalid {
				t.Errorf("%q displays as %q", c.expr, s)
			}
		})
	}
}

func TestDispatchOperandError(t *testing.T) {
	cases := []struct {
		name      string
		expr      string
		want, got int
		lex       bool
	}{
		{"percent-missing", "outof 5", 0, 0, false},
		{"percent-many", "1 outof 2 outof 3", 2, 3, false},
		{"pow-many", "2 ^ 3 ^ 2", 2, 3, false},
		{"sqrt-empty", "sqrt", 0, 0, false},
		{"sqrt-two", "sqrt 4 9", 0, 0, false},
		{"sqrt-expr", "sqrt 4 + 5", 0, 0, false},
		{"sqrt-word", "sqrt x", 0, 0, true},
		{"sin-bracket", "sin (30)", 0, 0, false},
		{"log-number", "log 1.2.3", 0, 0, true},
		{"factorial-sign", "! --5", 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := spokencalc.NewContext().Dispatch(c.expr)
			if r.OK() {
				t.Fatalf("%q gave %g", c.expr, r.Value)
			}
			var oe *spokencalc.OperandError
			if !errors.As(r.Err, &oe) {
				t.Fatalf("%#v is not *spokencalc.OperandError", r.Err)
			}
			if oe.Want != c.want || oe.Got != c.got {
				t.Errorf("%q: want %d/%d operands, got %d/%d", c.expr, c.want, c.got, oe.Want, oe.Got)
			}
			var le *spokencalc.LexError
			if errors.As(r.Err, &le) != c.lex {
				t.Errorf("%q: lexer error should be %t but is %v", c.expr, c.lex, oe.Err)
			}
		})
	}
}

func TestDispatchPrec(t *testing.T) {
	r := spokencalc.NewContext(spokencalc.Prec(256)).Dispatch("sqrt 2")
	if !r.OK() {
		t.Fatal(r.Err)
	}
	if r.Value.Prec() != 256 {
		t.Errorf("wrong precision: want 256, got %d", r.Value.Prec())
	}
	want, _, _ := big.ParseFloat("1.41421356237309504880168872420969807856967187537694807317667973799", 10, 256, big.ToNearestEven)
	d := new(big.Float).Sub(r.Value, want)
	if d.Abs(d).Cmp(big.NewFloat(1e-70)) > 0 {
		t.Errorf("inaccurate result: %.70f", r.Value)
	}
}

func TestFactorialExact(t *testing.T) {
	r := spokencalc.NewContext().Dispatch("! 25")
	if !r.OK() {
		t.Fatal(r.Err)
	}
	if s := r.String(); s != "15511210043330985984000000" {
		t.Errorf("wrong 25!: %s", s)
	}

	r = spokencalc.NewContext().Dispatch(fmt.Sprintf("! %d", spokencalc.MaxFactorial))
	if !r.OK() {
		t.Fatal(r.Err)
	}
	want := new(big.Int).MulRange(1, spokencalc.MaxFactorial).String()
	if s := r.String(); s != want {
		t.Errorf("wrong %d!:\n\twant %s\n\tgot  %s", spokencalc.MaxFactorial, want, s)
	}
}

func TestDomainErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *spokencalc.DomainError
		want string
	}{
		{"zero", &spokencalc.DomainError{X: new(big.Float), Func: "/"}, "0 outside domain of /"},
		{"arg", &spokencalc.DomainError{X: big.NewFloat(-8), Arg: 1, Func: "^"}, "-8 outside domain of ^ (argument 1)"},
		{"huge", &spokencalc.DomainError{X: new(big.Float).SetMantExp(big.NewFloat(0.5), 40000000), Func: "log"}, "0x.8p+40000000 outside domain of log"},
		{"tiny", &spokencalc.DomainError{X: new(big.Float).SetMantExp(big.NewFloat(-0.5), -40000000), Func: "ln"}, "-0x.8p-40000000 outside domain of ln"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func ExampleContext_Dispatch() {
	ctx := spokencalc.NewContext()
	for _, expr := range []string{"50 outof 200", "cbrt -27", "2 ^ 0.5", "! 20", "sqrt -1"} {
		r := ctx.Dispatch(expr)
		fmt.Printf("%s: %s\n", r.Kind, r)
	}

	// Output:
	// percent: 25%
	// cbrt: -3
	// pow: 1.4142135623730951
	// factorial: 2432902008176640000
	// sqrt: Invalid
}
