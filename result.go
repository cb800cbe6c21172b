package spokencalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Invalid is the display value of every failed evaluation.
const Invalid = "Invalid"

// Result is the outcome of evaluating one utterance. Exactly one of Value and
// Err is non-nil.
type Result struct {
	// Kind is the kind of operation the expression requested.
	Kind Kind
	// Expr is the symbolic expression that was evaluated.
	Expr string
	// Value is the numeric result. For Percent, it is already scaled by 100.
	// It must not be modified.
	Value *big.Float
	// Err is the reason evaluation failed.
	Err error
}

// OK returns whether the evaluation succeeded.
func (r Result) OK() bool {
	return r.Err == nil && r.Value != nil
}

// String returns the display value of the result: Invalid on failure,
// otherwise the number, with a trailing % for percentages.
func (r Result) String() string {
	if !r.OK() {
		return Invalid
	}
	if r.Kind == Factorial && r.Value.IsInt() {
		return r.Value.Text('f', 0)
	}
	f, _ := r.Value.Float64()
	s := FormatFloat(f)
	if r.Kind == Percent {
		s += "%"
	}
	return s
}

// FormatFloat formats a finite number as the shortest decimal that reads back
// as the same float64. Magnitudes in [1e-7, 1e21) use plain notation and
// others use an exponent, e.g. "1e+21" or "1.5e-8". Integers have no decimal
// point. Negative zero formats as "0".
func FormatFloat(f float64) string {
	a := math.Abs(f)
	switch {
	case a == 0:
		return "0"
	case a < 1e-7 || a >= 1e21:
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// strconv always writes at least two exponent digits.
		k := strings.LastIndexAny(s, "+-")
		exp := strings.TrimLeft(s[k+1:], "0")
		return s[:k+1] + exp
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
