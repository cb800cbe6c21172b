package spokencalc

import (
	"log/slog"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zephyrtronium/spokencalc/phrase"
)

// Calculator evaluates utterances. It is safe for concurrent use.
type Calculator struct {
	prec  uint
	log   *slog.Logger
	cache *lru.Cache[string, Result]
}

// NewCalculator creates a calculator with the given options.
func NewCalculator(opts ...Option) *Calculator {
	c := configure(opts)
	calc := &Calculator{prec: c.prec, log: c.log}
	if c.cache > 0 {
		// New only fails for non-positive sizes.
		cache, err := lru.New[string, Result](c.cache)
		if err != nil {
			panic(err)
		}
		calc.cache = cache
	}
	return calc
}

// Translate converts an utterance to the symbolic expression that Evaluate
// would evaluate.
func (c *Calculator) Translate(utterance string) string {
	return phrase.Symbolic(utterance)
}

// Evaluate converts an utterance to a symbolic expression and evaluates it.
// Failures are reported in the result's Err; the result's String is then
// Invalid.
func (c *Calculator) Evaluate(utterance string) Result {
	expr := c.Translate(utterance)
	if c.cache != nil {
		if r, ok := c.cache.Get(expr); ok {
			c.log.Debug("cached result", slog.String("utterance", utterance), slog.String("expr", expr), slog.String("result", r.String()))
			return r.copy()
		}
	}
	r := NewContext(Prec(c.prec)).Dispatch(expr)
	if r.Err != nil {
		c.log.Debug("evaluation failed",
			slog.String("utterance", utterance),
			slog.String("expr", expr),
			slog.String("kind", r.Kind.String()),
			slog.Any("err", r.Err))
	} else {
		c.log.Debug("evaluated",
			slog.String("utterance", utterance),
			slog.String("expr", expr),
			slog.String("kind", r.Kind.String()),
			slog.String("result", r.String()))
	}
	if c.cache != nil {
		c.cache.Add(expr, r.copy())
	}
	return r
}

// copy returns a result whose Value is not shared with r.
func (r Result) copy() Result {
	if r.Value != nil {
		r.Value = new(big.Float).Copy(r.Value)
	}
	return r
}

var std = NewCalculator()

// Evaluate converts an utterance to a symbolic expression and evaluates it
// with the default precision and no cache.
func Evaluate(utterance string) Result {
	return std.Evaluate(utterance)
}
