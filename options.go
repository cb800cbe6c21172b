package spokencalc

import "log/slog"

// Option is an option for creating a Context or a Calculator.
type Option interface {
	option(config) config
}

type (
	precopt  uint
	cacheopt int
	logopt   struct {
		l *slog.Logger
	}
)

// config holds the settings that options change.
type config struct {
	// prec is the precision in bits of calculations.
	prec uint
	// cache is the number of results a Calculator remembers.
	cache int
	// log receives diagnostics. Never nil after defaults are applied.
	log *slog.Logger
}

func defaults() config {
	return config{prec: 64, log: slog.New(slog.DiscardHandler)}
}

func configure(opts []Option) config {
	c := defaults()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// Prec sets the precision of calculations in bits. Prec(0) keeps the default
// of 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

func (o precopt) option(c config) config {
	if o != 0 {
		c.prec = uint(o)
	}
	return c
}

// CacheSize sets the number of results a Calculator remembers by symbolic
// expression. Zero or negative sizes disable the cache. Contexts ignore it.
func CacheSize(n int) Option {
	return cacheopt(n)
}

func (o cacheopt) option(c config) config {
	c.cache = int(o)
	return c
}

// Logger sets the logger a Calculator reports evaluations to. A nil logger
// discards everything. Contexts ignore it.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

func (o logopt) option(c config) config {
	if o.l == nil {
		o.l = slog.New(slog.DiscardHandler)
	}
	c.log = o.l
	return c
}
