package infnum

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Config holds the tunables of a Context. The iteration caps are explicit
// rather than epsilon-driven: series run for at most TaylorTerms terms.
type Config struct {
	// Precision is the number of fractional bits kept by inexact
	// operations: Quo, Log, Exp, non-integer Pow and the constants.
	Precision uint `mapstructure:"precision"`

	// TaylorTerms caps the number of terms summed by the Exp, Log and
	// arctangent series. Higher precisions need more terms.
	TaylorTerms int `mapstructure:"taylor_terms"`

	// MaxFactorial is the largest index Factorial will compute. Log needs
	// factorials up to 2*TaylorTerms-1.
	MaxFactorial int64 `mapstructure:"max_factorial"`

	SmallIntMin    int64 `mapstructure:"small_int_min"`
	SmallIntMax    int64 `mapstructure:"small_int_max"`
	FloatCacheSize int   `mapstructure:"float_cache_size"`
}

func DefaultConfig() Config {
	return Config{
		Precision:      DefaultPrecision,
		TaylorTerms:    DefaultTaylorTerms,
		MaxFactorial:   DefaultMaxFactorial,
		SmallIntMin:    DefaultSmallIntMin,
		SmallIntMax:    DefaultSmallIntMax,
		FloatCacheSize: DefaultFloatCacheSize,
	}
}

func (c Config) Validate() error {
	if c.Precision == 0 {
		return fmt.Errorf("infnum: precision must be greater than 0")
	}
	if c.TaylorTerms < 1 {
		return fmt.Errorf("infnum: taylor terms must be at least 1, found %d", c.TaylorTerms)
	}
	if c.MaxFactorial < 2*int64(c.TaylorTerms) {
		return fmt.Errorf("infnum: max factorial %d is too small for %d taylor terms (need %d)",
			c.MaxFactorial, c.TaylorTerms, 2*c.TaylorTerms)
	}
	if c.SmallIntMin > c.SmallIntMax {
		return fmt.Errorf("infnum: small int range [%d, %d] is empty", c.SmallIntMin, c.SmallIntMax)
	}
	if c.FloatCacheSize < 1 {
		return fmt.Errorf("infnum: float cache size must be at least 1, found %d", c.FloatCacheSize)
	}
	return nil
}

// Context owns the caches and tunables used to construct values and to
// evaluate the transcendental functions. A Context is safe for concurrent
// use. The package-level functions and the Number methods that need a
// precision use the default context; see Default.
type Context struct {
	cfg Config
	log *zap.Logger

	smallInts sync.Map // int64 -> *Float
	floats    *lru.Cache[uint64, *Float]

	facts    sync.Map // int64 -> *Float
	factHigh atomic.Int64
	lnCoefs  sync.Map // int64 -> *Float

	piVal  atomic.Pointer[Float]
	ln2Val atomic.Pointer[Float]
}

type Option func(c *Context)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

func NewContext(cfg Config, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	floats, err := lru.New[uint64, *Float](cfg.FloatCacheSize)
	if err != nil {
		return nil, fmt.Errorf("infnum: float cache: %w", err)
	}
	c := &Context{
		cfg:    cfg,
		log:    zap.NewNop(),
		floats: floats,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.facts.Store(int64(0), One)
	return c, nil
}

var std = mustContext(DefaultConfig())

func mustContext(cfg Config) *Context {
	c, err := NewContext(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the package's default context.
func Default() *Context { return std }

func (c *Context) Config() Config { return c.cfg }

// Quo returns a/b truncated to the context's precision.
func (c *Context) Quo(a, b Number) Number { return a.QuoPrec(b, c.cfg.Precision) }
