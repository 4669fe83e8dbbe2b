package infnum

import (
	"math"

	"go.uber.org/zap"
)

// FromInt64 returns v as a Float. Values in the configured small-integer
// range are shared.
func (c *Context) FromInt64(v int64) *Float {
	if v < c.cfg.SmallIntMin || v > c.cfg.SmallIntMax {
		return fromInt64(v)
	}
	if f, ok := c.smallInts.Load(v); ok {
		return f.(*Float)
	}
	f, _ := c.smallInts.LoadOrStore(v, fromInt64(v))
	return f.(*Float)
}

func (c *Context) FromUint64(v uint64) *Float {
	if v <= maxInt64 {
		return c.FromInt64(int64(v))
	}
	return mk(false, []uint64{v}, nil)
}

// FromFloat64 converts f exactly. Zeros, infinities and NaN map to the
// corresponding singletons; other values are cached by bit pattern.
func (c *Context) FromFloat64(f float64) Number {
	b := math.Float64bits(f)
	switch {
	case f != f:
		return NaN
	case math.IsInf(f, 1):
		return PosInf
	case math.IsInf(f, -1):
		return NegInf
	case b == 0:
		return Zero
	case b == f64SignBit:
		return negZero
	}

	if v, ok := c.floats.Get(b); ok {
		return v
	}
	v := floatFromBits(b)
	if prev, ok, _ := c.floats.PeekOrAdd(b, v); ok {
		return prev
	}
	return v
}

// Factorial returns n!. Negative n yields NaN. Results are memoized in a
// table that only ever grows; n above Config.MaxFactorial panics with a
// ResourceExhaustedError before any work is done.
func (c *Context) Factorial(n int64) Number {
	if n < 0 {
		return NaN
	}
	return c.factorial(n)
}

func (c *Context) factorial(n int64) *Float {
	if n > c.cfg.MaxFactorial {
		c.log.Warn("factorial above limit", zap.Int64("n", n), zap.Int64("limit", c.cfg.MaxFactorial))
		panic(ResourceExhaustedError{Resource: "factorial", Limit: c.cfg.MaxFactorial, Requested: n})
	}
	if n <= 1 {
		return One
	}
	if v, ok := c.facts.Load(n); ok {
		return v.(*Float)
	}

	high := c.factHigh.Load()
	v, _ := c.facts.Load(high)
	acc := v.(*Float)
	for i := high + 1; i <= n; i++ {
		acc = acc.mul(fromInt64(i))
		if prev, loaded := c.facts.LoadOrStore(i, acc); loaded {
			acc = prev.(*Float)
		}
	}

	for {
		cur := c.factHigh.Load()
		if cur >= n || c.factHigh.CompareAndSwap(cur, n) {
			break
		}
	}
	c.log.Debug("factorial table grew", zap.Int64("from", high), zap.Int64("to", n))
	return acc
}
