package infnum

import (
	"go.uber.org/zap"
)

func Factorial(n int64) Number { return std.Factorial(n) }
func Exp(x Number) Number      { return std.Exp(x) }
func Log(x Number) Number      { return std.Log(x) }
func Pow(x, e Number) Number   { return std.Pow(x, e) }
func Pi() *Float               { return std.Pi() }
func Ln2() *Float              { return std.Ln2() }

func Sum(from, to int64, fn func(i int64) Number) Number     { return std.Sum(from, to, fn) }
func Product(from, to int64, fn func(i int64) Number) Number { return std.Product(from, to, fn) }

// Sum adds fn(i) for every i in [from, to). It stops early and returns NaN
// as soon as the running total is NaN.
func (c *Context) Sum(from, to int64, fn func(i int64) Number) Number {
	var acc Number = Zero
	for i := from; i < to; i++ {
		acc = acc.Add(fn(i))
		if acc.IsNaN() {
			return NaN
		}
	}
	return acc
}

// Product multiplies fn(i) for every i in [from, to). It stops early and
// returns NaN as soon as the running product is NaN.
func (c *Context) Product(from, to int64, fn func(i int64) Number) Number {
	var acc Number = One
	for i := from; i < to; i++ {
		acc = acc.Mul(fn(i))
		if acc.IsNaN() {
			return NaN
		}
	}
	return acc
}

// Pow returns x**e.
//
// Integer exponents are exact for non-negative e; a negative integer e
// gives 1/x**-e truncated to the context's precision, and +Inf when x is
// zero. Any other exponent is evaluated as Exp(Log(x) * e), so negative
// bases produce the complex principal value. Infinite operands follow
// math.Pow.
func (c *Context) Pow(x, e Number) Number {
	if x.IsNaN() || e.IsNaN() {
		return NaN
	}
	if x.IsInf() || e.IsInf() {
		return powSpecial(x, e)
	}
	if xc, ok := x.(*Complex); ok {
		return c.powComplex(xc, e)
	}

	xf := x.(*Float)
	if ef, ok := e.(*Float); ok && ef.IsInteger() {
		if ef.Sign() >= 0 {
			return powInt(xf, ef)
		}
		p := powInt(xf, ef.abs())
		if p.IsZero() {
			return PosInf
		}
		return One.QuoPrec(p, c.cfg.Precision)
	}
	return c.Exp(c.Log(xf).Mul(e))
}

func (c *Context) powComplex(x *Complex, e Number) Number {
	ef, ok := e.(*Float)
	if !ok || !ef.IsInteger() {
		return NaN
	}
	if ef.Sign() >= 0 {
		return powInt(x, ef)
	}
	return One.QuoPrec(powInt(x, ef.abs()), c.cfg.Precision)
}

// Abs returns |x|. The modulus of a complex value is computed as
// Exp(Log(re^2 + im^2) / 2) to the context's precision.
func (c *Context) Abs(x Number) Number {
	v, ok := x.(*Complex)
	if !ok {
		return x.Abs()
	}
	sq := v.re.mul(v.re).add(v.im.mul(v.im))
	return c.Exp(c.Log(sq).Rsh(1))
}

// RoundDigits is Number.RoundDigits with positive digits truncated to the
// context's precision.
func (c *Context) RoundDigits(x Number, digits int) Number {
	switch v := x.(type) {
	case *Float:
		return v.roundDigits(digits, c.cfg.Precision)
	case *Complex:
		return NewComplex(v.re.roundDigits(digits, c.cfg.Precision), v.im.roundDigits(digits, c.cfg.Precision))
	default:
		return x.RoundDigits(digits)
	}
}

// powInt raises x to the non-negative integer power e by multiplying in
// one factor of x for each unit of e. Every step is exact. PowMod is the
// fast path for large exponents.
func powInt(x Number, e *Float) Number {
	var result Number = One
	for ; !e.IsZero(); e = e.sub(One) {
		result = result.Mul(x)
	}
	return result
}

// Exp returns e**x for real or complex x, truncated to the context's
// precision.
//
// x is scaled into (-1, 1) by a right shift of k bits, the Taylor series
// sum(r**i / i!) is taken over at most TaylorTerms terms, and the sum is
// squared k times. The working precision carries k extra bits plus a
// guard so the squarings do not eat into the result.
func (c *Context) Exp(x Number) Number {
	switch v := x.(type) {
	case *Float:
		if v.IsZero() {
			return One
		}
		p, _ := highBit(v.ints, v.frac)
		return c.expSeries(v, p+1)
	case *Complex:
		p, ok := highBit(v.re.ints, v.re.frac)
		q, _ := highBit(v.im.ints, v.im.frac)
		if !ok || q > p {
			p = q
		}
		// |z| <= |re| + |im| < 2^(p+2)
		return c.expSeries(v, p+2)
	case Infinity:
		return v.Exp()
	default:
		return NaN
	}
}

// expSeries evaluates Exp for |x| < 2^top.
func (c *Context) expSeries(x Number, top int64) Number {
	var k int64
	if top > 0 {
		k = top
	}
	wp := c.cfg.Precision + uint(k) + guardBits
	r := x.Rsh(k)

	var sum, pow Number = One, One
	for i := int64(1); i < int64(c.cfg.TaylorTerms); i++ {
		pow = truncN(pow.Mul(r), wp)
		term := pow.QuoPrec(c.factorial(i), wp)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
		if sum.IsNaN() {
			return NaN
		}
	}
	for j := int64(0); j < k; j++ {
		sum = truncN(sum.Mul(sum), wp)
	}
	return truncN(sum, c.cfg.Precision)
}

// Log returns the natural logarithm of x, truncated to the context's
// precision. Log(0) is NegInf and the log of a negative value is the
// complex principal value ln|x| + pi*i. The log of a complex value is not
// provided and yields NaN.
func (c *Context) Log(x Number) Number {
	switch v := x.(type) {
	case *Float:
		switch v.Sign() {
		case 0:
			return NegInf
		case -1:
			return NewComplex(c.logPos(v.abs()), c.Pi())
		}
		return c.logPos(v)
	case Infinity:
		return v.Log()
	default:
		return NaN
	}
}

// logPos splits x into m * 2^e with m in [1, 2) and returns
// e*ln2 + ln(m).
func (c *Context) logPos(x *Float) *Float {
	e, _ := highBit(x.ints, x.frac)
	m := x.lsh(-e)
	res := c.lnSeries(m)
	if e != 0 {
		res = res.add(c.ln2().mul(fromInt64(e)))
	}
	return res.truncate(c.cfg.Precision)
}

// lnSeries computes ln(m) = 2 * sum(y**(2k+1) * (2k)!/(2k+1)!) with
// y = (m-1)/(m+1), to the working precision.
func (c *Context) lnSeries(m *Float) *Float {
	wp := c.cfg.Precision + guardBits
	y := m.sub(One).quo(m.add(One), wp)
	if y.IsZero() {
		return Zero
	}
	y2 := y.mul(y).truncate(wp)
	pow, sum := y, Zero
	for k := int64(0); k < int64(c.cfg.TaylorTerms); k++ {
		coef := c.lnCoef(k, wp)
		term := pow.mul(coef).truncate(wp)
		if term.IsZero() {
			break
		}
		sum = sum.add(term)
		pow = pow.mul(y2).truncate(wp)
	}
	return sum.lsh(1)
}

// lnCoef returns (2k)!/(2k+1)! to wp bits. wp is the same for every call
// on a context, so the coefficients are kept.
func (c *Context) lnCoef(k int64, wp uint) *Float {
	if v, ok := c.lnCoefs.Load(k); ok {
		return v.(*Float)
	}
	v, _ := c.lnCoefs.LoadOrStore(k, c.factorial(2*k).quo(c.factorial(2*k+1), wp))
	return v.(*Float)
}

// Ln2 returns the natural logarithm of 2 to the context's precision. It is
// computed once per context.
func (c *Context) Ln2() *Float { return c.ln2().truncate(c.cfg.Precision) }

func (c *Context) ln2() *Float {
	if v := c.ln2Val.Load(); v != nil {
		return v
	}
	v := c.lnSeries(fromInt64(2))
	if c.ln2Val.CompareAndSwap(nil, v) {
		c.log.Debug("computed constant", zap.String("name", "ln2"), zap.Uint("precision", c.cfg.Precision))
	}
	return c.ln2Val.Load()
}

// Pi returns pi to the context's precision using Machin's formula,
// pi = 16*atan(1/5) - 4*atan(1/239). It is computed once per context.
func (c *Context) Pi() *Float {
	if v := c.piVal.Load(); v != nil {
		return v
	}
	wp := c.cfg.Precision + guardBits
	v := c.atanInv(5, wp).lsh(4).sub(c.atanInv(239, wp).lsh(2)).truncate(c.cfg.Precision)
	if c.piVal.CompareAndSwap(nil, v) {
		c.log.Debug("computed constant", zap.String("name", "pi"), zap.Uint("precision", c.cfg.Precision))
	}
	return c.piVal.Load()
}

// atanInv computes atan(1/n) = sum((-1)**k / ((2k+1) * n**(2k+1))).
func (c *Context) atanInv(n int64, wp uint) *Float {
	nf := fromInt64(n)
	n2 := nf.mul(nf)
	pow := One.quo(nf, wp)
	sum := Zero
	for k := int64(0); k < int64(c.cfg.TaylorTerms); k++ {
		term := pow.quo(fromInt64(2*k+1), wp)
		if term.IsZero() {
			break
		}
		if k%2 == 0 {
			sum = sum.add(term)
		} else {
			sum = sum.sub(term)
		}
		pow = pow.quo(n2, wp)
	}
	return sum
}

// truncN truncates the fractional parts of a real or complex value to prec
// bits. Other values are returned unchanged.
func truncN(n Number, prec uint) Number {
	switch v := n.(type) {
	case *Float:
		return v.truncate(prec)
	case *Complex:
		return NewComplex(v.re.truncate(prec), v.im.truncate(prec))
	default:
		return n
	}
}
