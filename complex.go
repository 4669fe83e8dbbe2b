package infnum

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Complex is a complex value with finite real and imaginary parts. A
// Complex always has a nonzero imaginary part: NewComplex returns the real
// part on its own otherwise.
//
// Mod, FloorDiv, DivMod, PowMod, the bitwise operations and Log are not
// defined for complex values and return NaN.
type Complex struct {
	re, im *Float

	hashed atomic.Bool
	hash   atomic.Uint64
}

// NewComplex returns re + im*i, or re if im is zero.
func NewComplex(re, im *Float) Number {
	if im.IsZero() {
		return re
	}
	if re.IsZero() {
		re = Zero
	}
	return &Complex{re: re, im: im}
}

func (c *Complex) number() {}

func (c *Complex) Real() *Float { return c.re }
func (c *Complex) Imag() *Float { return c.im }

func (c *Complex) Add(n Number) Number {
	switch y := n.(type) {
	case *Float:
		return NewComplex(c.re.add(y), c.im)
	case *Complex:
		return NewComplex(c.re.add(y.re), c.im.add(y.im))
	case Infinity:
		return y
	default:
		return NaN
	}
}

func (c *Complex) Sub(n Number) Number { return c.Add(n.Neg()) }

func (c *Complex) Mul(n Number) Number {
	switch y := n.(type) {
	case *Float:
		return NewComplex(c.re.mul(y), c.im.mul(y))
	case *Complex:
		return complexMul(c.re, c.im, y.re, y.im)
	default:
		return NaN
	}
}

func complexMul(a, b, x, y *Float) Number {
	// (a+bi)(x+yi) = (ax - by) + (ay + bx)i
	return NewComplex(a.mul(x).sub(b.mul(y)), a.mul(y).add(b.mul(x)))
}

func (c *Complex) Quo(n Number) Number { return c.QuoPrec(n, std.cfg.Precision) }

func (c *Complex) QuoPrec(n Number, prec uint) Number {
	switch y := n.(type) {
	case *Float:
		if y.IsZero() {
			raiseArith("quo", "division by zero")
		}
		return NewComplex(c.re.quo(y, prec), c.im.quo(y, prec))
	case *Complex:
		return complexQuo(c.re, c.im, y.re, y.im, prec)
	case Infinity:
		return Zero
	default:
		return NaN
	}
}

// complexQuo divides (a+bi) by (x+yi), which must be nonzero, by
// multiplying through by the conjugate and dividing by x^2 + y^2.
func complexQuo(a, b, x, y *Float, prec uint) Number {
	den := x.mul(x).add(y.mul(y))
	if den.IsZero() {
		raiseArith("quo", "division by zero")
	}
	re := a.mul(x).add(b.mul(y))
	im := b.mul(x).sub(a.mul(y))
	return NewComplex(re.quo(den, prec), im.quo(den, prec))
}

func (c *Complex) FloorDiv(n Number) Number      { return NaN }
func (c *Complex) Mod(n Number) Number           { return NaN }
func (c *Complex) DivMod(n Number) (q, r Number) { return NaN, NaN }
func (c *Complex) PowMod(e, m Number) Number     { return NaN }
func (c *Complex) And(n Number) Number           { return NaN }
func (c *Complex) Or(n Number) Number            { return NaN }
func (c *Complex) Xor(n Number) Number           { return NaN }
func (c *Complex) Not() Number                   { return NaN }
func (c *Complex) Log() Number                   { return NaN }
func (c *Complex) Exp() Number                   { return std.Exp(c) }
func (c *Complex) Lsh(by int64) Number           { return NewComplex(c.re.lsh(by), c.im.lsh(by)) }
func (c *Complex) Neg() Number                   { return NewComplex(c.re.negate(), c.im.negate()) }
func (c *Complex) Floor() Number                 { return NewComplex(c.re.floor(), c.im.floor()) }
func (c *Complex) Ceil() Number                  { return NewComplex(c.re.ceil(), c.im.ceil()) }
func (c *Complex) Round() Number                 { return NewComplex(c.re.round(), c.im.round()) }
func (c *Complex) IsNaN() bool                   { return false }
func (c *Complex) IsInf() bool                   { return false }
func (c *Complex) IsInteger() bool               { return false }
func (c *Complex) IsZero() bool                  { return false }
func (c *Complex) Equal(n Number) bool           { return c.Cmp(n) == 0 }
func (c *Complex) MarshalText() ([]byte, error)  { return []byte(c.String()), nil }
func (c *Complex) MarshalJSON() ([]byte, error)  { return []byte(`"` + c.String() + `"`), nil }
func (c *Complex) String() string                { return Render(c, Decimal) }
func (c *Complex) Format(s fmt.State, verb rune) { formatNumber(c, s, verb) }

func (c *Complex) Rsh(by int64) Number {
	return NewComplex(c.re.Rsh(by).(*Float), c.im.Rsh(by).(*Float))
}

func (c *Complex) RoundDigits(digits int) Number { return std.RoundDigits(c, digits) }

// Pow is defined for integer exponents only; other exponents yield NaN.
// Negative exponents are truncated to the default context's precision.
func (c *Complex) Pow(e Number) Number { return std.powComplex(c, e) }

// Abs returns the modulus sqrt(re^2 + im^2) to the default context's
// precision. See Context.Abs.
func (c *Complex) Abs() Number { return std.Abs(c) }

// AsFloat64 returns NaN; a complex value has no float64 equivalent.
func (c *Complex) AsFloat64() float64 { return NaN.AsFloat64() }

// Sign is the sign of the real part, or of the imaginary part when the
// real part is zero.
func (c *Complex) Sign() int {
	if s := c.re.Sign(); s != 0 {
		return s
	}
	return c.im.Sign()
}

// Cmp orders complex values by their real part, then their imaginary
// part. Real values compare as if their imaginary part were zero.
func (c *Complex) Cmp(n Number) int {
	switch y := n.(type) {
	case *Float:
		if r := c.re.cmp(y); r != 0 {
			return r
		}
		return c.im.Sign()
	case *Complex:
		if r := c.re.cmp(y.re); r != 0 {
			return r
		}
		return c.im.cmp(y.im)
	default:
		return cmpInt(rank(c), rank(n))
	}
}

func (c *Complex) Hash() uint64 {
	if c.hashed.Load() {
		return c.hash.Load()
	}
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], c.re.Hash())
	binary.BigEndian.PutUint64(buf[8:], c.im.Hash())
	h := xxhash.Sum64(buf[:])
	c.hash.Store(h)
	c.hashed.Store(true)
	return h
}
