package infnum

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Float is a finite, real, arbitrary-precision binary number held in
// sign-magnitude form. The magnitude is ints (a big-endian unsigned
// integer) plus frac (a big-endian binary fraction; the first word holds
// the 64 bits immediately after the point).
//
// ints is never empty and only has a leading zero word when it is [0];
// frac never has a trailing zero word. Negative zero exists, but compares
// and hashes the same as zero.
//
// A Float must not be copied after first use; always pass a *Float.
type Float struct {
	neg  bool
	ints []uint64
	frac []uint64

	hashed atomic.Bool
	hash   atomic.Uint64
	f64ok  atomic.Bool
	f64    atomic.Uint64
}

var (
	Zero    = &Float{ints: []uint64{0}}
	One     = &Float{ints: []uint64{1}}
	negZero = &Float{neg: true, ints: []uint64{0}}
)

// mk trims the word runs and builds a Float. Zero results are always the
// positive Zero singleton.
func mk(neg bool, ints, frac []uint64) *Float {
	ints, frac = trimInt(ints), trimFrac(frac)
	if len(frac) == 0 && len(ints) == 1 {
		switch {
		case ints[0] == 0:
			return Zero
		case ints[0] == 1 && !neg:
			return One
		}
	}
	return &Float{neg: neg, ints: ints, frac: frac}
}

func (x *Float) number() {}

func (x *Float) IsZero() bool    { return isZeroWords(x.ints, x.frac) }
func (x *Float) IsInteger() bool { return len(x.frac) == 0 }
func (x *Float) IsNaN() bool     { return false }
func (x *Float) IsInf() bool     { return false }

func (x *Float) Sign() int {
	if x.IsZero() {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// Words returns copies of the sign and word runs. See FromWords for the
// counterpart.
func (x *Float) Words() (neg bool, ints, frac []uint64) {
	ints = make([]uint64, len(x.ints))
	copy(ints, x.ints)
	frac = make([]uint64, len(x.frac))
	copy(frac, x.frac)
	return x.neg, ints, frac
}

func (x *Float) Add(n Number) Number {
	switch y := n.(type) {
	case *Float:
		return x.add(y)
	case *Complex:
		return y.Add(x)
	case Infinity:
		return y
	default:
		return NaN
	}
}

func (x *Float) Sub(n Number) Number {
	if y, ok := n.(*Float); ok {
		return x.add(y.negate())
	}
	return x.Add(n.Neg())
}

func (x *Float) add(y *Float) *Float {
	if x.neg == y.neg {
		ints, frac := addMag(x.ints, x.frac, y.ints, y.frac)
		return mk(x.neg, ints, frac)
	}
	switch cmpMag(x.ints, x.frac, y.ints, y.frac) {
	case 1:
		ints, frac := subMag(x.ints, x.frac, y.ints, y.frac)
		return mk(x.neg, ints, frac)
	case -1:
		ints, frac := subMag(y.ints, y.frac, x.ints, x.frac)
		return mk(y.neg, ints, frac)
	default:
		return Zero
	}
}

func (x *Float) sub(y *Float) *Float { return x.add(y.negate()) }

func (x *Float) Mul(n Number) Number {
	switch y := n.(type) {
	case *Float:
		return x.mul(y)
	case *Complex:
		return y.Mul(x)
	case Infinity:
		return y.Mul(x)
	default:
		return NaN
	}
}

// mul is a shift-and-add multiply. The operand with fewer integer words is
// the multiplier; for every set bit in it, the multiplicand shifted to the
// bit's weight is added to the accumulator.
func (x *Float) mul(y *Float) *Float {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	mcand, mplier := x, y
	if len(x.ints) < len(y.ints) {
		mcand, mplier = y, x
	}

	accInts, accFrac := []uint64{0}, []uint64(nil)
	addShifted := func(by int64) {
		si, sf := shiftWords(mcand.ints, mcand.frac, by)
		accInts, accFrac = addMag(accInts, accFrac, si, sf)
	}

	n := len(mplier.ints)
	for i, w := range mplier.ints {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			addShifted(int64(wordBits*(n-1-i) + tz))
			w &= w - 1
		}
	}
	for j, w := range mplier.frac {
		for w != 0 {
			lz := bits.LeadingZeros64(w)
			addShifted(-int64(wordBits*j + lz + 1))
			w &^= 1 << (wordBits - 1 - lz)
		}
	}
	return mk(x.neg != y.neg, accInts, accFrac)
}

func (x *Float) Quo(n Number) Number { return x.QuoPrec(n, std.cfg.Precision) }

// QuoPrec returns x/n truncated toward zero to prec fractional bits. The
// result is exact whenever the quotient terminates within prec bits.
func (x *Float) QuoPrec(n Number, prec uint) Number {
	switch y := n.(type) {
	case *Float:
		return x.quo(y, prec)
	case *Complex:
		return complexQuo(x, Zero, y.re, y.im, prec)
	case Infinity:
		return Zero
	default:
		return NaN
	}
}

func (x *Float) Pow(e Number) Number       { return std.Pow(x, e) }
func (x *Float) PowMod(e, m Number) Number { return powMod(x, e, m) }
func (x *Float) Log() Number               { return std.Log(x) }
func (x *Float) Exp() Number               { return std.Exp(x) }

func (x *Float) Lsh(by int64) Number { return x.lsh(by) }

func (x *Float) Rsh(by int64) Number {
	if by == minInt64 {
		if x.IsZero() {
			return x
		}
		raiseResource("integer words", maxWords, maxInt64/wordBits)
	}
	return x.lsh(-by)
}

func (x *Float) lsh(by int64) *Float {
	if x.IsZero() {
		return x
	}
	ints, frac := shiftWords(x.ints, x.frac, by)
	return mk(x.neg, ints, frac)
}

// And, Or and Xor operate on the aligned magnitudes. The sign of the result
// is computed from the operand signs with the same operator.
func (x *Float) And(n Number) Number {
	y, ok := n.(*Float)
	if !ok {
		return NaN
	}
	return x.bitwise(y, andVV, x.neg && y.neg)
}

func (x *Float) Or(n Number) Number {
	y, ok := n.(*Float)
	if !ok {
		return NaN
	}
	return x.bitwise(y, orVV, x.neg || y.neg)
}

func (x *Float) Xor(n Number) Number {
	y, ok := n.(*Float)
	if !ok {
		return NaN
	}
	return x.bitwise(y, xorVV, x.neg != y.neg)
}

func (x *Float) bitwise(y *Float, op func(a, b []uint64) []uint64, neg bool) *Float {
	a, b, fl := align(x.ints, x.frac, y.ints, y.frac)
	ints, frac := split(op(a, b), fl)
	return mk(neg, ints, frac)
}

// Not inverts every word of the value's own integer and fractional runs
// and flips the sign.
func (x *Float) Not() Number {
	return mk(!x.neg, notV(x.ints), notV(x.frac))
}

func (x *Float) Neg() Number { return x.negate() }

func (x *Float) negate() *Float {
	if x.IsZero() {
		if x.neg {
			return Zero
		}
		return negZero
	}
	return &Float{neg: !x.neg, ints: x.ints, frac: x.frac}
}

func (x *Float) Abs() Number { return x.abs() }

func (x *Float) abs() *Float {
	if x.neg {
		return x.negate()
	}
	return x
}

// Floor drops the fractional part, rounding toward zero.
func (x *Float) Floor() Number { return x.floor() }

func (x *Float) floor() *Float {
	if len(x.frac) == 0 {
		return x
	}
	return mk(x.neg, x.ints, nil)
}

// Ceil rounds away from zero when there is a fractional part.
func (x *Float) Ceil() Number { return x.ceil() }

func (x *Float) ceil() *Float {
	if len(x.frac) == 0 {
		return x
	}
	ints, _ := addMag(x.ints, nil, []uint64{1}, nil)
	return mk(x.neg, ints, nil)
}

// Round rounds to the nearest integer, with halves rounded away from zero.
func (x *Float) Round() Number { return x.round() }

func (x *Float) round() *Float {
	if len(x.frac) == 0 {
		return x
	}
	if x.frac[0]>>(wordBits-1) == 1 {
		return x.ceil()
	}
	return x.floor()
}

// RoundDigits rounds to the given number of decimal digits after the
// point; negative digits round to the left of the point. Because most
// decimal fractions do not terminate in binary, the result for positive
// digits is truncated to the default context's precision. See
// Context.RoundDigits.
func (x *Float) RoundDigits(digits int) Number { return x.roundDigits(digits, std.cfg.Precision) }

func (x *Float) roundDigits(digits int, prec uint) *Float {
	if digits >= 0 {
		if x.IsInteger() {
			return x
		}
		scale := pow10(digits)
		return x.mul(scale).round().quo(scale, prec)
	}
	scale := pow10(-digits)
	return x.quo(scale, prec).round().mul(scale)
}

func pow10(n int) *Float {
	return FromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil))
}

// truncate keeps at most prec fractional bits, rounding toward zero.
func (x *Float) truncate(prec uint) *Float {
	if uint64(len(x.frac))*wordBits <= uint64(prec) {
		return x
	}
	return mk(x.neg, x.ints, truncFrac(x.frac, prec))
}

func (x *Float) Cmp(n Number) int {
	switch y := n.(type) {
	case *Float:
		return x.cmp(y)
	case *Complex:
		return -y.Cmp(x)
	default:
		return cmpInt(rank(x), rank(n))
	}
}

func (x *Float) cmp(y *Float) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		return cmpInt(xs, ys)
	}
	c := cmpMag(x.ints, x.frac, y.ints, y.frac)
	if xs < 0 {
		return -c
	}
	return c
}

func (x *Float) Equal(n Number) bool { return x.Cmp(n) == 0 }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Hash returns a hash consistent with Equal. The result is memoized.
func (x *Float) Hash() uint64 {
	if x.hashed.Load() {
		return x.hash.Load()
	}
	h := hashWords(x.Sign() < 0, x.ints, x.frac)
	x.hash.Store(h)
	x.hashed.Store(true)
	return h
}

func hashWords(neg bool, ints, frac []uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	if neg {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
	binary.BigEndian.PutUint64(buf[:], uint64(len(ints)))
	_, _ = d.Write(buf[:])
	for _, w := range ints {
		binary.BigEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	for _, w := range frac {
		binary.BigEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// AsInt64 truncates toward zero and wraps if the integer part does not fit
// in an int64. Use IsInt64 to check first.
func (x *Float) AsInt64() int64 {
	v := int64(x.ints[len(x.ints)-1])
	if x.neg {
		return -v
	}
	return v
}

// IsInt64 reports whether x is an integer that fits in an int64 exactly.
func (x *Float) IsInt64() bool {
	if len(x.frac) != 0 || len(x.ints) != 1 {
		return false
	}
	if x.neg {
		return x.ints[0] <= 1<<63
	}
	return x.ints[0] <= maxInt64
}

// AsUint64 truncates toward zero and drops the sign and any integer words
// above the lowest.
func (x *Float) AsUint64() uint64 { return x.ints[len(x.ints)-1] }

func (x *Float) IsUint64() bool {
	return len(x.frac) == 0 && len(x.ints) == 1 && (!x.neg || x.ints[0] == 0)
}
