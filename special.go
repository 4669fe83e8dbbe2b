package infnum

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Infinity is positive or negative infinity. The zero value is PosInf.
//
// Arithmetic follows the usual extended-real rules: inf + x is inf unless x
// is the opposite infinity; inf * x takes the product of the signs and is
// NaN for zero or complex x; inf / inf is NaN while finite / inf is zero;
// inf mod x is inf unless x is also infinite (zero). Pow follows the
// special cases of math.Pow. Bitwise operations yield NaN; shifts and
// rounding return the infinity unchanged.
type Infinity struct{ neg bool }

// NotANumber is the type of NaN, which every operation propagates.
type NotANumber struct{}

var (
	PosInf = Infinity{}
	NegInf = Infinity{neg: true}
	NaN    = NotANumber{}
)

var (
	hashPosInf = xxhash.Sum64String("+inf")
	hashNegInf = xxhash.Sum64String("-inf")
	hashNaN    = xxhash.Sum64String("nan")
)

func (i Infinity) number() {}

func (i Infinity) Add(n Number) Number {
	switch y := n.(type) {
	case NotANumber:
		return NaN
	case Infinity:
		if y.neg != i.neg {
			return NaN
		}
		return i
	default:
		return i
	}
}

func (i Infinity) Sub(n Number) Number { return i.Add(n.Neg()) }

func (i Infinity) Mul(n Number) Number {
	switch y := n.(type) {
	case Infinity:
		return Infinity{neg: i.neg != y.neg}
	case *Float:
		if y.IsZero() {
			return NaN
		}
		return Infinity{neg: i.neg != y.neg}
	default:
		return NaN
	}
}

// Quo follows the sign rules; inf/0 keeps the infinity's sign.
func (i Infinity) Quo(n Number) Number {
	switch y := n.(type) {
	case *Float:
		if y.IsZero() {
			return i
		}
		return Infinity{neg: i.neg != y.neg}
	default:
		return NaN
	}
}

func (i Infinity) QuoPrec(n Number, prec uint) Number { return i.Quo(n) }
func (i Infinity) FloorDiv(n Number) Number           { return i.Quo(n) }

func (i Infinity) Mod(n Number) Number {
	switch n.(type) {
	case Infinity:
		return Zero
	case *Float:
		return i
	default:
		return NaN
	}
}

func (i Infinity) DivMod(n Number) (q, r Number) { return i.FloorDiv(n), i.Mod(n) }

func (i Infinity) Pow(e Number) Number           { return powSpecial(i, e) }
func (i Infinity) PowMod(e, m Number) Number     { return i.Pow(e).Mod(m) }
func (i Infinity) Lsh(by int64) Number           { return i }
func (i Infinity) Rsh(by int64) Number           { return i }
func (i Infinity) And(n Number) Number           { return NaN }
func (i Infinity) Or(n Number) Number            { return NaN }
func (i Infinity) Xor(n Number) Number           { return NaN }
func (i Infinity) Not() Number                   { return NaN }
func (i Infinity) Neg() Number                   { return Infinity{neg: !i.neg} }
func (i Infinity) Abs() Number                   { return PosInf }
func (i Infinity) Floor() Number                 { return i }
func (i Infinity) Ceil() Number                  { return i }
func (i Infinity) Round() Number                 { return i }
func (i Infinity) RoundDigits(digits int) Number { return i }

func (i Infinity) Log() Number {
	if i.neg {
		return NaN
	}
	return i
}

func (i Infinity) Exp() Number {
	if i.neg {
		return Zero
	}
	return i
}

func (i Infinity) Cmp(n Number) int    { return cmpInt(rank(i), rank(n)) }
func (i Infinity) Equal(n Number) bool { return i.Cmp(n) == 0 }

func (i Infinity) Hash() uint64 {
	if i.neg {
		return hashNegInf
	}
	return hashPosInf
}

func (i Infinity) Sign() int {
	if i.neg {
		return -1
	}
	return 1
}

func (i Infinity) IsNaN() bool     { return false }
func (i Infinity) IsInf() bool     { return true }
func (i Infinity) IsInteger() bool { return false }
func (i Infinity) IsZero() bool    { return false }

func (i Infinity) AsFloat64() float64 {
	return math.Inf(i.Sign())
}

func (i Infinity) String() string { return Render(i, Decimal) }

func (i Infinity) Format(s fmt.State, c rune) { formatNumber(i, s, c) }

func (i Infinity) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
func (i Infinity) MarshalJSON() ([]byte, error) { return []byte(`"` + i.String() + `"`), nil }

func (NotANumber) number() {}

func (NotANumber) Add(Number) Number              { return NaN }
func (NotANumber) Sub(Number) Number              { return NaN }
func (NotANumber) Mul(Number) Number              { return NaN }
func (NotANumber) Quo(Number) Number              { return NaN }
func (NotANumber) QuoPrec(Number, uint) Number    { return NaN }
func (NotANumber) FloorDiv(Number) Number         { return NaN }
func (NotANumber) Mod(Number) Number              { return NaN }
func (NotANumber) DivMod(Number) (q, r Number)    { return NaN, NaN }
func (NotANumber) Pow(Number) Number              { return NaN }
func (NotANumber) PowMod(Number, Number) Number   { return NaN }
func (NotANumber) Log() Number                    { return NaN }
func (NotANumber) Exp() Number                    { return NaN }
func (NotANumber) Lsh(int64) Number               { return NaN }
func (NotANumber) Rsh(int64) Number               { return NaN }
func (NotANumber) And(Number) Number              { return NaN }
func (NotANumber) Or(Number) Number               { return NaN }
func (NotANumber) Xor(Number) Number              { return NaN }
func (NotANumber) Not() Number                    { return NaN }
func (NotANumber) Neg() Number                    { return NaN }
func (NotANumber) Abs() Number                    { return NaN }
func (NotANumber) Floor() Number                  { return NaN }
func (NotANumber) Ceil() Number                   { return NaN }
func (NotANumber) Round() Number                  { return NaN }
func (NotANumber) RoundDigits(int) Number         { return NaN }
func (v NotANumber) Cmp(n Number) int             { return cmpInt(rank(v), rank(n)) }
func (v NotANumber) Equal(n Number) bool          { return v.Cmp(n) == 0 }
func (NotANumber) Hash() uint64                   { return hashNaN }
func (NotANumber) Sign() int                      { return 0 }
func (NotANumber) IsNaN() bool                    { return true }
func (NotANumber) IsInf() bool                    { return false }
func (NotANumber) IsInteger() bool                { return false }
func (NotANumber) IsZero() bool                   { return false }
func (NotANumber) AsFloat64() float64             { return math.NaN() }
func (NotANumber) String() string                 { return Render(NaN, Decimal) }
func (v NotANumber) Format(s fmt.State, c rune)   { formatNumber(v, s, c) }
func (v NotANumber) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v NotANumber) MarshalJSON() ([]byte, error) { return []byte(`"` + v.String() + `"`), nil }

// powSpecial handles Pow when the base or the exponent is infinite, using
// the same rules as math.Pow. NaN operands have already been dealt with
// by the caller or are dealt with here.
func powSpecial(x, e Number) Number {
	if x.IsNaN() || e.IsNaN() {
		return NaN
	}
	if _, ok := x.(*Complex); ok {
		return NaN
	}
	if _, ok := e.(*Complex); ok {
		return NaN
	}
	if e.IsZero() {
		return One
	}
	if x.Equal(One) {
		return One
	}

	if ei, ok := e.(Infinity); ok {
		c := x.Abs().Cmp(One)
		switch {
		case c == 0: // x == -1
			return One
		case (c > 0) != ei.neg:
			return PosInf
		default:
			return Zero
		}
	}

	// x is infinite, e is finite and nonzero.
	xi := x.(Infinity)
	ef := e.(*Float)
	if !xi.neg {
		if ef.neg {
			return Zero
		}
		return PosInf
	}
	odd := ef.IsInteger() && ef.ints[len(ef.ints)-1]&1 == 1
	switch {
	case !ef.neg && odd:
		return NegInf
	case !ef.neg:
		return PosInf
	case odd:
		return negZero
	default:
		return Zero
	}
}
