package infnum

import (
	"fmt"
)

// Number is implemented by every value this package produces: finite
// values (*Float), the infinities (Infinity), NaN (NotANumber) and complex
// values (*Complex). Numbers are immutable; every operation returns a new
// value and never modifies its receiver or its arguments.
//
// Binary operations accept any Number. A NaN operand always produces NaN,
// infinite operands follow the IEEE-style rules documented on Infinity,
// and everything else is exact apart from Quo, Log, Exp and non-integer
// Pow, which are truncated to a precision in fractional bits.
//
// Division or modulo of a finite value by zero panics with an
// ArithmeticError. Results too large to represent panic with a
// ResourceExhaustedError. See Catch.
type Number interface {
	Add(n Number) Number
	Sub(n Number) Number
	Mul(n Number) Number

	// Quo returns the quotient truncated toward zero to the default
	// context's precision.
	Quo(n Number) Number
	QuoPrec(n Number, prec uint) Number

	// FloorDiv, Mod and DivMod implement Euclidean division: for finite n
	// the remainder is always in [0, |n|). A finite x divided by an infinite
	// n gives quotient zero and remainder x, whatever the sign of x.
	FloorDiv(n Number) Number
	Mod(n Number) Number
	DivMod(n Number) (q, r Number)

	// Pow, Log and Exp truncate to the default context's precision where
	// the result is inexact. Use the Context methods of the same name to
	// pick another precision.
	Pow(e Number) Number
	PowMod(e, m Number) Number
	Log() Number
	Exp() Number

	Lsh(by int64) Number
	Rsh(by int64) Number
	And(n Number) Number
	Or(n Number) Number
	Xor(n Number) Number
	Not() Number

	Neg() Number
	// Abs is exact except for a Complex modulus, which is truncated to the
	// default context's precision; see Context.Abs.
	Abs() Number
	Floor() Number
	Ceil() Number
	Round() Number
	// RoundDigits rounds half away from zero to a number of decimal
	// digits. A positive digits count leaves a result truncated to the
	// default context's precision; see Context.RoundDigits.
	RoundDigits(digits int) Number

	// Cmp imposes a total order: NegInf < finite values < PosInf < NaN.
	Cmp(n Number) int
	Equal(n Number) bool
	Hash() uint64

	Sign() int
	IsNaN() bool
	IsInf() bool
	IsInteger() bool
	IsZero() bool

	AsFloat64() float64

	String() string
	Format(s fmt.State, c rune)
	MarshalText() ([]byte, error)
	MarshalJSON() ([]byte, error)

	number()
}

var (
	_ Number = (*Float)(nil)
	_ Number = (*Complex)(nil)
	_ Number = Infinity{}
	_ Number = NotANumber{}
)

// rank orders the kinds of Number for Cmp.
func rank(n Number) int {
	switch v := n.(type) {
	case Infinity:
		if v.neg {
			return 0
		}
		return 2
	case NotANumber:
		return 3
	case nil:
		return 3
	default:
		return 1
	}
}

func FromInt64(v int64) *Float     { return std.FromInt64(v) }
func FromUint64(v uint64) *Float   { return std.FromUint64(v) }
func FromFloat64(f float64) Number { return std.FromFloat64(f) }

// FromWords creates a finite value from big-endian integer and fractional
// word runs. Both slices are copied.
func FromWords(neg bool, ints, frac []uint64) *Float {
	ci := make([]uint64, len(ints))
	copy(ci, ints)
	cf := make([]uint64, len(frac))
	copy(cf, frac)
	return mk(neg, ci, cf)
}

func fromInt64(v int64) *Float {
	if v < 0 {
		return mk(true, []uint64{uint64(-v)}, nil) // -minInt64 wraps to 1<<63, which is what we want
	}
	return mk(false, []uint64{uint64(v)}, nil)
}
