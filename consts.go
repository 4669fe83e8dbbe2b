package infnum

import (
	"math"
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	intSize  = 32 << (^uint(0) >> 63)
	wordBits = 64

	// maxWords is the longest integer or fractional word run a Float may
	// hold. Anything longer raises a ResourceExhaustedError instead of
	// being allocated.
	maxWords = math.MaxInt32 - 8

	// IEEE-754 binary64 layout:
	f64MantBits = 52
	f64ExpMask  = 0x7FF
	f64Bias     = 1023
	f64MantMask = 1<<f64MantBits - 1
	f64Hidden   = 1 << f64MantBits
	f64SignBit  = 1 << 63

	// f64Shift is the exponent offset that turns a binary64 significand
	// (read as an integer) back into its value: v = mant << (exp - f64Shift).
	f64Shift = f64Bias + f64MantBits

	// This is the minimum number of fractional bits the default context
	// keeps for inexact quotients, logarithms and exponentials.
	DefaultPrecision = 128

	DefaultTaylorTerms    = 64
	DefaultMaxFactorial   = 4096
	DefaultSmallIntMin    = -128
	DefaultSmallIntMax    = 1024
	DefaultFloatCacheSize = 4096

	// Extra bits carried by the series loops beyond the requested precision.
	guardBits = 32
)

var (
	big1 = new(big.Int).SetInt64(1)

	// wrapBigU64 is 1 << 64:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)
)
