package infnum

import (
	"math"
	"math/big"
)

// floatFromBits decomposes a finite, nonzero IEEE-754 binary64 bit pattern
// into a Float. Every finite double is a dyadic rational, so the result is
// exact; subnormals use the minimum exponent with no hidden bit.
func floatFromBits(b uint64) *Float {
	neg := b&f64SignBit != 0
	exp := int64((b >> f64MantBits) & f64ExpMask)
	mant := b & f64MantMask
	if exp == 0 {
		exp = 1
	} else {
		mant |= f64Hidden
	}
	ints, frac := shiftWords([]uint64{mant}, nil, exp-f64Shift)
	return mk(neg, ints, frac)
}

// AsFloat64 returns the nearest float64, with ties to even. Values beyond
// the float64 range become +/-Inf. The result is memoized.
func (x *Float) AsFloat64() float64 {
	if x.f64ok.Load() {
		return math.Float64frombits(x.f64.Load())
	}
	var f float64
	if x.IsZero() {
		if x.neg {
			f = math.Copysign(0, -1)
		}
	} else {
		f, _ = x.AsBigFloat().Float64()
	}
	x.f64.Store(math.Float64bits(f))
	x.f64ok.Store(true)
	return f
}

// AsBigFloat returns x as an exact big.Float; the precision is set to fit
// every significant bit.
func (x *Float) AsBigFloat() *big.Float {
	mant := x.mantissa()
	bf := new(big.Float).SetInt(mant)
	return bf.SetMantExp(bf, -wordBits*len(x.frac))
}

// AsBigRat returns x as an exact big.Rat.
func (x *Float) AsBigRat() *big.Rat {
	den := new(big.Int).Lsh(big1, uint(wordBits*len(x.frac)))
	return new(big.Rat).SetFrac(x.mantissa(), den)
}

// AsBigInt returns the integer part of x, truncated toward zero.
func (x *Float) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// IntoBigInt stores the integer part of x, truncated toward zero, in b.
func (x *Float) IntoBigInt(b *big.Int) {
	b.SetBits(wordsToBig(x.ints, b.Bits()))
	if x.neg {
		b.Neg(b)
	}
}

// mantissa is the signed integer formed by all of x's words, so that
// x == mantissa * 2^(-64*len(frac)).
func (x *Float) mantissa() *big.Int {
	ws := make([]uint64, 0, len(x.ints)+len(x.frac))
	ws = append(ws, x.ints...)
	ws = append(ws, x.frac...)
	m := new(big.Int).SetBits(wordsToBig(ws, nil))
	if x.neg {
		m.Neg(m)
	}
	return m
}

// FromBigInt creates an integer Float from a big.Int.
func FromBigInt(v *big.Int) *Float {
	return mk(v.Sign() < 0, bigToWords(v.Bits()), nil)
}

// FromBigRat creates a Float from a big.Rat, truncated toward zero to prec
// fractional bits.
func FromBigRat(v *big.Rat, prec uint) *Float {
	num, den := FromBigInt(v.Num()), FromBigInt(v.Denom())
	return num.quo(den, prec)
}

// wordsToBig converts big-endian uint64 words to little-endian big.Words,
// reusing buf when it has room.
func wordsToBig(ws []uint64, buf []big.Word) []big.Word {
	switch intSize {
	case 64:
		n := len(ws)
		if cap(buf) < n {
			buf = make([]big.Word, n)
		}
		buf = buf[:n]
		for i, w := range ws {
			buf[n-1-i] = big.Word(w)
		}
		return buf

	case 32:
		n := 2 * len(ws)
		if cap(buf) < n {
			buf = make([]big.Word, n)
		}
		buf = buf[:n]
		for i, w := range ws {
			j := n - 2 - 2*i
			buf[j] = big.Word(w & 0xffffffff)
			buf[j+1] = big.Word(w >> 32)
		}
		return buf

	default:
		panic("infnum: unsupported bit size")
	}
}

// bigToWords is the inverse of wordsToBig. The result is never empty.
func bigToWords(bw []big.Word) []uint64 {
	switch intSize {
	case 64:
		n := len(bw)
		ws := make([]uint64, n)
		for i, w := range bw {
			ws[n-1-i] = uint64(w)
		}
		return trimInt(ws)

	case 32:
		n := (len(bw) + 1) / 2
		ws := make([]uint64, n)
		for i, w := range bw {
			ws[n-1-i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return trimInt(ws)

	default:
		panic("infnum: unsupported bit size")
	}
}
