package infnum

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFromFloat64(t *testing.T) {
	for _, tc := range []struct {
		f   float64
		out string
	}{
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{-2.75, "-2.75"},
		{1 << 70, "1180591620717411303424"},
		{math.MaxInt64, "9223372036854775808"},
		{0.1, "0.1000000000000000055511151231257827021181583404541015625"},
		{math.SmallestNonzeroFloat64, "0x0." + zeroRun(268) + "4"},
	} {
		t.Run(fmt.Sprintf("%g", tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n := FromFloat64(tc.f)
			tt.MustAssert(num(tc.out).Equal(n), "found %s", n)
			tt.MustEqual(tc.f, n.AsFloat64())
		})
	}
}

func zeroRun(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestFromFloat64Special(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(FromFloat64(0) == Zero)
	tt.MustAssert(FromFloat64(math.Copysign(0, -1)) == negZero)
	tt.MustEqual(PosInf, FromFloat64(math.Inf(1)))
	tt.MustEqual(NegInf, FromFloat64(math.Inf(-1)))
	tt.MustAssert(FromFloat64(math.NaN()).IsNaN())
}

func TestFromFloat64Exact(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		f := math.Float64frombits(globalRNG.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		n := FromFloat64(f).(*Float)
		exp := new(big.Rat).SetFloat64(f)
		tt.MustAssert(exp.Cmp(n.AsBigRat()) == 0, "%g: found %s", f, n.AsBigRat().RatString())
		tt.MustEqual(f, n.AsFloat64())
	}
}

func TestFromFloat64Subnormal(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, f := range []float64{
		math.SmallestNonzeroFloat64,
		math.SmallestNonzeroFloat64 * 3,
		math.Float64frombits(0x000FFFFFFFFFFFFF), // largest subnormal
		-math.SmallestNonzeroFloat64,
	} {
		n := FromFloat64(f)
		tt.MustEqual(f, n.AsFloat64())
		tt.MustEqual(new(big.Rat).SetFloat64(f).RatString(), n.(*Float).AsBigRat().RatString())
	}
}

func TestFromFloat64Cached(t *testing.T) {
	tt := assert.WrapTB(t)
	a := FromFloat64(1234.5678)
	b := FromFloat64(1234.5678)
	tt.MustAssert(a == b)
}

func TestAsFloat64(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out float64
	}{
		{"0", 0},
		{"1.5", 1.5},
		{"-3", -3},
		{"9007199254740993", 9007199254740992},
		{"9007199254740995", 9007199254740996},
		{"0x1" + zeroRun(300), math.Inf(1)},
		{"-0x1" + zeroRun(300), math.Inf(-1)},
		{"0x0." + zeroRun(300) + "1", 0},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, num(tc.in).AsFloat64())
		})
	}
}

func TestAsFloat64Memoized(t *testing.T) {
	tt := assert.WrapTB(t)
	x := num("12.25").(*Float)
	tt.MustAssert(!x.f64ok.Load())
	tt.MustEqual(12.25, x.AsFloat64())
	tt.MustAssert(x.f64ok.Load())
	tt.MustEqual(12.25, x.AsFloat64())
}

func TestBigConversions(t *testing.T) {
	for _, s := range []string{
		"0",
		"1",
		"-1",
		"18446744073709551616",
		"-340282366920938463463374607431768211457",
	} {
		t.Run(s, func(t *testing.T) {
			tt := assert.WrapTB(t)
			b := bigs(s)
			x := FromBigInt(b)
			tt.MustEqual(b.String(), x.AsBigInt().String())
			tt.MustEqual(s, x.String())

			var into big.Int
			x.IntoBigInt(&into)
			tt.MustEqual(0, b.Cmp(&into))
		})
	}
}

func TestAsBigIntTruncates(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-2", num("-2.75").(*Float).AsBigInt().String())
	tt.MustEqual("2", num("2.75").(*Float).AsBigInt().String())
}

func TestAsBigRatFloat(t *testing.T) {
	tt := assert.WrapTB(t)
	x := num("-6.375").(*Float)
	tt.MustEqual("-51/8", x.AsBigRat().RatString())
	bf := x.AsBigFloat()
	tt.MustEqual("-6.375", bf.Text('f', -1))
}

func TestFromBigRat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		prec uint
		out  string
	}{
		{"1/4", 8, "0.25"},
		{"-51/8", 8, "-6.375"},
		{"1/3", 8, "0.33203125"},
		{"1/3", 0, "0"},
		{"7/1", 0, "7"},
	} {
		t.Run(fmt.Sprintf("%s@%d", tc.in, tc.prec), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := FromBigRat(rat(tc.in), tc.prec)
			tt.MustAssert(num(tc.out).Equal(out), "found %s", out)
		})
	}
}
