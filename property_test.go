package infnum

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genFloat() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.SliceOfN(2, gen.UInt64()),
		gen.SliceOfN(2, gen.UInt64()),
	).Map(func(vs []interface{}) *Float {
		return mk(vs[0].(bool), vs[1].([]uint64), vs[2].([]uint64))
	})
}

func properties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestPropertiesConversion(t *testing.T) {
	p := properties()

	p.Property("int64 round trips", prop.ForAll(
		func(v int64) bool {
			x := FromInt64(v)
			return x.IsInt64() && x.AsInt64() == v && x.String() == strconv.FormatInt(v, 10)
		},
		gen.Int64(),
	))

	p.Property("float64 round trips", prop.ForAll(
		func(f float64) bool {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return true
			}
			return FromFloat64(f).AsFloat64() == f
		},
		gen.Float64(),
	))

	p.Property("hex text round trips", prop.ForAll(
		func(x *Float) bool {
			back, err := FromString(fmt.Sprintf("%#x", x))
			return err == nil && back.Equal(x)
		},
		genFloat(),
	))

	p.TestingRun(t)
}

func TestPropertiesArithmetic(t *testing.T) {
	p := properties()

	p.Property("add commutes", prop.ForAll(
		func(a, b *Float) bool { return a.Add(b).Equal(b.Add(a)) },
		genFloat(), genFloat(),
	))

	p.Property("add associates", prop.ForAll(
		func(a, b, c *Float) bool { return a.Add(b).Add(c).Equal(a.Add(b.Add(c))) },
		genFloat(), genFloat(), genFloat(),
	))

	p.Property("sub inverts add", prop.ForAll(
		func(a, b *Float) bool { return a.Add(b).Sub(b).Equal(a) },
		genFloat(), genFloat(),
	))

	p.Property("mul commutes", prop.ForAll(
		func(a, b *Float) bool { return a.Mul(b).Equal(b.Mul(a)) },
		genFloat(), genFloat(),
	))

	p.Property("mul distributes over add", prop.ForAll(
		func(a, b, c *Float) bool { return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) },
		genFloat(), genFloat(), genFloat(),
	))

	p.Property("equal values hash equally", prop.ForAll(
		func(a, b *Float) bool { return a.Add(b).Sub(b).Hash() == a.Hash() },
		genFloat(), genFloat(),
	))

	p.Property("nan absorbs", prop.ForAll(
		func(a *Float) bool {
			return a.Add(NaN).IsNaN() && NaN.Mul(a).IsNaN() && a.Pow(NaN).IsNaN()
		},
		genFloat(),
	))

	p.TestingRun(t)
}

func TestPropertiesDivision(t *testing.T) {
	p := properties()

	p.Property("divmod is euclidean", prop.ForAll(
		func(x, y *Float) bool {
			if y.IsZero() {
				return true
			}
			q, r := x.DivMod(y)
			return q.IsInteger() &&
				r.Sign() >= 0 && r.Cmp(y.Abs()) < 0 &&
				q.Mul(y).Add(r).Equal(x)
		},
		genFloat(), genFloat(),
	))

	p.Property("powmod matches pow then mod", prop.ForAll(
		func(x, e, m int64) bool {
			if m == 0 {
				return true
			}
			return i64(x).PowMod(i64(e), i64(m)).Equal(i64(x).Pow(i64(e)).Mod(i64(m)))
		},
		gen.Int64Range(-50, 50), gen.Int64Range(0, 20), gen.Int64Range(-97, 97),
	))

	p.TestingRun(t)
}
