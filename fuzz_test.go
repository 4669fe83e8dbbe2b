package infnum

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

type fuzzOp string

// This is the equivalent of passing -infnum.fuzziter=1000 to 'go test':
const fuzzDefaultIterations = 1000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-infnum.fuzzop=add -infnum.fuzzop=sub', or
// you can use the short form '-infnum.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAbs         fuzzOp = "abs"
	fuzzAdd         fuzzOp = "add"
	fuzzAnd         fuzzOp = "and"
	fuzzAsFloat64   fuzzOp = "asfloat64"
	fuzzCmp         fuzzOp = "cmp"
	fuzzDivMod      fuzzOp = "divmod"
	fuzzEqual       fuzzOp = "equal"
	fuzzFromFloat64 fuzzOp = "fromfloat64"
	fuzzHash        fuzzOp = "hash"
	fuzzLsh         fuzzOp = "lsh"
	fuzzMul         fuzzOp = "mul"
	fuzzNeg         fuzzOp = "neg"
	fuzzOr          fuzzOp = "or"
	fuzzPowMod      fuzzOp = "powmod"
	fuzzQuo         fuzzOp = "quo"
	fuzzRsh         fuzzOp = "rsh"
	fuzzString      fuzzOp = "string"
	fuzzSub         fuzzOp = "sub"
	fuzzXor         fuzzOp = "xor"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAbs,
	fuzzAdd,
	fuzzAnd,
	fuzzAsFloat64,
	fuzzCmp,
	fuzzDivMod,
	fuzzEqual,
	fuzzFromFloat64,
	fuzzHash,
	fuzzLsh,
	fuzzMul,
	fuzzNeg,
	fuzzOr,
	fuzzPowMod,
	fuzzQuo,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// classic rando!
type rando struct {
	operands []*big.Rat
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Rat { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Uint64() uint64 { return r.rng.Uint64() }

func (r *rando) Intn(n int) int {
	v := r.rng.Intn(n)
	r.operands = append(r.operands, new(big.Rat).SetInt64(int64(v)))
	return v
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random multi-word operands
// being the same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

// value builds a random Float with up to maxInt integer words and maxFrac
// fractional words. The most significant word of each run is masked to a
// random width so small magnitudes are as likely as large ones.
func (r *rando) value(maxInt, maxFrac int) *Float {
	ints := make([]uint64, r.rng.Intn(maxInt+1))
	for i := range ints {
		ints[i] = r.rng.Uint64()
	}
	if len(ints) > 0 {
		ints[0] &= (1 << uint(r.rng.Intn(64)+1)) - 1
	}
	frac := make([]uint64, r.rng.Intn(maxFrac+1))
	for i := range frac {
		frac[i] = r.rng.Uint64()
	}
	if len(frac) > 0 {
		frac[len(frac)-1] &^= (1 << uint(r.rng.Intn(64))) - 1
	}
	x := mk(r.rng.Intn(2) == 1, ints, frac)
	r.operands = append(r.operands, x.AsBigRat())
	return x
}

func (r *rando) Float() *Float { return r.value(3, 2) }
func (r *rando) Int() *Float   { return r.value(3, 0) }

func (r *rando) Floatx2() (a, b *Float) {
	a = r.Float()
	if r.samesies(2) > 0 {
		b = a
		r.operands = append(r.operands, b.AsBigRat())
	} else {
		b = r.Float()
	}
	return a, b
}

func (r *rando) Intx2() (a, b *Float) {
	a = r.Int()
	if r.samesies(2) > 0 {
		b = a
		r.operands = append(r.operands, b.AsBigRat())
	} else {
		b = r.Int()
	}
	return a, b
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("infnum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("infnum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualRat(n Number, b *big.Rat) error {
	f, ok := n.(*Float)
	if !ok {
		return fmt.Errorf("infnum(%s) is not finite, expected big(%s)", n, b.RatString())
	}
	if f.AsBigRat().Cmp(b) != 0 {
		return fmt.Errorf("infnum(%s) != big(%s)", f.AsBigRat().RatString(), b.RatString())
	}
	return nil
}

func checkEqualString(u string, b string) error {
	if u != b {
		return fmt.Errorf("infnum(%s) != big(%s)", u, b)
	}
	return nil
}

// ratFloor returns floor(r).
func ratFloor(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom()) // Euclidean, and Denom is always > 0
}

// ratTrunc truncates r toward zero to prec fractional bits.
func ratTrunc(r *big.Rat, prec uint) *big.Rat {
	scale := new(big.Int).Lsh(big1, prec)
	s := new(big.Rat).Mul(new(big.Rat).Abs(r), new(big.Rat).SetInt(scale))
	out := new(big.Rat).SetFrac(ratFloor(s), scale)
	if r.Sign() < 0 {
		out.Neg(out)
	}
	return out
}

// ratDecimal renders a dyadic rational exactly, without trailing zeros.
func ratDecimal(r *big.Rat) string {
	digits := r.Denom().BitLen() - 1
	s := r.FloatString(digits)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -infnum.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var fuzzImpl = &fuzzFloat{source: source}
	var failures = make([]int, len(runFuzzOps))
	var totalFailures int

	for opIdx, op := range runFuzzOps {
		for i := 0; i < fuzzIterations; i++ {
			source.Clear()

			var err error

			// NEWOP: add a new branch here in alphabetical order if a new
			// op is added.
			switch op {
			case fuzzAbs:
				err = fuzzImpl.Abs()
			case fuzzAdd:
				err = fuzzImpl.Add()
			case fuzzAnd:
				err = fuzzImpl.And()
			case fuzzAsFloat64:
				err = fuzzImpl.AsFloat64()
			case fuzzCmp:
				err = fuzzImpl.Cmp()
			case fuzzDivMod:
				err = fuzzImpl.DivMod()
			case fuzzEqual:
				err = fuzzImpl.Equal()
			case fuzzFromFloat64:
				err = fuzzImpl.FromFloat64()
			case fuzzHash:
				err = fuzzImpl.Hash()
			case fuzzLsh:
				err = fuzzImpl.Lsh()
			case fuzzMul:
				err = fuzzImpl.Mul()
			case fuzzNeg:
				err = fuzzImpl.Neg()
			case fuzzOr:
				err = fuzzImpl.Or()
			case fuzzPowMod:
				err = fuzzImpl.PowMod()
			case fuzzQuo:
				err = fuzzImpl.Quo()
			case fuzzRsh:
				err = fuzzImpl.Rsh()
			case fuzzString:
				err = fuzzImpl.String()
			case fuzzSub:
				err = fuzzImpl.Sub()
			case fuzzXor:
				err = fuzzImpl.Xor()
			default:
				panic(fmt.Errorf("unsupported op %q", op))
			}

			if err != nil {
				failures[opIdx]++
				t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
			}
		}
	}

	for opIdx, cnt := range failures {
		if cnt > 0 {
			totalFailures += cnt
			t.Logf("op %s: %d/%d failed", string(runFuzzOps[opIdx]), cnt, fuzzIterations)
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Rat) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzAsFloat64,
		fuzzFromFloat64,
		fuzzHash,
		fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%s)", s, operands[0].RatString())

	case fuzzNeg:
		return fmt.Sprintf("%s%s", op.String(), operands[0].RatString())

	case fuzzAbs:
		return fmt.Sprintf("|%s|", operands[0].RatString())

	case fuzzPowMod:
		return fmt.Sprintf("%s ** %s mod %s", operands[0].RatString(), operands[1].RatString(), operands[2].RatString())

	case fuzzAdd,
		fuzzAnd,
		fuzzCmp,
		fuzzDivMod,
		fuzzEqual,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzQuo,
		fuzzRsh,
		fuzzSub,
		fuzzXor:

		// simple binary case:
		return fmt.Sprintf("%s %s %s", operands[0].RatString(), op.String(), operands[1].RatString())

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAbs:
		return "|x|"
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzAsFloat64:
		return "float64()"
	case fuzzCmp:
		return "<=>"
	case fuzzDivMod:
		return "divmod"
	case fuzzEqual:
		return "=="
	case fuzzFromFloat64:
		return "fromfloat64()"
	case fuzzHash:
		return "hash()"
	case fuzzLsh:
		return "<<"
	case fuzzMul:
		return "*"
	case fuzzNeg:
		return "-"
	case fuzzOr:
		return "|"
	case fuzzPowMod:
		return "powmod"
	case fuzzQuo:
		return "/"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

type fuzzFloat struct {
	source *rando
}

func (f fuzzFloat) Abs() error {
	x := f.source.Float()
	rb := new(big.Rat).Abs(x.AsBigRat())
	return checkEqualRat(x.Abs(), rb)
}

func (f fuzzFloat) Neg() error {
	x := f.source.Float()
	rb := new(big.Rat).Neg(x.AsBigRat())
	return checkEqualRat(x.Neg(), rb)
}

func (f fuzzFloat) Add() error {
	x, y := f.source.Floatx2()
	rb := new(big.Rat).Add(x.AsBigRat(), y.AsBigRat())
	return checkEqualRat(x.Add(y), rb)
}

func (f fuzzFloat) Sub() error {
	x, y := f.source.Floatx2()
	rb := new(big.Rat).Sub(x.AsBigRat(), y.AsBigRat())
	return checkEqualRat(x.Sub(y), rb)
}

func (f fuzzFloat) Mul() error {
	x, y := f.source.Floatx2()
	rb := new(big.Rat).Mul(x.AsBigRat(), y.AsBigRat())
	return checkEqualRat(x.Mul(y), rb)
}

func (f fuzzFloat) Quo() error {
	x, y := f.source.Floatx2()
	if y.IsZero() {
		return nil
	}
	const prec = 96
	rb := ratTrunc(new(big.Rat).Quo(x.AsBigRat(), y.AsBigRat()), prec)
	return checkEqualRat(x.QuoPrec(y, prec), rb)
}

func (f fuzzFloat) DivMod() error {
	x, y := f.source.Floatx2()
	if y.IsZero() {
		return nil
	}
	xb, yb := x.AsBigRat(), y.AsBigRat()

	// q = sign(y) * floor(x / |y|), r = x - y*q
	qb := ratFloor(new(big.Rat).Quo(xb, new(big.Rat).Abs(yb)))
	if yb.Sign() < 0 {
		qb.Neg(qb)
	}
	qr := new(big.Rat).SetInt(qb)
	rr := new(big.Rat).Sub(xb, new(big.Rat).Mul(yb, qr))

	q, r := x.DivMod(y)
	if err := checkEqualRat(q, qr); err != nil {
		return fmt.Errorf("quotient: %w", err)
	}
	if err := checkEqualRat(r, rr); err != nil {
		return fmt.Errorf("remainder: %w", err)
	}
	return nil
}

func (f fuzzFloat) PowMod() error {
	x := f.source.Int()
	e := i64(int64(f.source.Intn(1 << 20)))
	m := f.source.value(1, 0)
	if m.abs().cmp(i64(2)) < 0 {
		return nil
	}
	rb := new(big.Int).Exp(x.AsBigInt(), e.AsBigInt(), m.AsBigInt())
	return checkEqualRat(x.PowMod(e, m), new(big.Rat).SetInt(rb))
}

func (f fuzzFloat) Cmp() error {
	x, y := f.source.Floatx2()
	return checkEqualInt(x.Cmp(y), x.AsBigRat().Cmp(y.AsBigRat()))
}

func (f fuzzFloat) Equal() error {
	x, y := f.source.Floatx2()
	return checkEqualBool(x.Equal(y), x.AsBigRat().Cmp(y.AsBigRat()) == 0)
}

func (f fuzzFloat) Hash() error {
	x := f.source.Float()
	_, ints, frac := x.Words()
	y := FromWords(x.neg, ints, frac)
	return checkEqualBool(x.Hash() == y.Hash(), true)
}

func (f fuzzFloat) Lsh() error {
	x := f.source.Float()
	by := f.source.Intn(200)
	rb := new(big.Rat).Mul(x.AsBigRat(), new(big.Rat).SetInt(new(big.Int).Lsh(big1, uint(by))))
	return checkEqualRat(x.Lsh(int64(by)), rb)
}

func (f fuzzFloat) Rsh() error {
	x := f.source.Float()
	by := f.source.Intn(200)
	rb := new(big.Rat).Quo(x.AsBigRat(), new(big.Rat).SetInt(new(big.Int).Lsh(big1, uint(by))))
	return checkEqualRat(x.Rsh(int64(by)), rb)
}

func (f fuzzFloat) bitwise(n Number, x, y *Float, op func(z, a, b *big.Int) *big.Int, neg bool) error {
	rb := op(new(big.Int), x.abs().AsBigInt(), y.abs().AsBigInt())
	if neg {
		rb.Neg(rb)
	}
	return checkEqualRat(n, new(big.Rat).SetInt(rb))
}

func (f fuzzFloat) And() error {
	x, y := f.source.Intx2()
	return f.bitwise(x.And(y), x, y, (*big.Int).And, x.neg && y.neg)
}

func (f fuzzFloat) Or() error {
	x, y := f.source.Intx2()
	return f.bitwise(x.Or(y), x, y, (*big.Int).Or, x.neg || y.neg)
}

func (f fuzzFloat) Xor() error {
	x, y := f.source.Intx2()
	return f.bitwise(x.Xor(y), x, y, (*big.Int).Xor, x.neg != y.neg)
}

func (f fuzzFloat) AsFloat64() error {
	x := f.source.Float()
	bf, _ := x.AsBigRat().Float64()
	if got := x.AsFloat64(); got != bf {
		return fmt.Errorf("infnum(%v) != big(%v)", got, bf)
	}
	return nil
}

func (f fuzzFloat) FromFloat64() error {
	v := math.Float64frombits(f.source.Uint64())
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return nil
	}
	rb := new(big.Rat).SetFloat64(v)
	f.source.operands = append(f.source.operands, rb)
	n := FromFloat64(v)
	if err := checkEqualRat(n, rb); err != nil {
		return err
	}
	if back := n.AsFloat64(); back != v {
		return fmt.Errorf("round trip %v != %v", back, v)
	}
	return nil
}

func (f fuzzFloat) String() error {
	x := f.source.Float()
	return checkEqualString(x.String(), ratDecimal(x.AsBigRat()))
}
