package infnum

// quoRemMag returns the integer quotient and the remainder of |a| / |b|.
// b must not be zero.
//
// Each round estimates the rest of the quotient from b's leading 64 bits,
// rounded up so the estimate never overshoots, accumulates it and
// subtracts its multiple of b from the remainder. When rounding up
// overflows the word, the estimate falls back to floor(r >> (p+1)), where
// p is b's highest set bit. Once the estimate reaches zero r < 2b, and a
// single correction finishes the job.
func quoRemMag(a, b *Float) (q, r *Float) {
	a, b = a.abs(), b.abs()

	if a.IsInteger() && b.IsInteger() && len(b.ints) == 1 {
		qw, rw := divVW(a.ints, b.ints[0])
		return mk(false, qw, nil), mk(false, []uint64{rw}, nil)
	}

	p, _ := highBit(b.ints, b.frac)
	shift := p - (wordBits - 1)
	top := b.lsh(-shift) // in [2^63, 2^64)
	d := top.ints[len(top.ints)-1]
	if len(top.frac) != 0 {
		d++ // 0 now stands for 2^64
	}

	q, r = Zero, a
	for !r.IsZero() {
		rt := r.lsh(-shift).floor()
		var est *Float
		if d == 0 {
			est = rt.lsh(-wordBits).floor()
		} else {
			qw, _ := divVW(rt.ints, d)
			est = mk(false, qw, nil)
		}
		if est.IsZero() {
			break
		}
		q = q.add(est)
		r = r.sub(est.mul(b))
	}
	if r.cmp(b) >= 0 {
		r = r.sub(b)
		q = q.add(One)
	}
	return q, r
}

// quo returns x/y truncated toward zero to prec fractional bits.
func (x *Float) quo(y *Float, prec uint) *Float {
	if y.IsZero() {
		raiseArith("quo", "division by zero")
	}
	if x.IsZero() {
		return Zero
	}
	q, _ := quoRemMag(x.lsh(int64(prec)), y)
	q = q.lsh(-int64(prec))
	if q.IsZero() {
		return Zero
	}
	if x.neg != y.neg {
		return q.negate()
	}
	return q
}

// divMod is Euclidean division: x == y*q + r with 0 <= r < |y|.
func (x *Float) divMod(y *Float) (q, r *Float) {
	if y.IsZero() {
		raiseArith("divmod", "division by zero")
	}
	q, r = quoRemMag(x, y)
	if x.neg && !r.IsZero() {
		q = q.add(One)
		r = y.abs().sub(r)
	}
	if x.neg != y.neg && !q.IsZero() {
		q = q.negate()
	}
	return q, r
}

func (x *Float) mod(y *Float) *Float {
	if y.IsZero() {
		raiseArith("mod", "division by zero")
	}
	if !x.neg && x.IsInteger() && y.IsInteger() && popcountV(y.ints) == 1 {
		mask, _ := subMag(y.ints, nil, []uint64{1}, nil)
		return x.bitwise(mk(false, mask, nil), andVV, false)
	}
	_, r := x.divMod(y)
	return r
}

// FloorDiv returns the Euclidean quotient, which is the floor of x/n when
// n is positive.
func (x *Float) FloorDiv(n Number) Number {
	switch y := n.(type) {
	case *Float:
		q, _ := x.divMod(y)
		return q
	case Infinity:
		return Zero
	default:
		return NaN
	}
}

func (x *Float) Mod(n Number) Number {
	switch y := n.(type) {
	case *Float:
		return x.mod(y)
	case Infinity:
		return x
	default:
		return NaN
	}
}

func (x *Float) DivMod(n Number) (q, r Number) {
	switch y := n.(type) {
	case *Float:
		return x.divMod(y)
	case Infinity:
		return Zero, x
	default:
		return NaN, NaN
	}
}

// powMod computes x^e mod m by square-and-multiply, scanning e from its
// least significant bit. When any input is not an integer, or e is
// negative, it falls back to Pow(e).Mod(m).
func powMod(x *Float, e, m Number) Number {
	ef, eok := e.(*Float)
	mf, mok := m.(*Float)
	if !eok || !mok {
		if e.IsNaN() || m.IsNaN() {
			return NaN
		}
		return x.Pow(e).Mod(m)
	}
	if mf.IsZero() {
		raiseArith("powmod", "zero modulus")
	}
	if !x.IsInteger() || !ef.IsInteger() || !mf.IsInteger() || ef.Sign() < 0 {
		return x.Pow(ef).Mod(mf)
	}

	result := One
	base := x.mod(mf)
	for !ef.IsZero() {
		if ef.ints[len(ef.ints)-1]&1 == 1 {
			result = result.mul(base).mod(mf)
		}
		ef = ef.lsh(-1).floor()
		if !ef.IsZero() {
			base = base.mul(base).mod(mf)
		}
	}
	return result.mod(mf)
}
