package infnum

// RandSource is satisfied by *math/rand.Rand and friends.
type RandSource interface {
	Uint64() uint64
}

// RandFloat generates a non-negative value with the given number of
// random integer and fractional words.
func RandFloat(source RandSource, intWords, fracWords int) *Float {
	ints := make([]uint64, intWords)
	for i := range ints {
		ints[i] = source.Uint64()
	}
	frac := make([]uint64, fracWords)
	for i := range frac {
		frac[i] = source.Uint64()
	}
	return mk(false, ints, frac)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Number) Number {
	return Larger(a, b).Sub(Smaller(a, b))
}

// Larger returns the larger of a and b by Cmp; NaN counts as the largest
// value. a is returned when they are equal.
func Larger(a, b Number) Number {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b by Cmp; a is returned when they
// are equal.
func Smaller(a, b Number) Number {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
