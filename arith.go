package infnum

import "math/bits"

// This file contains the elementary operations on equal-length, big-endian
// word vectors. Index 0 is the most significant word, so carries and
// borrows travel from the end of the slice towards the start.

// addVV returns x+y. The result is one word longer than the inputs so the
// final carry always has somewhere to go.
func addVV(x, y []uint64) []uint64 {
	z := make([]uint64, len(x)+1)
	var c uint64
	for i := len(x) - 1; i >= 0; i-- {
		z[i+1], c = bits.Add64(x[i], y[i], c)
	}
	z[0] = c
	return z
}

// subVV returns x-y. x must be greater than or equal to y.
func subVV(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))
	var b uint64
	for i := len(x) - 1; i >= 0; i-- {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	if b != 0 {
		panic("infnum: subVV borrow out of the top word")
	}
	return z
}

func cmpVV(x, y []uint64) int {
	for i := range x {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func andVV(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))
	for i := range x {
		z[i] = x[i] & y[i]
	}
	return z
}

func orVV(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))
	for i := range x {
		z[i] = x[i] | y[i]
	}
	return z
}

func xorVV(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))
	for i := range x {
		z[i] = x[i] ^ y[i]
	}
	return z
}

func notV(x []uint64) []uint64 {
	z := make([]uint64, len(x))
	for i := range x {
		z[i] = ^x[i]
	}
	return z
}

// shlVU returns x<<s for 0 <= s < 64, with one extra word at the front to
// hold the bits pushed out of x[0].
func shlVU(x []uint64, s uint) []uint64 {
	z := make([]uint64, len(x)+1)
	if s == 0 {
		copy(z[1:], x)
		return z
	}
	var c uint64
	for i := len(x) - 1; i >= 0; i-- {
		z[i+1] = x[i]<<s | c
		c = x[i] >> (wordBits - s)
	}
	z[0] = c
	return z
}

// popcountV counts the set bits in x.
func popcountV(x []uint64) int {
	n := 0
	for _, w := range x {
		n += bits.OnesCount64(w)
	}
	return n
}

// divVW divides the integer x by the single word d, returning the quotient
// (same length as x) and the remainder.
func divVW(x []uint64, d uint64) (q []uint64, r uint64) {
	q = make([]uint64, len(x))
	for i, w := range x {
		q[i], r = bits.Div64(r, w, d)
	}
	return q, r
}

// mulVW returns x*y with one extra word at the front for the carry.
func mulVW(x []uint64, y uint64) []uint64 {
	z := make([]uint64, len(x)+1)
	var c uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i+1], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	z[0] = c
	return z
}
