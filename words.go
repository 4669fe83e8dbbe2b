package infnum

import (
	"math/bits"
)

// trimInt drops leading zero words from an integer-part word run. The
// result is never empty; a run of zeros collapses to [0].
func trimInt(ws []uint64) []uint64 {
	if len(ws) == 0 {
		return []uint64{0}
	}
	i := 0
	for i < len(ws)-1 && ws[i] == 0 {
		i++
	}
	return ws[i:]
}

// trimFrac drops trailing zero words from a fractional-part word run,
// collapsing to empty.
func trimFrac(ws []uint64) []uint64 {
	n := len(ws)
	for n > 0 && ws[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return ws[:n]
}

func isZeroWords(ints, frac []uint64) bool {
	return len(frac) == 0 && len(ints) == 1 && ints[0] == 0
}

// place lays out ints and frac as a single word run with intLen words
// before the binary point and fracLen words after it.
func place(ints, frac []uint64, intLen, fracLen int) []uint64 {
	z := make([]uint64, intLen+fracLen)
	copy(z[intLen-len(ints):], ints)
	copy(z[intLen:], frac)
	return z
}

// split is the inverse of place; the binary point sits fracLen words from
// the end of z. Both halves are trimmed.
func split(z []uint64, fracLen int) (ints, frac []uint64) {
	at := len(z) - fracLen
	return trimInt(z[:at]), trimFrac(z[at:])
}

// align lays two magnitudes out as equal-length word runs sharing the
// same binary point, so they can be combined word by word.
func align(aInts, aFrac, bInts, bFrac []uint64) (x, y []uint64, fracLen int) {
	intLen := len(aInts)
	if len(bInts) > intLen {
		intLen = len(bInts)
	}
	fracLen = len(aFrac)
	if len(bFrac) > fracLen {
		fracLen = len(bFrac)
	}
	return place(aInts, aFrac, intLen, fracLen), place(bInts, bFrac, intLen, fracLen), fracLen
}

// cmpMag compares two trimmed magnitudes.
func cmpMag(aInts, aFrac, bInts, bFrac []uint64) int {
	if len(aInts) != len(bInts) {
		if len(aInts) > len(bInts) {
			return 1
		}
		return -1
	}
	if c := cmpVV(aInts, bInts); c != 0 {
		return c
	}
	n := len(aFrac)
	if len(bFrac) > n {
		n = len(bFrac)
	}
	for i := 0; i < n; i++ {
		var aw, bw uint64
		if i < len(aFrac) {
			aw = aFrac[i]
		}
		if i < len(bFrac) {
			bw = bFrac[i]
		}
		if aw > bw {
			return 1
		} else if aw < bw {
			return -1
		}
	}
	return 0
}

func addMag(aInts, aFrac, bInts, bFrac []uint64) (ints, frac []uint64) {
	x, y, fl := align(aInts, aFrac, bInts, bFrac)
	return split(addVV(x, y), fl)
}

// subMag returns a-b; a must not be smaller than b.
func subMag(aInts, aFrac, bInts, bFrac []uint64) (ints, frac []uint64) {
	x, y, fl := align(aInts, aFrac, bInts, bFrac)
	return split(subVV(x, y), fl)
}

// shiftWords shifts the combined (ints, frac) representation left by 'by'
// bits; a negative 'by' shifts right. Nothing is lost in either direction:
// bits shifted past the binary point move into the other run.
//
// If either resulting run would be longer than maxWords, a
// ResourceExhaustedError panic occurs.
func shiftWords(ints, frac []uint64, by int64) (outInts, outFrac []uint64) {
	if by == 0 || isZeroWords(ints, frac) {
		return ints, frac
	}

	q, r := by>>6, uint(by&63) // floor division, so r is always 0..63

	src := make([]uint64, 0, len(ints)+len(frac))
	src = append(src, ints...)
	src = append(src, frac...)
	out := shlVU(src, r)

	fracLen := int64(len(frac)) - q
	var pad int64
	if fracLen < 0 {
		pad, fracLen = -fracLen, 0
	}
	total := int64(len(out)) + pad
	var lead int64
	if total-fracLen < 1 {
		lead = 1 - (total - fracLen)
	}
	total += lead

	if fracLen > maxWords {
		raiseResource("fraction words", maxWords, fracLen)
	}
	if total-fracLen > maxWords {
		raiseResource("integer words", maxWords, total-fracLen)
	}

	z := make([]uint64, total)
	copy(z[lead:], out)
	return split(z, int(fracLen))
}

// highBit returns the position p of the most significant set bit, so that
// the magnitude lies in [2^p, 2^(p+1)). Positions below the binary point
// are negative. ok is false for zero.
func highBit(ints, frac []uint64) (p int64, ok bool) {
	if ints[0] != 0 {
		return int64(wordBits*(len(ints)-1) + wordBits - 1 - bits.LeadingZeros64(ints[0])), true
	}
	for j, w := range frac {
		if w != 0 {
			return -int64(wordBits*j + bits.LeadingZeros64(w) + 1), true
		}
	}
	return 0, false
}

// truncFrac keeps only the first n fractional bits.
func truncFrac(frac []uint64, n uint) []uint64 {
	if uint64(len(frac))*wordBits <= uint64(n) {
		return frac
	}
	words := int((n + wordBits - 1) / wordBits)
	out := make([]uint64, words)
	copy(out, frac[:words])
	if rem := n % wordBits; rem != 0 {
		out[words-1] &^= (1 << (wordBits - rem)) - 1
	}
	return trimFrac(out)
}
