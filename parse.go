package infnum

import (
	"fmt"
	"math/big"
	"strings"
)

// FromString parses s using the default context. See Context.FromString.
func FromString(s string) (Number, error) { return std.FromString(s) }

// FromString parses an optionally signed number with an optional 0x, 0o or
// 0b prefix and an optional fractional part, e.g. "-12.5", "0xFF.8" or
// "0b101". It also accepts "NaN", "∞", "-∞", "Inf" and "-Inf" in any case.
//
// Hexadecimal, octal and binary fractions are exact. Decimal fractions are
// exact when they terminate in binary within the context's precision and
// truncated toward zero otherwise.
func (c *Context) FromString(s string) (Number, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case "nan":
		return NaN, nil
	case "∞", "+∞", "inf", "+inf", "infinity", "+infinity":
		return PosInf, nil
	case "-∞", "-inf", "-infinity":
		return NegInf, nil
	}

	neg := false
	if in != "" && (in[0] == '-' || in[0] == '+') {
		neg = in[0] == '-'
		in = in[1:]
	}

	base, bitsPerDigit := 10, 0
	if len(in) > 2 && in[0] == '0' {
		switch in[1] {
		case 'x', 'X':
			base, bitsPerDigit = 16, 4
		case 'o', 'O':
			base, bitsPerDigit = 8, 3
		case 'b', 'B':
			base, bitsPerDigit = 2, 1
		}
		if bitsPerDigit != 0 {
			in = in[2:]
		}
	}

	intPart, fracPart, _ := strings.Cut(in, ".")
	if (intPart == "" && fracPart == "") || strings.ContainsAny(in, "+-_") {
		return nil, fmt.Errorf("infnum: invalid number %q", s)
	}

	out := Zero
	if intPart != "" {
		v, ok := new(big.Int).SetString(intPart, base)
		if !ok {
			return nil, fmt.Errorf("infnum: invalid number %q", s)
		}
		out = FromBigInt(v)
	}

	if fracPart != "" {
		v, ok := new(big.Int).SetString(fracPart, base)
		if !ok {
			return nil, fmt.Errorf("infnum: invalid fraction in %q", s)
		}
		f := FromBigInt(v)
		if bitsPerDigit != 0 {
			f = f.lsh(-int64(bitsPerDigit * len(fracPart)))
		} else {
			den := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(len(fracPart))), nil)
			f = f.quo(FromBigInt(den), c.cfg.Precision)
		}
		out = out.add(f)
	}

	if neg {
		return out.negate(), nil
	}
	return out, nil
}
