package infnum

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Alphabet controls how Render writes a value. The radix is the number of
// runes in Digits.
type Alphabet struct {
	Digits string
	Point  string
	Neg    string
	Pos    string
}

var (
	Binary   = Alphabet{Digits: "01", Point: ".", Neg: "-"}
	Octal    = Alphabet{Digits: "01234567", Point: ".", Neg: "-"}
	Decimal  = Alphabet{Digits: "0123456789", Point: ".", Neg: "-"}
	Hex      = Alphabet{Digits: "0123456789ABCDEF", Point: ".", Neg: "-"}
	LowerHex = Alphabet{Digits: "0123456789abcdef", Point: ".", Neg: "-"}
)

const (
	nanText = "NaN"
	infText = "∞"
)

// Render writes n using the alphabet a. Integer digits come from repeated
// division by the radix; fractional digits from repeatedly multiplying the
// fraction by the radix and taking the integer part, stopping when the
// fraction runs out or after 64 digits per fractional word. The fraction
// is exact for even radices and truncated otherwise.
//
// NaN renders as "NaN" and the infinities as "∞" and "-∞". Complex values
// render as "re+imi".
func Render(n Number, a Alphabet) string {
	switch v := n.(type) {
	case *Float:
		return signText(v.Sign(), a) + renderMag(v, a)
	case *Complex:
		sep := "+"
		if v.im.Sign() < 0 {
			sep = a.Neg
		}
		return signText(v.re.Sign(), a) + renderMag(v.re, a) + sep + renderMag(v.im, a) + "i"
	case Infinity:
		return signText(v.Sign(), a) + infText
	default:
		return nanText
	}
}

func signText(sign int, a Alphabet) string {
	if sign < 0 {
		return a.Neg
	} else if sign > 0 {
		return a.Pos
	}
	return ""
}

// renderMag renders |x|.
func renderMag(x *Float, a Alphabet) string {
	digits := []rune(a.Digits)
	if len(digits) < 2 {
		panic(fmt.Errorf("infnum: alphabet %q needs at least two digits", a.Digits))
	}
	radix := uint64(len(digits))

	var ibuf []rune
	for ip := x.ints; !isZeroWords(ip, nil); {
		q, r := divVW(ip, radix)
		ibuf = append(ibuf, digits[r])
		ip = trimInt(q)
	}
	if len(ibuf) == 0 {
		ibuf = append(ibuf, digits[0])
	}

	var sb strings.Builder
	sb.Grow(len(ibuf) + len(x.frac)*wordBits + len(a.Point))
	for i := len(ibuf) - 1; i >= 0; i-- {
		sb.WriteRune(ibuf[i])
	}

	if len(x.frac) > 0 {
		sb.WriteString(a.Point)

		// Multiplying the fraction by the radix pushes the next digit into
		// the carry word.
		f := x.frac
		for i := 0; i < wordBits*len(x.frac) && len(f) > 0; i++ {
			z := mulVW(f, radix)
			sb.WriteRune(digits[z[0]])
			f = trimFrac(z[1:])
		}
	}
	return sb.String()
}

func (x *Float) String() string { return Render(x, Decimal) }

// Format implements fmt.Formatter. It accepts the verbs 'b', 'o', 'O', 'd',
// 'x', 'X', 's' and 'v', the '#' flag for 0b/0o/0x prefixes, '+' to always
// write a sign, and a width with optional '-' for left alignment.
func (x *Float) Format(s fmt.State, c rune) { formatNumber(x, s, c) }

func (x *Float) MarshalText() ([]byte, error) { return []byte(x.String()), nil }
func (x *Float) MarshalJSON() ([]byte, error) { return []byte(`"` + x.String() + `"`), nil }

func formatNumber(n Number, s fmt.State, c rune) {
	var a Alphabet
	var prefix string
	switch c {
	case 'b':
		a, prefix = Binary, "0b"
	case 'o', 'O':
		a, prefix = Octal, "0o"
	case 'x':
		a, prefix = LowerHex, "0x"
	case 'X':
		a, prefix = Hex, "0X"
	case 'd', 's', 'v':
		a = Decimal
	default:
		fmt.Fprintf(s, "%%!%c(infnum=%s)", c, Render(n, Decimal))
		return
	}
	if s.Flag('+') {
		a.Pos = "+"
	}

	var str string
	if f, ok := n.(*Float); ok && prefix != "" && (s.Flag('#') || c == 'O') {
		str = signText(f.Sign(), a) + prefix + renderMag(f, a)
	} else {
		str = Render(n, a)
	}

	if w, ok := s.Width(); ok {
		if pad := w - utf8.RuneCountInString(str); pad > 0 {
			if s.Flag('-') {
				str += strings.Repeat(" ", pad)
			} else {
				str = strings.Repeat(" ", pad) + str
			}
		}
	}
	_, _ = io.WriteString(s, str)
}

// Value holds a Number so it can be decoded from text or JSON. The zero
// Value holds Zero. A Value is not itself a Number; use Get to operate on
// what it holds.
type Value struct {
	N Number
}

// Get returns the held Number, or Zero if there is none.
func (v Value) Get() Number {
	if v.N == nil {
		return Zero
	}
	return v.N
}

func (v Value) String() string               { return v.Get().String() }
func (v Value) Format(s fmt.State, c rune)   { v.Get().Format(s, c) }
func (v Value) MarshalText() ([]byte, error) { return v.Get().MarshalText() }
func (v Value) MarshalJSON() ([]byte, error) { return v.Get().MarshalJSON() }

func (v *Value) UnmarshalText(bts []byte) (err error) {
	n, err := FromString(string(bts))
	if err != nil {
		return err
	}
	v.N = n
	return nil
}

func (v *Value) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("infnum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return v.UnmarshalText(bts)
}
