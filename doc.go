/*
Package infnum provides arbitrary-precision signed binary numbers: finite
values with exact integer and binary-fractional parts (*Float), NaN,
positive and negative infinity, and a complex extension (*Complex). All of
them implement Number.

Numbers are immutable; all operations return new values.

Simple example:

	a := infnum.FromInt64(7)
	b := infnum.FromInt64(2)
	fmt.Println(a.FloorDiv(b), a.Mod(b), a.Neg().Mod(b))
	// Output: 3 1 1

Addition, subtraction, multiplication, shifts, bitwise operations and
Euclidean division are exact. Quo, Log, Exp and non-integer Pow are
truncated to a precision in fractional bits taken from a Context; the
package-level functions and Number methods use the default context.

Numbers can be created from a variety of sources:

	FromInt64(v int64) *Float
	FromUint64(v uint64) *Float
	FromFloat64(f float64) Number
	FromWords(neg bool, ints, frac []uint64) *Float
	FromBigInt(v *big.Int) *Float
	FromBigRat(v *big.Rat, prec uint) *Float
	FromString(s string) (Number, error)

Numbers support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- encoding.TextMarshaler

Use Value to unmarshal from JSON or text.

Domain errors (division by zero) and oversized results panic with
ArithmeticError and ResourceExhaustedError respectively; Catch turns those
panics back into errors at an API boundary.
*/
package infnum
