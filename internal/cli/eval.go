package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shabbyrobe/go-infnum"
	"github.com/spf13/cobra"
)

type binaryOp func(c *infnum.Context, a, b infnum.Number) infnum.Number

var binaryOps = map[string]binaryOp{
	"+":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Add(b) },
	"-":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Sub(b) },
	"*":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Mul(b) },
	"/":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return c.Quo(a, b) },
	"//":  func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.FloorDiv(b) },
	"%":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Mod(b) },
	"**":  func(c *infnum.Context, a, b infnum.Number) infnum.Number { return c.Pow(a, b) },
	"&":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.And(b) },
	"|":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Or(b) },
	"^":   func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Xor(b) },
	"<<":  func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Lsh(shiftCount(b)) },
	">>":  func(c *infnum.Context, a, b infnum.Number) infnum.Number { return a.Rsh(shiftCount(b)) },
	"cmp": func(c *infnum.Context, a, b infnum.Number) infnum.Number { return c.FromInt64(int64(a.Cmp(b))) },
}

func opNames() string {
	names := make([]string, 0, len(binaryOps)+1)
	for k := range binaryOps {
		names = append(names, k)
	}
	names = append(names, "powmod")
	sort.Strings(names)
	return strings.Join(names, " ")
}

// shiftCount panics with an ArithmeticError, which the caller's Catch turns
// into an error, if b is not an int64.
func shiftCount(b infnum.Number) int64 {
	f, ok := b.(*infnum.Float)
	if !ok || !f.IsInt64() {
		panic(infnum.ArithmeticError{Op: "shift", Msg: fmt.Sprintf("shift count %s is not an int64", b)})
	}
	return f.AsInt64()
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b> [m]",
		Short: "Evaluate a binary operation",
		Long: "Evaluate a binary operation. Operators: " + opNames() + `.
powmod takes a fourth operand, the modulus. Shell metacharacters such as
'*' and '<<' need quoting.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0])
			if err != nil {
				return err
			}
			y, err := a.parse(args[2])
			if err != nil {
				return err
			}

			op := args[1]
			if op == "powmod" {
				if len(args) != 4 {
					return fmt.Errorf("powmod needs a modulus")
				}
				m, err := a.parse(args[3])
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), func() infnum.Number { return x.PowMod(y, m) })
			}

			fn, ok := binaryOps[op]
			if !ok {
				return fmt.Errorf("unknown operator %q, expected one of: %s", op, opNames())
			}
			if len(args) != 3 {
				return fmt.Errorf("operator %q takes two operands", op)
			}
			return a.print(cmd.OutOrStdout(), func() infnum.Number { return fn(a.ctx, x, y) })
		},
	}
}
