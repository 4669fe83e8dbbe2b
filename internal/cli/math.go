package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-infnum"
	"github.com/spf13/cobra"
)

var unaryFns = map[string]func(c *infnum.Context, x infnum.Number) infnum.Number{
	"exp":   func(c *infnum.Context, x infnum.Number) infnum.Number { return c.Exp(x) },
	"log":   func(c *infnum.Context, x infnum.Number) infnum.Number { return c.Log(x) },
	"floor": func(c *infnum.Context, x infnum.Number) infnum.Number { return x.Floor() },
	"ceil":  func(c *infnum.Context, x infnum.Number) infnum.Number { return x.Ceil() },
	"round": func(c *infnum.Context, x infnum.Number) infnum.Number { return x.Round() },
	"neg":   func(c *infnum.Context, x infnum.Number) infnum.Number { return x.Neg() },
	"abs":   func(c *infnum.Context, x infnum.Number) infnum.Number { return c.Abs(x) },
	"not":   func(c *infnum.Context, x infnum.Number) infnum.Number { return x.Not() },
}

func fnNames() string {
	names := make([]string, 0, len(unaryFns))
	for k := range unaryFns {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func (a *app) fnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fn <name> <x> [digits]",
		Short: "Apply a function to a value",
		Long: "Apply a function to a value. Functions: " + fnNames() + `.
round takes an optional number of decimal digits.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := unaryFns[args[0]]
			if !ok {
				return fmt.Errorf("unknown function %q, expected one of: %s", args[0], fnNames())
			}
			x, err := a.parse(args[1])
			if err != nil {
				return err
			}
			if len(args) == 3 {
				if args[0] != "round" {
					return fmt.Errorf("function %q takes one operand", args[0])
				}
				digits, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("bad digits: %w", err)
				}
				return a.print(cmd.OutOrStdout(), func() infnum.Number { return a.ctx.RoundDigits(x, digits) })
			}
			return a.print(cmd.OutOrStdout(), func() infnum.Number { return fn(a.ctx, x) })
		},
	}
}

func (a *app) factCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact <n>",
		Short: "Compute n!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad operand: %w", err)
			}
			return a.print(cmd.OutOrStdout(), func() infnum.Number { return a.ctx.Factorial(n) })
		},
	}
}

func (a *app) piCmd() *cobra.Command {
	var ln2 bool
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Print pi to the configured precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd.OutOrStdout(), func() infnum.Number {
				if ln2 {
					return a.ctx.Ln2()
				}
				return a.ctx.Pi()
			})
		},
	}
	cmd.Flags().BoolVar(&ln2, "ln2", false, "print ln(2) instead")
	return cmd
}

func (a *app) sumCmd() *cobra.Command {
	var product bool
	cmd := &cobra.Command{
		Use:   "sum <from> <to>",
		Short: "Sum the integers in [from, to)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad from: %w", err)
			}
			to, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("bad to: %w", err)
			}
			term := func(i int64) infnum.Number { return a.ctx.FromInt64(i) }
			return a.print(cmd.OutOrStdout(), func() infnum.Number {
				if product {
					return a.ctx.Product(from, to, term)
				}
				return a.ctx.Sum(from, to, term)
			})
		},
	}
	cmd.Flags().BoolVar(&product, "product", false, "multiply instead of adding")
	return cmd
}
