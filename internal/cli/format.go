package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-infnum"
	"github.com/spf13/cobra"
)

var radixAlphabets = map[int]infnum.Alphabet{
	2:  infnum.Binary,
	8:  infnum.Octal,
	10: infnum.Decimal,
	16: infnum.Hex,
}

func (a *app) fmtCmd() *cobra.Command {
	var radix int
	var digits string
	cmd := &cobra.Command{
		Use:   "fmt <x>",
		Short: "Render a value in another radix",
		Long: `Render a value in radix 2, 8, 10 or 16, or with a custom digit alphabet
given by --digits (the radix is the number of digits).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, ok := radixAlphabets[radix]
			if !ok {
				return fmt.Errorf("unsupported radix %d", radix)
			}
			if digits != "" {
				alpha.Digits = digits
			}
			x, err := a.parse(args[0])
			if err != nil {
				return err
			}
			out, err := render(x, alpha)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 10, "output radix: 2, 8, 10 or 16")
	cmd.Flags().StringVar(&digits, "digits", "", "custom digit alphabet, overrides --radix")
	return cmd
}

// render recovers the panic Render raises for an alphabet with fewer than
// two digits.
func render(x infnum.Number, alpha infnum.Alphabet) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return infnum.Render(x, alpha), nil
}

type dumpedFloat struct {
	Neg  bool
	Ints []uint64
	Frac []uint64
}

type dumpedComplex struct {
	Real dumpedFloat
	Imag dumpedFloat
}

func dumpFloat(f *infnum.Float) dumpedFloat {
	neg, ints, frac := f.Words()
	return dumpedFloat{Neg: neg, Ints: ints, Frac: frac}
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <x>",
		Short: "Show the sign and word runs of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0])
			if err != nil {
				return err
			}

			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
			out := cmd.OutOrStdout()
			switch v := x.(type) {
			case *infnum.Float:
				cfg.Fdump(out, dumpFloat(v))
			case *infnum.Complex:
				cfg.Fdump(out, dumpedComplex{Real: dumpFloat(v.Real()), Imag: dumpFloat(v.Imag())})
			default:
				cfg.Fdump(out, x)
			}
			return nil
		},
	}
}
