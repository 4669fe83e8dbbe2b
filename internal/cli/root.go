// Package cli implements the infnum command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/shabbyrobe/go-infnum"
	"github.com/shabbyrobe/go-infnum/internal/config"
	"github.com/shabbyrobe/go-infnum/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0-dev"

// app carries the state shared by every subcommand. It is populated by the
// root command's PersistentPreRunE once flags have been parsed.
type app struct {
	configFile string
	debug      bool

	log *logging.Logger
	ctx *infnum.Context
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "infnum",
		Short: "Arbitrary precision arithmetic on the command line",
		Long: `infnum evaluates arithmetic on arbitrary precision binary numbers,
including NaN, the infinities and complex results. Inexact operations are
truncated to a configurable number of fractional bits.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "conf", "", "configuration file path (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		a.evalCmd(),
		a.fnCmd(),
		a.factCmd(),
		a.piCmd(),
		a.sumCmd(),
		a.fmtCmd(),
		a.dumpCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.log = logging.NewDefault()
	if a.debug {
		a.log.SetLevel(zapcore.DebugLevel)
	}

	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.log.Debug("loaded config",
		zap.String("file", a.configFile),
		zap.Uint("precision", cfg.Precision),
		zap.Int("taylor_terms", cfg.TaylorTerms),
		zap.Int64("max_factorial", cfg.MaxFactorial))

	a.ctx, err = infnum.NewContext(cfg, infnum.WithLogger(a.log.Logger))
	return err
}

// parse reads a command line operand using the configured precision.
func (a *app) parse(s string) (infnum.Number, error) {
	n, err := a.ctx.FromString(s)
	if err != nil {
		return nil, fmt.Errorf("bad operand: %w", err)
	}
	return n, nil
}

// print computes fn, recovering domain and resource errors, and writes the
// result in decimal.
func (a *app) print(out io.Writer, fn func() infnum.Number) error {
	n, err := a.ctx.Catch(fn)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, n)
	return err
}

// Execute runs the command with os.Args and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
