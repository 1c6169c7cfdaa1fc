// Package cmd implements the bigreal command line interface.
package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/db47h/bigreal/context"
	"github.com/db47h/bigreal/internal/config"
	"github.com/db47h/bigreal/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	precFlag uint
	digits   int
	logLevel string

	bc     *context.Context
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bigreal",
	Short: "Arbitrary precision constants and functions",
	Long: `bigreal evaluates constants and elementary functions with arbitrary
precision, and exercises the checked integer conversions and the complex
literal parser.

The working precision and rounding mode default to BIGREAL_PREC (150 bits)
and BIGREAL_ROUNDING (ToNearestEven), the number of printed digits to
BIGREAL_DIGITS. Diagnostics are logged to stderr at the BIGREAL_LOG_LEVEL
level (warn).

Negative arguments must follow "--":
  bigreal atan -- -0.5`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().UintVarP(&precFlag, "prec", "p", 0, "precision in bits (default: BIGREAL_PREC)")
	rootCmd.PersistentFlags().IntVarP(&digits, "digits", "d", 0, "significant digits to print (default: BIGREAL_DIGITS, 0: shortest exact representation)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default: BIGREAL_LOG_LEVEL)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if precFlag != 0 {
		cfg.Prec = precFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	if digits == 0 {
		if d := config.GetValueOrDefault(config.Prefix+"_DIGITS", ""); d != "" {
			if digits, err = strconv.Atoi(d); err != nil {
				return fmt.Errorf("invalid %s_DIGITS: %w", config.Prefix, err)
			}
		}
	}
	lc := logging.DefaultConfig()
	lc.Level, lc.Development = cfg.LogLevel, cfg.LogDev
	logger, err = logging.New(lc)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	bc = context.New(cfg.Prec, mode).SetLogger(logger)
	logger.Debug("context ready", zap.Uint("prec", bc.Prec()), zap.Stringer("mode", mode))
	return nil
}

// teardown turns a trapped NaN or the first soft failure reported during the
// command into an error.
func teardown(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck
	if err := bc.Err(); err != nil {
		return err
	}
	return bc.Diag()
}

func parseFloat(s string) (*big.Float, error) {
	x, ok := bc.NewString(s)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return x, nil
}

// printResult prints x unless computing it produced a NaN.
func printResult(cmd *cobra.Command, x *big.Float) error {
	if err := bc.Err(); err != nil {
		return err
	}
	printFloat(cmd, x)
	return nil
}

func printFloat(cmd *cobra.Command, x *big.Float) {
	d := digits
	if d <= 0 {
		d = -1
	}
	fmt.Fprintln(cmd.OutOrStdout(), x.Text('g', d))
}
