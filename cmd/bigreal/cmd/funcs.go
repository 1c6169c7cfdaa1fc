package cmd

import (
	"math/big"

	"github.com/db47h/bigreal/context"
	"github.com/db47h/bigreal/math"
	"github.com/spf13/cobra"
)

// unary returns a command evaluating f at its single argument.
func unary(use, short string, f func(c *context.Context, z, x *big.Float) *big.Float) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <x>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, f(bc, bc.New(), x))
		},
	}
}

var atan2Cmd = &cobra.Command{
	Use:   "atan2 <y> <x>",
	Short: "Print the angle of the point (x, y)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		y, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		x, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		return printResult(cmd, math.Atan2(bc, bc.New(), y, x))
	},
}

func init() {
	rootCmd.AddCommand(
		unary("atan", "Print the arctangent of x", math.Atan),
		unary("asin", "Print the arcsine of x", math.Asin),
		unary("log", "Print the natural logarithm of x", math.Log),
		unary("exp", "Print e**x", math.Exp),
		unary("sqrt", "Print the square root of x", math.Sqrt),
		atan2Cmd,
	)
}
