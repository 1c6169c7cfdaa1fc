package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/db47h/bigreal"
	"github.com/spf13/cobra"
)

var (
	roundFlag  string
	useFloat64 bool
	intBits    int
)

var longCmd = &cobra.Command{
	Use:   "long <x>",
	Short: "Round x to an int64",
	Long: `Round x to an integer with the rounding mode selected by --round
(nearest, up or down) and convert it to an int64. With --float64, x is parsed
as a float64 first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := bigreal.ParseRoundingMode(roundFlag)
		if err != nil {
			return err
		}
		var (
			v  int64
			ok bool
		)
		if useFloat64 {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			v, ok = bigreal.Int64RoundedFloat64(bc, f, mode)
		} else {
			x, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			v, ok = bigreal.Int64Rounded(bc, x, mode)
		}
		if !ok {
			return bc.Diag()
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var intCmd = &cobra.Command{
	Use:   "int <n>",
	Short: "Convert an integer to an int32 or int64",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, ok := new(big.Int).SetString(args[0], 0)
		if !ok {
			return fmt.Errorf("invalid integer %q", args[0])
		}
		var v int64
		switch intBits {
		case 32:
			var i int32
			i, ok = bigreal.Int32(bc, x)
			v = int64(i)
		case 64:
			v, ok = bigreal.Int64(bc, x)
		default:
			return fmt.Errorf("invalid integer size %d", intBits)
		}
		if !ok {
			return bc.Diag()
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(longCmd, intCmd)

	longCmd.Flags().StringVarP(&roundFlag, "round", "r", "nearest", "rounding mode: nearest, up or down")
	longCmd.Flags().BoolVar(&useFloat64, "float64", false, "parse x as a float64")
	intCmd.Flags().IntVarP(&intBits, "bits", "b", 64, "integer size: 32 or 64")
}
