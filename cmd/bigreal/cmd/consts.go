package cmd

import (
	"github.com/db47h/bigreal/math"
	"github.com/spf13/cobra"
)

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Print π",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFloat(cmd, math.Pi(bc, bc.New()))
	},
}

var eulerCmd = &cobra.Command{
	Use:   "euler",
	Short: "Print the Euler-Mascheroni constant γ",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFloat(cmd, math.Euler(bc, bc.New()))
	},
}

var ln2Cmd = &cobra.Command{
	Use:   "ln2",
	Short: "Print log(2)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFloat(cmd, math.Ln2(bc, bc.New()))
	},
}

func init() {
	rootCmd.AddCommand(piCmd, eulerCmd, ln2Cmd)
}
