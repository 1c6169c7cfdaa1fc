package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/bigreal"
	"github.com/spf13/cobra"
)

var complexCmd = &cobra.Command{
	Use:   "complex [literal...]",
	Short: "Parse complex literals",
	Long: `Parse complex literals of the form (re,im), (re) or re from the arguments,
or from the standard input if there are none, and print them back as (re,im).
Parsing stops at the first malformed literal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if len(args) > 0 {
			r = strings.NewReader(strings.Join(args, " "))
		}
		d := digits
		if d <= 0 {
			d = -1
		}
		s := bigreal.NewScanner(bc, r)
		var z bigreal.Complex
		for s.Scan(&z) == nil {
			fmt.Fprintln(cmd.OutOrStdout(), z.Text('g', d))
		}
		if s.Failed() {
			return s.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(complexCmd)
}
