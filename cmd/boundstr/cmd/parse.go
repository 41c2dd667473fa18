package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/foundation/utils/numx"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		base     int
		dfl      int64
		unsigned bool
		scan     bool
	)

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse an integer with a default",
		Long: `Parses text as an integer. Text that is not a number, or a number out of
range, yields the default. With --scan the clamped value, the end of the
number and the error are printed instead.

Base 0 detects 0x hex and 0 octal prefixes.

Examples:
  boundstr parse 42
  boundstr parse --base 16 --default -1 zz
  boundstr parse --scan "  123abc"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base") {
				base = a.settings.Parse.Base
			}
			if !cmd.Flags().Changed("default") {
				dfl = a.settings.Parse.Default
			}
			out := cmd.OutOrStdout()
			s := args[0]

			if scan {
				var (
					value interface{}
					end   int
					err   error
				)
				if unsigned {
					value, end, err = numx.ScanUint(s, base, 64)
				} else {
					value, end, err = numx.Scan(s, base, 64)
				}
				fmt.Fprintf(out, "value=%v end=%d", value, end)
				if err != nil {
					fmt.Fprintf(out, " error=%q", err.Error())
				}
				fmt.Fprintln(out)
				return nil
			}

			if unsigned {
				udfl := uint64(0)
				if dfl > 0 {
					udfl = uint64(dfl)
				}
				fmt.Fprintln(out, numx.Uint64(s, base, udfl))
				return nil
			}
			fmt.Fprintln(out, numx.Int64(s, base, dfl))
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 10, "number base, 0 or 2..36 (default: parse.base)")
	cmd.Flags().Int64Var(&dfl, "default", 0, "value used when text is not a number (default: parse.default)")
	cmd.Flags().BoolVarP(&unsigned, "unsigned", "u", false, "parse an unsigned 64 bit integer")
	cmd.Flags().BoolVar(&scan, "scan", false, "print value, end position and error")
	return cmd
}
