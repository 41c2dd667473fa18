package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/foundation/utils/strlist"
	"github.com/msto63/boundstr/pkg/core/logging"
)

func newSplitCommand(a *app) *cobra.Command {
	var (
		delimiter string
		asJSON    bool
		remove    []string
	)

	cmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text into a string list",
		Long: `Splits text at every occurrence of the delimiter and prints one entry per
line. Empty entries are kept. split.max_entries and split.max_bytes bound
the list.

Examples:
  boundstr split "a,b,,c"
  boundstr split --delimiter "::" --json "x::y"
  boundstr split --remove b "a,b,c,b"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delimiter") {
				delimiter = a.settings.Split.Delimiter
			}

			var opts []strlist.Option
			if a.settings.Split.MaxEntries > 0 {
				opts = append(opts, strlist.WithMaxEntries(a.settings.Split.MaxEntries))
			}
			if a.settings.Split.MaxBytes > 0 {
				opts = append(opts, strlist.WithMaxBytes(a.settings.Split.MaxBytes))
			}

			list, err := strlist.Split(args[0], delimiter, opts...)
			if err != nil {
				return err
			}
			for _, value := range remove {
				if removed := list.Remove(value); removed > 0 {
					a.logger.Debug("entries removed", logging.KV("value", value, "count", removed))
				}
			}
			a.logger.Debug("split done", logging.KV("entries", list.Len(), "bytes", list.Size()))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(list.Values())
			}
			for _, entry := range list.All() {
				fmt.Fprintln(out, entry)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "delimiter (default: split.delimiter)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entries as a JSON array")
	cmd.Flags().StringArrayVar(&remove, "remove", nil, "drop every entry equal to this value (repeatable)")
	return cmd
}
