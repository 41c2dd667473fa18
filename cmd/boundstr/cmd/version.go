package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/pkg/core/version"
)

func newVersionCommand() *cobra.Command {
	var (
		asJSON bool
		short  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info)
				return nil
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "boundstr v%s\n", info.Version)
			if info.Commit != "" {
				fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			}
			if info.Date != "" {
				fmt.Fprintf(out, "  Build Date: %s\n", info.Date)
			}
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&short, "short", false, "print a single line")
	return cmd
}
