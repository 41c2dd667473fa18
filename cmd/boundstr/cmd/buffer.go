package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/foundation/utils/bufx"
	"github.com/msto63/boundstr/foundation/utils/numx"
	"github.com/msto63/boundstr/foundation/utils/stringx"
)

func newCopyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <text>",
		Short: "Copy text into the buffer",
		Long: `Copies text into an empty buffer, truncating it to the capacity.

Examples:
  boundstr copy "hello world"
  boundstr copy -n 8 -l "hello world"   # prints "hello w" and 11`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			n, err := bufx.Copy(buf, args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd, buf, n)
		},
	}
}

func newCatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <text>...",
		Short: "Append each argument to the buffer",
		Long: `Concatenates the arguments one after another into the buffer.

Examples:
  boundstr cat foo bar baz
  boundstr cat -n 16 12345 12345 12345 12345`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			n := 0
			for _, part := range args {
				if n, err = bufx.Concat(buf, part); err != nil {
					return err
				}
			}
			a.logger.Debugf("concatenated %d parts", len(args))
			return a.emit(cmd, buf, n)
		},
	}
}

func newPrintfCommand(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "printf <format> [arg]...",
		Short: "Format arguments into the buffer",
		Long: `Formats the arguments with Go fmt verbs into the buffer. Arguments that
are whole integers (decimal, 0x hex or 0 octal) are passed as numbers,
everything else as strings.

Examples:
  boundstr printf "%d-%s" 42 abc
  boundstr printf --prefix "id=" "%04x" 255`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			values := formatArgs(args[1:])

			var n int
			if prefix == "" {
				n, err = bufx.Format(buf, args[0], values...)
			} else {
				if _, err = bufx.Copy(buf, prefix); err != nil {
					return err
				}
				n, err = bufx.FormatAppend(buf, args[0], values...)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, buf, n)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "text copied into the buffer before formatting")
	return cmd
}

// formatArgs turns numeric looking arguments into int64 values
func formatArgs(args []string) []interface{} {
	values := make([]interface{}, len(args))
	for i, arg := range args {
		if v, end, err := numx.Scan(arg, 0, 64); err == nil && end == len(arg) {
			values[i] = v
		} else {
			values[i] = arg
		}
	}
	return values
}

func newReplaceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <text> <from> <to>",
		Short: "Replace every occurrence of from with to",
		Long: `Writes text into the buffer with every non-overlapping occurrence of
from replaced by to. An empty from copies the text unchanged.

Examples:
  boundstr replace "a-b-c" - +
  boundstr replace -n 8 "aaaa" a bb`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			err = stringx.Replace(buf, args[0], args[1], args[2])
			if n, ok := truncatedLength(err); ok {
				return a.emit(cmd, buf, n)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, buf, bufx.Len(buf))
		},
	}
}

func newTrimCommand(a *app) *cobra.Command {
	var (
		charset string
		left    bool
		right   bool
	)

	cmd := &cobra.Command{
		Use:   "trim <text>",
		Short: "Strip leading and trailing characters",
		Long: `Copies text into the buffer and strips characters of the charset from
both ends, or only one end with --left or --right.

Examples:
  boundstr trim "  padded  "
  boundstr trim --charset "x" --right "abcxxx"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("charset") {
				charset = a.settings.Trim.Charset
			}
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			n, err := bufx.Copy(buf, args[0])
			if err != nil {
				return err
			}
			if err := a.checkTruncated(cmd.Name(), buf, n); err != nil {
				return err
			}

			var view []byte
			switch {
			case left && !right:
				view = stringx.LTrim(buf, charset)
			case right && !left:
				view = stringx.RTrim(buf, charset)
			default:
				view = stringx.Trim(buf, charset)
			}
			if stringx.IsEmpty(view) {
				a.logger.Debug("nothing left after trimming")
			}
			a.print(cmd, view, bufx.Len(view))
			return nil
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "", "characters to strip (default: trim.charset)")
	cmd.Flags().BoolVar(&left, "left", false, "strip the start only")
	cmd.Flags().BoolVar(&right, "right", false, "strip the end only")
	return cmd
}
