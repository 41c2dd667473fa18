//go:build unix

package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/foundation/utils/bufx"
	"github.com/msto63/boundstr/foundation/utils/filex"
	"github.com/msto63/boundstr/pkg/core/logging"
)

// stdio names the standard streams on the command line
const stdio = "-"

func addFileCommand(root *cobra.Command, a *app) {
	fileCmd := &cobra.Command{
		Use:   "file",
		Short: "Move buffer content to and from files",
	}
	fileCmd.AddCommand(newFileWriteCommand(a), newFileReadCommand(a))
	root.AddCommand(fileCmd)
}

func newFileWriteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write <path|-> <text>",
		Short: "Write text to a file through the buffer",
		Long: `Copies text into the buffer and writes the buffer content to path, which
is created with mode 0644 or truncated. "-" writes to standard output.

Examples:
  boundstr file write out.txt "hello"
  boundstr file write -n 4 - "hello"   # writes "hel"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			n, err := bufx.Copy(buf, args[1])
			if err != nil {
				return err
			}
			if err := a.checkTruncated("write", buf, n); err != nil {
				return err
			}
			content := buf[:bufx.Len(buf)]

			var written int
			if args[0] == stdio {
				written, err = writeStdout(cmd, content)
			} else {
				written, err = filex.WriteFile(args[0], content)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("file written", logging.KV("path", args[0], "bytes", written))
			return nil
		},
	}
}

// writeStdout uses the descriptor directly when the command writes to the
// process stdout and the cobra writer otherwise
func writeStdout(cmd *cobra.Command, p []byte) (int, error) {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return filex.WriteAll(int(f.Fd()), p)
	}
	return cmd.OutOrStdout().Write(p)
}

func newFileReadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <path|->",
		Short: "Read a file into the buffer",
		Long: `Reads up to capacity-1 bytes of path into the buffer and prints the
content up to the first NUL byte. "-" reads standard input.

Examples:
  boundstr file read /etc/hostname
  echo hello | boundstr file read -n 4 -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := a.buffer()
			if err != nil {
				return err
			}
			room := buf[:len(buf)-1]

			var n int
			if args[0] == stdio {
				n, err = readStdin(cmd, room)
			} else {
				n, err = filex.ReadFile(args[0], room)
			}
			if err != nil {
				return err
			}
			buf[n] = bufx.Terminator
			a.logger.Debug("file read", logging.KV("path", args[0], "bytes", n))
			if n == len(room) {
				a.logger.Notice("buffer filled, the file may be longer", logging.KV("capacity", len(buf)))
			}
			a.print(cmd, buf, n)
			return nil
		},
	}
}

func readStdin(cmd *cobra.Command, p []byte) (int, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return filex.ReadAll(int(f.Fd()), p)
	}
	n, err := io.ReadFull(cmd.InOrStdin(), p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return n, err
}
