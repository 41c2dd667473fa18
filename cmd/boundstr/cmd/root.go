package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/boundstr/foundation/core/config"
	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
	"github.com/msto63/boundstr/foundation/utils/bufx"
	"github.com/msto63/boundstr/pkg/core/logging"
)

// app is the state shared by all commands of one invocation
type app struct {
	cfgFile  string
	verbose  bool
	capacity int
	strict   bool
	length   bool

	settings   *config.Settings
	configPath string
	logger     *logging.Logger
}

// Execute runs the command line
func Execute() error {
	rootCmd, a := newRootCommand()
	err := rootCmd.Execute()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	return err
}

// newRootCommand builds the boundstr command tree. The logger opened while
// running it is released by app.teardown.
func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "boundstr",
		Short: "Bounded string toolkit",
		Long: `boundstr runs the bounded string operations against a fixed size buffer.

Every result is cut to the buffer capacity minus one byte and always
terminated. A truncated result is reported on the log, or as an error
with --strict.

The buffer capacity comes from --capacity, the buffer.capacity setting
or BOUNDSTR_BUFFER_CAPACITY, in that order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: search ./boundstr.toml, user config dir, /etc/boundstr)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.IntVarP(&a.capacity, "capacity", "n", 0, "buffer capacity in bytes (default: buffer.capacity)")
	flags.BoolVar(&a.strict, "strict", false, "fail when a result is truncated")
	flags.BoolVarP(&a.length, "length", "l", false, "print the would-be length after the result")

	rootCmd.AddCommand(
		newCopyCommand(a),
		newCatCommand(a),
		newPrintfCommand(a),
		newReplaceCommand(a),
		newSplitCommand(a),
		newTrimCommand(a),
		newParseCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)
	addFileCommand(rootCmd, a)

	return rootCmd, a
}

// setup loads the settings and opens the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.settings, err = config.Load(a.cfgFile)
		a.configPath = a.cfgFile
	} else {
		a.settings, a.configPath, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(a.settings.Log, logging.Options{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Verbose: a.verbose,
	})
	if err != nil {
		return fmt.Errorf("log error: %w", err)
	}
	a.logger = logger
	a.logger.Logger = logger.WithCorrelationID(uuid.NewString())

	if a.configPath != "" {
		a.logger.Debug("configuration loaded", logging.KV("path", a.configPath))
	}
	return nil
}

func (a *app) teardown() error {
	if a.logger == nil {
		return nil
	}
	err := a.logger.Close()
	a.logger = nil
	return err
}

// buffer allocates the destination buffer of a command
func (a *app) buffer() ([]byte, error) {
	n := a.capacity
	if n == 0 {
		n = a.settings.Buffer.Capacity
	}
	if n < 1 || n > config.MaxBufferCapacity {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleBufx, "capacity", n,
			fmt.Sprintf("between 1 and %d", config.MaxBufferCapacity))
	}
	return make([]byte, n), nil
}

// emit prints the buffer content and reports truncation of the would-be
// length n
func (a *app) emit(cmd *cobra.Command, buf []byte, n int) error {
	a.print(cmd, buf, n)
	return a.checkTruncated(cmd.Name(), buf, n)
}

func (a *app) print(cmd *cobra.Command, content []byte, n int) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bufx.String(content))
	if a.length {
		fmt.Fprintln(out, n)
	}
}

func (a *app) checkTruncated(op string, buf []byte, n int) error {
	if !bufx.Truncated(n, len(buf)) {
		return nil
	}
	err := mdwerrors.Truncated(mdwerrors.ModuleBufx, op, n, len(buf))
	if a.strict {
		return err
	}
	a.logger.Warn("result truncated", logging.KV("op", op, "needed", n, "capacity", len(buf)))
	return nil
}

// truncatedLength returns the would-be length carried by a TRUNCATED error
func truncatedLength(err error) (int, bool) {
	var e *mdwerror.Error
	if !errors.As(err, &e) || e.Code() != mdwerror.CodeTruncated {
		return 0, false
	}
	v, _ := e.Detail("needed")
	n, ok := v.(int)
	return n, ok
}
