package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/boundstr/foundation/core/config"
	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	"github.com/msto63/boundstr/pkg/core/logging"
)

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	configCmd.AddCommand(
		newConfigShowCommand(a),
		newConfigGetCommand(a),
		newConfigPathsCommand(),
		newConfigWatchCommand(a),
	)
	return configCmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long: `Prints the settings after defaults, the config file and BOUNDSTR_*
environment overrides were applied.

Examples:
  boundstr config show
  BOUNDSTR_BUFFER_CAPACITY=64 boundstr config show --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.configPath != "" {
				fmt.Fprintf(out, "# %s\n", a.configPath)
			}
			switch format {
			case "toml":
				return toml.NewEncoder(out).Encode(a.settings)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(a.settings)
			default:
				return fmt.Errorf("unknown format %q, want toml or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")
	return cmd
}

func newConfigGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]...",
		Short: "Print single settings",
		Long: `Prints the value of each key, or every key with its value and
environment variable when no key is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, key := range config.Keys() {
					v, _ := a.settings.Get(key)
					fmt.Fprintf(out, "%s=%q\t(%s)\n", key, v, config.EnvName(config.EnvPrefix, key))
				}
				return nil
			}
			for _, key := range args {
				v, err := a.settings.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}

func newConfigPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List where the config file is searched",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
		},
	}
}

func newConfigWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report every change of the config file",
		Long: `Watches the config file and logs the reloaded settings, or the reason
they could not be loaded, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				return mdwerror.New("no configuration file to watch").
					WithCode(mdwerror.CodeMissingConfig).
					WithOperation("config.watch")
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Notice("watching configuration", logging.KV("path", a.configPath))
			return config.Watch(ctx, a.configPath, func(s *config.Settings, err error) {
				if err != nil {
					a.logger.LogError(err)
					return
				}
				a.settings = s
				a.logger.Info("configuration reloaded", logging.KV(
					"path", a.configPath,
					"buffer.capacity", s.Buffer.Capacity,
					"log.level", s.Log.Level,
				))
			})
		},
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
