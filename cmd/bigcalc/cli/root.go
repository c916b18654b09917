// Package cli implements the bigcalc commands.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal"
)

// Main returns the root bigcalc command.
func Main() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:          "bigcalc",
		Short:        "Calculator for arbitrary-precision decimals",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			cfg.logger = logger.With("cmd", cmd.Name())
			cfg.logger.Debug("configured", "accuracy", cfg.Accuracy, "config", cfg.file)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfg.registerFlags(rootCmd.PersistentFlags())
	if err := rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "toml", "json"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(evalCmd(cfg))
	rootCmd.AddCommand(invCmd(cfg))
	rootCmd.AddCommand(prettyCmd(cfg))
	rootCmd.AddCommand(cmpCmd(cfg))

	return rootCmd
}

func parseArg(cfg *config, s string) (bigdecimal.Big, error) {
	d, err := bigdecimal.ParseWithAccuracy(s, cfg.Accuracy)
	if err != nil {
		return bigdecimal.Big{}, fmt.Errorf("argument %q: %w", s, err)
	}
	return d, nil
}

func printDecimal(w io.Writer, d bigdecimal.Big, pretty bool) error {
	s := d.String()
	if pretty {
		s = d.Pretty()
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
