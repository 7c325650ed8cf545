// Package cli provides the command-line interface for mloxrules.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/internal/cli/commands"
	"github.com/ccollicutt/mloxrules/pkg/logging"
)

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes mloxrules with args, writing command output to stdout and
// logs and errors to stderr. It returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	g := &commands.Globals{}
	rootCmd := NewRootCommand(g, stderr)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps cobra from printing this itself
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	return g.ExitCode
}

// NewRootCommand creates the root cobra command. Logs are written to logOut.
func NewRootCommand(g *commands.Globals, logOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mloxrules",
		Short: "Manage mlox rule files",
		Long: `mloxrules merges, splits and reports on mlox rule files.

A rule file is divided into sections, each starting with a header comment:

  ; @<mod name> [<author>]

Text before the first header is the file header.`,
		// Unknown subcommands land here instead of failing
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.Verbosity, logOut)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			log.Info().Str("subcommand", args[0]).Msg("unknown subcommand, nothing to do")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.Verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Config file (default: $MLOXRULES_CONFIG or $XDG_CONFIG_HOME/mloxrules/config.yaml)")

	for _, sc := range commands.All() {
		rootCmd.AddCommand(commands.New(sc, g))
	}

	return rootCmd
}
