package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/pkg/logging"
	"github.com/ccollicutt/mloxrules/pkg/rulefile"
)

// SplitOptions holds command-line options for the split command.
type SplitOptions struct {
	Directory string
}

// NewSplitCommand creates the split command.
func NewSplitCommand(g *Globals) *cobra.Command {
	opts := &SplitOptions{}

	cmd := &cobra.Command{
		Use:   "split <rule_file>",
		Short: "Split an mlox rule file",
		Long: `Split an mlox rule file into one file per section.

Every section key "<mod> [<author>]" is written to a file named after the key
with everything but letters, digits, '.' and '-' removed. Repeated sections
are written to the same file in the order they appear. Text before the first
section goes to _header.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts, g)
		},
	}

	cmd.Flags().StringVarP(&opts.Directory, "directory", "d", "", "Output directory (default: the rule file's directory)")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *SplitOptions, g *Globals) error {
	ctx := commandContext(cmd)
	logger := logging.GetLogger("split")

	cfg, err := g.Config(ctx)
	if err != nil {
		return err
	}

	_, err = rulefile.Split(ctx, args[0], opts.Directory, rulefile.Options{
		Terminator: cfg.LineEnding.Terminator(),
		Extension:  cfg.Split.Extension,
	})
	if errors.Is(err, rulefile.ErrOutputDirNotFound) {
		logger.Warn().Err(err).Msg("specified output directory does not exist")
		return nil
	}
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}
	return nil
}
