package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/pkg/rulefile"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <base_file> <rule_file>...",
		Short: "Merge mlox rule files",
		Long: `Merge mlox rule files into one base file.

Each rule file argument may be a glob pattern. Matching files are sorted
case-insensitively, trimmed of surrounding whitespace and written to the base
file one after another. The base file is overwritten.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, g)
		},
	}
}

func runMerge(cmd *cobra.Command, args []string, g *Globals) error {
	ctx := commandContext(cmd)

	cfg, err := g.Config(ctx)
	if err != nil {
		return err
	}

	_, err = rulefile.Merge(ctx, args[0], args[1:], rulefile.Options{
		Terminator: cfg.LineEnding.Terminator(),
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}
