package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an mloxrules configuration file (YAML, or TOML for .toml files).

Checks:
  - YAML/TOML syntax
  - line_ending, split.extension and report.format values
  - Webhook URLs and triggers`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Line ending:     %s\n", cfg.LineEnding)
	fmt.Fprintf(out, "  Split extension: %s\n", cfg.Split.Extension)
	fmt.Fprintf(out, "  Report format:   %s\n", cfg.Report.Format)
	fmt.Fprintf(out, "  Webhooks:        %d\n", len(cfg.Webhooks))

	for i, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}
		fmt.Fprintf(out, "    %d. %s (%s)\n", i+1, name, wh.Trigger)
	}

	return nil
}
