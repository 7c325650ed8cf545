package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/pkg/analyzer"
	"github.com/ccollicutt/mloxrules/pkg/config"
	"github.com/ccollicutt/mloxrules/pkg/output"
	"github.com/ccollicutt/mloxrules/pkg/webhook"
)

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	Sections bool
	Output   string
	Quiet    bool
	Strict   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewReportCommand creates the report command.
func NewReportCommand(g *Globals) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report <rule_file>",
		Short: "Examine and report on an mlox rule file",
		Long: `Examine an mlox rule file and report:

  - whether the file has a header
  - the number of mod sections found
  - whether the mod sections are sorted alphabetically (case-insensitive)
  - the mod sections that appear more than once, with their line numbers

With --sections the section keys are also listed in the order they appear.

Exit codes:
  0 - Report produced
  1 - --strict was given and sections are unsorted or duplicated
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts, g)
		},
	}

	cmd.Flags().BoolVarP(&opts.Sections, "sections", "s", false, "Print file sections in the order they appear")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with status 1 when sections are unsorted or duplicated")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", string(config.WebhookTriggerOnIssues), "When to fire webhook (on_issues|always|never)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *ReportOptions, g *Globals) error {
	ruleFile := args[0]
	ctx := commandContext(cmd)

	cfg, err := g.Config(ctx)
	if err != nil {
		return err
	}

	hooks, err := collectWebhooks(cfg, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := analyzer.AnalyzeFile(ctx, ruleFile)
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	withSections := opts.Sections || cfg.Report.Sections
	report := output.NewReport(stats, ruleFile, withSections)
	report.Metadata.Duration = time.Since(start)

	format := opts.Output
	if format == "" {
		format = string(cfg.Report.Format)
	}
	formatter, err := output.NewFormatter(format, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if len(hooks) > 0 {
		webhook.Dispatch(ctx, webhook.NewClient(), hooks, report)
	}

	if opts.Strict && report.HasIssues() {
		g.ExitCode = 1
	}

	return nil
}

// collectWebhooks merges config file webhooks with the --webhook-url one.
// The flag webhook is validated like a configured one.
func collectWebhooks(cfg *config.Config, opts *ReportOptions) ([]config.WebhookConfig, error) {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		wh := config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
		}
		if err := config.ValidateWebhook(&wh); err != nil {
			return nil, fmt.Errorf("invalid --webhook-* flags: %w", err)
		}
		webhooks = append(webhooks, wh)
	}

	return webhooks, nil
}
