// Package commands implements the mloxrules subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mloxrules/pkg/config"
)

// Subcommand is one of the fixed set of mloxrules commands.
type Subcommand string

const (
	Merge    Subcommand = "merge"
	Split    Subcommand = "split"
	Report   Subcommand = "report"
	Validate Subcommand = "validate"
	Version  Subcommand = "version"
)

// All lists every subcommand in help order.
func All() []Subcommand {
	return []Subcommand{Merge, Split, Report, Validate, Version}
}

// Globals carries root flags and run state shared by all subcommands.
type Globals struct {
	// Verbosity is the number of -v flags given.
	Verbosity int

	// ConfigPath is the --config flag value.
	ConfigPath string

	// ExitCode is set by commands to report a non-error failure.
	ExitCode int

	cfg *config.Config
}

// Config resolves the configuration once per run.
func (g *Globals) Config(ctx context.Context) (*config.Config, error) {
	if g.cfg != nil {
		return g.cfg, nil
	}
	cfg, _, err := config.Resolve(ctx, g.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	g.cfg = cfg
	return cfg, nil
}

// New builds the cobra command for sc.
func New(sc Subcommand, g *Globals) *cobra.Command {
	switch sc {
	case Merge:
		return NewMergeCommand(g)
	case Split:
		return NewSplitCommand(g)
	case Report:
		return NewReportCommand(g)
	case Validate:
		return NewValidateCommand()
	case Version:
		return NewVersionCommand()
	default:
		panic(fmt.Sprintf("commands: no constructor for subcommand %q", sc))
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
