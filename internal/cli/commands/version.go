package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildVersion is set via ldflags at build time.
var BuildVersion = "dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version of mloxrules.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mloxrules %s\n", BuildVersion)
		},
	}
}
