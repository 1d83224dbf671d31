package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/identcase"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the identcase version, and with --verbose the full build metadata.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			Writef(cmd.OutOrStdout(), "identcase %s\n", identcase.Version())
			if verbose {
				Writef(cmd.OutOrStdout(), "%s\n", identcase.BuildInfo())
			}
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include commit, build time, Go version and platform")
	return cmd
}
