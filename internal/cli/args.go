package cli

import "github.com/spf13/cobra"

// NoArgs rejects positional arguments with ExitUsage
func NoArgs(cmd *cobra.Command, args []string) error {
	return WithExitCode(ExitUsage, cobra.NoArgs(cmd, args))
}
