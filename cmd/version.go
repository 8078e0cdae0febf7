package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chromatic/internal/cli"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/chromatic/cmd.Version=..."
var Version = "dev"

// VersionCmd returns the version subcommand
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cli.NoArgs,
		// Skip config and log setup so version works with a broken config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "chromatic %s\n", Version)
			return err
		},
	}
}
