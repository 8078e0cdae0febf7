package scheme

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chromatic/internal/cli"
)

// SchemeCmd returns the scheme parent command
func SchemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Inspect the color scheme",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}

// setup pulls the CLI context and the output flags shared by subcommands
func setup(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			return nil, nil, fmtErr
		}
		return nil, nil, cli.MarkReported(err)
	}

	return cliInstance, formatter, nil
}

func addOutputFlags(cmd *cobra.Command) {
	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (values only)")
}
