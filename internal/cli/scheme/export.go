package scheme

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chromatic/internal/cli"
	"github.com/thenoetrevino/chromatic/internal/cli/styles"
)

// ExportCmd returns the scheme export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the default color scheme as key/value pairs",
		Long: `Export the default color scheme as key/value pairs.

Only the background color is exported.`,
		Args: cli.NoArgs,
		RunE: runExport,
	}

	addOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	exported := cliInstance.Scheme.ToMap()
	cliInstance.Logger.Debug().
		Str("command", "export").
		Int("entries", len(exported)).
		Msg("exported color scheme")

	keys := make([]string, 0, len(exported))
	for k := range exported {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if formatter.Quiet {
		for _, k := range keys {
			formatter.Println(exported[k])
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(exported)
	}

	// Human-readable output
	for _, k := range keys {
		formatter.Println(fmt.Sprintf("%s=%s", styles.LabelStyle.Render(k), styles.ValueStyle.Render(exported[k])))
	}
	return nil
}
