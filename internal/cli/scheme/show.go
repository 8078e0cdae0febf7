package scheme

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chromatic/internal/cli"
	"github.com/thenoetrevino/chromatic/internal/cli/styles"
	"github.com/thenoetrevino/chromatic/internal/config/colors"
)

// ShowCmd returns the scheme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the default color scheme",
		Long:  "Show every color of the default color scheme.",
		Args:  cli.NoArgs,
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

// labelWidth fits the longest field name
const labelWidth = len("background")

type field struct {
	name  string
	value string
}

func fields(s colors.ColorScheme) []field {
	return []field{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"red", s.Red},
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	scheme := cliInstance.Scheme
	cliInstance.Logger.Debug().
		Str("command", "show").
		Str("background", scheme.Background).
		Str("foreground", scheme.Foreground).
		Str("red", scheme.Red).
		Msg("showing color scheme")

	if formatter.Quiet {
		for _, f := range fields(scheme) {
			formatter.Println(f.value)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(scheme)
	}

	// Human-readable output
	formatter.Println(styles.TitleStyle.Render("Color scheme"))
	for _, f := range fields(scheme) {
		formatter.Println(fmt.Sprintf("  %s%s%s %s",
			styles.Swatch(f.value),
			styles.LabelStyle.Render(f.name),
			strings.Repeat(" ", labelWidth-len(f.name)),
			styles.ValueStyle.Render(f.value),
		))
	}
	return nil
}
