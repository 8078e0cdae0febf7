package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chromatic/internal/config/colors"
)

var (
	// Text styles
	TitleStyle = lipgloss.NewStyle()
	LabelStyle = lipgloss.NewStyle() // For field names like "background"
	ValueStyle = lipgloss.NewStyle() // For hex values

	// Status styles
	ErrorStyle = lipgloss.NewStyle()

	plain = true
)

// Init initializes all CLI styles with the given color scheme.
// With noColor set every style renders its input unchanged.
func Init(scheme colors.ColorScheme, noColor bool) {
	plain = noColor
	if noColor {
		TitleStyle = lipgloss.NewStyle()
		LabelStyle = lipgloss.NewStyle()
		ValueStyle = lipgloss.NewStyle()
		ErrorStyle = lipgloss.NewStyle()
		return
	}

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Foreground))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Foreground))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Foreground))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Red)).
		Background(lipgloss.Color(scheme.Background)).
		Padding(0, 1)
}

// Swatch renders a small block filled with hex. Empty when colors are off.
func Swatch(hex string) string {
	if plain {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("   ") + " "
}
