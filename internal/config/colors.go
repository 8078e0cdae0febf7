package config

import "github.com/thenoetrevino/chromatic/internal/config/colors"

// DefaultColorScheme returns the dark default color scheme
func DefaultColorScheme() colors.ColorScheme {
	return colors.New()
}
