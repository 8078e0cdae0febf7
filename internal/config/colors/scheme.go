package colors

// Keys used by ToMap
const (
	KeyBackground = "background"
)

// ColorScheme holds the colors a terminal or UI surface is themed with.
// Values are hex RGB strings (e.g. "#0c0c0c") and are not validated.
type ColorScheme struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`

	// ANSI palette slot 1 override
	Red string `json:"red"`
}

// New returns the dark default color scheme
func New() ColorScheme {
	return ColorScheme{
		Background: "#0c0c0c",
		Foreground: "#cccccc",
		Red:        "#cd3131",
	}
}

// ToMap exports the scheme into a generic string map.
// Only the background is exported; foreground and red are left out.
func (c ColorScheme) ToMap() map[string]string {
	return map[string]string{
		KeyBackground: c.Background,
	}
}
