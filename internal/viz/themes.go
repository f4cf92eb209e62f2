package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal colours. Names match the SVG export themes so
// an exported snapshot uses the palette shown on screen.
type Theme struct {
	Name   string
	Curve  lipgloss.Color
	Guide  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

var (
	ThemeLight = Theme{
		Name:   "light",
		Curve:  lipgloss.Color("#059669"), // emerald-600
		Guide:  lipgloss.Color("#10b981"),
		Accent: lipgloss.Color("#047857"),
		Text:   lipgloss.Color("#27272a"),
		Muted:  lipgloss.Color("#71717a"),
		Border: lipgloss.Color("#e4e4e7"),
	}

	ThemeDark = Theme{
		Name:   "dark",
		Curve:  lipgloss.Color("#34d399"), // emerald-400
		Guide:  lipgloss.Color("#6ee7b7"),
		Accent: lipgloss.Color("#a7f3d0"),
		Text:   lipgloss.Color("#f4f4f5"),
		Muted:  lipgloss.Color("#a1a1aa"),
		Border: lipgloss.Color("#3f3f46"),
	}

	Themes = []Theme{ThemeLight, ThemeDark}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
