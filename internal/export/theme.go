package export

// Theme is the colour palette of an SVG rendering.
type Theme struct {
	Name        string
	Background  string
	Plot        string
	AreaFill    string
	AreaOpacity float64
	Stroke      string
	Axis        string
	Guide       string
	Label       string
}

var (
	ThemeLight = Theme{
		Name:        "light",
		Background:  "#ffffff",
		Plot:        "#fafafa", // zinc-50
		AreaFill:    "#d1fae5", // emerald-100
		AreaOpacity: 1,
		Stroke:      "#059669", // emerald-600
		Axis:        "#71717a", // zinc-500
		Guide:       "#10b981", // emerald-500
		Label:       "#27272a", // zinc-800
	}

	ThemeDark = Theme{
		Name:        "dark",
		Background:  "#18181b",
		Plot:        "#18181b", // zinc-900
		AreaFill:    "#064e3b", // emerald-900
		AreaOpacity: 0.5,
		Stroke:      "#34d399", // emerald-400
		Axis:        "#a1a1aa", // zinc-400
		Guide:       "#6ee7b7", // emerald-300
		Label:       "#f4f4f5", // zinc-100
	}

	Themes = []Theme{ThemeLight, ThemeDark}
)

// GetTheme returns a theme by name, falling back to light.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLight
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
