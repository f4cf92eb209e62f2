package config

import "sort"

// Preset is a named starting parameter pair.
type Preset struct {
	Mean   float64
	StdDev float64
}

var Presets = map[string]Preset{
	"standard":      {Mean: 0.0, StdDev: 1.0},
	"narrow":        {Mean: 0.0, StdDev: 0.5},
	"wide":          {Mean: 0.0, StdDev: 2.5},
	"shifted-left":  {Mean: -2.0, StdDev: 1.0},
	"shifted-right": {Mean: 2.0, StdDev: 1.0},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply makes the preset the default slider position of cfg.
func (p Preset) Apply(cfg *Config) {
	cfg.Mean.Default = cfg.Mean.Clamp(p.Mean)
	cfg.StdDev.Default = cfg.StdDev.Clamp(p.StdDev)
}
