package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/density"
	"github.com/san-kum/normdist/internal/mapping"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples = 200
	DefaultMean    = 0.0
	DefaultStdDev  = 1.0
	MinStdDev      = 0.5
	MaxStdDev      = 2.5
	MinMean        = -2.0
	MaxMean        = 2.0
	SliderStep     = 0.1
	ViewBoxWidth   = 400
	ViewBoxHeight  = 230
	DefaultTheme   = "light"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Slider describes one range control.
type Slider struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// Clamp limits v to [Min, Max].
func (s Slider) Clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Snap rounds v to the nearest step counted from Min and clamps the result.
func (s Slider) Snap(v float64) float64 {
	if s.Step <= 0 {
		return s.Clamp(v)
	}
	n := math.Round((v - s.Min) / s.Step)
	// trim float noise so 0.1 steps print and compare cleanly
	snapped := math.Round((s.Min+n*s.Step)*1e9) / 1e9
	return s.Clamp(snapped)
}

// Contains reports whether v lies within the slider range.
func (s Slider) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

type ViewBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	Domain  density.Domain  `yaml:"domain"`
	Surface mapping.Surface `yaml:"surface"`
	ViewBox ViewBox         `yaml:"view_box"`
	Samples int             `yaml:"samples"`
	Mean    Slider          `yaml:"mean"`
	StdDev  Slider          `yaml:"std_dev"`
	Theme   string          `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Domain:  density.Domain{Min: -4, Max: 4},
		Surface: mapping.Surface{XMin: 40, XMax: 360, YBase: 170, YTop: 40},
		ViewBox: ViewBox{Width: ViewBoxWidth, Height: ViewBoxHeight},
		Samples: DefaultSamples,
		Mean: Slider{
			Min:     MinMean,
			Max:     MaxMean,
			Step:    SliderStep,
			Default: DefaultMean,
		},
		StdDev: Slider{
			Min:     MinStdDev,
			Max:     MaxStdDev,
			Step:    SliderStep,
			Default: DefaultStdDev,
		},
		Theme: DefaultTheme,
	}
}

// Validate checks the bounds every render pass relies on.
func (c *Config) Validate() error {
	switch {
	case !(c.Domain.Min < c.Domain.Max):
		return errors.Wrapf(ErrInvalidConfig, "domain [%v, %v] is empty", c.Domain.Min, c.Domain.Max)
	case !(c.Surface.XMin < c.Surface.XMax):
		return errors.Wrapf(ErrInvalidConfig, "surface x range [%v, %v] is empty", c.Surface.XMin, c.Surface.XMax)
	case !(c.Surface.YTop < c.Surface.YBase):
		return errors.Wrapf(ErrInvalidConfig, "surface top %v must be above base %v", c.Surface.YTop, c.Surface.YBase)
	case c.ViewBox.Width <= 0 || c.ViewBox.Height <= 0:
		return errors.Wrap(ErrInvalidConfig, "view box must have positive size")
	case c.Samples < 1:
		return errors.Wrapf(ErrInvalidConfig, "samples must be >= 1, got %d", c.Samples)
	case c.Mean.Min > c.Mean.Max:
		return errors.Wrap(ErrInvalidConfig, "mean slider min exceeds max")
	case c.StdDev.Min <= 0:
		return errors.Wrapf(ErrInvalidConfig, "std_dev slider min must be > 0, got %v", c.StdDev.Min)
	case c.StdDev.Min > c.StdDev.Max:
		return errors.Wrap(ErrInvalidConfig, "std_dev slider min exceeds max")
	case !c.Mean.Contains(c.Mean.Default):
		return errors.Wrapf(ErrInvalidConfig, "mean default %v outside slider range", c.Mean.Default)
	case !c.StdDev.Contains(c.StdDev.Default):
		return errors.Wrapf(ErrInvalidConfig, "std_dev default %v outside slider range", c.StdDev.Default)
	}
	return nil
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base. Fields missing from the file keep
// base's values; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}
