package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/density"
)

// Param selects one of the two controls.
type Param int

const (
	ParamMean Param = iota
	ParamStdDev
)

func (p Param) String() string {
	if p == ParamStdDev {
		return "σ"
	}
	return "μ"
}

// Observer is a render sink.
type Observer interface {
	OnFrame(f *Frame)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(f *Frame)

func (fn ObserverFunc) OnFrame(f *Frame) { fn(f) }

// View holds the current parameters and the frame derived from them.
type View struct {
	cfg       *config.Config
	params    density.Params
	frame     *Frame
	observers []Observer
}

// New returns a view at the configured default parameters. A nil cfg uses
// config.DefaultConfig.
func New(cfg *config.Config) (*View, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &View{cfg: cfg}
	v.params = v.defaults()
	if err := v.recompute(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *View) Config() *config.Config { return v.cfg }

func (v *View) Params() density.Params { return v.params }

// Frame returns the frame for the current parameters.
func (v *View) Frame() *Frame { return v.frame }

// Subscribe registers o and immediately hands it the current frame.
func (v *View) Subscribe(o Observer) {
	v.observers = append(v.observers, o)
	o.OnFrame(v.frame)
}

// SetMean replaces the mean. Values outside the slider range are clamped,
// NaN falls back to the default mean.
func (v *View) SetMean(mean float64) error {
	if math.IsNaN(mean) {
		mean = v.cfg.Mean.Default
	}
	return v.set(density.Params{Mean: v.cfg.Mean.Clamp(mean), StdDev: v.params.StdDev})
}

// SetStdDev replaces the standard deviation. NaN and zero fall back to the
// slider minimum, anything else is clamped into the slider range.
func (v *View) SetStdDev(sd float64) error {
	if math.IsNaN(sd) || sd == 0 {
		sd = v.cfg.StdDev.Min
	}
	return v.set(density.Params{Mean: v.params.Mean, StdDev: v.cfg.StdDev.Clamp(sd)})
}

// SetMeanInput parses a control value for the mean.
func (v *View) SetMeanInput(s string) error {
	return v.SetMean(parseInput(s))
}

// SetStdDevInput parses a control value for the standard deviation.
// Unparseable input becomes the slider minimum.
func (v *View) SetStdDevInput(s string) error {
	return v.SetStdDev(parseInput(s))
}

// Step moves a parameter by dir slider steps, snapped to the step grid.
func (v *View) Step(p Param, dir int) error {
	switch p {
	case ParamStdDev:
		s := v.cfg.StdDev
		return v.SetStdDev(s.Snap(v.params.StdDev + float64(dir)*s.Step))
	default:
		s := v.cfg.Mean
		return v.SetMean(s.Snap(v.params.Mean + float64(dir)*s.Step))
	}
}

// Set replaces both parameters at once.
func (v *View) Set(p density.Params) error {
	if err := v.SetMean(p.Mean); err != nil {
		return err
	}
	return v.SetStdDev(p.StdDev)
}

// Reset restores the default parameters.
func (v *View) Reset() error {
	return v.set(v.defaults())
}

func (v *View) defaults() density.Params {
	return density.Params{Mean: v.cfg.Mean.Default, StdDev: v.cfg.StdDev.Default}
}

func (v *View) set(p density.Params) error {
	prev := v.params
	v.params = p
	if err := v.recompute(); err != nil {
		v.params = prev
		return err
	}
	return nil
}

func (v *View) recompute() error {
	f, err := BuildFrame(v.cfg, v.params)
	if err != nil {
		return err
	}
	v.frame = f
	for _, o := range v.observers {
		o.OnFrame(f)
	}
	return nil
}

func parseInput(s string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return val
}
