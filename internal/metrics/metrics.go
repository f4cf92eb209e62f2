package metrics

import (
	"math"

	"github.com/san-kum/normdist/internal/density"
	"gonum.org/v1/gonum/stat/distuv"
)

// Metric accumulates a summary over samples observed in ascending x order.
type Metric interface {
	Name() string
	Observe(s density.Sample)
	Value() float64
	Reset()
}

// Evaluate resets each metric, feeds it every sample and collects the values.
func Evaluate(samples []density.Sample, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, s := range samples {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// Defaults returns the metrics shown for a curve with parameters p over d.
func Defaults(p density.Params, d density.Domain) []Metric {
	return []Metric{NewArea(), NewPeak(), NewFWHM(), NewMass(p, d), NewMassError(p, d)}
}

// Area integrates the sampled density with the trapezoidal rule.
type Area struct {
	prev  density.Sample
	seen  bool
	total float64
}

func NewArea() *Area { return &Area{} }

func (a *Area) Name() string { return "area" }

func (a *Area) Observe(s density.Sample) {
	if a.seen {
		a.total += (s.X - a.prev.X) * (s.Y + a.prev.Y) / 2
	}
	a.prev, a.seen = s, true
}

func (a *Area) Value() float64 { return a.total }

func (a *Area) Reset() { *a = Area{} }

// Peak reports the x of the highest sample.
type Peak struct {
	best density.Sample
	seen bool
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_x" }

func (p *Peak) Observe(s density.Sample) {
	if !p.seen || s.Y > p.best.Y {
		p.best, p.seen = s, true
	}
}

func (p *Peak) Value() float64 { return p.best.X }

func (p *Peak) Reset() { *p = Peak{} }

// FWHM is the width of the sampled region at or above half the maximum
// density. For a Gaussian it approaches 2·sqrt(2·ln2)·σ as sampling gets
// denser, as long as the curve is not cut off by the domain.
type FWHM struct {
	samples []density.Sample
	maxY    float64
}

func NewFWHM() *FWHM { return &FWHM{} }

func (f *FWHM) Name() string { return "fwhm" }

func (f *FWHM) Observe(s density.Sample) {
	f.samples = append(f.samples, s)
	f.maxY = math.Max(f.maxY, s.Y)
}

func (f *FWHM) Value() float64 {
	half := f.maxY / 2
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range f.samples {
		if s.Y >= half {
			lo = math.Min(lo, s.X)
			hi = math.Max(hi, s.X)
		}
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}

func (f *FWHM) Reset() {
	f.samples = f.samples[:0]
	f.maxY = 0
}

// Mass is the exact probability mass inside the domain. It ignores the
// observed samples.
type Mass struct {
	dist   distuv.Normal
	domain density.Domain
}

func NewMass(p density.Params, d density.Domain) *Mass {
	return &Mass{dist: distuv.Normal{Mu: p.Mean, Sigma: p.StdDev}, domain: d}
}

func (m *Mass) Name() string { return "mass" }

func (m *Mass) Observe(density.Sample) {}

func (m *Mass) Value() float64 {
	return m.dist.CDF(m.domain.Max) - m.dist.CDF(m.domain.Min)
}

func (m *Mass) Reset() {}

// MassError is the absolute difference between the trapezoidal area and
// the exact mass inside the domain.
type MassError struct {
	area *Area
	mass *Mass
}

func NewMassError(p density.Params, d density.Domain) *MassError {
	return &MassError{area: NewArea(), mass: NewMass(p, d)}
}

func (e *MassError) Name() string { return "mass_error" }

func (e *MassError) Observe(s density.Sample) { e.area.Observe(s) }

func (e *MassError) Value() float64 { return math.Abs(e.area.Value() - e.mass.Value()) }

func (e *MassError) Reset() { e.area.Reset() }
