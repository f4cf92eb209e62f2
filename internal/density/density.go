package density

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is the density Y at domain point X.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Params are the two parameters of the distribution.
type Params struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Domain is the closed horizontal range being sampled.
type Domain struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Width returns Max - Min.
func (d Domain) Width() float64 { return d.Max - d.Min }

func (d Domain) valid() bool {
	return isFinite(d.Min) && isFinite(d.Max) && d.Min < d.Max
}

// Curve is one sampling pass.
type Curve struct {
	Params     Params
	Domain     Domain
	Samples    []Sample
	MaxDensity float64
}

// PDF returns the density of N(mean, stdDev²) at x.
func PDF(x, mean, stdDev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdDev}.Prob(x)
}

// ComputeSamples partitions [domainMin, domainMax] into sampleCount equal
// intervals and evaluates the density at each of the sampleCount+1 points.
// The second return value is the largest sampled density.
func ComputeSamples(mean, stdDev, domainMin, domainMax float64, sampleCount int) ([]Sample, float64) {
	if sampleCount < 1 {
		sampleCount = 1
	}

	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	samples := make([]Sample, sampleCount+1)
	span := domainMax - domainMin
	maxY := 0.0

	for i := 0; i <= sampleCount; i++ {
		x := domainMin + span*float64(i)/float64(sampleCount)
		if i == sampleCount {
			x = domainMax
		}
		y := dist.Prob(x)
		if y > maxY {
			maxY = y
		}
		samples[i] = Sample{X: x, Y: y}
	}

	return samples, maxY
}

// Compute validates its inputs and samples the curve.
func Compute(p Params, d Domain, sampleCount int) (*Curve, error) {
	if !isFinite(p.Mean) {
		return nil, ErrInvalidMean
	}
	if !isFinite(p.StdDev) || p.StdDev <= 0 {
		return nil, errors.Wrapf(ErrInvalidStdDev, "got %v", p.StdDev)
	}
	if !d.valid() {
		return nil, errors.Wrapf(ErrInvalidDomain, "got [%v, %v]", d.Min, d.Max)
	}
	if sampleCount < 1 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "got %d", sampleCount)
	}

	samples, maxY := ComputeSamples(p.Mean, p.StdDev, d.Min, d.Max, sampleCount)
	if maxY <= 0 || !isFinite(maxY) {
		return nil, ErrDegenerateDensity
	}

	return &Curve{
		Params:     p,
		Domain:     d,
		Samples:    samples,
		MaxDensity: maxY,
	}, nil
}

// Peak returns the first sample holding the maximum density.
func (c *Curve) Peak() Sample {
	if len(c.Samples) == 0 {
		return Sample{}
	}
	best := c.Samples[0]
	for _, s := range c.Samples[1:] {
		if s.Y > best.Y {
			best = s
		}
	}
	return best
}

// Ys returns the density values in sample order.
func (c *Curve) Ys() []float64 {
	ys := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		ys[i] = s.Y
	}
	return ys
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
