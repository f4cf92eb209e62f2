// Package mapping converts domain coordinates into drawing-surface
// coordinates.
package mapping

import (
	"math"

	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/density"
)

// ErrZeroMaxDensity indicates a vertical normalisation divisor that is zero,
// negative or non-finite.
var ErrZeroMaxDensity = errors.New("mapping: max density must be finite and > 0")

// Surface is the drawing area inside the canvas. Y grows downwards, so
// YBase is below YTop.
type Surface struct {
	XMin  float64 `json:"x_min" yaml:"x_min"`
	XMax  float64 `json:"x_max" yaml:"x_max"`
	YBase float64 `json:"y_base" yaml:"y_base"`
	YTop  float64 `json:"y_top" yaml:"y_top"`
}

// Width returns XMax - XMin.
func (s Surface) Width() float64 { return s.XMax - s.XMin }

// Height returns YBase - YTop.
func (s Surface) Height() float64 { return s.YBase - s.YTop }

// Point is a position on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapX linearly interpolates x from [domainMin, domainMax] into
// [surfaceXMin, surfaceXMax].
func MapX(x, domainMin, domainMax, surfaceXMin, surfaceXMax float64) float64 {
	return surfaceXMin + ((x-domainMin)/(domainMax-domainMin))*(surfaceXMax-surfaceXMin)
}

// MapY linearly interpolates y from [0, maxDensity] into
// [surfaceYBase, surfaceYTop]. Higher densities end up closer to
// surfaceYTop.
func MapY(y, maxDensity, surfaceYBase, surfaceYTop float64) float64 {
	return surfaceYBase - (y/maxDensity)*(surfaceYBase-surfaceYTop)
}

// Mapper binds the bounds of one render pass.
type Mapper struct {
	Domain     density.Domain
	Surface    Surface
	MaxDensity float64
}

// NewMapper returns a mapper for the given bounds. The max density is the
// divisor of the vertical mapping and must be positive.
func NewMapper(d density.Domain, s Surface, maxDensity float64) (*Mapper, error) {
	if maxDensity <= 0 || math.IsNaN(maxDensity) || math.IsInf(maxDensity, 0) {
		return nil, errors.Wrapf(ErrZeroMaxDensity, "got %v", maxDensity)
	}
	return &Mapper{Domain: d, Surface: s, MaxDensity: maxDensity}, nil
}

func (m *Mapper) X(x float64) float64 {
	return MapX(x, m.Domain.Min, m.Domain.Max, m.Surface.XMin, m.Surface.XMax)
}

func (m *Mapper) Y(y float64) float64 {
	return MapY(y, m.MaxDensity, m.Surface.YBase, m.Surface.YTop)
}

func (m *Mapper) Point(s density.Sample) Point {
	return Point{X: m.X(s.X), Y: m.Y(s.Y)}
}

// Points maps every sample, preserving order.
func (m *Mapper) Points(samples []density.Sample) []Point {
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = m.Point(s)
	}
	return pts
}
