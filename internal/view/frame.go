package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/density"
	"github.com/san-kum/normdist/internal/mapping"
)

// MeanSymbol labels the tick at offset zero.
const MeanSymbol = "μ"

// TickOffsets are the labelled positions on the x-axis.
var TickOffsets = []int{-3, -2, -1, 0, 1, 2, 3}

const (
	tickLength      = 6.0
	meanTickLength  = 10.0
	tickWidth       = 1.0
	meanTickWidth   = 1.5
	tickLabelOffset = 22.0
)

type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Tick struct {
	Value  int     `json:"value"`
	Label  string  `json:"label"`
	Line   Line    `json:"line"`
	Width  float64 `json:"width"`
	LabelX float64 `json:"label_x"`
	LabelY float64 `json:"label_y"`
}

// Frame is everything a presentation adapter needs to draw one state.
type Frame struct {
	Params        density.Params   `json:"params"`
	ViewBox       config.ViewBox   `json:"view_box"`
	Surface       mapping.Surface  `json:"surface"`
	Samples       []density.Sample `json:"samples"`
	MaxDensity    float64          `json:"max_density"`
	Points        []mapping.Point  `json:"points"`
	AreaPath      string           `json:"area_path"`
	OutlinePath   string           `json:"outline_path"`
	Plot          Rect             `json:"plot"`
	Axis          Line             `json:"axis"`
	Guide         Line             `json:"guide"`
	Ticks         []Tick           `json:"ticks"`
	MeanReadout   string           `json:"mean_readout"`
	StdDevReadout string           `json:"std_dev_readout"`
}

// BuildFrame samples the curve for p and maps it onto cfg's surface.
func BuildFrame(cfg *config.Config, p density.Params) (*Frame, error) {
	curve, err := density.Compute(p, cfg.Domain, cfg.Samples)
	if err != nil {
		return nil, err
	}
	m, err := mapping.NewMapper(cfg.Domain, cfg.Surface, curve.MaxDensity)
	if err != nil {
		return nil, err
	}

	s := cfg.Surface
	pts := m.Points(curve.Samples)
	gx := m.X(p.Mean)

	return &Frame{
		Params:        p,
		ViewBox:       cfg.ViewBox,
		Surface:       s,
		Samples:       curve.Samples,
		MaxDensity:    curve.MaxDensity,
		Points:        pts,
		AreaPath:      AreaPath(pts, s),
		OutlinePath:   OutlinePath(pts),
		Plot:          Rect{X: s.XMin, Y: s.YTop, Width: s.Width(), Height: s.Height()},
		Axis:          Line{X1: s.XMin, Y1: s.YBase, X2: s.XMax, Y2: s.YBase},
		Guide:         Line{X1: gx, Y1: s.YBase, X2: gx, Y2: s.YTop},
		Ticks:         buildTicks(m, cfg.Domain),
		MeanReadout:   Readout(p.Mean),
		StdDevReadout: Readout(p.StdDev),
	}, nil
}

// OutlinePath is the open polyline through pts.
func OutlinePath(pts []mapping.Point) string {
	var b strings.Builder
	writePolyline(&b, pts)
	return b.String()
}

// AreaPath closes the polyline down to the baseline so it can be filled.
func AreaPath(pts []mapping.Point, s mapping.Surface) string {
	var b strings.Builder
	writePolyline(&b, pts)
	fmt.Fprintf(&b, " L %s %s L %s %s Z", coord(s.XMax), coord(s.YBase), coord(s.XMin), coord(s.YBase))
	return b.String()
}

func writePolyline(b *strings.Builder, pts []mapping.Point) {
	for i, p := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%s %s %s", cmd, coord(p.X), coord(p.Y))
	}
}

func buildTicks(m *mapping.Mapper, d density.Domain) []Tick {
	ticks := make([]Tick, 0, len(TickOffsets))
	base := m.Surface.YBase
	for _, t := range TickOffsets {
		if float64(t) < d.Min || float64(t) > d.Max {
			continue
		}
		x := m.X(float64(t))
		length, width, label := tickLength, tickWidth, strconv.Itoa(t)
		if t == 0 {
			length, width, label = meanTickLength, meanTickWidth, MeanSymbol
		}
		ticks = append(ticks, Tick{
			Value:  t,
			Label:  label,
			Line:   Line{X1: x, Y1: base, X2: x, Y2: base + length},
			Width:  width,
			LabelX: x,
			LabelY: base + tickLabelOffset,
		})
	}
	return ticks
}

// Readout formats a parameter to one decimal place.
func Readout(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}

// coord prints a surface coordinate with at most three decimals.
func coord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
