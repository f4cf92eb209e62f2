package mapping

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/density"
)

var testSurface = Surface{XMin: 40, XMax: 360, YBase: 170, YTop: 40}

func TestMapX_Endpoints(t *testing.T) {
	if got := MapX(-4, -4, 4, 40, 360); got != 40 {
		t.Errorf("expected 40, got %v", got)
	}
	if got := MapX(4, -4, 4, 40, 360); got != 360 {
		t.Errorf("expected 360, got %v", got)
	}
	if got := MapX(0, -4, 4, 40, 360); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}
}

func TestMapX_AffineMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := -4.0; x <= 4.0; x += 0.25 {
		got := MapX(x, -4, 4, 40, 360)
		if got <= prev {
			t.Fatalf("mapX not increasing at x=%v: %v <= %v", x, got, prev)
		}
		prev = got
	}

	// affine: midpoint maps to midpoint
	a, b := -3.0, 1.5
	mid := MapX((a+b)/2, -4, 4, 40, 360)
	want := (MapX(a, -4, 4, 40, 360) + MapX(b, -4, 4, 40, 360)) / 2
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("expected midpoint %v, got %v", want, mid)
	}
}

func TestMapY_EndpointsAndInversion(t *testing.T) {
	maxY := 0.4

	if got := MapY(0, maxY, 170, 40); got != 170 {
		t.Errorf("expected zero density at base 170, got %v", got)
	}
	if got := MapY(maxY, maxY, 170, 40); got != 40 {
		t.Errorf("expected max density at top 40, got %v", got)
	}
	if got := MapY(maxY/2, maxY, 170, 40); math.Abs(got-105) > 1e-9 {
		t.Errorf("expected half density at 105, got %v", got)
	}

	prev := math.Inf(1)
	for i := 0; i <= 10; i++ {
		got := MapY(maxY*float64(i)/10, maxY, 170, 40)
		if got >= prev {
			t.Fatalf("mapY not decreasing at step %d: %v >= %v", i, got, prev)
		}
		prev = got
	}
}

func TestNewMapper_RejectsDegenerateMax(t *testing.T) {
	d := density.Domain{Min: -4, Max: 4}
	for _, maxY := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewMapper(d, testSurface, maxY); !errors.Is(err, ErrZeroMaxDensity) {
			t.Errorf("max %v: expected ErrZeroMaxDensity, got %v", maxY, err)
		}
	}
}

func TestMapper_Points(t *testing.T) {
	samples, maxY := density.ComputeSamples(0, 1, -4, 4, 200)
	m, err := NewMapper(density.Domain{Min: -4, Max: 4}, testSurface, maxY)
	if err != nil {
		t.Fatalf("new mapper: %v", err)
	}

	pts := m.Points(samples)
	if len(pts) != len(samples) {
		t.Fatalf("expected %d points, got %d", len(samples), len(pts))
	}
	if pts[0].X != 40 || pts[len(pts)-1].X != 360 {
		t.Errorf("expected x span 40..360, got %v..%v", pts[0].X, pts[len(pts)-1].X)
	}
	if pts[100].Y != 40 {
		t.Errorf("expected peak at top 40, got %v", pts[100].Y)
	}
	for _, p := range pts {
		if p.Y < testSurface.YTop || p.Y > testSurface.YBase {
			t.Fatalf("point %v outside surface", p)
		}
	}
}

func TestSurface_Size(t *testing.T) {
	if testSurface.Width() != 320 {
		t.Errorf("expected width 320, got %v", testSurface.Width())
	}
	if testSurface.Height() != 130 {
		t.Errorf("expected height 130, got %v", testSurface.Height())
	}
}
