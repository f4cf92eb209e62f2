package viz

import (
	"math"
	"strings"

	"github.com/san-kum/normdist/internal/mapping"
	"github.com/san-kum/normdist/internal/view"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid where each cell holds 2x4 braille dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// DotsX and DotsY are the canvas size in dots.
func (c *Canvas) DotsX() int { return c.Width * 2 }
func (c *Canvas) DotsY() int { return c.Height * 4 }

// Set lights the dot at (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return
	}
	c.Grid[y/4][x/2] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.drawLine(x0, y0, x1, y1, 1)
}

// DrawDashed lights every other run of dash dots along the line.
func (c *Canvas) DrawDashed(x0, y0, x1, y1, dash int) {
	if dash < 1 {
		dash = 1
	}
	c.drawLine(x0, y0, x1, y1, dash)
}

func (c *Canvas) drawLine(x0, y0, x1, y1, dash int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for i := 0; ; i++ {
		if dash == 1 || (i/dash)%2 == 0 {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawFrame plots the baseline, outline and mean guide of f. With fill
// set, the area under the curve is shaded with every other dot column.
func (c *Canvas) DrawFrame(f *view.Frame, fill bool) {
	c.Clear()
	if f == nil || len(f.Points) == 0 {
		return
	}
	s := f.Surface

	base := c.toDotY(s, s.YBase)
	c.DrawLine(0, base, c.DotsX()-1, base)

	px, py := c.toDotX(s, f.Points[0].X), c.toDotY(s, f.Points[0].Y)
	for _, p := range f.Points[1:] {
		x, y := c.toDotX(s, p.X), c.toDotY(s, p.Y)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}

	if fill {
		for x := 0; x < c.DotsX(); x += 2 {
			top := c.curveTop(x, base)
			for y := top + 2; y < base; y += 2 {
				c.Set(x, y)
			}
		}
	}

	gx := c.toDotX(s, f.Guide.X1)
	c.DrawDashed(gx, base, gx, c.toDotY(s, f.Guide.Y2), 2)
}

// curveTop finds the highest lit dot in column x above the baseline.
func (c *Canvas) curveTop(x, base int) int {
	for y := 0; y < base; y++ {
		if c.IsSet(x, y) {
			return y
		}
	}
	return base
}

func (c *Canvas) toDotX(s mapping.Surface, x float64) int {
	return int(math.Round((x - s.XMin) / s.Width() * float64(c.DotsX()-1)))
}

func (c *Canvas) toDotY(s mapping.Surface, y float64) int {
	return int(math.Round((y - s.YTop) / s.Height() * float64(c.DotsY()-1)))
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
