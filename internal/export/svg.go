package export

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/view"
)

// Options control the optional parts of an SVG rendering.
type Options struct {
	Theme Theme
	// Readouts adds the μ/σ values above the plot.
	Readouts bool
	// Standalone prepends the XML declaration.
	Standalone bool
}

// FrameToSVG renders a frame as an SVG document.
func FrameToSVG(f *view.Frame, opts Options) string {
	if f == nil {
		return ""
	}
	th := opts.Theme
	if th.Name == "" {
		th = ThemeLight
	}

	var sb strings.Builder

	if opts.Standalone {
		sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	w, h := num(f.ViewBox.Width), num(f.ViewBox.Height)
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, th.Background))

	// plot background
	sb.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>
`, num(f.Plot.X), num(f.Plot.Y), num(f.Plot.Width), num(f.Plot.Height), th.Plot))

	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" fill-opacity="%s"/>
`, f.AreaPath, th.AreaFill, num(th.AreaOpacity)))
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="2.5"/>
`, f.OutlinePath, th.Stroke))

	writeLine(&sb, f.Axis, th.Axis, 1, "")
	writeLine(&sb, f.Guide, th.Guide, 1, "4 4")

	sb.WriteString(fmt.Sprintf(`<g font-size="10" text-anchor="middle" fill="%s">
`, th.Label))
	for _, t := range f.Ticks {
		writeLine(&sb, t.Line, th.Axis, t.Width, "")
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s">%s</text>
`, num(t.LabelX), num(t.LabelY), html.EscapeString(t.Label)))
	}
	sb.WriteString("</g>\n")

	if opts.Readouts {
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-size="11" fill="%s">μ = %s, σ = %s</text>
`, num(f.Plot.X), num(f.Plot.Y-16), th.Label, f.MeanReadout, f.StdDevReadout))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders f to w.
func WriteSVG(w io.Writer, f *view.Frame, opts Options) error {
	if f == nil {
		return errors.New("export: nil frame")
	}
	_, err := io.WriteString(w, FrameToSVG(f, opts))
	return errors.Wrap(err, "write svg")
}

func writeLine(sb *strings.Builder, l view.Line, stroke string, width float64, dash string) {
	sb.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), stroke, num(width)))
	if dash != "" {
		sb.WriteString(fmt.Sprintf(` stroke-dasharray="%s"`, dash))
	}
	sb.WriteString("/>\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
