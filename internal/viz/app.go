package viz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/export"
	"github.com/san-kum/normdist/internal/metrics"
	"github.com/san-kum/normdist/internal/view"
)

const (
	canvasWidth  = 64
	canvasHeight = 14
	sliderWidth  = 28
	bigStep      = 5
)

// App is the Bubble Tea model of the interactive curve.
type App struct {
	view      *view.View
	frame     *view.Frame
	canvas    *Canvas
	theme     Theme
	selected  view.Param
	fill      bool
	showHelp  bool
	status    string
	exportDir string
	stats     map[string]float64
}

// NewApp subscribes a terminal front end to v. Exports go to exportDir.
func NewApp(v *view.View, theme, exportDir string) *App {
	a := &App{
		view:      v,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		theme:     GetTheme(theme),
		fill:      true,
		exportDir: exportDir,
	}
	v.Subscribe(a)
	return a
}

// OnFrame redraws the canvas and refreshes the metrics panel.
func (a *App) OnFrame(f *view.Frame) {
	a.frame = f
	a.canvas.DrawFrame(f, a.fill)
	a.stats = metrics.Evaluate(f.Samples, metrics.Defaults(f.Params, a.view.Config().Domain)...)
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 100 {
			w = 100
		}
		if w < 20 {
			w = 20
		}
		if w != a.canvas.Width {
			a.canvas = NewCanvas(w, canvasHeight)
			a.canvas.DrawFrame(a.frame, a.fill)
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var err error
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab", "up", "down", "j", "k":
		if a.selected == view.ParamMean {
			a.selected = view.ParamStdDev
		} else {
			a.selected = view.ParamMean
		}
	case "left", "h":
		err = a.view.Step(a.selected, -1)
	case "right", "l":
		err = a.view.Step(a.selected, 1)
	case "H":
		err = a.view.Step(a.selected, -bigStep)
	case "L":
		err = a.view.Step(a.selected, bigStep)
	case "r":
		err = a.view.Reset()
	case "f":
		a.fill = !a.fill
		a.canvas.DrawFrame(a.frame, a.fill)
	case "t":
		a.theme = NextTheme(a.theme.Name)
	case "e":
		path, exportErr := a.exportSVG()
		if exportErr != nil {
			err = exportErr
		} else {
			a.status = "saved " + path
		}
	case "?":
		a.showHelp = !a.showHelp
	}
	if err != nil {
		a.status = "error: " + err.Error()
	}
	return nil
}

func (a *App) exportSVG() (string, error) {
	name := fmt.Sprintf("normdist_mu%s_sigma%s.svg", a.frame.MeanReadout, a.frame.StdDevReadout)
	path := filepath.Join(a.exportDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create export")
	}
	defer file.Close()

	opts := export.Options{Theme: export.GetTheme(a.theme.Name), Readouts: true, Standalone: true}
	if err := export.WriteSVG(file, a.frame, opts); err != nil {
		return "", err
	}
	return path, nil
}

func (a *App) View() string {
	th := a.theme
	title := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	text := lipgloss.NewStyle().Foreground(th.Text)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	curve := lipgloss.NewStyle().Foreground(th.Curve)
	panel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Border).Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n  " + title.Render("NORMAL DISTRIBUTION") + "\n")
	b.WriteString("  " + muted.Render("adjust the mean μ and standard deviation σ") + "\n")
	b.WriteString("  " + text.Render(fmt.Sprintf("current: μ = %s, σ = %s", a.frame.MeanReadout, a.frame.StdDevReadout)) + "\n\n")

	plot := curve.Render(strings.TrimRight(a.canvas.String(), "\n")) + "\n" + muted.Render(a.tickRow())
	b.WriteString(indent(panel.Render(plot), "  ") + "\n\n")

	cfg := a.view.Config()
	b.WriteString(a.sliderRow(view.ParamMean, "mean μ", a.frame.Params.Mean, cfg.Mean, "-2", "0", "+2") + "\n")
	b.WriteString(a.sliderRow(view.ParamStdDev, "std dev σ", a.frame.Params.StdDev, cfg.StdDev, "0.5", "1.5", "2.5") + "\n\n")

	b.WriteString("  " + muted.Render(a.statsLine()) + "\n")

	if a.status != "" {
		b.WriteString("  " + text.Render(a.status) + "\n")
	}

	if a.showHelp {
		b.WriteString("\n" + indent(panel.Render(helpText), "  ") + "\n")
	} else {
		b.WriteString("\n  " + muted.Render("tab select  h/l adjust  H/L ×5  f fill  r reset  t theme  e export  ? help  q quit") + "\n")
	}
	return b.String()
}

const helpText = `tab, j, k   switch between μ and σ
h, l        one step (0.1) down / up
H, L        five steps down / up
f           toggle area shading
r           reset to μ = 0, σ = 1
t           cycle theme
e           export the frame as SVG
q           quit`

func (a *App) sliderRow(p view.Param, label string, val float64, s config.Slider, lo, mid, hi string) string {
	th := a.theme
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(th.Muted).Width(11)
	if a.selected == p {
		marker = lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Render("▸ ")
		labelStyle = labelStyle.Foreground(th.Text).Bold(true)
	}

	bar := SliderBar(val, s.Min, s.Max, sliderWidth)
	scale := lo + strings.Repeat(" ", max(1, sliderWidth/2-len(lo)-len(mid)/2)) + mid
	scale += strings.Repeat(" ", max(1, sliderWidth-len([]rune(scale))-len(hi))) + hi

	return fmt.Sprintf("  %s%s %s %s\n    %s %s",
		marker,
		labelStyle.Render(label),
		lipgloss.NewStyle().Foreground(th.Curve).Render(bar),
		lipgloss.NewStyle().Foreground(th.Text).Render(view.Readout(val)),
		strings.Repeat(" ", 11),
		lipgloss.NewStyle().Foreground(th.Muted).Render(scale),
	)
}

// SliderBar draws a horizontal range control with its knob at val.
func SliderBar(val, lo, hi float64, width int) string {
	if width < 2 {
		width = 2
	}
	frac := 0.0
	if hi > lo {
		frac = (val - lo) / (hi - lo)
	}
	frac = math.Max(0, math.Min(1, frac))
	knob := int(math.Round(frac * float64(width-1)))
	return strings.Repeat("━", knob) + "●" + strings.Repeat("─", width-1-knob)
}

// tickRow places the tick labels under their canvas columns.
func (a *App) tickRow() string {
	row := []rune(strings.Repeat(" ", a.canvas.Width))
	if a.frame == nil {
		return string(row)
	}
	s := a.frame.Surface
	for _, t := range a.frame.Ticks {
		label := []rune(t.Label)
		col := int(math.Round((t.LabelX-s.XMin)/s.Width()*float64(a.canvas.Width-1))) - len(label)/2
		for i, r := range label {
			if c := col + i; c >= 0 && c < len(row) {
				row[c] = r
			}
		}
	}
	return string(row)
}

func (a *App) statsLine() string {
	keys := make([]string, 0, len(a.stats))
	for k := range a.stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %.4f", k, a.stats[k])
	}
	return strings.Join(parts, "  ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Run starts the full-screen terminal UI for v.
func Run(v *view.View, theme, exportDir string) error {
	_, err := tea.NewProgram(NewApp(v, theme, exportDir), tea.WithAltScreen()).Run()
	return err
}
