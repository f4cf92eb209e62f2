package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/normdist/internal/view"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T) (*App, *view.View) {
	t.Helper()
	v, err := view.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewApp(v, "dark", t.TempDir()), v
}

func TestApp_AdjustsSelectedSlider(t *testing.T) {
	a, v := newTestApp(t)

	a.Update(key("l"))
	a.Update(key("l"))
	if got := v.Params().Mean; got < 0.19 || got > 0.21 {
		t.Errorf("expected mean 0.2, got %v", got)
	}

	a.Update(key("tab"))
	a.Update(key("H"))
	if got := v.Params().StdDev; got < 0.49 || got > 0.51 {
		t.Errorf("expected sd 0.5, got %v", got)
	}
	if a.frame.StdDevReadout != "0.5" {
		t.Errorf("expected frame readout 0.5, got %s", a.frame.StdDevReadout)
	}

	a.Update(key("r"))
	if v.Params().Mean != 0 || v.Params().StdDev != 1 {
		t.Errorf("expected reset params, got %+v", v.Params())
	}
}

func TestApp_Quit(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_ViewShowsReadouts(t *testing.T) {
	a, _ := newTestApp(t)
	out := a.View()
	for _, want := range []string{"μ = 0.0, σ = 1.0", "mean μ", "std dev σ", "area"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_ThemeCycle(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(key("t"))
	if a.theme.Name != "light" {
		t.Errorf("expected light theme, got %s", a.theme.Name)
	}
}

func TestApp_Export(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(key("e"))

	path := filepath.Join(a.exportDir, "normdist_mu0.0_sigma1.0.svg")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected export file: %v (status %q)", err, a.status)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg content")
	}
	if !strings.HasPrefix(a.status, "saved ") {
		t.Errorf("unexpected status %q", a.status)
	}
}

func TestApp_Resize(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	if a.canvas.Width != 52 {
		t.Errorf("expected canvas width 52, got %d", a.canvas.Width)
	}
	if len([]rune(a.tickRow())) != 52 {
		t.Error("tick row should match canvas width")
	}
}

func TestSliderBar(t *testing.T) {
	if got := SliderBar(0, -2, 2, 5); got != "━━●──" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := SliderBar(9, -2, 2, 5); got != "━━━━●" {
		t.Errorf("unexpected clamped bar %q", got)
	}
}
