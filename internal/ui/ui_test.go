package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/orbit"
)

// fixedBodies places Earth at angle 0, to the right of the Sun.
func fixedBodies() []*orbit.Body {
	return []*orbit.Body{
		{ID: "Sun", Kind: orbit.KindSun, Radius: 30, Color: "yellow"},
		{ID: "Earth", Kind: orbit.KindPlanet, Radius: 8, Color: "blue",
			Orbit: &orbit.Orbit{SemiMajor: 120, SemiMinor: 40, AngularSpeed: 0.004}},
	}
}

func newSizedModel(t *testing.T) Model {
	t.Helper()
	m, err := New(DefaultConfig(), fixedBodies(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 43})
	return updated.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNewRejectsBadBodies(t *testing.T) {
	_, err := New(DefaultConfig(), fixedBodies()[1:], nil)
	if err == nil {
		t.Fatal("expected error without a sun")
	}
}

func TestTicksPerFrame(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		speed    float64
		want     float64
	}{
		{"default interval", 80 * time.Millisecond, 1, 4.8},
		{"double speed", 80 * time.Millisecond, 2, 9.6},
		{"half speed", 50 * time.Millisecond, 0.5, 1.5},
		{"one second", time.Second, 1, 60},
		{"zero speed falls back", 50 * time.Millisecond, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{FrameInterval: tt.interval, Speed: tt.speed}
			got := cfg.TicksPerFrame()
			if got < tt.want-1e-9 || got > tt.want+1e-9 {
				t.Errorf("TicksPerFrame() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestViewBeforeReady(t *testing.T) {
	m, err := New(DefaultConfig(), fixedBodies(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q before first size message", m.View())
	}
}

func TestWindowSizeSetsCanvas(t *testing.T) {
	m := newSizedModel(t)

	cols, rows := m.scene.Size()
	if cols != 120 || rows != 40 {
		t.Errorf("canvas = %dx%d, want 120x40", cols, rows)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 43 {
		t.Errorf("view lines = %d, want 43", len(lines))
	}
}

func TestAnimTickAdvances(t *testing.T) {
	m := newSizedModel(t)

	m, cmd := update(m, AnimTickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if m.Orrery().Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", m.Orrery().Ticks())
	}

	earth := m.Orrery().Bodies()[1]
	if earth.Angle <= 0 {
		t.Errorf("Earth angle = %f, want > 0", earth.Angle)
	}
}

func TestMouseHoverPausesAndLabels(t *testing.T) {
	m := newSizedModel(t)

	pos, _ := m.Orrery().Position("Earth")
	col, row := m.scene.CellAt(pos.X, pos.Y)

	m, _ = update(m, tea.MouseMsg{X: col, Y: row + headerHeight, Action: tea.MouseActionMotion})

	id, ok := m.Orrery().Hovered()
	if !ok || id != "Earth" {
		t.Fatalf("hovered = %q, %v; want Earth", id, ok)
	}

	angle := m.Orrery().Bodies()[1].Angle
	for i := 0; i < 5; i++ {
		m, _ = update(m, AnimTickMsg(time.Now()))
	}
	if got := m.Orrery().Bodies()[1].Angle; got != angle {
		t.Errorf("hovered Earth moved from %f to %f", angle, got)
	}

	canvas := m.scene.Render(false)
	if !strings.Contains(canvas, "Earth") {
		t.Error("canvas should show the Earth label")
	}

	// Pointer over the header leaves the scene.
	m, _ = update(m, tea.MouseMsg{X: col, Y: 0, Action: tea.MouseActionMotion})
	if _, ok := m.Orrery().Hovered(); ok {
		t.Error("nothing should be hovered with the pointer on the header")
	}
	if strings.Contains(m.scene.Render(false), "Earth") {
		t.Error("label should be gone after leave")
	}
}

func TestToggleOrbits(t *testing.T) {
	m := newSizedModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if m.scene.ShowOrbits() {
		t.Error("orbits should be hidden after 'o'")
	}
	if !strings.Contains(m.View(), "orbits (off)") {
		t.Error("footer should report orbits off")
	}
}

func TestQuitTearsDown(t *testing.T) {
	m := newSizedModel(t)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.Orrery().Closed() {
		t.Error("orrery should be torn down on quit")
	}
	if m.scene.Live() != 0 {
		t.Errorf("shapes left after quit: %d", m.scene.Live())
	}

	ticks := m.Orrery().Ticks()
	m, cmd = update(m, AnimTickMsg(time.Now()))
	if cmd != nil {
		t.Error("no tick should be scheduled after teardown")
	}
	if m.Orrery().Ticks() != ticks {
		t.Error("orrery advanced after teardown")
	}
}

func TestGradientColor(t *testing.T) {
	if got := gradientColor(0, 10); got != gradientStops[0].Hex() {
		t.Errorf("start = %s, want %s", got, gradientStops[0].Hex())
	}
	if got := gradientColor(9, 10); got != gradientStops[2].Hex() {
		t.Errorf("end = %s, want %s", got, gradientStops[2].Hex())
	}
	if got := gradientColor(0, 1); got != gradientStops[0].Hex() {
		t.Errorf("single = %s", got)
	}
}
