// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/version"
)

// Layout rows around the canvas.
const (
	headerHeight = 2
	footerHeight = 1
)

// nominalFPS is the frame rate the catalog speeds are tuned for.
const nominalFPS = 60

// Config holds UI timing and layout settings.
type Config struct {
	FrameInterval time.Duration // Time between animation frames
	Speed         float64       // Multiplier on orbital speed
	LabelOffset   float64       // Hover label height above a body, viewport units
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 80 * time.Millisecond,
		Speed:         1,
		LabelOffset:   24, // clears the body by a row at typical sizes
	}
}

// TicksPerFrame converts the frame interval into orbit ticks so motion speed
// does not depend on the frame rate.
func (c Config) TicksPerFrame() float64 {
	speed := c.Speed
	if speed <= 0 {
		speed = 1
	}
	return c.FrameInterval.Seconds() * nominalFPS * speed
}

// AnimTickMsg triggers one animation frame.
type AnimTickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	cfg    Config
	logger *logging.Logger

	scene  *scene.Scene
	orrery *orrery.Orrery

	width    int
	height   int
	ready    bool
	animTick int
}

// New mounts an orrery for bodies on a fresh terminal scene.
func New(cfg Config, bodies []*orbit.Body, logger *logging.Logger) (Model, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	ocfg := orrery.DefaultConfig()
	ocfg.LabelOffset = cfg.LabelOffset
	ocfg.TicksPerFrame = cfg.TicksPerFrame()

	sc := scene.New(ocfg.Width, ocfg.Height, 0, 0)
	o, err := orrery.Mount(sc, ocfg, bodies, logger.Named("orrery"))
	if err != nil {
		return Model{}, fmt.Errorf("mount orrery: %w", err)
	}

	return Model{
		cfg:    cfg,
		logger: logger.Named("ui"),
		scene:  sc,
		orrery: o,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return animTickCmd(m.cfg.FrameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.orrery.Teardown()
			return m, tea.Quit
		case "o":
			m.scene.SetShowOrbits(!m.scene.ShowOrbits())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.scene.Resize(msg.Width, m.canvasRows())
		m.logger.Debug("Resized to %dx%d", msg.Width, msg.Height)

	case tea.MouseMsg:
		row := msg.Y - headerHeight
		if row < 0 || row >= m.canvasRows() || msg.X < 0 || msg.X >= m.width {
			m.scene.PointerExit()
		} else {
			m.scene.PointerMove(msg.X, row)
		}

	case AnimTickMsg:
		m.animTick++
		m.scene.RunFrame()
		// Stop scheduling once the orrery has released its frame callback.
		if m.scene.Active() {
			return m, animTickCmd(m.cfg.FrameInterval)
		}
	}

	return m, nil
}

func (m Model) canvasRows() int {
	rows := m.height - headerHeight - footerHeight
	if rows < 0 {
		return 0
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.orrery.Closed() {
		return ""
	}

	return m.renderHeader() + "\n" + m.scene.Render(true) + "\n" + m.renderFooter()
}

// Orrery returns the mounted component.
func (m Model) Orrery() *orrery.Orrery {
	return m.orrery
}

func (m Model) renderHeader() string {
	title := "  ☉ LS-ORRERY"
	var b strings.Builder

	runes := []rune(title)
	for i, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(i, len(runes)))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(muted.Render("  Solar System · Hover a planet to pause it"))

	return b.String()
}

// Gradient stops for the title: gold -> orange -> purple.
var gradientStops = []colorful.Color{
	{R: 0xFA / 255.0, G: 0xCC / 255.0, B: 0x15 / 255.0},
	{R: 0xF9 / 255.0, G: 0x73 / 255.0, B: 0x16 / 255.0},
	{R: 0x9D / 255.0, G: 0x4E / 255.0, B: 0xDD / 255.0},
}

// gradientColor returns a hex color for position col of width.
func gradientColor(col, width int) string {
	if width <= 1 {
		return gradientStops[0].Hex()
	}
	t := float64(col) / float64(width-1) * float64(len(gradientStops)-1)
	i := int(t)
	if i >= len(gradientStops)-1 {
		return gradientStops[len(gradientStops)-1].Hex()
	}
	return gradientStops[i].BlendHcl(gradientStops[i+1], t-float64(i)).Clamped().Hex()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	if id, ok := m.orrery.Hovered(); ok {
		status = focusStyle.Render("⏸ " + id)
	} else {
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" tick %d", m.orrery.Ticks()))
	}

	orbits := "on"
	if !m.scene.ShowOrbits() {
		orbits = "off"
	}
	help := dimStyle.Render(fmt.Sprintf("mouse: hover | o: orbits (%s) | q: quit", orbits))

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func animTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
