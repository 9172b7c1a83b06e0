package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs used by the rasterizer.
const (
	glyphEmpty = ' '
	glyphOrbit = '·'
	glyphDisk  = '█'
	glyphDot   = '●'
)

type cell struct {
	ch    rune
	color string // hex, empty for blank cells
}

// Render rasterizes the scene. With colored false the output is plain text.
func (s *Scene) Render(colored bool) string {
	grid := s.rasterize()
	if len(grid) == 0 {
		return ""
	}

	var b strings.Builder
	styles := make(map[string]lipgloss.Style)

	for y, row := range grid {
		var run strings.Builder
		runColor := ""

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if !colored || runColor == "" {
				b.WriteString(run.String())
			} else {
				style, ok := styles[runColor]
				if !ok {
					style = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor))
					styles[runColor] = style
				}
				b.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}

		for _, c := range row {
			if c.color != runColor {
				flush()
				runColor = c.color
			}
			run.WriteRune(c.ch)
		}
		flush()

		if y < len(grid)-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func (s *Scene) rasterize() [][]cell {
	if s.cols <= 0 || s.rows <= 0 {
		return nil
	}

	grid := make([][]cell, s.rows)
	for y := range grid {
		grid[y] = make([]cell, s.cols)
		for x := range grid[y] {
			grid[y][x] = cell{ch: glyphEmpty}
		}
	}

	p := s.projection()
	for _, sh := range s.shapes {
		switch sh.kind {
		case kindEllipse:
			if s.showOrbits {
				s.drawEllipse(grid, p, sh)
			}
		case kindCircle:
			s.drawDisk(grid, p, sh)
		case kindText:
			s.drawText(grid, p, sh)
		}
	}

	return grid
}

// drawEllipse plots a dashed outline on empty cells only.
func (s *Scene) drawEllipse(grid [][]cell, p projection, sh *shape) {
	cx, cy := p.toCell(sh.x, sh.y)
	rx := sh.rx * p.scale
	ry := sh.ry * p.scale / 2
	if rx < 1 && ry < 1 {
		return
	}

	steps := int(2 * math.Pi * math.Max(rx, ry))
	if steps < 16 {
		steps = 16
	}
	if steps > 720 {
		steps = 720
	}

	color := ResolveColor(sh.color).Hex()
	for i := 0; i < steps; i++ {
		// two on, one off
		if i%3 == 2 {
			continue
		}
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Floor(cx + rx*math.Cos(theta)))
		y := int(math.Floor(cy + ry*math.Sin(theta)))
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			continue
		}
		if grid[y][x].ch == glyphEmpty {
			grid[y][x] = cell{ch: glyphOrbit, color: color}
		}
	}
}

// drawDisk fills every covered cell, darkening the rim.
func (s *Scene) drawDisk(grid [][]cell, p projection, sh *shape) {
	cx, cy := p.toCell(sh.x, sh.y)
	rc := sh.r * p.scale
	base := ResolveColor(sh.color)

	if rc < 1 {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = cell{ch: glyphDot, color: base.Hex()}
		}
		return
	}

	x0 := int(math.Floor(cx - rc))
	x1 := int(math.Ceil(cx + rc))
	y0 := int(math.Floor(cy - rc/2))
	y1 := int(math.Ceil(cy + rc/2))

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= len(grid[y]) || !p.covers(sh, x, y) {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := (float64(y) + 0.5 - cy) * 2
			rim := math.Sqrt(dx*dx+dy*dy) / rc
			grid[y][x] = cell{ch: glyphDisk, color: shade(base, rimShade(rim))}
		}
	}
}

// rimShade returns how far to darken a disk cell at relative distance d
// from the centre.
func rimShade(d float64) float64 {
	if d < 0.7 {
		return 0
	}
	return math.Min(0.45, (d-0.7)*1.5)
}

// drawText writes a label centred horizontally on its anchor.
func (s *Scene) drawText(grid [][]cell, p projection, sh *shape) {
	cx, cy := p.toCell(sh.x, sh.y)
	y := int(math.Floor(cy))
	if y < 0 || y >= len(grid) {
		return
	}

	runes := []rune(sh.text)
	start := int(math.Round(cx)) - len(runes)/2
	color := ResolveColor(sh.color).Hex()
	for i, r := range runes {
		x := start + i
		if x < 0 || x >= len(grid[y]) {
			continue
		}
		grid[y][x] = cell{ch: r, color: color}
	}
}
