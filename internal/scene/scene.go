// Package scene is a retained-mode drawing surface for the terminal. Shapes
// live in viewport coordinates and are rasterized onto a character grid on
// demand; slice order is draw order, so later shapes occlude earlier ones.
package scene

import (
	"math"

	"github.com/litescript/ls-orrery/internal/orrery"
)

var _ orrery.Surface = (*Scene)(nil)

type shapeKind int

const (
	kindCircle shapeKind = iota
	kindEllipse
	kindText
)

type shape struct {
	id     orrery.ShapeID
	kind   shapeKind
	x, y   float64 // centre or text anchor
	r      float64 // circle radius
	rx, ry float64 // ellipse semi-axes
	color  string
	text   string
}

type pointerSub struct {
	enter, leave func()
}

type frameSub struct {
	fn        func()
	cancelled bool
}

// Scene implements orrery.Surface on a cols x rows cell grid showing a fixed
// width x height viewport.
type Scene struct {
	width, height float64
	cols, rows    int

	shapes []*shape
	byID   map[orrery.ShapeID]*shape
	next   orrery.ShapeID

	pointer map[orrery.ShapeID]pointerSub
	frames  []*frameSub

	pointerIn  bool
	pointerCol int
	pointerRow int
	hovered    orrery.ShapeID

	showOrbits bool
}

// New creates a scene for a width x height viewport drawn into cols x rows
// terminal cells.
func New(width, height float64, cols, rows int) *Scene {
	return &Scene{
		width:      width,
		height:     height,
		cols:       cols,
		rows:       rows,
		byID:       make(map[orrery.ShapeID]*shape),
		pointer:    make(map[orrery.ShapeID]pointerSub),
		showOrbits: true,
	}
}

// Resize changes the cell grid. Shapes keep their viewport coordinates.
func (s *Scene) Resize(cols, rows int) {
	s.cols = cols
	s.rows = rows
	if s.pointerIn {
		s.updateHover()
	}
}

// Size returns the cell grid dimensions.
func (s *Scene) Size() (cols, rows int) {
	return s.cols, s.rows
}

// SetShowOrbits toggles drawing of ellipse outlines.
func (s *Scene) SetShowOrbits(show bool) {
	s.showOrbits = show
}

// ShowOrbits reports whether ellipse outlines are drawn.
func (s *Scene) ShowOrbits() bool {
	return s.showOrbits
}

// Live returns the number of shapes currently in the scene.
func (s *Scene) Live() int {
	return len(s.shapes)
}

// Hovered returns the shape under the pointer, or 0.
func (s *Scene) Hovered() orrery.ShapeID {
	return s.hovered
}

func (s *Scene) add(sh *shape) orrery.ShapeID {
	s.next++
	sh.id = s.next
	s.shapes = append(s.shapes, sh)
	s.byID[sh.id] = sh
	return sh.id
}

// Circle implements orrery.Surface.
func (s *Scene) Circle(cx, cy, r float64, fill string) orrery.ShapeID {
	return s.add(&shape{kind: kindCircle, x: cx, y: cy, r: r, color: fill})
}

// Ellipse implements orrery.Surface.
func (s *Scene) Ellipse(cx, cy, rx, ry float64, stroke string) orrery.ShapeID {
	return s.add(&shape{kind: kindEllipse, x: cx, y: cy, rx: rx, ry: ry, color: stroke})
}

// Text implements orrery.Surface.
func (s *Scene) Text(x, y float64, content string) orrery.ShapeID {
	return s.add(&shape{kind: kindText, x: x, y: y, text: content, color: "white"})
}

// Move implements orrery.Surface.
func (s *Scene) Move(id orrery.ShapeID, x, y float64) {
	if sh, ok := s.byID[id]; ok {
		sh.x, sh.y = x, y
	}
}

func (s *Scene) indexOf(id orrery.ShapeID) int {
	for i, sh := range s.shapes {
		if sh.id == id {
			return i
		}
	}
	return -1
}

func (s *Scene) detach(id orrery.ShapeID) *shape {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	sh := s.shapes[i]
	s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
	return sh
}

// PlaceBefore implements orrery.Surface.
func (s *Scene) PlaceBefore(id, sibling orrery.ShapeID) {
	if id == sibling {
		return
	}
	if i, j := s.indexOf(id), s.indexOf(sibling); i < 0 || j < 0 || i == j-1 {
		return
	}
	sh := s.detach(id)
	j := s.indexOf(sibling)
	s.shapes = append(s.shapes[:j], append([]*shape{sh}, s.shapes[j:]...)...)
}

// BringToFront implements orrery.Surface.
func (s *Scene) BringToFront(id orrery.ShapeID) {
	i := s.indexOf(id)
	if i < 0 || i == len(s.shapes)-1 {
		return
	}
	sh := s.detach(id)
	s.shapes = append(s.shapes, sh)
}

// Remove implements orrery.Surface.
func (s *Scene) Remove(id orrery.ShapeID) {
	if s.detach(id) == nil {
		return
	}
	delete(s.byID, id)
	delete(s.pointer, id)
	if s.hovered == id {
		s.hovered = 0
	}
}

// OnPointer implements orrery.Surface.
func (s *Scene) OnPointer(id orrery.ShapeID, enter, leave func()) {
	s.pointer[id] = pointerSub{enter: enter, leave: leave}
}

// OffPointer implements orrery.Surface.
func (s *Scene) OffPointer(id orrery.ShapeID) {
	delete(s.pointer, id)
	if s.hovered == id {
		s.hovered = 0
	}
}

// OnFrame implements orrery.Surface.
func (s *Scene) OnFrame(fn func()) func() {
	sub := &frameSub{fn: fn}
	s.frames = append(s.frames, sub)
	return func() {
		sub.cancelled = true
	}
}

// RunFrame invokes every live frame callback once, then re-checks what is
// under the pointer since shapes may have moved.
func (s *Scene) RunFrame() {
	live := s.frames[:0]
	for _, sub := range s.frames {
		if !sub.cancelled {
			live = append(live, sub)
		}
	}
	s.frames = live

	for _, sub := range append([]*frameSub(nil), live...) {
		if !sub.cancelled {
			sub.fn()
		}
	}

	if s.pointerIn {
		s.updateHover()
	}
}

// Active reports whether any frame callback is still registered.
func (s *Scene) Active() bool {
	for _, sub := range s.frames {
		if !sub.cancelled {
			return true
		}
	}
	return false
}

// PointerMove places the pointer over cell (col, row) and dispatches leave
// and enter events for the shapes under it.
func (s *Scene) PointerMove(col, row int) {
	s.pointerIn = true
	s.pointerCol = col
	s.pointerRow = row
	s.updateHover()
}

// PointerExit removes the pointer from the scene.
func (s *Scene) PointerExit() {
	s.pointerIn = false
	s.setHovered(0)
}

func (s *Scene) updateHover() {
	s.setHovered(s.hitTest(s.pointerCol, s.pointerRow))
}

func (s *Scene) setHovered(id orrery.ShapeID) {
	if id == s.hovered {
		return
	}
	prev := s.hovered
	s.hovered = id
	if sub, ok := s.pointer[prev]; ok && sub.leave != nil {
		sub.leave()
	}
	if sub, ok := s.pointer[id]; ok && sub.enter != nil {
		sub.enter()
	}
}

// hitTest returns the subscribed circle on top at (col, row). Text and
// outlines never take the pointer. A circle without a subscription still
// blocks the ones beneath it.
func (s *Scene) hitTest(col, row int) orrery.ShapeID {
	p := s.projection()
	for i := len(s.shapes) - 1; i >= 0; i-- {
		sh := s.shapes[i]
		if sh.kind != kindCircle || !p.covers(sh, col, row) {
			continue
		}
		if _, ok := s.pointer[sh.id]; ok {
			return sh.id
		}
		return 0
	}
	return 0
}

// projection maps the viewport into the cell grid, preserving aspect with
// cells twice as tall as they are wide.
type projection struct {
	scale      float64 // cells per viewport unit, horizontally
	offX, offY float64
}

func (s *Scene) projection() projection {
	if s.cols <= 0 || s.rows <= 0 || s.width <= 0 || s.height <= 0 {
		return projection{}
	}
	scale := math.Min(float64(s.cols)/s.width, 2*float64(s.rows)/s.height)
	return projection{
		scale: scale,
		offX:  (float64(s.cols) - s.width*scale) / 2,
		offY:  (float64(s.rows) - s.height*scale/2) / 2,
	}
}

// CellAt returns the grid cell containing viewport point (x, y).
func (s *Scene) CellAt(x, y float64) (col, row int) {
	c, r := s.projection().toCell(x, y)
	return int(math.Floor(c)), int(math.Floor(r))
}

func (p projection) toCell(x, y float64) (col, row float64) {
	return p.offX + x*p.scale, p.offY + y*p.scale/2
}

// covers reports whether a circle paints cell (col, row). The cell holding
// the centre is always painted so tiny bodies stay visible.
func (p projection) covers(sh *shape, col, row int) bool {
	if p.scale == 0 {
		return false
	}
	cx, cy := p.toCell(sh.x, sh.y)
	if int(math.Floor(cx)) == col && int(math.Floor(cy)) == row {
		return true
	}
	rc := sh.r * p.scale
	dx := float64(col) + 0.5 - cx
	dy := (float64(row) + 0.5 - cy) * 2
	return dx*dx+dy*dy <= rc*rc
}
