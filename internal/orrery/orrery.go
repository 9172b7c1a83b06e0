// Package orrery is the animated solar-system component. It owns the bodies,
// advances them once per frame, decides their draw order against the Sun, and
// turns pointer hover into pause and label state. All drawing goes through a
// Surface.
package orrery

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orbit"
)

// Mount errors.
var (
	ErrNoSurface   = errors.New("no drawing surface")
	ErrBadViewport = errors.New("invalid viewport")
)

// Config holds the fixed layout parameters of the orrery.
type Config struct {
	Width         float64 // Viewport width in surface units
	Height        float64 // Viewport height in surface units
	LabelOffset   float64 // Distance of a hover label above its body
	OrbitStroke   string  // Orbit outline colour
	TicksPerFrame float64 // Ticks advanced by each frame callback
}

// DefaultConfig returns the 800x600 viewport layout.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		LabelOffset:   10,
		OrbitStroke:   "gray",
		TicksPerFrame: 1,
	}
}

// entry pairs a body with the surface shapes drawn for it.
type entry struct {
	body     *orbit.Body
	shape    ShapeID
	path     ShapeID // orbit outline, planets only
	label    ShapeID
	hasLabel bool
}

// Orrery is a mounted solar-system component.
type Orrery struct {
	cfg     Config
	surface Surface
	logger  *logging.Logger
	origin  orbit.Point

	entries []*entry
	byID    map[string]*entry
	sun     *entry

	cancelFrame func()
	ticks       uint64
	closed      bool
}

// Mount validates the inputs, draws every body onto surface and subscribes to
// frames and pointer events. On error nothing has been drawn or subscribed.
// A nil pointer wrapped in surface counts as no surface.
func Mount(surface Surface, cfg Config, bodies []*orbit.Body, logger *logging.Logger) (*Orrery, error) {
	if isNil(surface) {
		return nil, ErrNoSurface
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%gx%g: %w", cfg.Width, cfg.Height, ErrBadViewport)
	}
	if err := orbit.Validate(bodies); err != nil {
		return nil, fmt.Errorf("validate bodies: %w", err)
	}
	if cfg.TicksPerFrame <= 0 {
		cfg.TicksPerFrame = 1
	}
	if logger == nil {
		logger = logging.Discard()
	}

	o := &Orrery{
		cfg:     cfg,
		surface: surface,
		logger:  logger,
		origin:  orbit.Point{X: cfg.Width / 2, Y: cfg.Height / 2},
		byID:    make(map[string]*entry, len(bodies)),
	}
	for _, b := range bodies {
		e := &entry{body: b}
		o.entries = append(o.entries, e)
		o.byID[b.ID] = e
		if b.Kind == orbit.KindSun {
			o.sun = e
		}
	}

	o.draw()
	o.cancelFrame = surface.OnFrame(o.Tick)

	o.logger.Info("Mounted %d bodies on %gx%g viewport", len(bodies), cfg.Width, cfg.Height)
	return o, nil
}

func isNil(surface Surface) bool {
	if surface == nil {
		return true
	}
	v := reflect.ValueOf(surface)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// draw creates every shape in back-to-front order: orbit outlines, the Sun,
// then the planets.
func (o *Orrery) draw() {
	for _, e := range o.entries {
		if e.body.Orbit == nil {
			continue
		}
		e.path = o.surface.Ellipse(o.origin.X, o.origin.Y,
			e.body.Orbit.SemiMajor, e.body.Orbit.SemiMinor, o.cfg.OrbitStroke)
	}

	o.sun.shape = o.surface.Circle(o.origin.X, o.origin.Y, o.sun.body.Radius, o.sun.body.Color)

	for _, e := range o.entries {
		if e == o.sun {
			continue
		}
		id := e.body.ID
		pos := e.body.Position(o.origin)
		e.shape = o.surface.Circle(pos.X, pos.Y, e.body.Radius, e.body.Color)
		o.surface.OnPointer(e.shape,
			func() { o.PointerEnter(id) },
			func() { o.PointerLeave(id) },
		)
	}
}

// Tick advances the orrery by one frame.
func (o *Orrery) Tick() {
	o.Step(o.cfg.TicksPerFrame)
}

// Advance steps the orrery n single ticks, independent of the frame rate.
func (o *Orrery) Advance(n int) {
	for i := 0; i < n; i++ {
		o.Step(1)
	}
}

// Step advances every body by dt ticks and pushes the new positions, label
// anchors and draw order to the surface. It does nothing after Teardown.
func (o *Orrery) Step(dt float64) {
	if o.closed {
		return
	}
	o.ticks++

	for _, e := range o.entries {
		if e == o.sun {
			continue
		}
		b := e.body
		b.Advance(dt)

		pos := b.Position(o.origin)
		o.surface.Move(e.shape, pos.X, pos.Y)
		if e.hasLabel {
			o.surface.Move(e.label, pos.X, pos.Y-o.cfg.LabelOffset)
		}

		// Depth is reapplied even while paused.
		if !b.Orbit.Transits {
			continue
		}
		switch orbit.Depth(*b, pos, o.origin) {
		case orbit.LayerBehind:
			o.surface.PlaceBefore(e.shape, o.sun.shape)
		default:
			o.surface.BringToFront(e.shape)
		}
	}
}

// PointerEnter pauses the named body and shows its label. Repeated calls
// without a PointerLeave in between do nothing.
func (o *Orrery) PointerEnter(id string) {
	e, ok := o.planet(id)
	if !ok {
		return
	}
	if !e.body.Hover() {
		return
	}
	if !e.hasLabel {
		pos := e.body.Position(o.origin)
		e.label = o.surface.Text(pos.X, pos.Y-o.cfg.LabelOffset, e.body.ID)
		e.hasLabel = true
	}
	o.logger.Debug("%s paused", id)
}

// PointerLeave resumes the named body and removes its label. Calling it on
// an idle body does nothing.
func (o *Orrery) PointerLeave(id string) {
	e, ok := o.planet(id)
	if !ok {
		return
	}
	resumed := e.body.Unhover()
	if e.hasLabel {
		o.surface.Remove(e.label)
		e.hasLabel = false
	}
	if resumed {
		o.logger.Debug("%s resumed", id)
	}
}

func (o *Orrery) planet(id string) (*entry, bool) {
	if o.closed {
		return nil, false
	}
	e, ok := o.byID[id]
	if !ok {
		o.logger.Debug("Pointer event for unknown body %q", id)
		return nil, false
	}
	if e == o.sun {
		return nil, false
	}
	return e, true
}

// Teardown cancels the frame subscription, clears hover state and removes
// every shape the orrery created. It is safe to call more than once.
func (o *Orrery) Teardown() {
	if o.closed {
		return
	}
	o.closed = true

	if o.cancelFrame != nil {
		o.cancelFrame()
		o.cancelFrame = nil
	}

	for _, e := range o.entries {
		if e == o.sun {
			continue
		}
		o.surface.OffPointer(e.shape)
		e.body.Unhover()
		if e.hasLabel {
			o.surface.Remove(e.label)
			e.hasLabel = false
		}
		o.surface.Remove(e.shape)
	}
	o.surface.Remove(o.sun.shape)
	for _, e := range o.entries {
		if e != o.sun {
			o.surface.Remove(e.path)
		}
	}

	o.logger.Info("Torn down after %d ticks", o.ticks)
}

// Closed reports whether Teardown has run.
func (o *Orrery) Closed() bool {
	return o.closed
}

// Origin returns the shared orbit centre.
func (o *Orrery) Origin() orbit.Point {
	return o.origin
}

// Ticks returns the number of frames stepped so far.
func (o *Orrery) Ticks() uint64 {
	return o.ticks
}

// Bodies returns a copy of every body's current state, in mount order.
func (o *Orrery) Bodies() []orbit.Body {
	out := make([]orbit.Body, len(o.entries))
	for i, e := range o.entries {
		out[i] = *e.body
	}
	return out
}

// Position returns the current position of the named body.
func (o *Orrery) Position(id string) (orbit.Point, bool) {
	e, ok := o.byID[id]
	if !ok {
		return orbit.Point{}, false
	}
	return e.body.Position(o.origin), true
}

// Hovered returns the id of the first paused body, if any.
func (o *Orrery) Hovered() (string, bool) {
	for _, e := range o.entries {
		if e.body.Paused {
			return e.body.ID, true
		}
	}
	return "", false
}
