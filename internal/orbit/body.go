// Package orbit models the bodies of the orrery: their static orbital
// parameters, their angular state, and the rules that decide hover pausing
// and draw depth.
package orbit

import "math"

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math.Pi

// Kind categorizes a body.
type Kind int

const (
	KindSun Kind = iota
	KindPlanet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Point is a position in viewport coordinates (Y grows downward).
type Point struct {
	X, Y float64
}

// Orbit holds the fixed elliptical path of a planet around the shared origin.
type Orbit struct {
	SemiMajor    float64 // X radius
	SemiMinor    float64 // Y radius
	AngularSpeed float64 // Radians per tick, may be negative
	Transits     bool    // Passes behind the Sun's disk
}

// Body is one entry of the orrery: the Sun or a planet.
type Body struct {
	ID     string
	Kind   Kind
	Radius float64
	Color  string
	Orbit  *Orbit // nil for the Sun

	Angle        float64 // Always in [0, 2π)
	Paused       bool
	LabelVisible bool
}

// Advance moves the body along its orbit by dt ticks. Paused bodies and the
// Sun do not move.
func (b *Body) Advance(dt float64) {
	if b.Paused || b.Orbit == nil {
		return
	}
	b.Angle = NormalizeAngle(b.Angle + b.Orbit.AngularSpeed*dt)
}

// Position returns the body's current location relative to origin.
func (b Body) Position(origin Point) Point {
	if b.Orbit == nil {
		return origin
	}
	return Point{
		X: origin.X + b.Orbit.SemiMajor*math.Cos(b.Angle),
		Y: origin.Y + b.Orbit.SemiMinor*math.Sin(b.Angle),
	}
}

// Hover pauses the body and marks its label visible. It reports whether the
// body was idle before the call.
func (b *Body) Hover() bool {
	if b.Paused {
		return false
	}
	b.Paused = true
	b.LabelVisible = true
	return true
}

// Unhover resumes the body and hides its label. It reports whether the body
// was hovered before the call.
func (b *Body) Unhover() bool {
	if !b.Paused {
		return false
	}
	b.Paused = false
	b.LabelVisible = false
	return true
}

// NormalizeAngle wraps a to the range [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// a tiny negative remainder can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}
