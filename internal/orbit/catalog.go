package orbit

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Validation errors for a body set.
var (
	ErrNoSun        = errors.New("no sun in body set")
	ErrMultipleSuns = errors.New("more than one sun in body set")
	ErrDuplicateID  = errors.New("duplicate body id")
	ErrBadOrbit     = errors.New("invalid orbit")
)

// DefaultSpeed is the angular speed of every catalog planet, in radians per tick.
const DefaultSpeed = 0.004

// DefaultCatalog returns the Sun and the eight planets with their display
// radii, colours and orbit semi-axes. Angles are zero; see NewSystem.
func DefaultCatalog() []Body {
	planet := func(id, color string, r, rx, ry float64, transits bool) Body {
		return Body{
			ID:     id,
			Kind:   KindPlanet,
			Radius: r,
			Color:  color,
			Orbit: &Orbit{
				SemiMajor:    rx,
				SemiMinor:    ry,
				AngularSpeed: DefaultSpeed,
				Transits:     transits,
			},
		}
	}

	return []Body{
		{ID: "Sun", Kind: KindSun, Radius: 30, Color: "yellow"},
		planet("Mercury", "gray", 4, 60, 20, true),
		planet("Venus", "orange", 7, 90, 30, true),
		planet("Earth", "blue", 8, 120, 40, false),
		planet("Mars", "red", 6, 150, 50, false),
		planet("Jupiter", "brown", 12, 200, 70, false),
		planet("Saturn", "goldenrod", 10, 250, 90, false),
		planet("Uranus", "lightblue", 9, 300, 100, false),
		planet("Neptune", "blue", 9, 350, 110, false),
	}
}

// NewSystem copies catalog into independent bodies and gives every planet a
// uniformly random starting angle drawn from rng.
func NewSystem(catalog []Body, rng *rand.Rand) []*Body {
	bodies := make([]*Body, len(catalog))
	for i, c := range catalog {
		b := c
		if c.Orbit != nil {
			o := *c.Orbit
			b.Orbit = &o
			b.Angle = NormalizeAngle(rng.Float64() * TwoPi)
		}
		b.Paused = false
		b.LabelVisible = false
		bodies[i] = &b
	}
	return bodies
}

// Validate checks the invariants of a body set: exactly one Sun without an
// orbit, unique non-empty ids, and positive radii and semi-axes on planets.
func Validate(bodies []*Body) error {
	seen := make(map[string]bool, len(bodies))
	suns := 0

	for _, b := range bodies {
		if b == nil {
			return fmt.Errorf("nil body: %w", ErrBadOrbit)
		}
		if b.ID == "" {
			return fmt.Errorf("empty id: %w", ErrDuplicateID)
		}
		if seen[b.ID] {
			return fmt.Errorf("%s: %w", b.ID, ErrDuplicateID)
		}
		seen[b.ID] = true

		if b.Radius <= 0 {
			return fmt.Errorf("%s: radius %.2f: %w", b.ID, b.Radius, ErrBadOrbit)
		}

		switch b.Kind {
		case KindSun:
			suns++
			if b.Orbit != nil {
				return fmt.Errorf("%s: sun has an orbit: %w", b.ID, ErrBadOrbit)
			}
		case KindPlanet:
			if b.Orbit == nil {
				return fmt.Errorf("%s: planet has no orbit: %w", b.ID, ErrBadOrbit)
			}
			if b.Orbit.SemiMajor <= 0 || b.Orbit.SemiMinor <= 0 {
				return fmt.Errorf("%s: semi-axes %.2f/%.2f: %w",
					b.ID, b.Orbit.SemiMajor, b.Orbit.SemiMinor, ErrBadOrbit)
			}
		default:
			return fmt.Errorf("%s: unknown kind %d: %w", b.ID, b.Kind, ErrBadOrbit)
		}
	}

	switch {
	case suns == 0:
		return ErrNoSun
	case suns > 1:
		return ErrMultipleSuns
	}
	return nil
}
