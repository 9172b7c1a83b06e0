package orbit

import (
	"math"
	"testing"
)

func TestDepthQuadrants(t *testing.T) {
	origin := Point{X: 400, Y: 300}

	// Angles in the middle of each quadrant; sin > 0 means y > origin (front).
	quadrants := []struct {
		name  string
		angle float64
		want  Layer
	}{
		{"Q1", math.Pi / 4, LayerFront},
		{"Q2", 3 * math.Pi / 4, LayerFront},
		{"Q3", 5 * math.Pi / 4, LayerBehind},
		{"Q4", 7 * math.Pi / 4, LayerBehind},
	}

	for _, speed := range []float64{0.004, -0.004} {
		for _, q := range quadrants {
			t.Run(q.name, func(t *testing.T) {
				b := Body{
					ID:     "Mercury",
					Kind:   KindPlanet,
					Radius: 4,
					Orbit:  &Orbit{SemiMajor: 60, SemiMinor: 20, AngularSpeed: speed, Transits: true},
					Angle:  q.angle,
				}
				pos := b.Position(origin)
				if got := Depth(b, pos, origin); got != q.want {
					t.Errorf("speed %g angle %.3f: depth = %s, want %s", speed, q.angle, got, q.want)
				}
			})
		}
	}
}

func TestDepthFullRevolution(t *testing.T) {
	origin := Point{X: 400, Y: 300}

	for _, speed := range []float64{0.05, -0.05} {
		b := &Body{
			ID:     "Venus",
			Kind:   KindPlanet,
			Radius: 7,
			Orbit:  &Orbit{SemiMajor: 90, SemiMinor: 30, AngularSpeed: speed, Transits: true},
		}
		steps := int(TwoPi/math.Abs(speed)) + 1
		for i := 0; i < steps; i++ {
			b.Advance(1)
			pos := b.Position(origin)
			got := Depth(*b, pos, origin)
			want := LayerFront
			if pos.Y < origin.Y {
				want = LayerBehind
			}
			if got != want {
				t.Fatalf("speed %g step %d (y=%f): depth = %s, want %s", speed, i, pos.Y, got, want)
			}
		}
	}
}

func TestDepthBoundaryIsFront(t *testing.T) {
	origin := Point{X: 400, Y: 300}
	b := Body{ID: "Mercury", Kind: KindPlanet, Radius: 4,
		Orbit: &Orbit{SemiMajor: 60, SemiMinor: 20, Transits: true}}

	if got := Depth(b, Point{X: 460, Y: 300}, origin); got != LayerFront {
		t.Errorf("y == origin: depth = %s, want front", got)
	}
}

func TestDepthNonTransitingAlwaysFront(t *testing.T) {
	origin := Point{X: 400, Y: 300}
	b := Body{ID: "Earth", Kind: KindPlanet, Radius: 8,
		Orbit: &Orbit{SemiMajor: 120, SemiMinor: 40}}

	for _, angle := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		b.Angle = angle
		if got := Depth(b, b.Position(origin), origin); got != LayerFront {
			t.Errorf("angle %.3f: depth = %s, want front", angle, got)
		}
	}

	sun := Body{ID: "Sun", Kind: KindSun, Radius: 30}
	if got := Depth(sun, origin, origin); got != LayerFront {
		t.Errorf("sun depth = %s, want front", got)
	}
}
