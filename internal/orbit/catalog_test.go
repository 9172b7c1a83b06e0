package orbit

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if len(catalog) != 9 {
		t.Fatalf("expected 9 bodies, got %d", len(catalog))
	}
	if catalog[0].Kind != KindSun || catalog[0].Orbit != nil {
		t.Errorf("first body should be the orbitless Sun, got %+v", catalog[0])
	}

	var transiting []string
	for _, b := range catalog {
		if b.Orbit != nil && b.Orbit.Transits {
			transiting = append(transiting, b.ID)
		}
	}
	if len(transiting) != 2 || transiting[0] != "Mercury" || transiting[1] != "Venus" {
		t.Errorf("transiting bodies = %v, want [Mercury Venus]", transiting)
	}
}

func TestNewSystem(t *testing.T) {
	catalog := DefaultCatalog()
	bodies := NewSystem(catalog, rand.New(rand.NewPCG(1, 2)))

	if err := Validate(bodies); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	for _, b := range bodies {
		if b.Angle < 0 || b.Angle >= TwoPi {
			t.Errorf("%s: angle %f out of range", b.ID, b.Angle)
		}
		if b.Paused || b.LabelVisible {
			t.Errorf("%s: should start idle", b.ID)
		}
	}

	// Orbits are copied, not shared with the catalog.
	bodies[1].Orbit.SemiMajor = 999
	if catalog[1].Orbit.SemiMajor == 999 {
		t.Error("NewSystem shares orbit pointers with catalog")
	}
}

func TestNewSystemDeterministicSeed(t *testing.T) {
	a := NewSystem(DefaultCatalog(), rand.New(rand.NewPCG(42, 42)))
	b := NewSystem(DefaultCatalog(), rand.New(rand.NewPCG(42, 42)))

	for i := range a {
		if a[i].Angle != b[i].Angle {
			t.Errorf("%s: angles differ with the same seed: %f vs %f", a[i].ID, a[i].Angle, b[i].Angle)
		}
	}
}

func TestValidate(t *testing.T) {
	sun := func() *Body { return &Body{ID: "Sun", Kind: KindSun, Radius: 30} }
	planet := func(id string) *Body {
		return &Body{ID: id, Kind: KindPlanet, Radius: 4,
			Orbit: &Orbit{SemiMajor: 60, SemiMinor: 20, AngularSpeed: 0.01}}
	}

	tests := []struct {
		name   string
		bodies []*Body
		want   error
	}{
		{"valid", []*Body{sun(), planet("A"), planet("B")}, nil},
		{"no sun", []*Body{planet("A")}, ErrNoSun},
		{"two suns", []*Body{sun(), {ID: "Sun2", Kind: KindSun, Radius: 10}}, ErrMultipleSuns},
		{"duplicate id", []*Body{sun(), planet("A"), planet("A")}, ErrDuplicateID},
		{"empty id", []*Body{sun(), planet("")}, ErrDuplicateID},
		{"planet without orbit", []*Body{sun(), {ID: "A", Kind: KindPlanet, Radius: 3}}, ErrBadOrbit},
		{"sun with orbit", []*Body{{ID: "Sun", Kind: KindSun, Radius: 30, Orbit: &Orbit{SemiMajor: 1, SemiMinor: 1}}}, ErrBadOrbit},
		{"zero semi-axis", []*Body{sun(), {ID: "A", Kind: KindPlanet, Radius: 3, Orbit: &Orbit{SemiMajor: 10}}}, ErrBadOrbit},
		{"zero radius", []*Body{sun(), {ID: "A", Kind: KindPlanet, Orbit: &Orbit{SemiMajor: 10, SemiMinor: 5}}}, ErrBadOrbit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.bodies)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
