package orbit

// Layer is a body's draw order relative to the Sun.
type Layer int

const (
	LayerFront Layer = iota
	LayerBehind
)

// String returns the layer name.
func (l Layer) String() string {
	if l == LayerBehind {
		return "behind"
	}
	return "front"
}

// Depth decides whether a body at pos draws behind or in front of the Sun.
//
// Only transiting bodies are ever behind. The rule treats the upper half of
// the orbit (pos.Y < origin.Y) as the far side. This is a heuristic standing
// in for real depth, not a projection.
func Depth(b Body, pos, origin Point) Layer {
	if b.Orbit == nil || !b.Orbit.Transits {
		return LayerFront
	}
	if pos.Y < origin.Y {
		return LayerBehind
	}
	return LayerFront
}
