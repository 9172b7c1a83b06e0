package scene

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors covers the CSS colour keywords used by the body catalog.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#FFFFFF",
	"gray":      "#808080",
	"grey":      "#808080",
	"yellow":    "#FFFF00",
	"orange":    "#FFA500",
	"blue":      "#0000FF",
	"red":       "#FF0000",
	"brown":     "#A52A2A",
	"goldenrod": "#DAA520",
	"lightblue": "#ADD8E6",
}

// fallbackColor is used for names that are neither known keywords nor hex.
var fallbackColor = colorful.Color{R: 1, G: 1, B: 1}

// ResolveColor turns a CSS keyword or #rrggbb string into a colour.
func ResolveColor(name string) colorful.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return fallbackColor
	}
	return c
}

// shade darkens c toward black by t in [0, 1] and returns it as hex.
func shade(c colorful.Color, t float64) string {
	if t <= 0 {
		return c.Hex()
	}
	return c.BlendLab(colorful.Color{}, t).Clamped().Hex()
}
