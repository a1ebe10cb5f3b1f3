package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// interpolateColor blends between two colors by t in [0, 1] in RGB space.
// Terminal-default colors have no RGB reading, so blends involving them snap
// at the midpoint.
func interpolateColor(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	if !from.Valid() || !to.Valid() {
		if t < 0.5 {
			return from
		}
		return to
	}
	blended := toColorful(from).BlendRgb(toColorful(to), t)
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
