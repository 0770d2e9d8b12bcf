package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbAxes       = tcell.NewRGBColor(110, 115, 140) // Muted slate
	RgbStatusBg   = tcell.NewRGBColor(40, 50, 70)
	RgbStatusText = tcell.NewRGBColor(200, 200, 200)
)

// Marker hue spread, in HCL chroma/lightness
const (
	markerChroma    = 0.55
	markerLightness = 0.75
)

// MarkerColors returns n colors with evenly spaced hues
func MarkerColors(n int) []tcell.Color {
	out := make([]tcell.Color, n)
	for i := range out {
		h := float64(i) * 360 / float64(n)
		c := colorful.Hcl(h, markerChroma, markerLightness).Clamped()
		out[i] = toTcell(c)
	}
	return out
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
