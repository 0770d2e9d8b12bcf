package graph

import "math"

// Viewport maps graph space onto the surface
// Offset shifts the origin from the geometric center (+y up); Scale is the zoom
// exponent: positive zooms in, negative zooms out
type Viewport struct {
	Offset Coord
	Scale  int8
}

// ScaleFactor returns the effective graph units per cell
func (v Viewport) ScaleFactor() float64 {
	return ScaleFactor(v.Scale)
}

// Center returns the terminal cell of the graph origin for the given surface
func (v Viewport) Center(size Size) Coord {
	return ScreenCenter(size, v.Offset)
}

// Pan moves the origin by a cell displacement
func (v *Viewport) Pan(dx, dy int) {
	v.Offset.X += dx
	v.Offset.Y += dy
}

// Zoom adds delta to the scale exponent, saturating at the int8 range
func (v *Viewport) Zoom(delta int) {
	s := int(v.Scale) + delta
	if s > math.MaxInt8 {
		s = math.MaxInt8
	}
	if s < math.MinInt8 {
		s = math.MinInt8
	}
	v.Scale = int8(s)
}

// Reset returns to the unshifted, unscaled view
func (v *Viewport) Reset() {
	*v = Viewport{}
}
