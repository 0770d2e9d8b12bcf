package graph

import "math"

// Coord is an integer cell or graph position
type Coord struct {
	X, Y int
}

// Size is a surface size in cells
type Size struct {
	Width, Height int
}

// Empty reports whether the surface has no cells
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Saturation bounds for float to int conversion, well inside int64 so that
// adding a center or offset afterwards cannot wrap for realistic surfaces
const (
	maxCoord = 1 << 62
	minCoord = -maxCoord
)

// truncate converts toward zero, saturating at the coordinate bounds
// NaN maps to 0; callers that care filter it before calling
func truncate(f float64) int {
	switch {
	case f != f:
		return 0
	case f >= maxCoord:
		return maxCoord
	case f <= minCoord:
		return minCoord
	}
	return int(f)
}

// ScaleFactor returns 0.5^scale, the graph units covered by one cell
// Computed exactly as a power of two; finite and positive for every int8
func ScaleFactor(scale int8) float64 {
	return math.Ldexp(1, -int(scale))
}

// ScreenCenter returns the terminal cell that graph (0, 0) maps to
func ScreenCenter(size Size, offset Coord) Coord {
	return Coord{
		X: size.Width/2 + offset.X,
		Y: size.Height/2 - offset.Y,
	}
}

// ToGraphSpace converts a terminal cell to graph space
// Each component is truncated toward zero after scaling
func ToGraphSpace(term, center Coord, scaleFactor float64) Coord {
	return Coord{
		X: truncate(float64(term.X-center.X) * scaleFactor),
		Y: -truncate(float64(term.Y-center.Y) * scaleFactor),
	}
}

// ToTerminalSpace converts a graph coordinate to a terminal cell
//
// Round trip ToTerminalSpace(ToGraphSpace(c)) returns c exactly while
// scaleFactor >= 1. Zoomed in (scaleFactor < 1) several cells share one graph
// coordinate and the round trip lands on the cell nearest center among them,
// up to ceil(1/scaleFactor)-1 cells away; at scaleFactor 0.5 that is ±1.
func ToTerminalSpace(g, center Coord, scaleFactor float64) Coord {
	return Coord{
		X: truncate(float64(g.X)/scaleFactor) + center.X,
		Y: truncate(-float64(g.Y)/scaleFactor) + center.Y,
	}
}
