package graph

// AxisGlyphs are the runes used by an Axes layer
type AxisGlyphs struct {
	Vertical   rune
	Horizontal rune
	Origin     rune
}

// DefaultAxisGlyphs are plain ASCII
var DefaultAxisGlyphs = AxisGlyphs{
	Vertical:   '|',
	Horizontal: '-',
	Origin:     '+',
}

// BoxAxisGlyphs use box-drawing lines
var BoxAxisGlyphs = AxisGlyphs{
	Vertical:   '│',
	Horizontal: '─',
	Origin:     '┼',
}

// Axes marks the horizontal and vertical lines through a graph-space origin
// Matching is exact on integer graph coordinates, so when zoomed out the axes
// only appear on the rows and columns that land on the origin exactly
type Axes struct {
	Origin Coord
	Glyphs AxisGlyphs
}

// NewAxes returns axes through graph (0, 0)
func NewAxes() *Axes {
	return NewAxesAt(Coord{})
}

// NewAxesAt returns axes through the given graph coordinate
func NewAxesAt(origin Coord) *Axes {
	return &Axes{Origin: origin, Glyphs: DefaultAxisGlyphs}
}

func (a *Axes) PrepareFrame(Size, float64, Coord) {}

func (a *Axes) SampleAt(graph, _ Coord) (rune, bool) {
	onVertical := graph.X == a.Origin.X
	onHorizontal := graph.Y == a.Origin.Y
	switch {
	case onVertical && onHorizontal:
		return a.Glyphs.Origin, true
	case onVertical:
		return a.Glyphs.Vertical, true
	case onHorizontal:
		return a.Glyphs.Horizontal, true
	}
	return 0, false
}
