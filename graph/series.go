package graph

import "math"

// Func is a plottable real function
type Func func(x float64) float64

// Evaluator is anything that can be evaluated at x, such as a parsed expression
type Evaluator interface {
	Eval(x float64) float64
}

// cachedRow is the terminal row of a column; onSurface is false for
// non-finite samples, which never match a cell
type cachedRow struct {
	y         int
	onSurface bool
}

// FunctionSeries samples a function once per terminal column and draws a marker
// at the resulting row. Adjacent samples are not connected
type FunctionSeries struct {
	fn     Func
	marker rune
	rows   []cachedRow
}

// NewFunctionSeries returns a layer owning fn
func NewFunctionSeries(fn Func, marker rune) *FunctionSeries {
	return &FunctionSeries{fn: fn, marker: marker}
}

// NewEvaluatorSeries returns a layer that plots e.Eval
func NewEvaluatorSeries(e Evaluator, marker rune) *FunctionSeries {
	return NewFunctionSeries(e.Eval, marker)
}

// Marker returns the rune drawn on the curve
func (s *FunctionSeries) Marker() rune {
	return s.marker
}

// SetMarker changes the rune drawn on the curve
func (s *FunctionSeries) SetMarker(r rune) {
	s.marker = r
}

// Columns returns the number of cached columns from the last frame
func (s *FunctionSeries) Columns() int {
	return len(s.rows)
}

// Row returns the cached terminal row for a column
// ok is false outside the cached range or where the sample was not finite
func (s *FunctionSeries) Row(col int) (y int, ok bool) {
	if col < 0 || col >= len(s.rows) {
		return 0, false
	}
	r := s.rows[col]
	return r.y, r.onSurface
}

// PrepareFrame evaluates the function at the graph x of every column
func (s *FunctionSeries) PrepareFrame(size Size, scaleFactor float64, offset Coord) {
	width := size.Width
	if width < 0 {
		width = 0
	}
	if cap(s.rows) < width {
		s.rows = make([]cachedRow, width)
	} else {
		s.rows = s.rows[:width]
	}

	center := ScreenCenter(size, offset)
	for xi := 0; xi < width; xi++ {
		x := ToGraphSpace(Coord{X: xi}, center, scaleFactor).X
		y := s.fn(float64(x))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			s.rows[xi] = cachedRow{}
			continue
		}
		row := ToTerminalSpace(Coord{Y: truncate(y)}, center, scaleFactor).Y
		s.rows[xi] = cachedRow{y: row, onSurface: true}
	}
}

func (s *FunctionSeries) SampleAt(_, term Coord) (rune, bool) {
	if y, ok := s.Row(term.X); ok && y == term.Y {
		return s.marker, true
	}
	return 0, false
}
