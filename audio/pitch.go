package audio

import "math"

// Curve is a per-column row cache, as kept by graph.FunctionSeries
type Curve interface {
	Columns() int
	Row(col int) (y int, ok bool)
}

// Pitches maps each column's row to a frequency; 0 marks a silent column
// Top row plays highHz, bottom row lowHz, spaced exponentially so equal row
// steps sound like equal intervals. Rows off the plot are silent
func Pitches(c Curve, height int, lowHz, highHz float64) []float64 {
	out := make([]float64, c.Columns())
	if height <= 0 {
		return out
	}
	ratio := highHz / lowHz
	for col := range out {
		y, ok := c.Row(col)
		if !ok || y < 0 || y >= height {
			continue
		}
		t := 1.0
		if height > 1 {
			t = float64(height-1-y) / float64(height-1)
		}
		out[col] = lowHz * math.Pow(ratio, t)
	}
	return out
}
