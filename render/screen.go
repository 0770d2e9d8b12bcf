package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgraph/graph"
)

// statusRows is the number of rows below the plot reserved for the status line
const statusRows = 1

// Sink writes finished frames into a tcell screen
// Styling is applied here; the frame itself carries only runes
type Sink struct {
	screen      tcell.Screen
	base        tcell.Style
	axisStyle   tcell.Style
	statusStyle tcell.Style
	styles      map[rune]tcell.Style
}

// NewSink returns a sink drawing to screen
func NewSink(screen tcell.Screen) *Sink {
	base := tcell.StyleDefault.Background(RgbBackground)
	return &Sink{
		screen:      screen,
		base:        base,
		axisStyle:   base.Foreground(RgbAxes),
		statusStyle: tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText),
		styles:      make(map[rune]tcell.Style),
	}
}

// SetAxisGlyphs styles the axis runes
func (s *Sink) SetAxisGlyphs(g graph.AxisGlyphs) {
	for _, r := range []rune{g.Vertical, g.Horizontal, g.Origin} {
		s.styles[r] = s.axisStyle
	}
}

// SetMarkers gives each marker its own color; later calls win for shared runes
func (s *Sink) SetMarkers(markers []rune) {
	colors := MarkerColors(len(markers))
	for i, r := range markers {
		s.styles[r] = s.base.Foreground(colors[i]).Bold(true)
	}
}

// Style returns the style a rune is drawn with
func (s *Sink) Style(r rune) tcell.Style {
	if st, ok := s.styles[r]; ok {
		return st
	}
	return s.base
}

// PlotSize returns the surface left for the plot after the status line
func (s *Sink) PlotSize() graph.Size {
	w, h := s.screen.Size()
	h -= statusRows
	if h < 0 {
		h = 0
	}
	return graph.Size{Width: w, Height: h}
}

// Draw copies a frame to the top-left of the screen
func (s *Sink) Draw(f *graph.Frame) {
	size := f.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			r := f.At(x, y)
			s.screen.SetContent(x, y, r, nil, s.Style(r))
		}
	}
}

// DrawStatus fills the status row with text, truncated to the screen width
func (s *Sink) DrawStatus(text string) {
	w, h := s.screen.Size()
	if h < statusRows {
		return
	}
	y := h - statusRows
	runes := []rune(text)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.screen.SetContent(x, y, r, nil, s.statusStyle)
	}
}

// Show presents the drawn content
func (s *Sink) Show() {
	s.screen.Show()
}
