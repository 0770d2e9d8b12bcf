package graph

import "io"

// DefaultPalette is cycled by AddFunctionLayer when no marker is given
var DefaultPalette = []rune{'#', '@', 'o', '+', '$', '%'}

// Canvas composites an ordered layer list through a Viewport
// Layers earlier in the list win a cell over later ones
type Canvas struct {
	layers   []Drawable
	viewport Viewport
	palette  []rune
	next     int // next palette index
}

// NewCanvas returns a canvas with the given layers in priority order
func NewCanvas(layers ...Drawable) *Canvas {
	return &Canvas{
		layers:  append([]Drawable(nil), layers...),
		palette: DefaultPalette,
	}
}

// NewDefaultCanvas returns a canvas holding only axes through the origin
func NewDefaultCanvas() *Canvas {
	return NewCanvas(NewAxes())
}

// Layers returns the layers in priority order
func (c *Canvas) Layers() []Drawable {
	return c.layers
}

// AddLayer inserts d in front of all existing layers
func (c *Canvas) AddLayer(d Drawable) {
	c.layers = append(c.layers, nil)
	copy(c.layers[1:], c.layers)
	c.layers[0] = d
}

// AppendLayer adds d behind all existing layers
func (c *Canvas) AppendLayer(d Drawable) {
	c.layers = append(c.layers, d)
}

// AddFunctionLayer plots fn in front of all existing layers
// A zero marker takes the next palette rune, cycling
func (c *Canvas) AddFunctionLayer(fn Func, marker rune) *FunctionSeries {
	if marker == 0 {
		marker = c.nextMarker()
	}
	s := NewFunctionSeries(fn, marker)
	c.AddLayer(s)
	return s
}

// SetPalette replaces the marker palette and restarts the cycle
// An empty palette restores DefaultPalette
func (c *Canvas) SetPalette(p []rune) {
	if len(p) == 0 {
		p = DefaultPalette
	}
	c.palette = append([]rune(nil), p...)
	c.next = 0
}

func (c *Canvas) nextMarker() rune {
	r := c.palette[c.next%len(c.palette)]
	c.next = (c.next + 1) % len(c.palette)
	return r
}

// Viewport returns the current viewport
func (c *Canvas) Viewport() Viewport {
	return c.viewport
}

// ViewportRef returns the viewport for in-place mutation between frames
func (c *Canvas) ViewportRef() *Viewport {
	return &c.viewport
}

// SetOffset replaces the viewport offset, effective on the next render
func (c *Canvas) SetOffset(offset Coord) {
	c.viewport.Offset = offset
}

// SetScale replaces the zoom exponent, effective on the next render
func (c *Canvas) SetScale(scale int8) {
	c.viewport.Scale = scale
}

// PrepareFrame prepares every layer; order among layers is not significant
// A canvas nested as a layer is driven by the outer viewport, not its own
func (c *Canvas) PrepareFrame(size Size, scaleFactor float64, offset Coord) {
	for _, l := range c.layers {
		l.PrepareFrame(size, scaleFactor, offset)
	}
}

// SampleAt returns the first rune offered by the layers in priority order
func (c *Canvas) SampleAt(graph, term Coord) (rune, bool) {
	for _, l := range c.layers {
		if r, ok := l.SampleAt(graph, term); ok {
			return r, true
		}
	}
	return 0, false
}

// Render produces one frame for the surface size
// Output depends only on the viewport, layers and size at call time
func (c *Canvas) Render(size Size) *Frame {
	if size.Empty() {
		return &Frame{}
	}

	scaleFactor := c.viewport.ScaleFactor()
	c.PrepareFrame(size, scaleFactor, c.viewport.Offset)

	center := ScreenCenter(size, c.viewport.Offset)
	f := &Frame{
		size:  size,
		cells: make([]rune, size.Width*size.Height),
	}

	for y := 0; y < size.Height; y++ {
		row := f.cells[y*size.Width : (y+1)*size.Width]
		for x := range row {
			term := Coord{X: x, Y: y}
			if r, ok := c.SampleAt(ToGraphSpace(term, center, scaleFactor), term); ok {
				row[x] = r
			} else {
				row[x] = Blank
			}
		}
	}
	return f
}

// Draw renders a frame and writes it to w
func (c *Canvas) Draw(w io.Writer, size Size) error {
	_, err := c.Render(size).WriteTo(w)
	return err
}
