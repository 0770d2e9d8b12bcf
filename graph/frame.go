package graph

import (
	"io"
	"strings"
)

// Blank fills cells no layer claims
const Blank = ' '

// Frame is one rendered surface, row-major
type Frame struct {
	size  Size
	cells []rune
}

// Size returns the frame dimensions; zero for an empty frame
func (f *Frame) Size() Size {
	return f.size
}

// At returns the rune at a cell, Blank outside the frame
func (f *Frame) At(x, y int) rune {
	if x < 0 || y < 0 || x >= f.size.Width || y >= f.size.Height {
		return Blank
	}
	return f.cells[y*f.size.Width+x]
}

// Row returns one row as a string without terminator
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.size.Height {
		return ""
	}
	return string(f.cells[y*f.size.Width : (y+1)*f.size.Width])
}

// String returns all rows, each followed by a newline
func (f *Frame) String() string {
	var sb strings.Builder
	// +1 per row for the terminator; multi-byte glyphs grow past this
	sb.Grow(f.size.Height * (f.size.Width + 1))
	for y := 0; y < f.size.Height; y++ {
		for _, r := range f.cells[y*f.size.Width : (y+1)*f.size.Width] {
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the frame text to w in a single write
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}
