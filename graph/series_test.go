package graph

import (
	"math"
	"testing"
)

func identity(x float64) float64 { return x }

func TestSeriesIdentityRows(t *testing.T) {
	s := NewFunctionSeries(identity, '#')
	size := Size{21, 21}
	s.PrepareFrame(size, 1, Coord{})

	if s.Columns() != 21 {
		t.Fatalf("Columns() = %d, want 21", s.Columns())
	}
	for x := 0; x < 21; x++ {
		y, ok := s.Row(x)
		if !ok || y != 20-x {
			t.Errorf("column %d: got (%d, %v), want (%d, true)", x, y, ok, 20-x)
		}
	}
}

func TestSeriesSampleAt(t *testing.T) {
	s := NewFunctionSeries(func(float64) float64 { return 2 }, '@')
	s.PrepareFrame(Size{10, 10}, 1, Coord{})

	// center row 5, graph y 2 lands on row 3
	if r, ok := s.SampleAt(Coord{}, Coord{4, 3}); !ok || r != '@' {
		t.Errorf("on curve: got (%q, %v)", r, ok)
	}
	if _, ok := s.SampleAt(Coord{}, Coord{4, 4}); ok {
		t.Error("off curve should be empty")
	}
	if _, ok := s.SampleAt(Coord{}, Coord{10, 3}); ok {
		t.Error("column past cache should be empty")
	}
	if _, ok := s.SampleAt(Coord{}, Coord{-1, 3}); ok {
		t.Error("negative column should be empty")
	}
}

func TestSeriesNonFiniteIsOffSurface(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFunctionSeries(func(float64) float64 { return tt.v }, '#')
			size := Size{8, 6}
			s.PrepareFrame(size, 1, Coord{})
			for x := 0; x < size.Width; x++ {
				if _, ok := s.Row(x); ok {
					t.Errorf("column %d cached as on-surface", x)
				}
				for y := -10; y < 20; y++ {
					if _, ok := s.SampleAt(Coord{}, Coord{x, y}); ok {
						t.Fatalf("drew at %d,%d", x, y)
					}
				}
			}
		})
	}
}

func TestSeriesEvaluatesIntegerGraphX(t *testing.T) {
	var xs []float64
	s := NewFunctionSeries(func(x float64) float64 {
		xs = append(xs, x)
		return 0
	}, '#')
	// scale factor 0.5: columns 0..5 around center 3 map to -1.5..1 truncated
	s.PrepareFrame(Size{6, 1}, 0.5, Coord{})
	want := []float64{-1, -1, 0, 0, 0, 1}
	if len(xs) != len(want) {
		t.Fatalf("got %d evaluations, want %d", len(xs), len(want))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("column %d evaluated at %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestSeriesCacheShrinksWithSurface(t *testing.T) {
	s := NewFunctionSeries(identity, '#')
	s.PrepareFrame(Size{40, 10}, 1, Coord{})
	s.PrepareFrame(Size{5, 10}, 1, Coord{})
	if s.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", s.Columns())
	}
	if _, ok := s.Row(10); ok {
		t.Error("stale column from previous frame still visible")
	}
}

type constEval float64

func (c constEval) Eval(float64) float64 { return float64(c) }

func TestEvaluatorSeries(t *testing.T) {
	s := NewEvaluatorSeries(constEval(-1), 'o')
	s.PrepareFrame(Size{4, 4}, 1, Coord{})
	if y, ok := s.Row(0); !ok || y != 3 {
		t.Errorf("got (%d, %v), want (3, true)", y, ok)
	}
	s.SetMarker('x')
	if s.Marker() != 'x' {
		t.Errorf("Marker() = %q", s.Marker())
	}
}
