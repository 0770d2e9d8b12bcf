package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/termgraph/config"
	"github.com/lixenwraith/termgraph/formula"
	"github.com/lixenwraith/termgraph/graph"
)

// demoFormulas are plotted when neither config nor arguments name a function
var demoFormulas = []string{
	"(0.7*sqrt(200 - x^2)) - 15",
	"(-0.7*sqrt(200 - x^2)) - 15",
	"exp(x*0.03)*15",
	"sin(x*0.1)*15",
}

// plot is a canvas plus what the viewer needs to describe it
type plot struct {
	canvas *graph.Canvas
	series []*graph.FunctionSeries // in insertion order; last is front-most
	labels []string
	glyphs graph.AxisGlyphs
	axes   bool
}

// front returns the front-most function layer, nil when there is none
func (p *plot) front() *graph.FunctionSeries {
	if len(p.series) == 0 {
		return nil
	}
	return p.series[len(p.series)-1]
}

// markers returns the runes used by function layers
func (p *plot) markers() []rune {
	out := make([]rune, len(p.series))
	for i, s := range p.series {
		out[i] = s.Marker()
	}
	return out
}

// buildPlot compiles config functions followed by extra formulas
func buildPlot(cfg *config.Config, extra []string, seed int64) (*plot, error) {
	glyphs, err := cfg.AxisGlyphs()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Markers()
	if err != nil {
		return nil, err
	}

	p := &plot{glyphs: glyphs, axes: cfg.Axes.Show}
	p.canvas = graph.NewCanvas()
	if cfg.Axes.Show {
		axes := graph.NewAxesAt(graph.Coord{X: cfg.Axes.OriginX, Y: cfg.Axes.OriginY})
		axes.Glyphs = glyphs
		p.canvas.AppendLayer(axes)
	}
	p.canvas.SetPalette(palette)
	v := cfg.Viewport()
	p.canvas.SetOffset(v.Offset)
	p.canvas.SetScale(v.Scale)

	funcs := append([]config.FunctionConfig(nil), cfg.Functions...)
	for _, src := range extra {
		funcs = append(funcs, config.FunctionConfig{Expr: src})
	}
	if len(funcs) == 0 {
		for _, src := range demoFormulas {
			funcs = append(funcs, config.FunctionConfig{Expr: src})
		}
	}

	for i, fc := range funcs {
		expr, err := formula.Compile(fc.Expr, formula.WithNoiseSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i+1, err)
		}
		var marker rune
		if fc.Marker != "" {
			if marker, err = config.Glyph(fc.Marker); err != nil {
				return nil, fmt.Errorf("function %d marker: %w", i+1, err)
			}
		}
		s := p.canvas.AddFunctionLayer(expr.Eval, marker)
		p.series = append(p.series, s)
		p.labels = append(p.labels, fmt.Sprintf("%c %s", s.Marker(), expr))
		log.Printf("plot: layer %d %c %s", i+1, s.Marker(), expr)
	}
	return p, nil
}
