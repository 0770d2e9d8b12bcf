package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// CurveGenerator plays one sine step per column, phase-continuous across steps
// Zero-frequency steps are silence
type CurveGenerator struct {
	sr    beep.SampleRate
	freqs []float64
	step  int // samples per column
	pos   int
	phase float64
}

// NewCurveGenerator spreads freqs evenly over duration
func NewCurveGenerator(sr beep.SampleRate, freqs []float64, duration time.Duration) *CurveGenerator {
	step := 0
	if len(freqs) > 0 {
		step = sr.N(duration) / len(freqs)
	}
	if step < 1 {
		step = 1
	}
	return &CurveGenerator{sr: sr, freqs: freqs, step: step}
}

// Len returns the total number of samples the generator produces
func (g *CurveGenerator) Len() int {
	return len(g.freqs) * g.step
}

func (g *CurveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		freq := g.freqs[g.pos/g.step]

		sample := 0.0
		if freq > 0 {
			g.phase += 2 * math.Pi * freq / float64(g.sr)
			if g.phase > 2*math.Pi {
				g.phase -= 2 * math.Pi
			}
			// Short ramp at each step edge to avoid clicks
			edge := float64(min(g.pos%g.step, g.step-1-g.pos%g.step))
			envelope := math.Min(edge/float64(g.sr.N(5*time.Millisecond)+1), 1.0)
			sample = 0.2 * envelope * math.Sin(g.phase)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CurveGenerator) Err() error {
	return nil
}
