package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgraph/audio"
	"github.com/lixenwraith/termgraph/config"
	"github.com/lixenwraith/termgraph/input"
	"github.com/lixenwraith/termgraph/render"
)

// viewer runs the interactive loop over a tcell screen
type viewer struct {
	screen tcell.Screen
	sink   *render.Sink
	plot   *plot
	ctrl   *input.Controller
	sound  *audio.SoundManager // nil when audio is off
	audio  config.AudioConfig
}

func newViewer(screen tcell.Screen, p *plot, keys *input.KeyTable, cfg *config.Config, sound *audio.SoundManager) *viewer {
	sink := render.NewSink(screen)
	if p.axes {
		sink.SetAxisGlyphs(p.glyphs)
	}
	sink.SetMarkers(p.markers())
	return &viewer{
		screen: screen,
		sink:   sink,
		plot:   p,
		ctrl:   input.NewController(keys, cfg.View.PanStep),
		sound:  sound,
		audio:  cfg.Audio,
	}
}

// draw renders one frame plus the status line
func (v *viewer) draw() {
	size := v.sink.PlotSize()
	frame := v.plot.canvas.Render(size)
	v.sink.Draw(frame)
	v.sink.DrawStatus(render.StatusLine(size, v.plot.canvas.Viewport(), v.plot.labels))
	v.sink.Show()
}

// run blocks until a quit key or the screen is finalized
func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()

		case *tcell.EventKey:
			action, changed := v.ctrl.HandleKey(ev, v.plot.canvas.ViewportRef())
			switch action {
			case input.ActionQuit:
				return
			case input.ActionSonify:
				v.sonify()
			}
			if changed {
				log.Printf("viewport: %+v", v.plot.canvas.Viewport())
				v.draw()
			}
		}
	}
}

// sonify plays the front-most curve as cached by the last frame
func (v *viewer) sonify() {
	front := v.plot.front()
	if v.sound == nil || front == nil {
		return
	}
	v.sound.PlayCurve(front, v.sink.PlotSize().Height,
		v.audio.LowHz, v.audio.HighHz, time.Duration(v.audio.DurationMs)*time.Millisecond)
}
