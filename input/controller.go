package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgraph/graph"
)

// Controller turns key events into viewport changes
type Controller struct {
	keys    *KeyTable
	panStep int
}

// NewController returns a controller panning panStep cells per key press
func NewController(keys *KeyTable, panStep int) *Controller {
	if panStep < 1 {
		panStep = 1
	}
	return &Controller{keys: keys, panStep: panStep}
}

// HandleKey resolves ev and applies it to v
// Returns the resolved action and whether the viewport changed
func (c *Controller) HandleKey(ev *tcell.EventKey, v *graph.Viewport) (Action, bool) {
	a := c.keys.Resolve(ev)
	return a, c.Apply(a, v)
}

// Apply performs viewport actions; others are left to the caller
func (c *Controller) Apply(a Action, v *graph.Viewport) bool {
	before := *v
	switch a {
	case ActionPanLeft:
		v.Pan(c.panStep, 0)
	case ActionPanRight:
		v.Pan(-c.panStep, 0)
	case ActionPanUp:
		v.Pan(0, -c.panStep)
	case ActionPanDown:
		v.Pan(0, c.panStep)
	case ActionZoomIn:
		v.Zoom(1)
	case ActionZoomOut:
		v.Zoom(-1)
	case ActionReset:
		v.Reset()
	default:
		return false
	}
	return *v != before
}
