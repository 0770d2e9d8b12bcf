package input

// Action is a viewer command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	// Pan actions move the view window; the plot slides the opposite way
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionReset
	ActionSonify
	ActionQuit
)

// actionRegistry maps canonical action names used in the [keys] config section
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"pan_left":  ActionPanLeft,
	"pan_right": ActionPanRight,
	"pan_up":    ActionPanUp,
	"pan_down":  ActionPanDown,
	"zoom_in":   ActionZoomIn,
	"zoom_out":  ActionZoomOut,
	"reset":     ActionReset,
	"sonify":    ActionSonify,
	"quit":      ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
