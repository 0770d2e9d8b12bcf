package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys
	Runes map[rune]Action

	// Named keys (arrows, escape, Ctrl+*)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'h': ActionPanLeft,
			'l': ActionPanRight,
			'k': ActionPanUp,
			'j': ActionPanDown,
			'+': ActionZoomIn,
			'=': ActionZoomIn,
			'-': ActionZoomOut,
			'0': ActionReset,
			's': ActionSonify,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionPanLeft,
			tcell.KeyRight:  ActionPanRight,
			tcell.KeyUp:     ActionPanUp,
			tcell.KeyDown:   ActionPanDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// Resolve returns the action bound to a key event, ActionNone if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
