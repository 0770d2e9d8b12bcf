package input

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgraph/graph"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultResolve(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"h", runeKey('h'), ActionPanLeft},
		{"plus", runeKey('+'), ActionZoomIn},
		{"equals", runeKey('='), ActionZoomIn},
		{"minus", runeKey('-'), ActionZoomOut},
		{"q", runeKey('q'), ActionQuit},
		{"unbound rune", runeKey('x'), ActionNone},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionPanUp},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Resolve(tt.ev); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"w":       "pan_up",
		"space":   "reset",
		"Page_Up": "zoom_in",
		"q":       "none",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.Runes['w'] != ActionPanUp || kt.Runes[' '] != ActionReset {
		t.Errorf("runes = %v", kt.Runes)
	}
	if kt.Keys[tcell.KeyPgUp] != ActionZoomIn {
		t.Errorf("keys = %v", kt.Keys)
	}
	if a, ok := kt.Runes['q']; !ok || a != ActionNone {
		t.Error("explicit none should be kept in the override table")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		wantErr  string
	}{
		{"unknown action", map[string]string{"w": "fly"}, "unknown action"},
		{"unknown key", map[string]string{"hyper_x": "quit"}, "unknown key name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.bindings)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig(map[string]string{
		"q":      "none",
		"x":      "quit",
		"escape": "reset",
	})
	if err != nil {
		t.Fatal(err)
	}
	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['q']; ok {
		t.Error("q should be unbound")
	}
	if merged.Runes['x'] != ActionQuit {
		t.Error("x should quit")
	}
	if merged.Keys[tcell.KeyEscape] != ActionReset {
		t.Error("escape should reset")
	}
	if base.Runes['q'] != ActionQuit {
		t.Error("merge mutated base table")
	}
}

func TestControllerApply(t *testing.T) {
	c := NewController(DefaultKeyTable(), 3)
	tests := []struct {
		action Action
		want   graph.Viewport
	}{
		{ActionPanLeft, graph.Viewport{Offset: graph.Coord{X: 3}}},
		{ActionPanRight, graph.Viewport{Offset: graph.Coord{X: -3}}},
		{ActionPanUp, graph.Viewport{Offset: graph.Coord{Y: -3}}},
		{ActionPanDown, graph.Viewport{Offset: graph.Coord{Y: 3}}},
		{ActionZoomIn, graph.Viewport{Scale: 1}},
		{ActionZoomOut, graph.Viewport{Scale: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			var v graph.Viewport
			if !c.Apply(tt.action, &v) {
				t.Error("expected change")
			}
			if v != tt.want {
				t.Errorf("got %+v, want %+v", v, tt.want)
			}
		})
	}
}

func TestControllerNonViewportActions(t *testing.T) {
	c := NewController(DefaultKeyTable(), 1)
	v := graph.Viewport{Offset: graph.Coord{X: 1}, Scale: 2}
	for _, a := range []Action{ActionNone, ActionSonify, ActionQuit} {
		if c.Apply(a, &v) {
			t.Errorf("%v changed the viewport", a)
		}
	}
	if !c.Apply(ActionReset, &v) || v != (graph.Viewport{}) {
		t.Errorf("reset: got %+v", v)
	}
	if c.Apply(ActionReset, &v) {
		t.Error("reset of a reset view reports change")
	}
}

func TestControllerZoomSaturates(t *testing.T) {
	c := NewController(DefaultKeyTable(), 1)
	v := graph.Viewport{Scale: math.MaxInt8}
	if c.Apply(ActionZoomIn, &v) {
		t.Error("zoom past max reports change")
	}
}

func TestHandleKey(t *testing.T) {
	c := NewController(DefaultKeyTable(), 2)
	var v graph.Viewport
	a, changed := c.HandleKey(runeKey('l'), &v)
	if a != ActionPanRight || !changed || v.Offset.X != -2 {
		t.Errorf("got %v %v %+v", a, changed, v)
	}
	a, changed = c.HandleKey(runeKey('s'), &v)
	if a != ActionSonify || changed {
		t.Errorf("sonify: got %v %v", a, changed)
	}
}
