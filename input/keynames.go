package input

import "github.com/gdamore/tcell/v2"

// keyByName maps canonical config names to named keys
var keyByName = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,

	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,

	"f1":  tcell.KeyF1,
	"f2":  tcell.KeyF2,
	"f3":  tcell.KeyF3,
	"f4":  tcell.KeyF4,
	"f5":  tcell.KeyF5,
	"f6":  tcell.KeyF6,
	"f7":  tcell.KeyF7,
	"f8":  tcell.KeyF8,
	"f9":  tcell.KeyF9,
	"f10": tcell.KeyF10,
	"f11": tcell.KeyF11,
	"f12": tcell.KeyF12,

	"ctrl_a": tcell.KeyCtrlA,
	"ctrl_b": tcell.KeyCtrlB,
	"ctrl_c": tcell.KeyCtrlC,
	"ctrl_d": tcell.KeyCtrlD,
	"ctrl_e": tcell.KeyCtrlE,
	"ctrl_f": tcell.KeyCtrlF,
	"ctrl_l": tcell.KeyCtrlL,
	"ctrl_n": tcell.KeyCtrlN,
	"ctrl_p": tcell.KeyCtrlP,
	"ctrl_q": tcell.KeyCtrlQ,
	"ctrl_r": tcell.KeyCtrlR,
	"ctrl_u": tcell.KeyCtrlU,
	"ctrl_w": tcell.KeyCtrlW,
	"ctrl_z": tcell.KeyCtrlZ,
}

// KeyByName returns the named key for a config string
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyByName[name]
	return k, ok
}
