package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"flowboard/editor"
)

// translateKey converts a tcell key event into the editor's framework-
// neutral form. Ctrl is the primary modifier in a terminal; uppercase runes
// imply shift since terminals rarely report it separately.
func translateKey(ev *tcell.EventKey) editor.KeyEvent {
	var out editor.KeyEvent

	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModMeta) != 0 {
		out.Mods |= editor.ModPrimary
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		out.Mods |= editor.ModShift
	}

	switch key := ev.Key(); {
	case key == tcell.KeyDelete:
		out.Special = editor.KeyDelete
	case key == tcell.KeyBackspace || key == tcell.KeyBackspace2:
		out.Special = editor.KeyBackspace
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		// Ctrl+letter arrives as a control key, not a rune.
		out.Mods |= editor.ModPrimary
		out.Rune = rune('a' + key - tcell.KeyCtrlA)
	case key == tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			out.Mods |= editor.ModShift
			r = unicode.ToLower(r)
		}
		out.Rune = r
	}

	return out
}
