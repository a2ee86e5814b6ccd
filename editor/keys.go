package editor

import "unicode"

// SpecialKey represents non-printable keys the dispatcher cares about.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyDelete
	KeyBackspace
)

// ModMask is a bitmask of held modifiers. ModPrimary is the platform
// command modifier (ctrl or cmd); the dispatcher does not distinguish.
type ModMask int

const (
	ModNone    ModMask = 0
	ModPrimary ModMask = 1 << iota
	ModShift
)

// KeyEvent represents a single key press, framework-neutral so the editor
// package stays independent of the terminal library.
type KeyEvent struct {
	Rune    rune
	Special SpecialKey
	Mods    ModMask
}

// Intent is a high-level editing command produced by the dispatcher.
type Intent int

const (
	IntentNone Intent = iota
	IntentNewNode
	IntentNewColumn
	IntentUndo
	IntentRedo
	IntentExportImage
	IntentExportFile
	IntentZoomIn
	IntentZoomOut
	IntentFitView
	IntentDeleteSelection
	IntentHelp
)

// String returns the intent name for logging and status display.
func (i Intent) String() string {
	switch i {
	case IntentNewNode:
		return "new-node"
	case IntentNewColumn:
		return "new-column"
	case IntentUndo:
		return "undo"
	case IntentRedo:
		return "redo"
	case IntentExportImage:
		return "export-image"
	case IntentExportFile:
		return "export-file"
	case IntentZoomIn:
		return "zoom-in"
	case IntentZoomOut:
		return "zoom-out"
	case IntentFitView:
		return "fit-view"
	case IntentDeleteSelection:
		return "delete-selection"
	case IntentHelp:
		return "help"
	default:
		return "none"
	}
}

type chord struct {
	mods    ModMask
	r       rune
	special SpecialKey
}

// keymap is the static chord table. Chord runes are stored lowercase; shift
// is carried in the modifier mask.
var keymap = map[chord]Intent{
	{ModPrimary, 'n', KeyNone}:            IntentNewNode,
	{ModPrimary | ModShift, 'c', KeyNone}: IntentNewColumn,
	{ModPrimary, 'z', KeyNone}:            IntentUndo,
	{ModPrimary | ModShift, 'z', KeyNone}: IntentRedo,
	{ModPrimary, 'y', KeyNone}:            IntentRedo,
	{ModPrimary, 's', KeyNone}:            IntentExportImage,
	{ModPrimary, 'e', KeyNone}:            IntentExportFile,
	{ModPrimary, '+', KeyNone}:            IntentZoomIn,
	{ModPrimary | ModShift, '+', KeyNone}: IntentZoomIn, // '+' is shifted '=' on most layouts
	{ModPrimary, '=', KeyNone}:            IntentZoomIn,
	{ModPrimary, '-', KeyNone}:            IntentZoomOut,
	{ModPrimary, '0', KeyNone}:            IntentFitView,
	{ModNone, 0, KeyDelete}:               IntentDeleteSelection,
	{ModNone, 0, KeyBackspace}:            IntentDeleteSelection,
}

// Dispatch maps a key event to an intent. Events are ignored while a text
// input has focus, and unmatched chords map to IntentNone with no error.
func Dispatch(ev KeyEvent, textFocused bool) Intent {
	if textFocused {
		return IntentNone
	}

	// '?' arrives shifted on most layouts, so match it by rune alone.
	if ev.Special == KeyNone && ev.Rune == '?' && ev.Mods&ModPrimary == 0 {
		return IntentHelp
	}

	c := chord{mods: ev.Mods, special: ev.Special}
	if ev.Special == KeyNone {
		c.r = unicode.ToLower(ev.Rune)
	} else {
		// Delete/Backspace dispatch regardless of held shift.
		c.mods = ev.Mods &^ ModShift
	}

	return keymap[c]
}
