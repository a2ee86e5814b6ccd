package editor

import "testing"

func TestDispatchChordTable(t *testing.T) {
	cases := []struct {
		name string
		ev   KeyEvent
		want Intent
	}{
		{"mod+n", KeyEvent{Rune: 'n', Mods: ModPrimary}, IntentNewNode},
		{"mod+shift+c", KeyEvent{Rune: 'c', Mods: ModPrimary | ModShift}, IntentNewColumn},
		{"mod+shift+C uppercase", KeyEvent{Rune: 'C', Mods: ModPrimary | ModShift}, IntentNewColumn},
		{"mod+z", KeyEvent{Rune: 'z', Mods: ModPrimary}, IntentUndo},
		{"mod+shift+z", KeyEvent{Rune: 'z', Mods: ModPrimary | ModShift}, IntentRedo},
		{"mod+y", KeyEvent{Rune: 'y', Mods: ModPrimary}, IntentRedo},
		{"mod+s", KeyEvent{Rune: 's', Mods: ModPrimary}, IntentExportImage},
		{"mod+e", KeyEvent{Rune: 'e', Mods: ModPrimary}, IntentExportFile},
		{"mod+plus", KeyEvent{Rune: '+', Mods: ModPrimary}, IntentZoomIn},
		{"mod+shift+plus", KeyEvent{Rune: '+', Mods: ModPrimary | ModShift}, IntentZoomIn},
		{"mod+equals", KeyEvent{Rune: '=', Mods: ModPrimary}, IntentZoomIn},
		{"mod+minus", KeyEvent{Rune: '-', Mods: ModPrimary}, IntentZoomOut},
		{"mod+0", KeyEvent{Rune: '0', Mods: ModPrimary}, IntentFitView},
		{"delete", KeyEvent{Special: KeyDelete}, IntentDeleteSelection},
		{"backspace", KeyEvent{Special: KeyBackspace}, IntentDeleteSelection},
		{"question mark", KeyEvent{Rune: '?'}, IntentHelp},
		{"shifted question mark", KeyEvent{Rune: '?', Mods: ModShift}, IntentHelp},
	}

	for _, tc := range cases {
		if got := Dispatch(tc.ev, false); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDispatchIgnoresUnmatchedChords(t *testing.T) {
	unmatched := []KeyEvent{
		{Rune: 'n'},                        // no modifier
		{Rune: 'x', Mods: ModPrimary},      // unknown chord
		{Rune: 'z'},                        // bare z
		{Rune: '?', Mods: ModPrimary},      // mod+? is not help
		{},                                 // empty event
	}
	for _, ev := range unmatched {
		if got := Dispatch(ev, false); got != IntentNone {
			t.Errorf("Expected IntentNone for %+v, got %v", ev, got)
		}
	}
}

func TestDispatchIgnoredDuringTextInput(t *testing.T) {
	if got := Dispatch(KeyEvent{Rune: 'z', Mods: ModPrimary}, true); got != IntentNone {
		t.Errorf("Chords must be ignored while a text input has focus, got %v", got)
	}
	if got := Dispatch(KeyEvent{Special: KeyBackspace}, true); got != IntentNone {
		t.Errorf("Backspace must reach the text input, not the dispatcher, got %v", got)
	}
}
