package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Ygg01/lapce/internal/keypress/key"
)

func TestChordFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Chord
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			key.NewRuneChord('a', key.ModNone),
		},
		{
			"uppercase rune folds to shift",
			tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone),
			key.NewRuneChord('g', key.ModShift),
		},
		{
			"alt rune",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			key.NewRuneChord('x', key.ModAlt),
		},
		{
			"ctrl letter code",
			tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl),
			key.NewRuneChord('k', key.ModCtrl),
		},
		{
			"ctrl code without reported modifier",
			tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModNone),
			key.NewRuneChord('p', key.ModCtrl),
		},
		{
			"enter is not ctrl-m",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			key.NewChord(key.KeyEnter, key.ModNone),
		},
		{
			"tab is not ctrl-i",
			tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			key.NewChord(key.KeyTab, key.ModNone),
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			key.NewChord(key.KeyEscape, key.ModNone),
		},
		{
			"space rune normalizes to space key",
			tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			key.NewChord(key.KeySpace, key.ModNone),
		},
		{
			"arrow with shift",
			tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift),
			key.NewChord(key.KeyUp, key.ModShift),
		},
		{
			"function key",
			tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			key.NewChord(key.KeyF5, key.ModNone),
		},
		{
			"backspace2 maps to backspace",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			key.NewChord(key.KeyBackspace, key.ModNone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChordFromEvent(tt.ev)
			if !ok {
				t.Fatalf("ChordFromEvent returned ok=false")
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestChordFromEventRejectsUnhandled(t *testing.T) {
	if _, ok := ChordFromEvent(nil); ok {
		t.Error("nil event should not produce a chord")
	}
	if _, ok := ChordFromEvent(tcell.NewEventKey(tcell.KeyF64, 0, tcell.ModNone)); ok {
		t.Error("unmapped key should not produce a chord")
	}
}

func TestEventBindingRoundTrip(t *testing.T) {
	// A chord produced from host input must equal the chord parsed from
	// the keymap spelling of the same key press.
	tests := []struct {
		spec string
		ev   *tcell.EventKey
	}{
		{"Ctrl+S", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)},
		{"Ctrl+Shift+P", tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl | tcell.ModShift)},
		{"G", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone)},
		{"i", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)},
		{"Ctrl+Space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			want := key.MustParse(tt.spec)
			got, ok := ChordFromEvent(tt.ev)
			if !ok {
				t.Fatal("event not translated")
			}
			if got != want {
				t.Errorf("event chord %#v != parsed %q chord %#v", got, tt.spec, want)
			}
		})
	}
}
