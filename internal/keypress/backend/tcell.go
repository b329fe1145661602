// Package backend translates host input events into chords.
//
// The core never imports a windowing or terminal library outside this
// package; everything downstream of the translation works on key.Chord
// values alone.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Ygg01/lapce/internal/keypress/key"
)

// ChordFromEvent converts a tcell key event into a chord. The second
// return is false for events the keybinding core does not handle
// (bare modifier presses, unknown keys); exotic input degrades to a
// no-op, never a crash.
func ChordFromEvent(ev *tcell.EventKey) (key.Chord, bool) {
	if ev == nil {
		return key.Chord{}, false
	}

	mods := convertMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == 0 {
			return key.Chord{}, false
		}
		return key.NewRuneChord(r, mods), true
	}

	// Canonical specials first: several of them share control codes
	// with Ctrl+letter (Enter/Ctrl+M, Tab/Ctrl+I, Backspace/Ctrl+H).
	if k := convertKey(ev.Key()); k != key.KeyNone {
		return key.NewChord(k, mods), true
	}

	// tcell folds the remaining Ctrl+letter combinations into
	// dedicated key codes.
	if r, ok := ctrlRune(ev.Key()); ok {
		return key.NewRuneChord(r, mods.With(key.ModCtrl)), true
	}

	return key.Chord{}, false
}

// convertMods converts a tcell modifier mask.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// ctrlRune maps tcell's Ctrl+letter key codes back to the letter.
func ctrlRune(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + (k - tcell.KeyCtrlA)), true
	}
	if k == tcell.KeyCtrlSpace {
		return ' ', true
	}
	return 0, false
}

// convertKey converts a tcell special key.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}
