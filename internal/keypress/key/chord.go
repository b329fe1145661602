package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Chord is a single normalized key press: a physical key plus a modifier
// set. Chords are value types, comparable with == and usable as map keys.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewChord creates a chord for a special key.
func NewChord(key Key, mods Modifier) Chord {
	return Chord{Key: key, Mods: mods}
}

// NewRuneChord creates a chord for a character key.
// Uppercase letters normalize to the lowercase rune plus ModShift so that
// "A", Shift+a and shift-modified input from the host all describe the
// same chord, and Ctrl+K equals Ctrl+k.
func NewRuneChord(r rune, mods Modifier) Chord {
	// Space is canonically KeySpace so host input and the "Space" key
	// name in keymap files describe the same chord.
	if r == ' ' {
		return Chord{Key: KeySpace, Mods: mods}
	}
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	return Chord{Key: KeyRune, Rune: r, Mods: mods}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// IsZero returns true if the chord carries no key at all.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Rune == 0 && c.Mods == ModNone
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c == other
}

// String returns the display form used in the keybinding panel.
// Examples: "a", "Ctrl+K", "Ctrl+Shift+P", "Up", "Alt+Enter".
func (c Chord) String() string {
	var parts []string
	if c.Mods.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if c.Mods.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	// Shift folds into the character for bare letter chords ("A", not
	// "Shift+A"); everything else spells it out.
	shiftFolded := c.IsRune() && unicode.IsLetter(c.Rune) &&
		c.Mods.Without(ModShift) == ModNone
	if c.Mods.Has(ModShift) && !shiftFolded {
		parts = append(parts, "Shift")
	}
	if c.Mods.Has(ModMeta) {
		parts = append(parts, "Meta")
	}

	switch {
	case c.Key == KeyRune:
		r := c.Rune
		if unicode.IsLetter(r) && (len(parts) > 0 || c.Mods.Has(ModShift)) {
			r = unicode.ToUpper(r)
		}
		parts = append(parts, string(r))
	default:
		parts = append(parts, c.Key.String())
	}

	return strings.Join(parts, "+")
}

// GoString implements fmt.GoStringer for debugging.
func (c Chord) GoString() string {
	return fmt.Sprintf("Chord{Key: %s, Rune: %q, Mods: %s}",
		c.Key.String(), c.Rune, c.Mods.String())
}
