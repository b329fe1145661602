// Package key provides the chord model for keybinding resolution.
//
// A Chord is one discrete key press: a physical key (or character rune)
// combined with a modifier set. Chords are immutable value types and
// compare structurally, which makes them usable directly as map keys in
// the binding table's reverse index.
//
// The package also parses and formats chord specifications in the forms
// users write in keymap files:
//
//	"a"              single character
//	"Ctrl+Shift+P"   readable notation
//	"<C-s>"          Vim angle-bracket notation
//	"Ctrl+K Ctrl+C"  two-chord sequence
package key
