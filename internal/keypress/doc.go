// Package keypress is the keybinding core: it resolves incoming chords
// to commands, backs the keybinding panel's listing and capture dialog,
// and keeps the in-memory binding table in sync with the user keymap
// file.
//
// The package tree:
//
//	key      chords, modifiers, parsing and display
//	mode     modal-editing modes and mode sets
//	when     when-clause expressions and their evaluator
//	bindings the binding table with defaults and precedence
//	resolver the chord-matching state machine
//	editor   the capture session behind the panel dialog
//	store    keymap file persistence and live reload
//	backend  tcell event translation
//
// Service ties these together behind the surface the UI layer calls.
// The core is single-threaded: all Service methods run on the UI
// thread, and only keymap persistence leaves it.
package keypress
