// Package when implements the boolean guard language for conditional
// keybindings.
//
// A when-clause is a small expression over named editor-state flags:
//
//	editor_focus && !list_focus
//	(panel_focus || terminal_focus) && !modal_active
//
// Clauses are parsed once into an immutable tree and evaluated against a
// live flag lookup on every key event, so resolution always reflects
// current focus and selection state. Malformed clauses fail closed and
// the failure is reported a single time rather than per keystroke.
package when
