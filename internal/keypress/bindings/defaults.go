package bindings

import "github.com/Ygg01/lapce/internal/keypress/mode"

// Defaults returns the built-in binding set. User bindings of identical
// shape override these through the table's precedence rule.
func Defaults() []Binding {
	return []Binding{
		// Palette
		MustNew("palette.file", "Ctrl+P"),
		MustNew("palette.command", "Ctrl+Shift+P"),
		MustNew("palette.line", "Ctrl+G"),

		// Files
		MustNew("file.save", "Ctrl+S").WithWhen("editor_focus"),
		MustNew("file.open", "Ctrl+O"),
		MustNew("file.close", "Ctrl+W").WithWhen("editor_focus"),

		// Editing
		MustNew("editor.undo", "Ctrl+Z").WithWhen("editor_focus"),
		MustNew("editor.redo", "Ctrl+Shift+Z").WithWhen("editor_focus"),
		MustNew("editor.comment_line", "Ctrl+K Ctrl+C").WithWhen("editor_focus"),
		MustNew("editor.uncomment_line", "Ctrl+K Ctrl+U").WithWhen("editor_focus"),
		MustNew("editor.format", "Ctrl+Shift+I").WithWhen("editor_focus && !editor_readonly"),

		// Search
		MustNew("search.find", "Ctrl+F").WithWhen("editor_focus"),
		MustNew("search.global", "Ctrl+Shift+F"),

		// Panels
		MustNew("panel.settings", "Ctrl+,"),
		MustNew("panel.keymap", "Ctrl+K Ctrl+S"),
		MustNew("panel.terminal", "Ctrl+`"),

		// Splits
		MustNew("split.vertical", "Ctrl+\\").WithWhen("editor_focus"),
		MustNew("split.close", "Ctrl+K W").WithWhen("editor_focus"),

		// Modal editing
		MustNew("modal.insert", "i").WithModes(mode.Normal),
		MustNew("modal.insert_after", "a").WithModes(mode.Normal),
		MustNew("modal.visual", "v").WithModes(mode.Normal),
		MustNew("modal.normal", "Escape").WithModes(mode.Insert, mode.Visual),
		MustNew("terminal.normal", "Escape").WithModes(mode.Terminal).
			WithWhen("terminal_focus"),

		// Movement (modal)
		MustNew("move.left", "h").WithModes(mode.Normal, mode.Visual),
		MustNew("move.down", "j").WithModes(mode.Normal, mode.Visual),
		MustNew("move.up", "k").WithModes(mode.Normal, mode.Visual),
		MustNew("move.right", "l").WithModes(mode.Normal, mode.Visual),
		MustNew("move.document_start", "g g").WithModes(mode.Normal, mode.Visual),
		MustNew("move.document_end", "G").WithModes(mode.Normal, mode.Visual),
	}
}

// LoadDefaults inserts the built-in bindings into a table.
func LoadDefaults(t *Table) {
	for _, b := range Defaults() {
		b.Source = SourceDefault
		t.InsertOrOverride(b)
	}
}
