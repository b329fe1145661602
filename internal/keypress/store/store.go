// Package store persists user keybinding overrides to the keymap file
// and reloads them when the file changes on disk.
//
// The file is a JSON array of entries:
//
//	[
//	  {"command": "editor.save", "keys": "Ctrl+S", "modes": "n", "when": "editor_focus"}
//	]
//
// Writes are surgical: committing an override touches only the matching
// entry (or appends one), so hand-edited formatting elsewhere in the
// user's file survives.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Ygg01/lapce/internal/keypress/bindings"
	"github.com/Ygg01/lapce/internal/keypress/key"
	"github.com/Ygg01/lapce/internal/keypress/mode"
)

// Store reads and writes the user keymap file.
type Store struct {
	path string

	// warn receives per-entry load failures; the rest of the file still
	// loads. May be nil.
	warn func(error)
}

// New creates a store for the given file path. warn may be nil.
func New(path string, warn func(error)) *Store {
	return &Store{path: path, warn: warn}
}

// DefaultPath returns the user keymap file location under the XDG
// config directory, creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("lapce", "keymaps.json"))
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all user bindings from the keymap file. A missing file is
// an empty binding set, not an error. Entries that fail to parse are
// skipped and reported through the warn callback.
func (s *Store) Load() ([]bindings.Binding, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("keymap file %s: expected a JSON array", s.path)
	}

	var out []bindings.Binding
	for i, entry := range root.Array() {
		b, err := decodeEntry(entry)
		if err != nil {
			if s.warn != nil {
				s.warn(fmt.Errorf("keymap entry %d: %w", i, err))
			}
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Save writes one override into the keymap file. An existing entry with
// the same command, modes and when-clause is updated in place; otherwise
// the entry is appended. A binding with no chords deletes the entry.
func (s *Store) Save(b bindings.Binding) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading keymap file: %w", err)
		}
		data = []byte("[]\n")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return fmt.Errorf("keymap file %s: expected a JSON array", s.path)
	}

	idx := -1
	for i, entry := range root.Array() {
		if entry.Get("command").String() != b.Command {
			continue
		}
		if mode.ParseSet(entry.Get("modes").String()) != b.Modes {
			continue
		}
		if entry.Get("when").String() != b.When {
			continue
		}
		idx = i
		break
	}

	switch {
	case len(b.Chords) == 0 && idx == -1:
		return nil // nothing to unbind

	case len(b.Chords) == 0:
		data, err = sjson.DeleteBytes(data, fmt.Sprintf("%d", idx))
		if err != nil {
			return fmt.Errorf("removing keymap entry: %w", err)
		}

	case idx >= 0:
		data, err = sjson.SetBytes(data, fmt.Sprintf("%d.keys", idx), b.KeysString())
		if err != nil {
			return fmt.Errorf("updating keymap entry: %w", err)
		}

	default:
		data, err = sjson.SetBytes(data, "-1", encodeEntry(b))
		if err != nil {
			return fmt.Errorf("appending keymap entry: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating keymap directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}

// decodeEntry converts one JSON entry to a user binding.
func decodeEntry(entry gjson.Result) (bindings.Binding, error) {
	command := entry.Get("command").String()
	if command == "" {
		return bindings.Binding{}, fmt.Errorf("missing command")
	}

	chords, err := key.ParseSequence(entry.Get("keys").String())
	if err != nil {
		return bindings.Binding{}, fmt.Errorf("command %q: %w", command, err)
	}
	if len(chords) == 0 {
		return bindings.Binding{}, fmt.Errorf("command %q: empty keys", command)
	}
	if len(chords) > bindings.MaxChords {
		return bindings.Binding{}, fmt.Errorf("command %q: more than %d chords", command, bindings.MaxChords)
	}

	return bindings.Binding{
		Command: command,
		Chords:  chords,
		Modes:   mode.ParseSet(entry.Get("modes").String()),
		When:    entry.Get("when").String(),
		Source:  bindings.SourceUser,
	}, nil
}

// encodeEntry converts a binding to the JSON entry shape.
func encodeEntry(b bindings.Binding) map[string]any {
	entry := map[string]any{
		"command": b.Command,
		"keys":    b.KeysString(),
	}
	if !b.Modes.IsEmpty() {
		entry["modes"] = b.Modes.String()
	}
	if b.When != "" {
		entry["when"] = b.When
	}
	return entry
}
