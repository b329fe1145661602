package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a chord specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d": // D is Vim's notation for Command/Meta
			mods = mods.With(ModMeta)
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")

	// A trailing empty part means the key itself is '+' ("Ctrl++").
	if parts[len(parts)-1] == "" && len(parts) >= 2 {
		parts = parts[:len(parts)-1]
		parts[len(parts)-1] = "+"
	}
	if len(parts) < 2 {
		return parseSingle(spec)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseSingle parses a bare character or key name.
func parseSingle(spec string) (Chord, error) {
	if k := FromName(spec); k != KeyNone {
		return NewChord(k, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRuneChord(runes[0], ModNone), nil
	}

	return Chord{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Chord, error) {
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "lt":
		return NewRuneChord('<', mods), nil
	case "gt":
		return NewRuneChord('>', mods), nil
	case "bar":
		return NewRuneChord('|', mods), nil
	case "bslash":
		return NewRuneChord('\\', mods), nil
	}

	if k := FromName(keyPart); k != KeyNone {
		return NewChord(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		if mods == ModNone {
			return NewRuneChord(runes[0], ModNone), nil
		}
		// With explicit modifiers the letter case is just spelling:
		// "Ctrl+S" is Ctrl+s, and Shift must be written out.
		return Chord{Key: KeyRune, Rune: unicode.ToLower(runes[0]), Mods: mods}, nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}
