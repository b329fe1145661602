package mode

import "strings"

// Mode is a modal-editing state gating which bindings are active.
type Mode uint8

const (
	// Normal is the command/navigation mode.
	Normal Mode = 1 << iota

	// Insert is the text-entry mode.
	Insert

	// Visual is the selection mode.
	Visual

	// Terminal is the integrated-terminal mode.
	Terminal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter form used in keymap files.
func (m Mode) Letter() string {
	switch m {
	case Normal:
		return "n"
	case Insert:
		return "i"
	case Visual:
		return "v"
	case Terminal:
		return "t"
	default:
		return ""
	}
}

// FromName returns the Mode for a name or single letter.
// Returns 0 if the name is not recognized.
func FromName(name string) Mode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "n":
		return Normal
	case "insert", "i":
		return Insert
	case "visual", "v":
		return Visual
	case "terminal", "t":
		return Terminal
	default:
		return 0
	}
}

// Set is a set of modes a binding applies to.
// The empty set means the binding is non-modal and applies everywhere.
type Set uint8

// NewSet builds a set from the given modes.
func NewSet(modes ...Mode) Set {
	var s Set
	for _, m := range modes {
		s = s.With(m)
	}
	return s
}

// With returns a copy of the set with m added.
func (s Set) With(m Mode) Set {
	return s | Set(m)
}

// Has returns true if the set contains m.
func (s Set) Has(m Mode) bool {
	return s&Set(m) != 0
}

// IsEmpty returns true for the non-modal (applies everywhere) set.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Applies returns true if a binding with this mode set is active in m.
func (s Set) Applies(m Mode) bool {
	return s.IsEmpty() || s.Has(m)
}

// Overlaps returns true if the two sets can be active at the same time.
// An empty set overlaps everything.
func (s Set) Overlaps(other Set) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	return s&other != 0
}

// Modes returns the members of the set in declaration order.
func (s Set) Modes() []Mode {
	var out []Mode
	for _, m := range []Mode{Normal, Insert, Visual, Terminal} {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// String returns the letter form used in keymap files, e.g. "ni".
func (s Set) String() string {
	var sb strings.Builder
	for _, m := range s.Modes() {
		sb.WriteString(m.Letter())
	}
	return sb.String()
}

// ParseSet parses the letter form used in keymap files.
// Unrecognized letters are ignored so a malformed modes field degrades to
// a broader binding instead of failing the whole keymap entry.
func ParseSet(letters string) Set {
	var s Set
	for _, r := range strings.ToLower(strings.TrimSpace(letters)) {
		if m := FromName(string(r)); m != 0 {
			s = s.With(m)
		}
	}
	return s
}
