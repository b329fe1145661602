package key

import "strings"

// Sequence helpers for ordered chord lists. A binding's chord sequence is
// a plain []Chord; order is significant.

// SequenceEquals returns true if two chord sequences are identical.
func SequenceEquals(a, b []Chord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if seq starts with the given prefix.
func HasPrefix(seq, prefix []Chord) bool {
	if len(prefix) > len(seq) {
		return false
	}
	for i := range prefix {
		if seq[i] != prefix[i] {
			return false
		}
	}
	return true
}

// CloneSequence returns a copy of the chord sequence.
func CloneSequence(seq []Chord) []Chord {
	if seq == nil {
		return nil
	}
	out := make([]Chord, len(seq))
	copy(out, seq)
	return out
}

// FormatSequence returns the display form of a chord sequence.
// Examples: "Ctrl+K Ctrl+C", "g g".
func FormatSequence(seq []Chord) string {
	if len(seq) == 0 {
		return ""
	}
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// ParseSequence parses a chord sequence string.
// Chords are space-separated; Vim-style angle groups may also run
// together. Examples: "Ctrl+K Ctrl+C", "g g", "<C-k><C-c>".
func ParseSequence(s string) ([]Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var seq []Chord

	if strings.Contains(s, " ") {
		for _, part := range strings.Fields(s) {
			c, err := Parse(part)
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
		}
		return seq, nil
	}

	// Continuous form: "<C-k><C-c>" or "gg".
	if strings.HasPrefix(s, "<") {
		for len(s) > 0 {
			end := strings.IndexByte(s, '>')
			if s[0] != '<' || end == -1 {
				return nil, ErrInvalidSpec
			}
			c, err := Parse(s[:end+1])
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
			s = s[end+1:]
		}
		return seq, nil
	}

	c, err := Parse(s)
	if err == nil {
		return []Chord{c}, nil
	}
	if strings.ContainsAny(s, "+<>") {
		return nil, err
	}

	for _, r := range s {
		seq = append(seq, NewRuneChord(r, ModNone))
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) []Chord {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
