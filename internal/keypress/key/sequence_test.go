package key

import "testing"

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Chord
	}{
		{"empty", "", nil},
		{"single", "Ctrl+P", []Chord{NewRuneChord('p', ModCtrl)}},
		{"space separated", "Ctrl+K Ctrl+C", []Chord{
			NewRuneChord('k', ModCtrl),
			NewRuneChord('c', ModCtrl),
		}},
		{"mixed pair", "Ctrl+K W", []Chord{
			NewRuneChord('k', ModCtrl),
			NewRuneChord('w', ModShift),
		}},
		{"rune run", "gg", []Chord{
			NewRuneChord('g', ModNone),
			NewRuneChord('g', ModNone),
		}},
		{"spaced rune pair", "g g", []Chord{
			NewRuneChord('g', ModNone),
			NewRuneChord('g', ModNone),
		}},
		{"vim continuous", "<C-k><C-c>", []Chord{
			NewRuneChord('k', ModCtrl),
			NewRuneChord('c', ModCtrl),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequence(tt.in)
			if err != nil {
				t.Fatalf("ParseSequence(%q) error: %v", tt.in, err)
			}
			if !SequenceEquals(got, tt.want) {
				t.Errorf("ParseSequence(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSequenceErrors(t *testing.T) {
	for _, in := range []string{"Ctrl+K Bad+X", "<C-k><C-", "Hyper+A"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSequence(in); err == nil {
				t.Errorf("ParseSequence(%q) succeeded, want error", in)
			}
		})
	}
}

func TestFormatSequence(t *testing.T) {
	seq := MustParseSequence("Ctrl+K Ctrl+C")
	if got := FormatSequence(seq); got != "Ctrl+K Ctrl+C" {
		t.Errorf("FormatSequence = %q, want %q", got, "Ctrl+K Ctrl+C")
	}
	if got := FormatSequence(nil); got != "" {
		t.Errorf("FormatSequence(nil) = %q, want empty", got)
	}
}

func TestHasPrefix(t *testing.T) {
	seq := MustParseSequence("Ctrl+K Ctrl+C")
	if !HasPrefix(seq, MustParseSequence("Ctrl+K")) {
		t.Error("Ctrl+K should prefix Ctrl+K Ctrl+C")
	}
	if HasPrefix(seq, MustParseSequence("Ctrl+C")) {
		t.Error("Ctrl+C should not prefix Ctrl+K Ctrl+C")
	}
	if !HasPrefix(seq, nil) {
		t.Error("empty prefix should match anything")
	}
}

func TestCloneSequenceIndependent(t *testing.T) {
	orig := MustParseSequence("Ctrl+K Ctrl+C")
	clone := CloneSequence(orig)
	clone[0] = NewRuneChord('x', ModNone)
	if orig[0] == clone[0] {
		t.Error("mutating the clone changed the original")
	}
}
