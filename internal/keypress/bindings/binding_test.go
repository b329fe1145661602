package bindings

import (
	"testing"

	"github.com/Ygg01/lapce/internal/keypress/key"
	"github.com/Ygg01/lapce/internal/keypress/mode"
)

func TestNew(t *testing.T) {
	b, err := New("editor.save", "Ctrl+S")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if b.Command != "editor.save" {
		t.Errorf("Command = %q", b.Command)
	}
	if b.KeysString() != "Ctrl+S" {
		t.Errorf("KeysString() = %q, want %q", b.KeysString(), "Ctrl+S")
	}
	if b.Source != SourceDefault {
		t.Errorf("Source = %v, want default", b.Source)
	}

	if _, err := New("broken", "Hyper+Q"); err == nil {
		t.Error("New with bad keys should fail")
	}
}

func TestSameShape(t *testing.T) {
	base := MustNew("file.save", "Ctrl+S").WithModes(mode.Normal).WithWhen("editor_focus")

	tests := []struct {
		name  string
		other Binding
		want  bool
	}{
		{"identical", MustNew("file.save", "Ctrl+S").WithModes(mode.Normal).WithWhen("editor_focus"), true},
		{"different command same shape", MustNew("file.open", "Ctrl+S").WithModes(mode.Normal).WithWhen("editor_focus"), true},
		{"different chords", MustNew("file.save", "Ctrl+O").WithModes(mode.Normal).WithWhen("editor_focus"), false},
		{"disjoint modes", MustNew("file.save", "Ctrl+S").WithModes(mode.Insert).WithWhen("editor_focus"), false},
		{"empty modes overlap", MustNew("file.save", "Ctrl+S").WithWhen("editor_focus"), true},
		{"different when", MustNew("file.save", "Ctrl+S").WithModes(mode.Normal), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.SameShape(tt.other); got != tt.want {
				t.Errorf("SameShape = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	b := MustNew("move.document_start", "g g")
	c := b.Clone()
	c.Chords[0] = key.NewRuneChord('x', key.ModNone)
	if b.Chords[0] == c.Chords[0] {
		t.Error("mutating clone chords changed the original")
	}
}
