package bindings

import (
	"fmt"

	"github.com/Ygg01/lapce/internal/keypress/key"
	"github.com/Ygg01/lapce/internal/keypress/mode"
)

// Source indicates where a binding was defined. User bindings take
// precedence over defaults of identical shape.
type Source int

const (
	// SourceDefault marks a built-in binding.
	SourceDefault Source = iota

	// SourceUser marks a binding from the user's keymap file or from the
	// configuration panel.
	SourceUser
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Binding associates a chord sequence with a command, gated by a mode set
// and an optional when-clause.
type Binding struct {
	// Command is the identifier of the command to run.
	Command string

	// Chords is the ordered trigger sequence, one or two chords.
	// A persisted binding never has zero chords; a zero-chord binding
	// handed to the table means "unbind" and normalizes to a removal.
	Chords []key.Chord

	// Modes is the set of modes the binding applies to.
	// The empty set means all modes.
	Modes mode.Set

	// When is the optional guard expression source text.
	When string

	// Source records whether this is a default or a user binding.
	Source Source

	// seq is the insertion order stamp assigned by the table. Among
	// bindings of equal source the most recently inserted wins.
	seq uint64
}

// New creates a binding from a chord sequence spec, e.g.
// New("editor.save", "Ctrl+S").
func New(command, keys string) (Binding, error) {
	chords, err := key.ParseSequence(keys)
	if err != nil {
		return Binding{}, fmt.Errorf("binding %q: %w", command, err)
	}
	return Binding{Command: command, Chords: chords}, nil
}

// MustNew is New for known-valid specs in initialization code.
func MustNew(command, keys string) Binding {
	b, err := New(command, keys)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// WithModes returns a copy restricted to the given modes.
func (b Binding) WithModes(modes ...mode.Mode) Binding {
	b.Modes = mode.NewSet(modes...)
	return b
}

// WithWhen returns a copy guarded by the given when-clause.
func (b Binding) WithWhen(when string) Binding {
	b.When = when
	return b
}

// AsUser returns a copy marked as user-defined.
func (b Binding) AsUser() Binding {
	b.Source = SourceUser
	return b
}

// KeysString returns the display form of the chord sequence.
func (b Binding) KeysString() string {
	return key.FormatSequence(b.Chords)
}

// SameShape reports whether another binding has an identical chord
// sequence, an overlapping mode set, and the same when-clause source
// text. Inserting a binding over one of the same shape replaces it.
func (b Binding) SameShape(other Binding) bool {
	return key.SequenceEquals(b.Chords, other.Chords) &&
		b.Modes.Overlaps(other.Modes) &&
		b.When == other.When
}

// Clone returns a deep copy of the binding.
func (b Binding) Clone() Binding {
	b.Chords = key.CloneSequence(b.Chords)
	return b
}

// takesPrecedence reports whether b wins over other when both match the
// same event: user beats default, then later insertion beats earlier.
func (b *Binding) takesPrecedence(other *Binding) bool {
	if b.Source != other.Source {
		return b.Source == SourceUser
	}
	return b.seq > other.seq
}
