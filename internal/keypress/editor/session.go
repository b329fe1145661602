// Package editor implements the transient capture session behind the
// keybinding panel's inline dialog. While a session is active, raw key
// events are recorded as candidate chords instead of being resolved.
package editor

import (
	"github.com/Ygg01/lapce/internal/keypress/bindings"
	"github.com/Ygg01/lapce/internal/keypress/key"
)

// maxRecorded caps the capture buffer. Recording a chord into a full
// buffer clears it first, so the buffer holds the last complete attempt
// rather than a rolling window.
const maxRecorded = 2

// Session records a replacement binding for one command. It is created
// when the user selects a row, and destroyed on commit or cancel; it is
// never persisted itself.
type Session struct {
	command  string
	template *bindings.Binding
	chords   []key.Chord
}

// Start begins capturing for a command. existing, when non-nil, is the
// binding being edited; its modes and when-clause carry over to the
// committed result. A nil existing binds a previously-unbound command.
func Start(command string, existing *bindings.Binding) *Session {
	s := &Session{
		command: command,
		chords:  make([]key.Chord, 0, maxRecorded),
	}
	if existing != nil {
		tmpl := existing.Clone()
		s.template = &tmpl
	}
	return s
}

// Command returns the target command identifier.
func (s *Session) Command() string {
	return s.command
}

// RecordChord appends a chord to the capture buffer. A third chord
// clears the buffer before being recorded.
func (s *Session) RecordChord(c key.Chord) {
	if len(s.chords) == maxRecorded {
		s.chords = s.chords[:0]
	}
	s.chords = append(s.chords, c)
}

// Chords returns a copy of the recorded chords for live display.
func (s *Session) Chords() []key.Chord {
	return key.CloneSequence(s.chords)
}

// IsEmpty returns true while nothing has been recorded.
func (s *Session) IsEmpty() bool {
	return len(s.chords) == 0
}

// Commit builds the user binding to hand to the table. With zero
// recorded chords the result has no chords, which the table normalizes
// to a removal ("unbind") rather than storing an empty sequence.
func (s *Session) Commit() bindings.Binding {
	b := bindings.Binding{
		Command: s.command,
		Chords:  key.CloneSequence(s.chords),
		Source:  bindings.SourceUser,
	}
	if s.template != nil {
		b.Modes = s.template.Modes
		b.When = s.template.When
	}
	return b
}

// Template returns the binding being edited, or nil when binding a
// previously-unbound command.
func (s *Session) Template() *bindings.Binding {
	if s.template == nil {
		return nil
	}
	tmpl := s.template.Clone()
	return &tmpl
}
