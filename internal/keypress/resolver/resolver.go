// Package resolver turns incoming chords into commands.
//
// The Matcher is a small state machine: Idle until a chord arrives,
// Pending while a first chord could still grow into a two-chord binding,
// and back to Idle after every terminal outcome. When a chord is both a
// complete binding and the prefix of a longer one, the matcher waits for
// more input rather than firing early.
package resolver

import (
	"github.com/Ygg01/lapce/internal/keypress/bindings"
	"github.com/Ygg01/lapce/internal/keypress/key"
	"github.com/Ygg01/lapce/internal/keypress/mode"
	"github.com/Ygg01/lapce/internal/keypress/when"
)

// Status classifies the outcome of feeding one chord to the matcher.
type Status int

const (
	// StatusUnmatched means no binding fired and no more input is
	// awaited. This is a normal terminal state, not an error.
	StatusUnmatched Status = iota

	// StatusPending means the chord may begin a two-chord binding and
	// the matcher is waiting for the next chord.
	StatusPending

	// StatusResolved means a binding fired; Outcome.Command names it.
	StatusResolved
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUnmatched:
		return "unmatched"
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of one resolution step.
type Outcome struct {
	Status  Status
	Command string
}

// Matcher accumulates chords and matches them against the binding table.
// It holds at most one pending chord and never retains state across
// terminal outcomes.
type Matcher struct {
	table   *bindings.Table
	eval    *when.Evaluator
	pending *key.Chord
}

// New creates a matcher over the given table and evaluator.
func New(table *bindings.Table, eval *when.Evaluator) *Matcher {
	return &Matcher{table: table, eval: eval}
}

// HandleChord feeds one chord to the state machine. Mode and flags are
// supplied per call so filtering always sees live editor state.
func (m *Matcher) HandleChord(c key.Chord, md mode.Mode, flags when.FlagFunc) Outcome {
	if m.pending != nil {
		first := *m.pending
		m.pending = nil
		return m.resolveSecond(first, c, md, flags)
	}
	return m.resolveFirst(c, md, flags)
}

// resolveFirst handles a chord arriving in the Idle state.
func (m *Matcher) resolveFirst(c key.Chord, md mode.Mode, flags when.FlagFunc) Outcome {
	candidates := m.filter(m.table.LookupCandidates(c), md, flags)

	var exact []bindings.Binding
	longer := false
	for _, b := range candidates {
		switch {
		case len(b.Chords) == 1 && b.Chords[0] == c:
			exact = append(exact, b)
		case len(b.Chords) > 1 && b.Chords[0] == c:
			longer = true
		}
	}

	// A live two-chord candidate wins over a same-prefix single match:
	// wait for more input before committing.
	if longer {
		m.pending = &c
		return Outcome{Status: StatusPending}
	}

	if len(exact) > 0 {
		bindings.SortByPrecedence(exact)
		return Outcome{Status: StatusResolved, Command: exact[0].Command}
	}

	return Outcome{Status: StatusUnmatched}
}

// resolveSecond handles the chord following a pending first chord. On a
// miss the second chord is consumed and discarded, never reinterpreted
// as the start of a fresh sequence.
func (m *Matcher) resolveSecond(first, second key.Chord, md mode.Mode, flags when.FlagFunc) Outcome {
	seq := []key.Chord{first, second}

	var exact []bindings.Binding
	for _, b := range m.filter(m.table.LookupCandidates(first), md, flags) {
		if key.SequenceEquals(b.Chords, seq) {
			exact = append(exact, b)
		}
	}

	if len(exact) > 0 {
		bindings.SortByPrecedence(exact)
		return Outcome{Status: StatusResolved, Command: exact[0].Command}
	}
	return Outcome{Status: StatusUnmatched}
}

// filter keeps candidates whose mode set and when-clause pass under the
// current context.
func (m *Matcher) filter(candidates []bindings.Binding, md mode.Mode, flags when.FlagFunc) []bindings.Binding {
	kept := candidates[:0]
	for _, b := range candidates {
		if !b.Modes.Applies(md) {
			continue
		}
		if !m.eval.Match(b.When, flags) {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// IsPending returns true while the matcher awaits a second chord.
func (m *Matcher) IsPending() bool {
	return m.pending != nil
}

// PendingChord returns the buffered first chord, if any.
func (m *Matcher) PendingChord() (key.Chord, bool) {
	if m.pending == nil {
		return key.Chord{}, false
	}
	return *m.pending, true
}

// Reset drops any pending chord, returning the matcher to Idle. Mode
// switches and focus changes call this so stale prefixes never leak
// across contexts.
func (m *Matcher) Reset() {
	m.pending = nil
}
