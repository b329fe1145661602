package keypress

import (
	"strings"

	"github.com/Ygg01/lapce/internal/keypress/bindings"
	"github.com/Ygg01/lapce/internal/keypress/editor"
	"github.com/Ygg01/lapce/internal/keypress/key"
	"github.com/Ygg01/lapce/internal/keypress/mode"
	"github.com/Ygg01/lapce/internal/keypress/resolver"
	"github.com/Ygg01/lapce/internal/keypress/when"
)

// CommandInfo describes a command for the keybinding panel.
type CommandInfo struct {
	// ID is the command identifier, e.g. "editor.save".
	ID string

	// Description is the human-readable palette description.
	Description string
}

// CommandBindings pairs a command with its current bindings for display.
type CommandBindings struct {
	CommandInfo
	Bindings []bindings.Binding
}

// Persister writes a committed override to durable storage. The store
// package provides the file-backed implementation.
type Persister interface {
	Save(bindings.Binding) error
}

// Result reports what happened to one key event.
type Result struct {
	// Outcome is the resolution outcome. While a capture session is
	// active it is always zero-valued and Captured is true.
	Outcome resolver.Outcome

	// Captured is true when the chord was recorded by the active
	// binding-editor session instead of being resolved.
	Captured bool
}

// Service owns the binding table, the chord matcher, the when-clause
// evaluator and the optional capture session, and exposes the narrow
// read/command surface the UI layer works against.
//
// All methods are called from the UI thread; key events arrive one at a
// time and every operation completes within a single event-handling
// step.
type Service struct {
	table   *bindings.Table
	eval    *when.Evaluator
	matcher *resolver.Matcher
	session *editor.Session

	commands map[string]CommandInfo
	order    []string

	mode  mode.Mode
	flags when.FlagFunc

	persister    Persister
	onPersistErr func(error)

	filter string
}

// Option configures a Service.
type Option func(*Service)

// WithFlags supplies the live editor-state flag lookup used by
// when-clause evaluation.
func WithFlags(flags when.FlagFunc) Option {
	return func(s *Service) { s.flags = flags }
}

// WithPersister supplies the storage collaborator for committed
// overrides. onErr receives persistence failures; they never roll back
// the in-memory table. Both may be nil.
func WithPersister(p Persister, onErr func(error)) Option {
	return func(s *Service) {
		s.persister = p
		s.onPersistErr = onErr
	}
}

// WithWhenFailureHandler receives malformed when-clause reports, once
// per distinct clause.
func WithWhenFailureHandler(h when.FailureHandler) Option {
	return func(s *Service) { s.eval = when.NewEvaluator(h) }
}

// NewService creates a service with the default bindings loaded and
// Normal as the current mode.
func NewService(opts ...Option) *Service {
	s := &Service{
		table:    bindings.NewTable(),
		eval:     when.NewEvaluator(nil),
		commands: make(map[string]CommandInfo),
		mode:     mode.Normal,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.matcher = resolver.New(s.table, s.eval)
	bindings.LoadDefaults(s.table)
	return s
}

// KeyDown processes one key event. During capture the chord is recorded
// into the session; otherwise it feeds the matcher.
func (s *Service) KeyDown(c key.Chord) Result {
	if s.session != nil {
		s.session.RecordChord(c)
		return Result{Captured: true}
	}
	return Result{Outcome: s.matcher.HandleChord(c, s.mode, s.flags)}
}

// SetMode switches the current editing mode and drops any pending
// chord; a prefix started in one mode never completes in another.
func (s *Service) SetMode(m mode.Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.matcher.Reset()
}

// Mode returns the current editing mode.
func (s *Service) Mode() mode.Mode {
	return s.mode
}

// PendingChord returns the matcher's buffered first chord for status
// display, if any.
func (s *Service) PendingChord() (key.Chord, bool) {
	return s.matcher.PendingChord()
}

// RegisterCommands adds commands to the panel inventory. Registration
// order is the display order.
func (s *Service) RegisterCommands(infos ...CommandInfo) {
	for _, info := range infos {
		if _, ok := s.commands[info.ID]; !ok {
			s.order = append(s.order, info.ID)
		}
		s.commands[info.ID] = info
	}
}

// SetUserBindings replaces all user bindings, e.g. after the keymap
// file reloads. Defaults are untouched except where an override of
// identical shape shadows them.
func (s *Service) SetUserBindings(list []bindings.Binding) {
	s.table.ReplaceSource(bindings.SourceUser, list)
	s.matcher.Reset()
}

// BindingsFor returns the current bindings for a command.
func (s *Service) BindingsFor(command string) []bindings.Binding {
	return s.table.BindingsFor(command)
}

// SetFilter sets the panel filter pattern. The empty pattern shows
// everything.
func (s *Service) SetFilter(pattern string) {
	s.filter = strings.ToLower(strings.TrimSpace(pattern))
}

// Filter returns the current filter pattern.
func (s *Service) Filter() string {
	return s.filter
}

// CommandsWithBindings lists registered commands that currently have at
// least one binding, filtered by the panel pattern, in registration
// order.
func (s *Service) CommandsWithBindings() []CommandBindings {
	var out []CommandBindings
	for _, id := range s.order {
		info := s.commands[id]
		if !s.matchesFilter(info) {
			continue
		}
		list := s.table.BindingsFor(id)
		if len(list) == 0 {
			continue
		}
		bindings.SortByPrecedence(list)
		out = append(out, CommandBindings{CommandInfo: info, Bindings: list})
	}
	return out
}

// CommandsWithoutBindings lists registered commands with no binding,
// filtered by the panel pattern, in registration order.
func (s *Service) CommandsWithoutBindings() []CommandInfo {
	var out []CommandInfo
	for _, id := range s.order {
		info := s.commands[id]
		if !s.matchesFilter(info) {
			continue
		}
		if s.table.HasBinding(id) {
			continue
		}
		out = append(out, info)
	}
	return out
}

func (s *Service) matchesFilter(info CommandInfo) bool {
	if s.filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(info.ID), s.filter) ||
		strings.Contains(strings.ToLower(info.Description), s.filter)
}

// StartCapture begins recording a replacement binding. existing, when
// non-nil, is the binding being edited; nil binds a previously-unbound
// command. Any in-flight resolution state is dropped.
func (s *Service) StartCapture(command string, existing *bindings.Binding) {
	s.matcher.Reset()
	s.session = editor.Start(command, existing)
}

// SelectRow is the panel's row-click entry point: it starts capture for
// the command's highest-precedence binding, or for the bare command if
// it has none.
func (s *Service) SelectRow(command string) {
	list := s.table.BindingsFor(command)
	if len(list) == 0 {
		s.StartCapture(command, nil)
		return
	}
	bindings.SortByPrecedence(list)
	s.StartCapture(command, &list[0])
}

// Capturing returns true while a binding-editor session is active.
func (s *Service) Capturing() bool {
	return s.session != nil
}

// CaptureState returns the active session's target command and the
// chords recorded so far, for live display in the capture dialog.
func (s *Service) CaptureState() (command string, chords []key.Chord, ok bool) {
	if s.session == nil {
		return "", nil, false
	}
	return s.session.Command(), s.session.Chords(), true
}

// CommitActive commits the capture session into the table and hands the
// override to the persister without waiting for it. A commit with no
// recorded chords unbinds the command. No-op when nothing is being
// captured.
func (s *Service) CommitActive() {
	if s.session == nil {
		return
	}

	b := s.session.Commit()
	tmpl := s.session.Template()
	s.session = nil

	// Re-keying an existing binding replaces it rather than leaving the
	// old sequence active alongside the new one.
	if tmpl != nil && len(b.Chords) > 0 && !key.SequenceEquals(tmpl.Chords, b.Chords) {
		s.table.Remove(b.Command, tmpl.Chords)
	}
	s.table.InsertOrOverride(b)

	// A clause edited through the panel gets a fresh parse and, if
	// still malformed, a fresh report.
	s.eval.Invalidate(b.When)

	if s.persister == nil {
		return
	}
	go func(b bindings.Binding, onErr func(error)) {
		if err := s.persister.Save(b); err != nil && onErr != nil {
			onErr(err)
		}
	}(b, s.onPersistErr)
}

// CancelActive discards the capture session with no table mutation.
func (s *Service) CancelActive() {
	s.session = nil
}
