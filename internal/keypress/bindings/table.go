package bindings

import (
	"sort"
	"sync"

	"github.com/Ygg01/lapce/internal/keypress/key"
)

// MaxChords caps the length of a binding's trigger sequence.
const MaxChords = 2

// Table is the ordered collection of all keybindings, defaults and user
// overrides together. It maintains a per-command index and a reverse
// index on the first chord for dispatch.
//
// Resolution happens on the UI thread; the lock only guards against a
// live-reload callback arriving from the keymap file watcher.
type Table struct {
	mu sync.RWMutex

	byCommand map[string][]*Binding
	byFirst   map[key.Chord][]*Binding
	nextSeq   uint64
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{
		byCommand: make(map[string][]*Binding),
		byFirst:   make(map[key.Chord][]*Binding),
	}
}

// LookupCandidates returns all bindings whose first chord matches,
// regardless of mode or when-clause; the resolver applies those filters
// with live context. The returned bindings are copies.
func (t *Table) LookupCandidates(first key.Chord) []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := t.byFirst[first]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Binding, len(entries))
	for i, b := range entries {
		out[i] = b.Clone()
	}
	return out
}

// InsertOrOverride adds a binding, replacing any existing binding of the
// same shape (identical chords, overlapping modes, equal when text).
// A binding with no chords is treated as "unbind": every binding for the
// command with the same modes and when-clause is removed instead.
func (t *Table) InsertOrOverride(b Binding) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.insertOrOverrideLocked(b)
}

func (t *Table) insertOrOverrideLocked(b Binding) {
	if len(b.Chords) == 0 {
		t.removeShapeLocked(b)
		return
	}
	if len(b.Chords) > MaxChords {
		b.Chords = b.Chords[:MaxChords]
	}

	stored := new(Binding)
	*stored = b.Clone()
	t.nextSeq++
	stored.seq = t.nextSeq

	// Replace an existing binding of the same shape in place.
	for _, existing := range t.byCommand[b.Command] {
		if existing.SameShape(b) {
			t.detachFirstLocked(existing)
			*existing = *stored
			t.byFirst[b.Chords[0]] = append(t.byFirst[b.Chords[0]], existing)
			return
		}
	}

	t.byCommand[b.Command] = append(t.byCommand[b.Command], stored)
	t.byFirst[b.Chords[0]] = append(t.byFirst[b.Chords[0]], stored)
}

// Remove deletes the binding with the given command and chord sequence.
// It is a no-op if no such binding exists.
func (t *Table) Remove(command string, chords []key.Chord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.byCommand[command]
	kept := list[:0]
	for _, b := range list {
		if key.SequenceEquals(b.Chords, chords) {
			t.detachFirstLocked(b)
			continue
		}
		kept = append(kept, b)
	}
	t.storeCommandLocked(command, kept)
}

// removeShapeLocked drops every binding for b.Command whose modes and
// when-clause match b, regardless of chords. Backs the zero-chord
// "unbind" commit.
func (t *Table) removeShapeLocked(b Binding) {
	list := t.byCommand[b.Command]
	kept := list[:0]
	for _, existing := range list {
		if existing.Modes.Overlaps(b.Modes) && existing.When == b.When {
			t.detachFirstLocked(existing)
			continue
		}
		kept = append(kept, existing)
	}
	t.storeCommandLocked(b.Command, kept)
}

// ReplaceSource swaps out every binding from the given source for the
// supplied list. Used for live reload of the user keymap file.
func (t *Table) ReplaceSource(src Source, list []Binding) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for command, existing := range t.byCommand {
		kept := existing[:0]
		for _, b := range existing {
			if b.Source == src {
				t.detachFirstLocked(b)
				continue
			}
			kept = append(kept, b)
		}
		t.storeCommandLocked(command, kept)
	}

	for _, b := range list {
		if len(b.Chords) == 0 {
			continue
		}
		b.Source = src
		t.insertOrOverrideLocked(b)
	}
}

// BindingsFor returns copies of all bindings for a command.
func (t *Table) BindingsFor(command string) []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list := t.byCommand[command]
	if len(list) == 0 {
		return nil
	}
	out := make([]Binding, len(list))
	for i, b := range list {
		out[i] = b.Clone()
	}
	return out
}

// HasBinding returns true if the command has at least one binding.
func (t *Table) HasBinding(command string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byCommand[command]) > 0
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, list := range t.byCommand {
		n += len(list)
	}
	return n
}

// All returns copies of every binding, ordered deterministically:
// user bindings before defaults, most recently inserted first, so the
// slice order is the precedence order.
func (t *Table) All() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ptrs := make([]*Binding, 0, 64)
	for _, list := range t.byCommand {
		ptrs = append(ptrs, list...)
	}
	sortByPrecedence(ptrs)

	out := make([]Binding, len(ptrs))
	for i, b := range ptrs {
		out[i] = b.Clone()
	}
	return out
}

// detachFirstLocked removes a binding pointer from the reverse index.
func (t *Table) detachFirstLocked(b *Binding) {
	if len(b.Chords) == 0 {
		return
	}
	first := b.Chords[0]
	entries := t.byFirst[first]
	for i, e := range entries {
		if e == b {
			t.byFirst[first] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(t.byFirst[first]) == 0 {
		delete(t.byFirst, first)
	}
}

func (t *Table) storeCommandLocked(command string, kept []*Binding) {
	if len(kept) == 0 {
		delete(t.byCommand, command)
		return
	}
	t.byCommand[command] = kept
}

// sortByPrecedence orders bindings so the winner of a tie comes first.
func sortByPrecedence(list []*Binding) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].takesPrecedence(list[j])
	})
}

// SortByPrecedence orders binding copies by the table's precedence rule:
// user before default, most recently inserted first. The order is stable
// and independent of map iteration.
func SortByPrecedence(list []Binding) {
	sort.SliceStable(list, func(i, j int) bool {
		return (&list[i]).takesPrecedence(&list[j])
	})
}
