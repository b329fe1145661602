package store

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors emit per save.
const debounceDelay = 100 * time.Millisecond

// Watch monitors the keymap file and invokes onChange after it is
// written, created or renamed. The parent directory is watched so
// atomic-rename saves are caught. onChange runs on the watcher
// goroutine; callers hand the reload back to their own thread.
//
// The returned stop function releases the watcher.
func (s *Store) Watch(onChange func()) (stop func(), err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(s.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go s.watchLoop(fsw, onChange, done)

	return func() {
		close(done)
		fsw.Close()
	}, nil
}

func (s *Store) watchLoop(fsw *fsnotify.Watcher, onChange func(), done chan struct{}) {
	var timer *time.Timer
	var fire <-chan time.Time

	base := filepath.Base(s.path)

	for {
		select {
		case <-done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case <-fire:
			timer = nil
			fire = nil
			onChange()

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
			// Watcher errors are non-fatal; the in-memory table stays
			// authoritative until the next successful reload.
		}
	}
}
