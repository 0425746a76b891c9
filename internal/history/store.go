// Package history provides the bounded, branch-discarding undo/redo stack
// backing one editing session, plus the debounced recorder that coalesces
// rapid keystrokes into single snapshots.
package history

import (
	"sync"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// DefaultMaxEntries caps the snapshot window when no explicit limit is
// configured.
const DefaultMaxEntries = 100

// Store keeps full-text snapshots with a cursor into them. The entry under
// the cursor always equals the session's current text; entries after it are
// the redo branch, discarded whenever a new commit arrives. When the window
// exceeds its cap the oldest entries are dropped and the cursor shifts so
// the invariant holds.
type Store struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	max     int
}

// NewStore seeds the history with the initial document.
func NewStore(seed string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Store{
		entries: []string{seed},
		max:     maxEntries,
	}
}

// Commit appends text as the new current entry, discarding the redo branch.
// Committing the current text again is a no-op so undo steps stay
// meaningful.
func (s *Store) Commit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[s.cursor] == text {
		return
	}

	s.entries = append(s.entries[:s.cursor+1], text)
	s.cursor++

	if excess := len(s.entries) - s.max; excess > 0 {
		s.entries = s.entries[excess:]
		s.cursor -= excess
	}
}

// Undo moves the cursor back one entry. It reports false at the oldest
// entry.
func (s *Store) Undo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor == 0 {
		return s.entries[s.cursor], false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward one entry. It reports false at the newest
// entry.
func (s *Store) Redo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor == len(s.entries)-1 {
		return s.entries[s.cursor], false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// CanUndo reports whether an older entry exists.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor > 0
}

// CanRedo reports whether a redo branch exists.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor < len(s.entries)-1
}

// Current returns the entry under the cursor.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.cursor]
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

var _ interfaces.History = (*Store)(nil)
