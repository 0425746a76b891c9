package history

import (
	"sync"
	"time"

	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// DefaultDebounce is the quiet interval after which a pending snapshot
// commits.
const DefaultDebounce = 500 * time.Millisecond

// Recorder wraps a Store with debounced commits: each Record call replaces
// the pending snapshot and reschedules a single cancel-and-reschedule
// timer, coalescing rapid keystrokes into one undo step. A pending snapshot
// that never fires before Stop is lost; the loss window is bounded by the
// debounce interval.
type Recorder struct {
	mu       sync.Mutex
	store    *Store
	clock    interfaces.Clock
	interval time.Duration
	logger   interfaces.Logger

	timer   interfaces.Timer
	pending string
	waiting bool
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock injects the timer source, defaulting to the wall clock.
func WithClock(clock interfaces.Clock) RecorderOption {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithInterval overrides the debounce interval.
func WithInterval(interval time.Duration) RecorderOption {
	return func(r *Recorder) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithRecorderLogger injects the logger used for commit tracing.
func WithRecorderLogger(logger interfaces.Logger) RecorderOption {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRecorder builds a recorder around the given store.
func NewRecorder(store *Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:    store,
		clock:    NewWallClock(),
		interval: DefaultDebounce,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record notes a content change. The snapshot replaces any pending one and
// the timer restarts, so only the final text of a burst is committed.
func (r *Recorder) Record(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = text
	r.waiting = true
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = r.clock.AfterFunc(r.interval, r.commitPending)
}

func (r *Recorder) commitPending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
}

func (r *Recorder) flushLocked() {
	if !r.waiting {
		return
	}
	r.waiting = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.store.Commit(r.pending)
	r.logger.Debug("history.snapshot.committed", "entries", r.store.Len())
}

// Flush commits the pending snapshot immediately. Undo and Redo call this
// first so a burst in flight becomes undoable before the cursor moves.
func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
}

// Stop cancels the timer and drops any pending snapshot. Use when the
// session ends.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.waiting = false
	r.pending = ""
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Undo flushes pending work, then steps the store back.
func (r *Recorder) Undo() (string, bool) {
	r.Flush()
	return r.store.Undo()
}

// Redo steps the store forward. Pending work is flushed first; note that a
// flush discards the redo branch, which is the standard linear-history
// policy.
func (r *Recorder) Redo() (string, bool) {
	r.Flush()
	return r.store.Redo()
}

// CanUndo reports whether undo is possible, counting unflushed changes.
func (r *Recorder) CanUndo() bool {
	r.mu.Lock()
	waiting := r.waiting && r.pending != r.store.Current()
	r.mu.Unlock()
	return waiting || r.store.CanUndo()
}

// CanRedo reports whether a redo branch exists.
func (r *Recorder) CanRedo() bool {
	return r.store.CanRedo()
}

// Current returns the committed text under the history cursor.
func (r *Recorder) Current() string {
	return r.store.Current()
}
