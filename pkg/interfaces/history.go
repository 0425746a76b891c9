package interfaces

import "time"

// History exposes the undo/redo contract for one editing session. The
// current entry always equals the session's text; redoable entries sit
// after the cursor and are discarded when a new commit arrives.
type History interface {
	Commit(text string)
	Undo() (string, bool)
	Redo() (string, bool)
	CanUndo() bool
	CanRedo() bool
	Current() string
	Len() int
}

// Clock abstracts timer scheduling so debounced history commits stay
// testable. Production code uses the wall clock; tests inject a fake.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the cancellable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}
