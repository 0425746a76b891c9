// Package editor owns the per-session wiring between the text-edit
// functions, the history recorder, and the renderer. A session mirrors one
// open document: the host forwards selections and format requests, the
// session forwards text snapshots to history and renders previews on
// demand.
package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-mdedit/internal/history"
	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/internal/textedit"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// ErrUnknownFormat is returned when a format name has no registered spec.
var ErrUnknownFormat = errors.New("editor: unknown format")

// Session is one editing session over a single document. All mutations go
// through the session's own calls; there is no concurrent writer by
// construction, the mutex only guards against the debounce timer firing
// while a call is in flight.
type Session struct {
	id       uuid.UUID
	mu       sync.Mutex
	text     string
	recorder *history.Recorder
	renderer interfaces.MarkdownRenderer
	flags    interfaces.FeatureFlags
	logger   interfaces.Logger
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() uuid.UUID { return s.id }

// Text returns the current document text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText replaces the document wholesale, e.g. after an external load.
// The replacement is recorded as a normal edit so it stays undoable.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.recorder.Record(text)
}

// Format applies the named format to the selection and records the result.
func (s *Session) Format(name string, sel interfaces.Selection) (interfaces.EditResult, error) {
	spec, ok := textedit.Spec(name)
	if !ok {
		return interfaces.EditResult{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := textedit.FormatText(s.text, sel, spec)
	s.applyLocked(name, result)
	return result, nil
}

// Toggle applies or removes the named format depending on the selection's
// affixes, and records the result.
func (s *Session) Toggle(name string, sel interfaces.Selection) (interfaces.EditResult, error) {
	spec, ok := textedit.Spec(name)
	if !ok {
		return interfaces.EditResult{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := textedit.ToggleFormatting(s.text, sel, spec)
	s.applyLocked(name, result)
	return result, nil
}

func (s *Session) applyLocked(name string, result interfaces.EditResult) {
	if result.Text == s.text {
		return
	}
	s.text = result.Text
	s.recorder.Record(result.Text)
	logging.WithEditorContext(s.logger, s.id.String(), name).
		Debug("editor.format.applied", "text_len", len(result.Text))
}

// Undo steps the document back one committed snapshot.
func (s *Session) Undo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.recorder.Undo()
	if ok {
		s.text = text
	}
	return s.text, ok
}

// Redo steps the document forward along the redo branch.
func (s *Session) Redo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.recorder.Redo()
	if ok {
		s.text = text
	}
	return s.text, ok
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.recorder.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.recorder.CanRedo() }

// Preview renders the current text with the session's default flags.
func (s *Session) Preview() interfaces.RenderResult {
	return s.PreviewWith(s.flags)
}

// PreviewWith renders the current text with caller-supplied flags.
func (s *Session) PreviewWith(flags interfaces.FeatureFlags) interfaces.RenderResult {
	return s.renderer.Render(s.Text(), flags)
}

// Flush commits any pending debounced snapshot immediately.
func (s *Session) Flush() { s.recorder.Flush() }

// Close drops the pending snapshot and releases the debounce timer. The
// loss window is bounded by the debounce interval.
func (s *Session) Close() { s.recorder.Stop() }

// Metrics reports word, character, and line counts for the current text.
func (s *Session) Metrics() (words, chars, lines int) {
	text := s.Text()
	return textedit.CountWords(text), textedit.CountChars(text), textedit.CountLines(text)
}
