package editorcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

const (
	applyFormatMessageType   = "mdedit.editor.apply_format"
	undoMessageType          = "mdedit.editor.undo"
	redoMessageType          = "mdedit.editor.redo"
	renderPreviewMessageType = "mdedit.editor.render_preview"
)

// ApplyFormatCommand applies a named format to the selection in an open
// session. When Toggle is set, an already-formatted selection has the
// format removed instead.
type ApplyFormatCommand struct {
	// SessionID identifies the editing session the edit targets.
	SessionID uuid.UUID `json:"session_id"`
	// Format names the format spec to apply, e.g. "bold" or "heading-2".
	Format string `json:"format"`
	// SelectionStart is the rune offset where the selection begins.
	SelectionStart int `json:"selection_start"`
	// SelectionEnd is the rune offset where the selection ends.
	SelectionEnd int `json:"selection_end"`
	// Toggle removes the format when the selection already carries it.
	Toggle bool `json:"toggle,omitempty"`
}

// Type implements command.Message.
func (ApplyFormatCommand) Type() string { return applyFormatMessageType }

// Validate ensures the session, format, and selection inputs are coherent
// before handlers execute.
func (cmd ApplyFormatCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SessionID, validation.By(requireSessionID)),
		validation.Field(&cmd.Format, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("mdedit.editor.apply_format.format_required", "format is required")
			}
			return nil
		})),
		validation.Field(&cmd.SelectionStart, validation.Min(0)),
		validation.Field(&cmd.SelectionEnd, validation.Min(cmd.SelectionStart).Error("selection end must not precede selection start")),
	)
}

// Selection converts the command's offsets into a selection value.
func (cmd ApplyFormatCommand) Selection() interfaces.Selection {
	return interfaces.Selection{Start: cmd.SelectionStart, End: cmd.SelectionEnd}
}

// UndoCommand steps a session back one committed snapshot.
type UndoCommand struct {
	// SessionID identifies the editing session to rewind.
	SessionID uuid.UUID `json:"session_id"`
}

// Type implements command.Message.
func (UndoCommand) Type() string { return undoMessageType }

// Validate ensures a session is identified before handlers execute.
func (cmd UndoCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SessionID, validation.By(requireSessionID)),
	)
}

// RedoCommand steps a session forward along its redo branch.
type RedoCommand struct {
	// SessionID identifies the editing session to advance.
	SessionID uuid.UUID `json:"session_id"`
}

// Type implements command.Message.
func (RedoCommand) Type() string { return redoMessageType }

// Validate ensures a session is identified before handlers execute.
func (cmd RedoCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SessionID, validation.By(requireSessionID)),
	)
}

// RenderPreviewCommand renders a session's current text to sanitized HTML.
// The result is delivered through Sink when one is supplied; the handler
// logs output sizes either way.
type RenderPreviewCommand struct {
	// SessionID identifies the editing session to render.
	SessionID uuid.UUID `json:"session_id"`
	// Sink receives the rendered result. Optional.
	Sink func(interfaces.RenderResult) `json:"-"`
}

// Type implements command.Message.
func (RenderPreviewCommand) Type() string { return renderPreviewMessageType }

// Validate ensures a session is identified before handlers execute.
func (cmd RenderPreviewCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SessionID, validation.By(requireSessionID)),
	)
}

func requireSessionID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("mdedit.editor.session_id_required", "session id is required")
	}
	return nil
}
