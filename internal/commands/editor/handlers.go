package editorcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-mdedit/internal/commands"
	"github.com/goliatone/go-mdedit/internal/editor"
	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

const (
	applyFormatOperation   = "editor.apply_format"
	undoOperation          = "editor.undo"
	redoOperation          = "editor.redo"
	renderPreviewOperation = "editor.render_preview"
)

// ErrEditorFeatureDisabled is returned when the editor feature flag is disabled at runtime.
var ErrEditorFeatureDisabled = errors.New("editor command: feature disabled")

var (
	_ command.Commander[ApplyFormatCommand]   = (*ApplyFormatHandler)(nil)
	_ command.Commander[UndoCommand]          = (*UndoHandler)(nil)
	_ command.Commander[RedoCommand]          = (*RedoHandler)(nil)
	_ command.Commander[RenderPreviewCommand] = (*RenderPreviewHandler)(nil)
)

// ApplyFormatHandler applies or toggles selection formats via the shared
// command handler foundation.
type ApplyFormatHandler struct {
	inner *commands.Handler[ApplyFormatCommand]
}

// NewApplyFormatHandler creates a handler bound to the supplied session manager.
func NewApplyFormatHandler(manager *editor.Manager, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ApplyFormatCommand]) *ApplyFormatHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ApplyFormatCommand) error {
		if !gates.editorEnabled() {
			return ErrEditorFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		session, err := manager.Get(msg.SessionID)
		if err != nil {
			return err
		}

		var result interfaces.EditResult
		if msg.Toggle {
			result, err = session.Toggle(msg.Format, msg.Selection())
		} else {
			result, err = session.Format(msg.Format, msg.Selection())
		}
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"text_len":        len(result.Text),
			"selection_start": result.Selection.Start,
			"selection_end":   result.Selection.End,
			"toggle":          msg.Toggle,
		}).Info("editor.command.apply_format.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ApplyFormatCommand]{
		commands.WithLogger[ApplyFormatCommand](baseLogger),
		commands.WithOperation[ApplyFormatCommand](applyFormatOperation),
		commands.WithMessageFields(func(msg ApplyFormatCommand) map[string]any {
			fields := map[string]any{
				"session_id": msg.SessionID,
				"format":     msg.Format,
			}
			if msg.Toggle {
				fields["toggle"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ApplyFormatCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ApplyFormatHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ApplyFormatCommand].
func (h *ApplyFormatHandler) Execute(ctx context.Context, msg ApplyFormatCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UndoHandler rewinds session history via the shared command handler foundation.
type UndoHandler struct {
	inner *commands.Handler[UndoCommand]
}

// NewUndoHandler creates a handler bound to the supplied session manager.
func NewUndoHandler(manager *editor.Manager, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[UndoCommand]) *UndoHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg UndoCommand) error {
		if !gates.editorEnabled() {
			return ErrEditorFeatureDisabled
		}

		session, err := manager.Get(msg.SessionID)
		if err != nil {
			return err
		}

		_, stepped := session.Undo()
		logging.WithFields(baseLogger, map[string]any{
			"stepped":  stepped,
			"can_undo": session.CanUndo(),
		}).Info("editor.command.undo.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[UndoCommand]{
		commands.WithLogger[UndoCommand](baseLogger),
		commands.WithOperation[UndoCommand](undoOperation),
		commands.WithMessageFields(func(msg UndoCommand) map[string]any {
			return map[string]any{"session_id": msg.SessionID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[UndoCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UndoHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UndoCommand].
func (h *UndoHandler) Execute(ctx context.Context, msg UndoCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RedoHandler advances session history via the shared command handler foundation.
type RedoHandler struct {
	inner *commands.Handler[RedoCommand]
}

// NewRedoHandler creates a handler bound to the supplied session manager.
func NewRedoHandler(manager *editor.Manager, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RedoCommand]) *RedoHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RedoCommand) error {
		if !gates.editorEnabled() {
			return ErrEditorFeatureDisabled
		}

		session, err := manager.Get(msg.SessionID)
		if err != nil {
			return err
		}

		_, stepped := session.Redo()
		logging.WithFields(baseLogger, map[string]any{
			"stepped":  stepped,
			"can_redo": session.CanRedo(),
		}).Info("editor.command.redo.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RedoCommand]{
		commands.WithLogger[RedoCommand](baseLogger),
		commands.WithOperation[RedoCommand](redoOperation),
		commands.WithMessageFields(func(msg RedoCommand) map[string]any {
			return map[string]any{"session_id": msg.SessionID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RedoCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RedoHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RedoCommand].
func (h *RedoHandler) Execute(ctx context.Context, msg RedoCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderPreviewHandler renders session text to sanitized HTML via the shared
// command handler foundation.
type RenderPreviewHandler struct {
	inner *commands.Handler[RenderPreviewCommand]
}

// NewRenderPreviewHandler creates a handler bound to the supplied session manager.
func NewRenderPreviewHandler(manager *editor.Manager, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RenderPreviewCommand]) *RenderPreviewHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RenderPreviewCommand) error {
		if !gates.editorEnabled() {
			return ErrEditorFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		session, err := manager.Get(msg.SessionID)
		if err != nil {
			return err
		}

		result := session.Preview()
		if msg.Sink != nil {
			msg.Sink(result)
		}

		logging.WithFields(baseLogger, map[string]any{
			"html_len":  len(result.HTML),
			"sanitized": result.Sanitized,
		}).Info("editor.command.render_preview.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderPreviewCommand]{
		commands.WithLogger[RenderPreviewCommand](baseLogger),
		commands.WithOperation[RenderPreviewCommand](renderPreviewOperation),
		commands.WithMessageFields(func(msg RenderPreviewCommand) map[string]any {
			return map[string]any{"session_id": msg.SessionID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderPreviewCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderPreviewHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderPreviewCommand].
func (h *RenderPreviewHandler) Execute(ctx context.Context, msg RenderPreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}
