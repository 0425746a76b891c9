package editorcmd

import (
	"errors"

	"github.com/goliatone/go-mdedit/internal/commands"
	"github.com/goliatone/go-mdedit/internal/editor"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the editor command handlers produced by RegisterEditorCommands.
type HandlerSet struct {
	ApplyFormat *ApplyFormatHandler
	Undo        *UndoHandler
	Redo        *RedoHandler
	Preview     *RenderPreviewHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	applyHandlerOpts   []commands.HandlerOption[ApplyFormatCommand]
	undoHandlerOpts    []commands.HandlerOption[UndoCommand]
	redoHandlerOpts    []commands.HandlerOption[RedoCommand]
	previewHandlerOpts []commands.HandlerOption[RenderPreviewCommand]
}

// WithApplyFormatHandlerOptions forwards options to the ApplyFormatHandler constructor.
func WithApplyFormatHandlerOptions(opts ...commands.HandlerOption[ApplyFormatCommand]) Option {
	return func(cfg *options) {
		cfg.applyHandlerOpts = append(cfg.applyHandlerOpts, opts...)
	}
}

// WithUndoHandlerOptions forwards options to the UndoHandler constructor.
func WithUndoHandlerOptions(opts ...commands.HandlerOption[UndoCommand]) Option {
	return func(cfg *options) {
		cfg.undoHandlerOpts = append(cfg.undoHandlerOpts, opts...)
	}
}

// WithRedoHandlerOptions forwards options to the RedoHandler constructor.
func WithRedoHandlerOptions(opts ...commands.HandlerOption[RedoCommand]) Option {
	return func(cfg *options) {
		cfg.redoHandlerOpts = append(cfg.redoHandlerOpts, opts...)
	}
}

// WithPreviewHandlerOptions forwards options to the RenderPreviewHandler constructor.
func WithPreviewHandlerOptions(opts ...commands.HandlerOption[RenderPreviewCommand]) Option {
	return func(cfg *options) {
		cfg.previewHandlerOpts = append(cfg.previewHandlerOpts, opts...)
	}
}

// RegisterEditorCommands builds editor command handlers and registers them
// with the provided registry. A HandlerSet containing the constructed
// handlers is returned so callers can wire additional integrations as
// needed.
func RegisterEditorCommands(reg CommandRegistry, manager *editor.Manager, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if manager == nil {
		return nil, errors.New("editor command registration: manager is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "editor")

	set := &HandlerSet{
		ApplyFormat: NewApplyFormatHandler(manager, logger, gates, cfg.applyHandlerOpts...),
		Undo:        NewUndoHandler(manager, logger, gates, cfg.undoHandlerOpts...),
		Redo:        NewRedoHandler(manager, logger, gates, cfg.redoHandlerOpts...),
		Preview:     NewRenderPreviewHandler(manager, logger, gates, cfg.previewHandlerOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.ApplyFormat, set.Undo, set.Redo, set.Preview} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}
