// Package mdedit is a markdown document engine: a feature-flagged
// markdown to sanitized-HTML renderer, a selection-aware text-edit engine
// with format toggling, and bounded undo/redo history with debounced
// snapshots.
package mdedit

import (
	"github.com/goliatone/go-mdedit/internal/di"
	"github.com/goliatone/go-mdedit/internal/document"
	"github.com/goliatone/go-mdedit/internal/editor"
	"github.com/goliatone/go-mdedit/internal/textedit"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// RenderResult exports the renderer output DTO.
type RenderResult = interfaces.RenderResult

// FeatureFlags exports the per-render feature toggles.
type FeatureFlags = interfaces.FeatureFlags

// AllowList exports the sanitizer policy DTO.
type AllowList = interfaces.AllowList

// Selection exports the selection DTO used by edit operations.
type Selection = interfaces.Selection

// FormatSpec exports the format description applied by edit operations.
type FormatSpec = interfaces.FormatSpec

// EditResult exports the edit output DTO.
type EditResult = interfaces.EditResult

// Document exports the parsed markdown document DTO.
type Document = interfaces.Document

// FrontMatter exports the document metadata DTO.
type FrontMatter = interfaces.FrontMatter

// MarkdownRenderer exports the renderer contract.
type MarkdownRenderer = interfaces.MarkdownRenderer

// Session exports the editing session type.
type Session = editor.Session

// SessionManager exports the session manager type.
type SessionManager = editor.Manager

// DocumentLoader exports the filesystem document loader.
type DocumentLoader = document.Loader

// DefaultFeatureFlags returns the all-features-on render defaults.
func DefaultFeatureFlags() FeatureFlags {
	return interfaces.DefaultFeatureFlags()
}

// DefaultAllowList returns the baseline sanitizer policy.
func DefaultAllowList() AllowList {
	return interfaces.DefaultAllowList()
}

// FormatNames lists the registered format spec names.
func FormatNames() []string {
	return textedit.SpecNames()
}

// Module represents the top level engine runtime façade.
type Module struct {
	container *di.Container
}

// New constructs an engine module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Renderer returns the configured markdown renderer.
func (m *Module) Renderer() MarkdownRenderer {
	return m.container.Renderer()
}

// Render renders markdown with the configured default flags.
func (m *Module) Render(text string) RenderResult {
	return m.container.Renderer().Render(text, m.container.Config.Render.DefaultFlags)
}

// Sessions returns the editor session manager, or nil when the editor
// feature is disabled.
func (m *Module) Sessions() *SessionManager {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.EditorManager()
}

// Documents returns the document loader when a filesystem was bound.
func (m *Module) Documents() *DocumentLoader {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.DocumentLoader()
}
