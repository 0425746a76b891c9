package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

const (
	rootModule     = "mdedit"
	renderModule   = "mdedit.render"
	editorModule   = "mdedit.editor"
	historyModule  = "mdedit.history"
	documentModule = "mdedit.document"
)

const (
	fieldSessionID    = "session_id"
	fieldFormat       = "format"
	fieldDocumentPath = "document_path"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RenderLogger returns the logger namespace reserved for the renderer
// pipeline.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// EditorLogger returns the logger namespace reserved for editing sessions.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// HistoryLogger returns the logger namespace reserved for undo/redo
// bookkeeping.
func HistoryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, historyModule)
}

// DocumentLogger returns the logger namespace reserved for document loading.
func DocumentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentModule)
}

// WithEditorContext enriches the provided logger with common editing fields
// such as the session id and the requested format. Empty values are ignored.
func WithEditorContext(logger interfaces.Logger, sessionID, format string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(sessionID); trimmed != "" {
		fields[fieldSessionID] = trimmed
	}
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		fields[fieldFormat] = trimmed
	}
	return WithFields(logger, fields)
}

// WithDocumentContext attaches the document path to subsequent log entries.
func WithDocumentContext(logger interfaces.Logger, path string) interfaces.Logger {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldDocumentPath: trimmed})
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
