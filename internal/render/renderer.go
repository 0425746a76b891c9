package render

import (
	"strings"

	"github.com/goliatone/go-mdedit/internal/logging"
	"github.com/goliatone/go-mdedit/internal/sanitize"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// Renderer converts markdown text into sanitized HTML. It is stateless so a
// single instance can serve every render call without locking; all per-call
// state lives in the pipeline state value.
type Renderer struct {
	sanitizer interfaces.Sanitizer
	logger    interfaces.Logger
}

// Option customises renderer construction.
type Option func(*Renderer)

// WithLogger injects the logger used for recovered pipeline failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a renderer around the supplied sanitizer. A nil sanitizer
// selects the passthrough fallback, whose output is flagged as needing
// re-sanitization through RenderResult.Sanitized.
func New(sanitizer interfaces.Sanitizer, opts ...Option) *Renderer {
	if sanitizer == nil {
		sanitizer = sanitize.NewPassthrough()
	}
	r := &Renderer{
		sanitizer: sanitizer,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render runs the staged pipeline over text. It never panics across the
// boundary: a recovered failure degrades to the source escaped as plain
// content, which is inert without further sanitization.
func (r *Renderer) Render(text string, flags interfaces.FeatureFlags) (result interfaces.RenderResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("render.pipeline.panic", "error", rec)
			result = interfaces.RenderResult{
				HTML:      "<p>" + sanitize.EscapeText(text) + "</p>",
				Sanitized: true,
			}
		}
	}()

	st := &state{
		flags: flags,
		text:  normalizeNewlines(text),
	}

	for _, stg := range pipeline {
		if stg.enabled != nil && !stg.enabled(flags) {
			continue
		}
		stg.apply(st)
	}

	return interfaces.RenderResult{
		HTML:      r.sanitizer.Sanitize(st.text),
		Sanitized: r.sanitizer.PolicyApplied(),
	}
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

var _ interfaces.MarkdownRenderer = (*Renderer)(nil)
