package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-mdedit/internal/sanitize"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// GoldmarkRenderer is the CommonMark-compliant alternative to the staged
// pipeline for hosts that want full GFM output. It satisfies the same
// contract: feature flags map onto goldmark extensions, and the produced
// markup flows through the same sanitizer.
type GoldmarkRenderer struct {
	sanitizer interfaces.Sanitizer
}

// NewGoldmark builds the GFM renderer. A nil sanitizer selects the
// passthrough fallback, flagged through RenderResult.Sanitized.
func NewGoldmark(sanitizer interfaces.Sanitizer) *GoldmarkRenderer {
	if sanitizer == nil {
		sanitizer = sanitize.NewPassthrough()
	}
	return &GoldmarkRenderer{sanitizer: sanitizer}
}

// Render converts markdown through goldmark. Conversion failures degrade to
// the source escaped as plain content, matching the pipeline renderer.
func (g *GoldmarkRenderer) Render(text string, flags interfaces.FeatureFlags) interfaces.RenderResult {
	engine := newGoldmarkEngine(flags)

	var buf bytes.Buffer
	if err := engine.Convert([]byte(text), &buf); err != nil {
		return interfaces.RenderResult{
			HTML:      "<p>" + sanitize.EscapeText(text) + "</p>",
			Sanitized: true,
		}
	}

	return interfaces.RenderResult{
		HTML:      g.sanitizer.Sanitize(buf.String()),
		Sanitized: g.sanitizer.PolicyApplied(),
	}
}

// newGoldmarkEngine maps feature flags onto goldmark options. The mapping
// is intentionally conservative; flags with no goldmark counterpart are
// ignored.
func newGoldmarkEngine(flags interfaces.FeatureFlags) goldmark.Markdown {
	var exts []goldmark.Extender
	if flags.Tables {
		exts = append(exts, extension.Table)
	}
	if flags.Strikethrough {
		exts = append(exts, extension.Strikethrough)
	}
	if flags.TaskLists {
		exts = append(exts, extension.TaskList)
	}
	if flags.Footnotes {
		exts = append(exts, extension.Footnote)
	}
	if flags.Links {
		exts = append(exts, extension.Linkify)
	}

	parserOptions := []parser.Option{}
	if flags.Headings && flags.Anchors {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}

	rendererOptions := []renderer.Option{}
	if flags.LineBreaks {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	engineOptions := []goldmark.Option{}
	if len(parserOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithParserOptions(parserOptions...))
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var _ interfaces.MarkdownRenderer = (*GoldmarkRenderer)(nil)
