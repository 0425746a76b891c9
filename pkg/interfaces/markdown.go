package interfaces

// MarkdownRenderer converts markdown text into display-safe HTML. The
// contract is a pure function of its inputs so hosts can reuse a single
// renderer instance across sessions without locking.
type MarkdownRenderer interface {
	// Render converts markdown into HTML honouring the supplied feature
	// flags. It never panics; on internal failure it returns the source
	// escaped as plain content.
	Render(text string, flags FeatureFlags) RenderResult
}

// RenderResult carries the produced markup together with its sanitization
// state. Sanitized is false when the escape-only fallback produced the HTML;
// hosts must re-sanitize such output before injecting it into a live
// document.
type RenderResult struct {
	HTML      string
	Sanitized bool
}

// FeatureFlags toggles individual markdown syntax categories per render
// call. The zero value disables everything; use DefaultFeatureFlags for the
// all-enabled default.
type FeatureFlags struct {
	Headings        bool
	Anchors         bool
	Bold            bool
	Italic          bool
	Strikethrough   bool
	Blockquotes     bool
	Code            bool
	InlineCode      bool
	Links           bool
	Images          bool
	Lists           bool
	TaskLists       bool
	Tables          bool
	Footnotes       bool
	LineBreaks      bool
	HorizontalRules bool
}

// DefaultFeatureFlags enables every syntax category.
func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		Headings:        true,
		Anchors:         true,
		Bold:            true,
		Italic:          true,
		Strikethrough:   true,
		Blockquotes:     true,
		Code:            true,
		InlineCode:      true,
		Links:           true,
		Images:          true,
		Lists:           true,
		TaskLists:       true,
		Tables:          true,
		Footnotes:       true,
		LineBreaks:      true,
		HorizontalRules: true,
	}
}

// Sanitizer filters produced markup through an allow-list policy. The
// escape-only fallback implementation reports PolicyApplied() == false so
// callers can surface the "needs re-sanitization" state instead of
// inferring it from the environment.
type Sanitizer interface {
	Sanitize(html string) string
	PolicyApplied() bool
}

// AllowList declares the tags and attributes a sanitizer policy permits,
// plus the tags and attribute prefixes that always lose even when listed as
// allowed. Instances are treated as immutable once handed to a sanitizer.
type AllowList struct {
	Tags                []string
	Attributes          []string
	ForbiddenTags       []string
	ForbiddenAttributes []string
}

// DefaultAllowList covers the tags and attributes the renderer pipeline can
// emit. script/style/iframe/frame/object/embed/form and on*/style attributes
// are forbidden regardless of the allow entries.
func DefaultAllowList() AllowList {
	return AllowList{
		Tags: []string{
			"p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"a", "strong", "em", "del", "sup",
			"code", "pre", "blockquote",
			"ul", "ol", "li", "input",
			"table", "thead", "tbody", "tr", "th", "td",
			"img", "div", "span",
		},
		Attributes: []string{
			"href", "src", "alt", "title", "id", "class",
			"type", "checked", "disabled", "target", "rel",
		},
		ForbiddenTags: []string{
			"script", "style", "iframe", "frame", "object", "embed", "form",
		},
		ForbiddenAttributes: []string{"on", "style"},
	}
}
