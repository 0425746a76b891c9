package render

import "github.com/goliatone/go-mdedit/pkg/interfaces"

// state is the working document threaded through the pipeline. text is the
// mutable markup; lifted fragments wait in side tables keyed by opaque
// placeholder tokens until their resolve stage runs.
type state struct {
	flags interfaces.FeatureFlags
	text  string

	// fenced code blocks, emitted as-is during restoreFences.
	fences []string
	// inline code spans, emitted during restoreFences after the inline
	// passes so their bodies are never reinterpreted.
	codes []string
	// task-list items captured by tokenizeTaskLists.
	tasks []taskToken
}

// stage is one named transformation pass. enabled gates the pass on the
// per-call feature flags; a nil gate always runs.
type stage struct {
	name    string
	enabled func(interfaces.FeatureFlags) bool
	apply   func(*state)
}

// pipeline lists every stage in execution order.
//
// Contracts, in order:
//  1. extractFences: input is raw markdown; fenced bodies are escaped and
//     lifted out so no later stage can touch them.
//  2. escapeText: the remaining text is HTML-escaped wholesale. Every stage
//     after this point operates on escaped text and may emit tags.
//  3. tokenizeTaskLists: `- [ ]`/`- [x]` items become opaque tokens so the
//     list scanner cannot also match them.
//  4. lists: ordered/unordered blocks resolve line-by-line with depth and
//     type tracking.
//  5. images: before links; image syntax is a strict superset of link
//     syntax and must not be partially consumed by the link pass.
//  6. headings: #×1..6 with slug-derived ids and optional anchors.
//  7. lineBreaks: two trailing spaces become a hard break.
//  8. blockquotes: repeated `&gt;` markers map to nested quote depth.
//  9. tables: contiguous pipe-delimited runs become one table each.
//  10. inlinePasses: inline code, bold, italic, strikethrough, links,
//     footnotes, horizontal rules, in that order, on whatever text remains
//     outside already-emitted tags.
//  11. resolveTaskLists: tokens from stage 3 turn into checkbox list items.
//  12. paragraphs: remaining bare lines wrap in paragraph tags.
//  13. restoreFences: placeholders from stages 1 and 10 are replaced with
//     their emitted fragments.
//
// Sanitization runs after the pipeline in Renderer.Render as a second,
// independent line of defense.
var pipeline = []stage{
	{name: "code-fences", enabled: func(f interfaces.FeatureFlags) bool { return f.Code }, apply: extractFences},
	{name: "escape", apply: escapeText},
	{name: "task-list-tokenize", enabled: func(f interfaces.FeatureFlags) bool { return f.TaskLists }, apply: tokenizeTaskLists},
	{name: "lists", enabled: func(f interfaces.FeatureFlags) bool { return f.Lists }, apply: applyLists},
	{name: "images", enabled: func(f interfaces.FeatureFlags) bool { return f.Images }, apply: applyImages},
	{name: "headings", enabled: func(f interfaces.FeatureFlags) bool { return f.Headings }, apply: applyHeadings},
	{name: "line-breaks", enabled: func(f interfaces.FeatureFlags) bool { return f.LineBreaks }, apply: applyLineBreaks},
	{name: "blockquotes", enabled: func(f interfaces.FeatureFlags) bool { return f.Blockquotes }, apply: applyBlockquotes},
	{name: "tables", enabled: func(f interfaces.FeatureFlags) bool { return f.Tables }, apply: applyTables},
	{name: "inline", apply: applyInlinePasses},
	{name: "task-list-resolve", enabled: func(f interfaces.FeatureFlags) bool { return f.TaskLists }, apply: resolveTaskLists},
	{name: "paragraphs", apply: applyParagraphs},
	{name: "restore-fences", apply: restoreFences},
}

// StageNames exposes the pipeline order for diagnostics and tests.
func StageNames() []string {
	names := make([]string, len(pipeline))
	for i, stg := range pipeline {
		names[i] = stg.name
	}
	return names
}

func escapeText(st *state) {
	st.text = escapeAll(st.text)
}
