package textedit

import (
	"strings"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// FormatText applies spec to the selected range of text. The decision table
// runs top to bottom, first match wins:
//
//  1. empty selection + block-level spec: insert prefix+suffix on its own
//     line(s), cursor after the prefix;
//  2. replace-selection spec: selection becomes the prefix verbatim;
//  3. multiline spec over a multi-line selection: prefix each non-blank
//     line;
//  4. otherwise: wrap the selection in prefix/suffix.
func FormatText(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	sel = ClampSelection(text, sel)

	switch {
	case sel.IsEmpty() && spec.BlockLevel && !spec.ReplaceSelection:
		return insertBlock(text, sel, spec)
	case spec.ReplaceSelection:
		return replaceSelection(text, sel, spec)
	case spec.Multiline && strings.Contains(sel.Text, "\n"):
		return prefixLines(text, sel, spec)
	default:
		return wrapSelection(text, sel, spec)
	}
}

// insertBlock drops prefix+suffix at the cursor, padding with a leading
// newline unless the previous character already is one, and a trailing
// newline unless the next character is. The cursor lands right after the
// prefix so the user types into the block.
func insertBlock(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	before, after := text[:sel.Start], text[sel.End:]

	lead := ""
	if before != "" && !strings.HasSuffix(before, "\n") {
		lead = "\n"
	}
	trail := ""
	if after != "" && !strings.HasPrefix(after, "\n") {
		trail = "\n"
	}

	inserted := lead + spec.Prefix + spec.Suffix + trail
	cursor := sel.Start + len(lead) + len(spec.Prefix)
	return interfaces.EditResult{
		Text:      before + inserted + after,
		Selection: interfaces.Cursor(cursor),
	}
}

func replaceSelection(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	before, after := text[:sel.Start], text[sel.End:]
	return interfaces.EditResult{
		Text:      before + spec.Prefix + after,
		Selection: interfaces.Cursor(sel.Start + len(spec.Prefix)),
	}
}

// prefixLines applies LinePrefix to every non-blank line of the selection.
// The prefix index counts non-blank lines only, so numbered variants emit a
// contiguous sequence; blank lines pass through unchanged. The returned
// selection covers the whole transformed block.
func prefixLines(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	lines := strings.Split(sel.Text, "\n")
	index := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = spec.LinePrefix(index) + line
		index++
	}

	block := strings.Join(lines, "\n")
	before, after := text[:sel.Start], text[sel.End:]
	return interfaces.EditResult{
		Text: before + block + after,
		Selection: interfaces.Selection{
			Start: sel.Start,
			End:   sel.Start + len(block),
			Text:  block,
		},
	}
}

func wrapSelection(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	before, after := text[:sel.Start], text[sel.End:]
	wrapped := spec.Prefix + sel.Text + spec.Suffix

	if sel.IsEmpty() {
		// Cursor between prefix and suffix, ready for typing.
		return interfaces.EditResult{
			Text:      before + wrapped + after,
			Selection: interfaces.Cursor(sel.Start + len(spec.Prefix)),
		}
	}

	return interfaces.EditResult{
		Text: before + wrapped + after,
		Selection: interfaces.Selection{
			Start: sel.Start,
			End:   sel.Start + len(wrapped),
			Text:  wrapped,
		},
	}
}

// ToggleFormatting removes spec's affixes when the selection already starts
// with the prefix and ends with the suffix, and delegates to FormatText
// otherwise.
//
// Known limitation: this is a fixed-length affix check, not a semantic
// parse. A selection that coincidentally starts and ends with the affixes
// toggles "off" even when the formatting was never applied; distinguishing
// the two would require tracking applied-format spans explicitly.
func ToggleFormatting(text string, sel interfaces.Selection, spec interfaces.FormatSpec) interfaces.EditResult {
	sel = ClampSelection(text, sel)

	affixed := len(sel.Text) >= len(spec.Prefix)+len(spec.Suffix) &&
		strings.HasPrefix(sel.Text, spec.Prefix) &&
		strings.HasSuffix(sel.Text, spec.Suffix)
	if !affixed || (spec.Prefix == "" && spec.Suffix == "") {
		return FormatText(text, sel, spec)
	}

	stripped := sel.Text[len(spec.Prefix) : len(sel.Text)-len(spec.Suffix)]
	before, after := text[:sel.Start], text[sel.End:]
	return interfaces.EditResult{
		Text: before + stripped + after,
		Selection: interfaces.Selection{
			Start: sel.Start,
			End:   sel.Start + len(stripped),
			Text:  stripped,
		},
	}
}
