package textedit

import "github.com/goliatone/go-mdedit/pkg/interfaces"

// ClampSelection forces the selection offsets into [0, len(text)], swaps an
// inverted range, and re-derives the selected substring. Hosts can hand in
// stale selections (for example after an external text replacement) without
// triggering an error path.
func ClampSelection(text string, sel interfaces.Selection) interfaces.Selection {
	start, end := sel.Start, sel.End
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start, end = end, start
	}
	return interfaces.Selection{Start: start, End: end, Text: text[start:end]}
}
