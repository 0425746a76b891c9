package render

import "strings"

// blockLinePrefixes identifies lines emitted by the block stages (headings,
// lists, blockquotes, tables, rules, footnote definitions). Only these pass
// through the paragraph stage untouched; a line that merely begins with an
// inline tag such as <strong> is still paragraph content. The escape stage
// guarantees every literal `<` became &lt;, so a line-initial `<` can only
// come from a stage.
var blockLinePrefixes = []string{
	"<h1", "<h2", "<h3", "<h4", "<h5", "<h6", "<hr",
	"<ul", "</ul", "<ol", "</ol", "<li", "</li",
	"<blockquote", "</blockquote",
	"<table", "</table", "<thead", "</thead", "<tbody", "</tbody",
	"<tr", "</tr", "<th", "<td",
	"<p", "</p",
}

func isBlockLine(line string) bool {
	if strings.HasPrefix(line, fencePlaceholderPrefix) {
		return true
	}
	for _, prefix := range blockLinePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// applyParagraphs wraps whatever is left. Consecutive bare lines group into
// one paragraph; a blank line is a paragraph boundary; lines already owned
// by an emitted block tag (or by a pending fence placeholder) pass through
// untouched. Lines that open with an inline-formatted span still count as
// paragraph content.
func applyParagraphs(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string
	var open []string

	flush := func() {
		if len(open) == 0 {
			return
		}
		out = append(out, "<p>"+strings.Join(open, "\n")+"</p>")
		open = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case isBlockLine(trimmed):
			flush()
			out = append(out, line)
		default:
			open = append(open, line)
		}
	}
	flush()

	st.text = strings.Join(out, "\n")
}
