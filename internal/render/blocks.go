package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"
)

var headingRe = regexp.MustCompile(`(?m)^(#{1,6}) (.+)$`)

// applyHeadings renders #×1..6 lines. The id is derived from the heading
// text by the shared slug rules (lowercase, non-word runs collapse to "-");
// when anchors are enabled the same id backs an anchor link wrapping the
// heading text.
func applyHeadings(st *state) {
	st.text = headingRe.ReplaceAllStringFunc(st.text, func(match string) string {
		m := headingRe.FindStringSubmatch(match)
		tag := "h" + strconv.Itoa(len(m[1]))
		content := m[2]
		id := headingID(content)

		if st.flags.Anchors {
			content = `<a href="#` + id + `" class="anchor">` + content + `</a>`
		}
		return "<" + tag + ` id="` + id + `">` + content + "</" + tag + ">"
	})
}

var nonWordRunRe = regexp.MustCompile(`[^a-z0-9]+`)

// headingID prefers the shared slug normalizer and falls back to collapsing
// non-word runs when the text has no sluggable content.
func headingID(text string) string {
	if normalized, err := slug.Normalize(text); err == nil && normalized != "" {
		return normalized
	}
	id := strings.Trim(nonWordRunRe.ReplaceAllString(strings.ToLower(text), "-"), "-")
	if id == "" {
		return "section"
	}
	return id
}

var trailingSpacesRe = regexp.MustCompile(`(?m) {2,}$`)

// applyLineBreaks turns two or more trailing spaces into a hard break.
// Blank-line paragraph boundaries are handled by the paragraph stage.
func applyLineBreaks(st *state) {
	st.text = trailingSpacesRe.ReplaceAllString(st.text, "<br>")
}

var blockquoteRe = regexp.MustCompile(`^((?:&gt;\s?)+)(.*)$`)

// applyBlockquotes maps repeated `>` markers (escaped to &gt; by the escape
// stage) to nested blockquote elements; inline styling is left to the host
// stylesheet since style attributes never survive sanitization.
func applyBlockquotes(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string
	open := 0

	closeTo := func(depth int) {
		for open > depth {
			out = append(out, "</blockquote>")
			open--
		}
	}

	for _, line := range lines {
		m := blockquoteRe.FindStringSubmatch(line)
		if m == nil {
			closeTo(0)
			out = append(out, line)
			continue
		}

		depth := strings.Count(m[1], "&gt;")
		closeTo(depth)
		for open < depth {
			out = append(out, "<blockquote>")
			open++
		}
		out = append(out, m[2])
	}
	closeTo(0)

	st.text = strings.Join(out, "\n")
}
