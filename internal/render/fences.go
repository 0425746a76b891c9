package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-mdedit/internal/sanitize"
)

const (
	fenceToken = "\x00mdfence:%d\x00"
	codeToken  = "\x00mdcode:%d\x00"

	// fencePlaceholderPrefix marks lines the paragraph stage must leave
	// alone until restoreFences replaces them with the emitted block.
	fencePlaceholderPrefix = "\x00mdfence:"
)

func escapeAll(text string) string {
	return sanitize.EscapeText(text)
}

// extractFences lifts each ``` block out of the document before any other
// stage runs, escaping its body verbatim. The body is therefore never
// reinterpreted as a list, heading, or table even when it syntactically
// resembles one. An unterminated fence swallows the rest of the document
// rather than failing.
func extractFences(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			out = append(out, line)
			continue
		}

		lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		var body []string
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "```" {
				break
			}
			body = append(body, lines[i])
		}

		out = append(out, fmt.Sprintf(fenceToken, len(st.fences)))
		st.fences = append(st.fences, fenceHTML(lang, strings.Join(body, "\n")))
	}

	st.text = strings.Join(out, "\n")
}

func fenceHTML(lang, body string) string {
	escaped := sanitize.EscapeText(body)
	if lang == "" {
		return "<pre><code>" + escaped + "</code></pre>"
	}
	return `<pre><code class="language-` + sanitize.EscapeText(lang) + `">` + escaped + "</code></pre>"
}

// restoreFences swaps fence and inline-code placeholders back in. It runs
// after paragraph wrapping so multi-line code bodies are never split into
// paragraphs.
func restoreFences(st *state) {
	for i, html := range st.fences {
		st.text = strings.Replace(st.text, fmt.Sprintf(fenceToken, i), html, 1)
	}
	for i, html := range st.codes {
		st.text = strings.Replace(st.text, fmt.Sprintf(codeToken, i), html, 1)
	}
}
