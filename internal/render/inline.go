package render

import (
	"fmt"
	"regexp"
	"strings"
)

// The escape stage rewrites `"` to `&#34;`, so quoted link and image titles
// match on the entity form.
var (
	imageRe        = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+&#34;([^)]*)&#34;)?\)`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)(?:\s+&#34;([^)]*)&#34;)?\)`)
	inlineCodeRe   = regexp.MustCompile("`([^`\n]+)`")
	boldAsteriskRe = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	// The underscore variants require a non-word boundary so snake_case
	// identifiers and underscores inside emitted attributes survive.
	boldUnderscore  = regexp.MustCompile(`(^|[^\w])__([^_\n]+)__($|[^\w])`)
	italicAsterisk  = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderline = regexp.MustCompile(`(^|[^\w])_([^_\n]+)_($|[^\w])`)
	strikethrough   = regexp.MustCompile(`~~([^~\n]+)~~`)
	footnoteDefRe   = regexp.MustCompile(`(?m)^\[\^([A-Za-z0-9_-]+)\]: (.+)$`)
	footnoteRefRe   = regexp.MustCompile(`\[\^([A-Za-z0-9_-]+)\]`)
	horizontalRe    = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})\s*$`)
)

// applyImages runs before the link pass: image syntax is a strict superset
// of link syntax, so letting the link pass go first would leave a dangling
// `!` and a half-consumed match.
func applyImages(st *state) {
	st.text = imageRe.ReplaceAllStringFunc(st.text, func(match string) string {
		m := imageRe.FindStringSubmatch(match)
		if !safeURL(m[2]) {
			return match
		}
		img := `<img src="` + m[2] + `" alt="` + m[1] + `"`
		if m[3] != "" {
			img += ` title="` + m[3] + `"`
		}
		return img + ">"
	})
}

// applyInlinePasses runs the remaining substitutions in a fixed order:
// inline code first (its body is tokenized away so later passes cannot
// reformat it), then bold before italic so `**` is consumed before `*`,
// strikethrough, links, footnotes, and horizontal rules.
func applyInlinePasses(st *state) {
	if st.flags.InlineCode {
		st.text = inlineCodeRe.ReplaceAllStringFunc(st.text, func(match string) string {
			m := inlineCodeRe.FindStringSubmatch(match)
			token := fmt.Sprintf(codeToken, len(st.codes))
			st.codes = append(st.codes, "<code>"+m[1]+"</code>")
			return token
		})
	}

	if st.flags.Bold {
		st.text = boldAsteriskRe.ReplaceAllString(st.text, "<strong>$1</strong>")
		st.text = boldUnderscore.ReplaceAllString(st.text, "$1<strong>$2</strong>$3")
	}

	if st.flags.Italic {
		st.text = italicAsterisk.ReplaceAllString(st.text, "<em>$1</em>")
		st.text = italicUnderline.ReplaceAllString(st.text, "$1<em>$2</em>$3")
	}

	if st.flags.Strikethrough {
		st.text = strikethrough.ReplaceAllString(st.text, "<del>$1</del>")
	}

	if st.flags.Links {
		st.text = linkRe.ReplaceAllStringFunc(st.text, func(match string) string {
			m := linkRe.FindStringSubmatch(match)
			if !safeURL(m[2]) {
				return match
			}
			a := `<a href="` + m[2] + `"`
			if m[3] != "" {
				a += ` title="` + m[3] + `"`
			}
			return a + ` target="_blank" rel="noopener noreferrer">` + m[1] + "</a>"
		})
	}

	if st.flags.Footnotes {
		st.text = footnoteDefRe.ReplaceAllString(st.text,
			`<p class="footnote" id="fn-$1"><sup>$1</sup> $2 <a href="#fnref-$1">&#8617;</a></p>`)
		st.text = footnoteRefRe.ReplaceAllString(st.text,
			`<sup id="fnref-$1"><a href="#fn-$1">$1</a></sup>`)
	}

	if st.flags.HorizontalRules {
		st.text = horizontalRe.ReplaceAllString(st.text, "<hr>")
	}
}

// safeURL rejects URL schemes outside http, https, and mailto at capture
// time. The sanitizer enforces the same rule later; this keeps the
// escape-only fallback path free of javascript: and data: vectors too.
func safeURL(raw string) bool {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "/") ||
		strings.HasPrefix(lower, "./") ||
		strings.HasPrefix(lower, "../") {
		return true
	}
	return !strings.Contains(lower, ":")
}
