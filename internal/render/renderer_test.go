package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-mdedit/internal/sanitize"
	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

func newTestRenderer() *Renderer {
	return New(sanitize.Default())
}

func TestRenderBoldAndItalic(t *testing.T) {
	result := newTestRenderer().Render("**hi** and _there_", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, "<strong>hi</strong>") {
		t.Fatalf("expected bold markup, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "<em>there</em>") {
		t.Fatalf("expected italic markup, got %q", result.HTML)
	}
	if !result.Sanitized {
		t.Fatalf("expected result to be flagged sanitized")
	}
}

func TestRenderParagraphWrapsInlineLeadingLine(t *testing.T) {
	result := newTestRenderer().Render("**hi** there", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, "<p><strong>hi</strong> there</p>") {
		t.Fatalf("line opening with inline markup not wrapped as paragraph: %q", result.HTML)
	}
}

func TestRenderEscapesScriptTags(t *testing.T) {
	result := newTestRenderer().Render("<script>alert(1)</script>", interfaces.DefaultFeatureFlags())

	if strings.Contains(result.HTML, "<script") {
		t.Fatalf("script tag survived rendering: %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "&lt;script&gt;") {
		t.Fatalf("expected escaped script text, got %q", result.HTML)
	}
}

func TestRenderRejectsUnsafeLinkSchemes(t *testing.T) {
	result := newTestRenderer().Render("[click](javascript:alert(1))", interfaces.DefaultFeatureFlags())

	if strings.Contains(result.HTML, "<a ") {
		t.Fatalf("unsafe link rendered as anchor: %q", result.HTML)
	}
}

func TestRenderLinkCarriesRelNoopener(t *testing.T) {
	result := newTestRenderer().Render("[site](https://example.com)", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, `href="https://example.com"`) {
		t.Fatalf("expected anchor href, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "noopener") {
		t.Fatalf("expected rel noopener on external link, got %q", result.HTML)
	}
}

func TestRenderCodeFenceIsolation(t *testing.T) {
	source := "```\n- not a list\n# not a heading\n```"
	result := newTestRenderer().Render(source, interfaces.DefaultFeatureFlags())

	if strings.Contains(result.HTML, "<li>") {
		t.Fatalf("list syntax resolved inside a fence: %q", result.HTML)
	}
	if strings.Contains(result.HTML, "<h1") {
		t.Fatalf("heading syntax resolved inside a fence: %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "<pre><code>") {
		t.Fatalf("expected a code block, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "- not a list") {
		t.Fatalf("fence body lost: %q", result.HTML)
	}
}

func TestRenderFenceLanguageClass(t *testing.T) {
	result := newTestRenderer().Render("```go\nvar x int\n```", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, `class="language-go"`) {
		t.Fatalf("expected language class, got %q", result.HTML)
	}
}

func TestRenderNestedListDepth(t *testing.T) {
	result := newTestRenderer().Render("- a\n  - b\n- c", interfaces.DefaultFeatureFlags())

	if got := strings.Count(result.HTML, "<ul>"); got != 2 {
		t.Fatalf("expected 2 list openings, got %d in %q", got, result.HTML)
	}
	// the sub-list opens inside item a, not as its sibling
	if !strings.Contains(result.HTML, "<li>a\n<ul>") {
		t.Fatalf("sub-list not nested inside its parent item: %q", result.HTML)
	}
	// and closes, together with item a, before c resumes the outer list
	if !strings.Contains(result.HTML, "<li>b</li>\n</ul>\n</li>\n<li>c</li>") {
		t.Fatalf("inner list did not close before the next outer item: %q", result.HTML)
	}
}

func TestRenderOrderedListSwitchesTag(t *testing.T) {
	result := newTestRenderer().Render("1. one\n2. two", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, "<ol>") {
		t.Fatalf("expected ordered list, got %q", result.HTML)
	}
}

func TestRenderHeadingIDAndAnchor(t *testing.T) {
	result := newTestRenderer().Render("# Hello World", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, `<h1 id="hello-world">`) {
		t.Fatalf("expected slugged heading id, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `href="#hello-world"`) {
		t.Fatalf("expected anchor link, got %q", result.HTML)
	}
}

func TestRenderHeadingFlagDisabled(t *testing.T) {
	flags := interfaces.DefaultFeatureFlags()
	flags.Headings = false

	result := newTestRenderer().Render("# Title", flags)

	if strings.Contains(result.HTML, "<h1") {
		t.Fatalf("heading rendered with flag disabled: %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "# Title") {
		t.Fatalf("heading text lost: %q", result.HTML)
	}
}

func TestRenderTableShape(t *testing.T) {
	source := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	result := newTestRenderer().Render(source, interfaces.DefaultFeatureFlags())

	if got := strings.Count(result.HTML, "<th>"); got != 2 {
		t.Fatalf("expected 2 header cells, got %d in %q", got, result.HTML)
	}
	if got := strings.Count(result.HTML, "<td>"); got != 2 {
		t.Fatalf("expected 2 body cells, got %d in %q", got, result.HTML)
	}
	if strings.Contains(result.HTML, "---") {
		t.Fatalf("alignment row leaked into output: %q", result.HTML)
	}
}

func TestRenderTaskList(t *testing.T) {
	result := newTestRenderer().Render("- [ ] open\n- [x] done", interfaces.DefaultFeatureFlags())

	if got := strings.Count(result.HTML, "checkbox"); got != 2 {
		t.Fatalf("expected 2 checkboxes, got %d in %q", got, result.HTML)
	}
	if !strings.Contains(result.HTML, "checked") {
		t.Fatalf("expected the done item to be checked: %q", result.HTML)
	}
	if strings.Contains(result.HTML, "[ ]") || strings.Contains(result.HTML, "[x]") {
		t.Fatalf("task syntax leaked into output: %q", result.HTML)
	}
}

func TestRenderBlockquoteNesting(t *testing.T) {
	result := newTestRenderer().Render("> outer\n> > inner", interfaces.DefaultFeatureFlags())

	if got := strings.Count(result.HTML, "<blockquote>"); got != 2 {
		t.Fatalf("expected nested blockquotes, got %d in %q", got, result.HTML)
	}
}

func TestRenderStrikethroughAndInlineCode(t *testing.T) {
	result := newTestRenderer().Render("~~gone~~ and `kept *raw*`", interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, "<del>gone</del>") {
		t.Fatalf("expected strikethrough, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "<code>kept *raw*</code>") {
		t.Fatalf("inline code body was reformatted: %q", result.HTML)
	}
}

func TestRenderImage(t *testing.T) {
	result := newTestRenderer().Render(`![alt text](https://example.com/x.png "caption")`, interfaces.DefaultFeatureFlags())

	if !strings.Contains(result.HTML, `src="https://example.com/x.png"`) {
		t.Fatalf("expected image src, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `alt="alt text"`) {
		t.Fatalf("expected image alt, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `title="caption"`) {
		t.Fatalf("expected image title, got %q", result.HTML)
	}
}

func TestRenderSanitizeIdempotent(t *testing.T) {
	s := sanitize.Default()
	result := New(s).Render("# Heading\n\n**bold** <script>x()</script>", interfaces.DefaultFeatureFlags())

	if again := s.Sanitize(result.HTML); again != result.HTML {
		t.Fatalf("sanitizing rendered output changed it:\nfirst:  %q\nsecond: %q", result.HTML, again)
	}
}

func TestRenderNilSanitizerFlagsPassthrough(t *testing.T) {
	result := New(nil).Render("**hi**", interfaces.DefaultFeatureFlags())

	if result.Sanitized {
		t.Fatalf("passthrough output must not claim to be sanitized")
	}
	if !strings.Contains(result.HTML, "<strong>hi</strong>") {
		t.Fatalf("expected markup from the escaped pipeline, got %q", result.HTML)
	}
}

func TestRenderZeroFlagsEscapesEverything(t *testing.T) {
	result := newTestRenderer().Render("# h\n**b** <i>x</i>", interfaces.FeatureFlags{})

	for _, tag := range []string{"<h1", "<strong>", "<i>"} {
		if strings.Contains(result.HTML, tag) {
			t.Fatalf("zero flags still produced %q: %q", tag, result.HTML)
		}
	}
}

func TestRenderNormalizesCRLF(t *testing.T) {
	result := newTestRenderer().Render("# A\r\ntext", interfaces.DefaultFeatureFlags())

	if strings.Contains(result.HTML, "\r") {
		t.Fatalf("carriage return survived: %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "<h1") {
		t.Fatalf("heading after CRLF not rendered: %q", result.HTML)
	}
}

func TestStageOrder(t *testing.T) {
	names := StageNames()

	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("stage %q not in pipeline %v", name, names)
		return -1
	}

	if index("code-fences") != 0 {
		t.Fatalf("fence extraction must run first, got order %v", names)
	}
	if index("escape") != 1 {
		t.Fatalf("escaping must run immediately after fences, got order %v", names)
	}
	if index("images") > index("inline") {
		t.Fatalf("images must resolve before the inline link pass, got order %v", names)
	}
	if index("task-list-tokenize") > index("lists") {
		t.Fatalf("task items must tokenize before the list scanner, got order %v", names)
	}
	if index("restore-fences") != len(names)-1 {
		t.Fatalf("fence restore must run last, got order %v", names)
	}
}
