package sanitize

import (
	"strings"
	"testing"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

func TestSanitizerDropsScriptSubtree(t *testing.T) {
	s := Default()

	out := s.Sanitize(`<p>ok</p><script>alert(1)</script>`)

	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Fatalf("script content survived: %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Fatalf("allowed markup lost: %q", out)
	}
}

func TestSanitizerStripsEventHandlers(t *testing.T) {
	s := Default()

	out := s.Sanitize(`<a href="https://example.com" onclick="steal()">x</a>`)

	if strings.Contains(out, "onclick") {
		t.Fatalf("event handler survived: %q", out)
	}
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Fatalf("allowed attribute lost: %q", out)
	}
}

func TestSanitizerStripsStyleAttribute(t *testing.T) {
	out := Default().Sanitize(`<p style="color:red">x</p>`)

	if strings.Contains(out, "style") {
		t.Fatalf("style attribute survived: %q", out)
	}
}

func TestSanitizerKeepsTextOfDisallowedWrapper(t *testing.T) {
	// <b> is not in the allow list but is not forbidden either, so its
	// text content survives while the wrapper is stripped.
	out := Default().Sanitize(`<b>kept</b>`)

	if strings.Contains(out, "<b>") {
		t.Fatalf("disallowed wrapper survived: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("text content of disallowed wrapper lost: %q", out)
	}
}

func TestSanitizerForbiddenTagsWinOverAllowEntries(t *testing.T) {
	s := New(interfaces.AllowList{
		Tags:          []string{"p", "script"},
		ForbiddenTags: []string{"script"},
	})

	out := s.Sanitize(`<p>a</p><script>b</script>`)

	if strings.Contains(out, "script") || strings.Contains(out, ">b<") {
		t.Fatalf("forbidden tag leaked despite allow entry: %q", out)
	}
}

func TestSanitizerIdempotent(t *testing.T) {
	s := Default()
	input := `<h1 id="t">T</h1><p>body <strong>b</strong> &lt;script&gt;</p>`

	once := s.Sanitize(input)
	twice := s.Sanitize(once)

	if once != twice {
		t.Fatalf("sanitize not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestSanitizerPolicyApplied(t *testing.T) {
	if !Default().PolicyApplied() {
		t.Fatalf("policy-backed sanitizer must report PolicyApplied")
	}
	if NewPassthrough().PolicyApplied() {
		t.Fatalf("passthrough must not report PolicyApplied")
	}
}

func TestPassthroughLeavesInputUnchanged(t *testing.T) {
	input := `<script>x</script>`
	if out := NewPassthrough().Sanitize(input); out != input {
		t.Fatalf("passthrough modified input: %q", out)
	}
}

func TestEscapeTextEscapesMarkup(t *testing.T) {
	out := EscapeText(`<b a="1">&`)

	if strings.ContainsAny(out, "<>\"") {
		t.Fatalf("markup characters survived escaping: %q", out)
	}
}
