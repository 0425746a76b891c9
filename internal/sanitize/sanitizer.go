package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// Sanitizer filters markup through an immutable bluemonday policy compiled
// from an interfaces.AllowList. Construct once per process and share; the
// policy is never mutated after New returns.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New compiles the allow list into a policy. Forbidden tags always lose even
// when present in the allow entries, and their entire subtree is dropped.
// Disallowed-but-not-forbidden wrappers keep their text content, which is
// bluemonday's default stripping behaviour.
func New(allowList interfaces.AllowList) *Sanitizer {
	policy := bluemonday.NewPolicy()

	forbiddenTags := make(map[string]struct{}, len(allowList.ForbiddenTags))
	for _, tag := range allowList.ForbiddenTags {
		forbiddenTags[strings.ToLower(tag)] = struct{}{}
	}

	for _, tag := range allowList.Tags {
		name := strings.ToLower(strings.TrimSpace(tag))
		if name == "" {
			continue
		}
		if _, denied := forbiddenTags[name]; denied {
			continue
		}
		policy.AllowElements(name)
	}

	for _, attr := range allowList.Attributes {
		name := strings.ToLower(strings.TrimSpace(attr))
		if name == "" || attrForbidden(name, allowList.ForbiddenAttributes) {
			continue
		}
		policy.AllowAttrs(name).Globally()
	}

	// Forbidden tags drop content as well as the wrapper.
	if len(allowList.ForbiddenTags) > 0 {
		policy.SkipElementsContent(allowList.ForbiddenTags...)
	}

	policy.AllowStandardURLs()

	return &Sanitizer{policy: policy}
}

// Default returns a sanitizer for the renderer's default allow list.
func Default() *Sanitizer {
	return New(interfaces.DefaultAllowList())
}

// Sanitize returns html with every tag and attribute outside the policy
// removed. The result is stable: sanitizing it again yields the same string.
func (s *Sanitizer) Sanitize(input string) string {
	return s.policy.Sanitize(input)
}

// PolicyApplied reports that the allow-list policy filtered the output.
func (s *Sanitizer) PolicyApplied() bool { return true }

// attrForbidden matches an attribute name against the forbid entries, which
// are either exact names or prefixes such as "on" (covers onclick, onerror).
func attrForbidden(name string, forbidden []string) bool {
	for _, entry := range forbidden {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if name == entry || strings.HasPrefix(name, entry) {
			return true
		}
	}
	return false
}

// Passthrough is the fallback used before a policy-backed sanitizer is
// available. It returns markup unchanged, leaving the renderer's
// capture-time escaping as the only line of defense; hosts must re-sanitize
// the output through a real policy before injecting it into a live
// document.
type Passthrough struct{}

// NewPassthrough returns the escape-only fallback sanitizer.
func NewPassthrough() *Passthrough { return &Passthrough{} }

// Sanitize returns input unchanged.
func (Passthrough) Sanitize(input string) string { return input }

// PolicyApplied reports false so callers surface the re-sanitize state.
func (Passthrough) PolicyApplied() bool { return false }

// EscapeText escapes raw text as plain content. Pipeline stages use this at
// the moment user text is captured, before any tag wrapper is added.
func EscapeText(text string) string {
	return html.EscapeString(text)
}

var (
	_ interfaces.Sanitizer = (*Sanitizer)(nil)
	_ interfaces.Sanitizer = Passthrough{}
)
