package render

import (
	"regexp"
	"strings"
)

var (
	unorderedItemRe = regexp.MustCompile(`^(\s*)[-*] (.+)$`)
	orderedItemRe   = regexp.MustCompile(`^(\s*)\d+\. (.+)$`)
)

// applyLists resolves ordered and unordered blocks line-by-line, tracking
// open list type and depth. Leading whitespace drives nesting (2 spaces =
// 1 level); a sub-list opens inside its parent item, whose </li> is held
// back until the sub-list closes. A depth decrease closes the open tags
// before the next item is emitted, and an ordered/unordered type change at
// the same depth closes and reopens. Task items were already tokenized
// away, so the scanner never sees them.
func applyLists(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string

	// one open list tag per depth level, with whether its last item is
	// still awaiting its </li>
	var stack []string
	var itemOpen []bool

	closeItem := func(depth int) {
		if !itemOpen[depth-1] {
			return
		}
		// close on the item's own line unless a sub-list intervened
		last := len(out) - 1
		if strings.HasPrefix(out[last], "<li") && !strings.HasSuffix(out[last], "</li>") {
			out[last] += "</li>"
		} else {
			out = append(out, "</li>")
		}
		itemOpen[depth-1] = false
	}

	closeTo := func(depth int) {
		for len(stack) > depth {
			closeItem(len(stack))
			out = append(out, "</"+stack[len(stack)-1]+">")
			stack = stack[:len(stack)-1]
			itemOpen = itemOpen[:len(itemOpen)-1]
		}
	}

	for _, line := range lines {
		listType, indent, content := matchListItem(line)
		if listType == "" {
			closeTo(0)
			out = append(out, line)
			continue
		}

		depth := len(indent)/2 + 1
		closeTo(depth)
		if len(stack) == depth && stack[depth-1] != listType {
			closeTo(depth - 1)
		}
		for len(stack) < depth {
			stack = append(stack, listType)
			itemOpen = append(itemOpen, false)
			out = append(out, "<"+listType+">")
		}

		closeItem(depth)
		out = append(out, "<li>"+content)
		itemOpen[depth-1] = true
	}
	closeTo(0)

	st.text = strings.Join(out, "\n")
}

func matchListItem(line string) (listType, indent, content string) {
	if m := unorderedItemRe.FindStringSubmatch(line); m != nil {
		return "ul", m[1], m[2]
	}
	if m := orderedItemRe.FindStringSubmatch(line); m != nil {
		return "ol", m[1], m[2]
	}
	return "", "", ""
}
