package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const taskTokenPrefix = "\x00mdtask:"

// taskToken carries the indentation and checked state captured when a task
// item was tokenized; the item body stays in the document so the inline
// passes still format it.
type taskToken struct {
	depth   int
	checked bool
}

var taskItemRe = regexp.MustCompile(`^(\s*)- \[( |x|X)\] (.*)$`)

// tokenizeTaskLists is the mark half of the two-phase task-list design:
// each `- [ ]`/`- [x]` item is replaced with an opaque token so the general
// list scanner does not also match it. resolveTaskLists emits the markup
// once every other pass has run.
func tokenizeTaskLists(st *state) {
	lines := strings.Split(st.text, "\n")
	for i, line := range lines {
		m := taskItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		token := taskToken{
			depth:   len(m[1]) / 2,
			checked: m[2] == "x" || m[2] == "X",
		}
		lines[i] = fmt.Sprintf("%s%d\x00%s", taskTokenPrefix, len(st.tasks), m[3])
		st.tasks = append(st.tasks, token)
	}
	st.text = strings.Join(lines, "\n")
}

var taskLineRe = regexp.MustCompile(`^\x00mdtask:(\d+)\x00(.*)$`)

// resolveTaskLists groups contiguous task tokens into checkbox lists,
// nesting by the recorded indentation (2 spaces = 1 level) using the same
// depth rule as the list scanner.
func resolveTaskLists(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string
	open := 0

	closeTo := func(depth int) {
		for open > depth {
			out = append(out, "</ul>")
			open--
		}
	}

	for _, line := range lines {
		m := taskLineRe.FindStringSubmatch(line)
		if m == nil {
			closeTo(0)
			out = append(out, line)
			continue
		}

		idx, err := strconv.Atoi(m[1])
		if err != nil || idx >= len(st.tasks) {
			closeTo(0)
			out = append(out, m[2])
			continue
		}
		token := st.tasks[idx]

		closeTo(token.depth + 1)
		for open < token.depth+1 {
			out = append(out, `<ul class="task-list">`)
			open++
		}

		checkbox := `<input type="checkbox" disabled>`
		if token.checked {
			checkbox = `<input type="checkbox" checked disabled>`
		}
		out = append(out, `<li class="task-list-item">`+checkbox+" "+m[2]+"</li>")
	}
	closeTo(0)

	st.text = strings.Join(out, "\n")
}
