package render

import "strings"

// applyTables treats each contiguous run of pipe-delimited lines as one
// table. Row 1 supplies the header cells; row 2 is consumed as an alignment
// row when it contains `---`; every remaining row becomes a body row. Cell
// counts are not reconciled, so ragged rows render ragged cells.
func applyTables(st *state) {
	lines := strings.Split(st.text, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		if !isTableLine(lines[i]) {
			out = append(out, lines[i])
			continue
		}

		start := i
		for i+1 < len(lines) && isTableLine(lines[i+1]) {
			i++
		}
		out = append(out, tableHTML(lines[start:i+1])...)
	}

	st.text = strings.Join(out, "\n")
}

func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 2
}

func tableHTML(rows []string) []string {
	out := []string{"<table>", "<thead>", "<tr>"}
	for _, cell := range splitCells(rows[0]) {
		out = append(out, "<th>"+cell+"</th>")
	}
	out = append(out, "</tr>", "</thead>")

	body := rows[1:]
	if len(body) > 0 && strings.Contains(body[0], "---") {
		body = body[1:]
	}

	if len(body) > 0 {
		out = append(out, "<tbody>")
		for _, row := range body {
			out = append(out, "<tr>")
			for _, cell := range splitCells(row) {
				out = append(out, "<td>"+cell+"</td>")
			}
			out = append(out, "</tr>")
		}
		out = append(out, "</tbody>")
	}

	return append(out, "</table>")
}

// splitCells slices a pipe row into trimmed cell contents, dropping the
// empty boundary fields produced by leading and trailing pipes.
func splitCells(row string) []string {
	fields := strings.Split(strings.TrimSpace(row), "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	cells := make([]string, len(fields))
	for i, field := range fields {
		cells[i] = strings.TrimSpace(field)
	}
	return cells
}
