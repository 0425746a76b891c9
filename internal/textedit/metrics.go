package textedit

import (
	"strings"
	"unicode/utf8"
)

// Position is a 0-based line/column pair used for cursor display.
type Position struct {
	Line   int
	Column int
}

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountChars returns the number of characters (runes, not bytes).
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// CountLines returns the number of lines; the empty string has one.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// OffsetToPosition converts a byte offset into a line/column pair. Offsets
// outside the text clamp to its ends.
func OffsetToPosition(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	before := text[:offset]
	line := strings.Count(before, "\n")
	column := offset
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		column = offset - idx - 1
	}
	return Position{Line: line, Column: column}
}

// PositionToOffset converts a line/column pair back into a byte offset,
// clamping the column into the addressed line.
func PositionToOffset(text string, pos Position) int {
	if pos.Line <= 0 && pos.Column <= 0 {
		return 0
	}

	lines := strings.Split(text, "\n")
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(lines) {
		return len(text)
	}

	offset := 0
	for i := 0; i < pos.Line; i++ {
		offset += len(lines[i]) + 1
	}

	column := pos.Column
	if column < 0 {
		column = 0
	}
	if column > len(lines[pos.Line]) {
		column = len(lines[pos.Line])
	}
	return offset + column
}

// ParagraphAt expands outward from offset to the nearest blank lines in
// both directions and returns the byte range plus content of the enclosing
// paragraph. Assist features use this to collect context around the cursor.
func ParagraphAt(text string, offset int) (start, end int, paragraph string) {
	if text == "" {
		return 0, 0, ""
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start = 0
	if idx := strings.LastIndex(text[:offset], "\n\n"); idx >= 0 {
		start = idx + 2
	}

	end = len(text)
	if idx := strings.Index(text[offset:], "\n\n"); idx >= 0 {
		end = offset + idx
	}

	return start, end, text[start:end]
}
