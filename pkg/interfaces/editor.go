package interfaces

// Selection describes a half-open character range inside the current text.
// Offsets are 0-based byte indices with 0 <= Start <= End <= len(text).
// Text mirrors the selected substring; implementations re-derive it after
// clamping stale offsets.
type Selection struct {
	Start int
	End   int
	Text  string
}

// IsEmpty reports whether the selection is a bare cursor.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Cursor returns a collapsed selection at the given offset.
func Cursor(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// FormatSpec describes one formatting operation applied to a selection.
//
// Invariants: Multiline implies LinePrefix is set; ReplaceSelection implies
// Suffix is ignored. LinePrefix receives a 0-based index counting the
// non-blank lines already prefixed, which is what numbered variants need.
type FormatSpec struct {
	Name             string
	Prefix           string
	Suffix           string
	BlockLevel       bool
	ReplaceSelection bool
	Multiline        bool
	LinePrefix       func(index int) string
}

// EditResult is the outcome of a text mutation: the replacement text plus
// the selection the host should restore.
type EditResult struct {
	Text      string
	Selection Selection
}
