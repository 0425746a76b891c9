package textedit

import "testing"

func TestCountWords(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two\tthree\nfour", 4},
	}
	for _, tc := range cases {
		if got := CountWords(tc.text); got != tc.want {
			t.Fatalf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestCountCharsCountsRunes(t *testing.T) {
	if got := CountChars("héllo"); got != 5 {
		t.Fatalf("CountChars = %d, want 5", got)
	}
}

func TestCountLines(t *testing.T) {
	if got := CountLines(""); got != 1 {
		t.Fatalf("empty string should be one line, got %d", got)
	}
	if got := CountLines("a\nb\nc"); got != 3 {
		t.Fatalf("CountLines = %d, want 3", got)
	}
}

func TestOffsetToPosition(t *testing.T) {
	text := "abc\ndef"

	pos := OffsetToPosition(text, 5)
	if pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("unexpected position %+v", pos)
	}

	if pos := OffsetToPosition(text, -4); pos.Line != 0 || pos.Column != 0 {
		t.Fatalf("negative offset should clamp to origin, got %+v", pos)
	}
	if pos := OffsetToPosition(text, 99); pos.Line != 1 || pos.Column != 3 {
		t.Fatalf("oversized offset should clamp to end, got %+v", pos)
	}
}

func TestPositionToOffsetRoundTrip(t *testing.T) {
	text := "abc\ndef\nghi"
	for offset := 0; offset <= len(text); offset++ {
		pos := OffsetToPosition(text, offset)
		if got := PositionToOffset(text, pos); got != offset {
			t.Fatalf("round trip at %d: got %d (pos %+v)", offset, got, pos)
		}
	}
}

func TestPositionToOffsetClampsColumn(t *testing.T) {
	if got := PositionToOffset("ab\ncd", Position{Line: 0, Column: 99}); got != 2 {
		t.Fatalf("column should clamp to line length, got %d", got)
	}
	if got := PositionToOffset("ab", Position{Line: 9, Column: 0}); got != 2 {
		t.Fatalf("line past end should clamp to text length, got %d", got)
	}
}

func TestParagraphAt(t *testing.T) {
	text := "first para\n\nsecond para\nstill second\n\nthird"

	start, end, para := ParagraphAt(text, len("first para\n\nsec"))
	if para != "second para\nstill second" {
		t.Fatalf("unexpected paragraph %q (range %d-%d)", para, start, end)
	}

	if _, _, para := ParagraphAt(text, 0); para != "first para" {
		t.Fatalf("unexpected first paragraph %q", para)
	}
	if _, _, para := ParagraphAt("", 0); para != "" {
		t.Fatalf("empty text should yield empty paragraph, got %q", para)
	}
}
