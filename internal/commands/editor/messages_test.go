package editorcmd

import (
	"testing"

	"github.com/google/uuid"
)

func TestApplyFormatCommandValidateRequiresSessionID(t *testing.T) {
	cmd := ApplyFormatCommand{Format: "bold"}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when session id missing")
	}

	cmd.SessionID = uuid.New()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when session id provided: %v", err)
	}
}

func TestApplyFormatCommandValidateRequiresFormat(t *testing.T) {
	cmd := ApplyFormatCommand{SessionID: uuid.New()}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when format missing")
	}

	cmd.Format = "   "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when format blank")
	}

	cmd.Format = "bold"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with format provided: %v", err)
	}
}

func TestApplyFormatCommandValidateSelectionBounds(t *testing.T) {
	cmd := ApplyFormatCommand{
		SessionID:      uuid.New(),
		Format:         "bold",
		SelectionStart: -1,
	}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for negative selection start")
	}

	cmd.SelectionStart = 5
	cmd.SelectionEnd = 3
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when selection end precedes start")
	}

	cmd.SelectionEnd = 5
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error for collapsed selection: %v", err)
	}
}

func TestApplyFormatCommandSelection(t *testing.T) {
	cmd := ApplyFormatCommand{SelectionStart: 2, SelectionEnd: 7}
	sel := cmd.Selection()
	if sel.Start != 2 || sel.End != 7 {
		t.Fatalf("selection = %+v", sel)
	}
}

func TestUndoCommandValidateRequiresSessionID(t *testing.T) {
	cmd := UndoCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when session id missing")
	}

	cmd.SessionID = uuid.New()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when session id provided: %v", err)
	}
}

func TestRedoCommandValidateRequiresSessionID(t *testing.T) {
	cmd := RedoCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when session id missing")
	}

	cmd.SessionID = uuid.New()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when session id provided: %v", err)
	}
}

func TestRenderPreviewCommandValidateRequiresSessionID(t *testing.T) {
	cmd := RenderPreviewCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when session id missing")
	}

	cmd.SessionID = uuid.New()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when session id provided: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	cases := map[string]string{
		ApplyFormatCommand{}.Type():   "mdedit.editor.apply_format",
		UndoCommand{}.Type():          "mdedit.editor.undo",
		RedoCommand{}.Type():          "mdedit.editor.redo",
		RenderPreviewCommand{}.Type(): "mdedit.editor.render_preview",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("message type = %q, want %q", got, want)
		}
	}
}
