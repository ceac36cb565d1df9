package commands

import (
	"context"
	"errors"
	"testing"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

func TestAddNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     *AddNoteCommand
		wantErr bool
		errMsg  string
	}{
		{
			name: "any slot",
			cmd:  &AddNoteCommand{Target: domain.AnySlot},
		},
		{
			name: "explicit slot",
			cmd:  &AddNoteCommand{Target: 8},
		},
		{
			name:    "slot out of range",
			cmd:     &AddNoteCommand{Target: 9},
			wantErr: true,
			errMsg:  "slot must be between 0 and 8",
		},
		{
			name:    "blank title",
			cmd:     &AddNoteCommand{Target: domain.AnySlot, Title: "   "},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "bad color",
			cmd:     &AddNoteCommand{Target: domain.AnySlot, Color: 6, HasColor: true},
			wantErr: true,
			errMsg:  "color index must be between 0 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddNoteCommand_Execute(t *testing.T) {
	board, store := newTestBoard()
	ctx := context.Background()

	cmd := NewAddNoteCommand(board, domain.AnySlot)
	cmd.Title = "Groceries"
	cmd.Content = "milk"
	cmd.Color = 3
	cmd.HasColor = true

	result, err := cmd.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Note.Title != "Groceries" || result.Note.Content != "milk" || result.Note.ColorIndex != 3 {
		t.Errorf("unexpected note: %+v", result.Note)
	}
	if result.Message != "Added: Groceries" {
		t.Errorf("Message = %q", result.Message)
	}
	if store.saves != 1 || len(store.records) != 1 {
		t.Errorf("expected one save of one record, got %d saves, %d records", store.saves, len(store.records))
	}
}

func TestAddNoteCommand_GridFull(t *testing.T) {
	board, store := newTestBoard("", "", "", "", "", "", "", "", "")

	_, err := NewAddNoteCommand(board, domain.AnySlot).Execute(context.Background())
	if !errors.Is(err, application.ErrGridFull) {
		t.Fatalf("expected ErrGridFull, got %v", err)
	}
	if store.saves != 0 {
		t.Error("rejected add should not be saved")
	}
}

func TestAddNoteCommand_BlankTitleLeavesGridUntouched(t *testing.T) {
	board, store := newTestBoard()

	cmd := NewAddNoteCommand(board, domain.AnySlot)
	cmd.Title = "   "
	_, err := cmd.Execute(context.Background())

	var valErr *application.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "title" {
		t.Fatalf("expected title ValidationError, got %v", err)
	}
	if board.Grid().Count() != 0 {
		t.Errorf("Count() = %d, want 0", board.Grid().Count())
	}
	if board.Grid().Counter() != 0 {
		t.Errorf("Counter() = %d, want 0", board.Grid().Counter())
	}
	if store.saves != 0 {
		t.Error("rejected add should not be saved")
	}
}

func TestAddNoteCommand_PersistFailure(t *testing.T) {
	board, store := newTestBoard()
	store.failing = true

	result, err := NewAddNoteCommand(board, 4).Execute(context.Background())
	if !errors.Is(err, application.ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if result == nil || result.Note.Position != 4 {
		t.Fatalf("expected the add to be reported, got %+v", result)
	}
	if !board.Grid().Occupied(4) {
		t.Error("grid should keep the note after a failed save")
	}
}

func TestDeleteNoteCommand(t *testing.T) {
	board, store := newTestBoard("a", "b", "c")
	ctx := context.Background()

	result, err := NewDeleteNoteCommand(board, 1).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Deleted: b" {
		t.Errorf("Message = %q", result.Message)
	}
	if n, ok := board.Grid().Slot(2); !ok || n.Title != "c" {
		t.Error("remaining notes should keep their slots")
	}
	if len(store.records) != 2 {
		t.Errorf("expected 2 saved records, got %d", len(store.records))
	}

	_, err = NewDeleteNoteCommand(board, 1).Execute(ctx)
	if !errors.Is(err, application.ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestEditNoteCommand(t *testing.T) {
	tests := []struct {
		name    string
		slot    int
		title   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid", slot: 0, title: "Renamed"},
		{name: "blank title", slot: 0, title: "   ", wantErr: true, errMsg: "title is required"},
		{name: "empty slot", slot: 5, title: "x", wantErr: true, errMsg: "slot is empty"},
		{name: "invalid slot", slot: -1, title: "x", wantErr: true, errMsg: "slot must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := newTestBoard("orig")
			result, err := NewEditNoteCommand(board, tt.slot, tt.title, "body").Execute(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Note.Title != tt.title || result.Note.Content != "body" {
				t.Errorf("unexpected note: %+v", result.Note)
			}
		})
	}
}

func TestRecolorNoteCommand(t *testing.T) {
	board, _ := newTestBoard("a")

	result, err := NewRecolorNoteCommand(board, 0, 5).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "a is now Purple" {
		t.Errorf("Message = %q", result.Message)
	}

	_, err = NewRecolorNoteCommand(board, 0, -1).Execute(context.Background())
	if err == nil || !contains(err.Error(), "color index") {
		t.Errorf("expected color validation error, got %v", err)
	}
}

func TestSwapNotesCommand(t *testing.T) {
	board, store := newTestBoard("a", "b")
	ctx := context.Background()

	result, err := NewSwapNotesCommand(board, 0, 8).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}
	if n, ok := board.Grid().Slot(8); !ok || n.Title != "a" || n.Position != 8 {
		t.Errorf("note a should be at slot 8, got %+v", n)
	}
	if board.Grid().Occupied(0) {
		t.Error("slot 0 should be empty")
	}

	saves := store.saves
	result, err = NewSwapNotesCommand(board, 3, 4).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Changed || result.Message != "Nothing to swap" {
		t.Errorf("empty swap should be a no-op, got %+v", result)
	}
	if store.saves != saves {
		t.Error("no-op swap should not be saved")
	}
}

func TestMoveNoteCommand(t *testing.T) {
	tests := []struct {
		name    string
		slot    int
		dir     domain.Direction
		wantTo  int
		wantErr error
	}{
		{name: "right into empty", slot: 0, dir: domain.DirectionRight, wantTo: 1},
		{name: "down into empty", slot: 0, dir: domain.DirectionDown, wantTo: 3},
		{name: "off the top", slot: 0, dir: domain.DirectionUp, wantErr: application.ErrNoTarget},
		{name: "off the left", slot: 0, dir: domain.DirectionLeft, wantErr: application.ErrNoTarget},
		{name: "empty slot", slot: 4, dir: domain.DirectionUp, wantErr: application.ErrSlotEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := newTestBoard("a")
			result, err := NewMoveNoteCommand(board, tt.slot, tt.dir).Execute(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.To != tt.wantTo {
				t.Errorf("To = %d, want %d", result.To, tt.wantTo)
			}
			if _, moving := board.Grid().Moving(); moving {
				t.Error("move mode should be left after the command")
			}
		})
	}
}

func TestValidateMoveTarget(t *testing.T) {
	tests := []struct {
		slot    int
		dir     domain.Direction
		want    int
		wantErr bool
	}{
		{slot: 4, dir: domain.DirectionUp, want: 1},
		{slot: 4, dir: domain.DirectionDown, want: 7},
		{slot: 4, dir: domain.DirectionLeft, want: 3},
		{slot: 4, dir: domain.DirectionRight, want: 5},
		{slot: 2, dir: domain.DirectionRight, wantErr: true},
		{slot: 6, dir: domain.DirectionDown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, err := ValidateMoveTarget(tt.slot, tt.dir)
			if tt.wantErr {
				if !errors.Is(err, application.ErrNoTarget) {
					t.Errorf("expected ErrNoTarget, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ValidateMoveTarget(%d, %s) = %d, %v; want %d", tt.slot, tt.dir, got, err, tt.want)
			}
		})
	}
}

func TestListNotesCommand(t *testing.T) {
	board, _ := newTestBoard("alpha", "beta", "gamma")
	if _, err := board.Grid().Recolor(1, 3); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "no filter", want: []string{"alpha", "beta", "gamma"}},
		{name: "by color", filter: `color == "Pink"`, want: []string{"beta"}},
		{name: "by slot", filter: `slot >= 2`, want: []string{"gamma"}},
		{name: "by title", filter: `title startsWith "a"`, want: []string{"alpha"}},
		{name: "no match", filter: `row == 2`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := NewListNotesCommand(board, tt.filter).Execute(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(notes) != len(tt.want) {
				t.Fatalf("got %d notes, want %d", len(notes), len(tt.want))
			}
			for i, n := range notes {
				if n.Title != tt.want[i] {
					t.Errorf("notes[%d] = %q, want %q", i, n.Title, tt.want[i])
				}
			}
		})
	}
}

func TestListNotesCommand_InvalidFilter(t *testing.T) {
	board, _ := newTestBoard("a")

	for _, filter := range []string{`slot +`, `title`, `unknown == 1`} {
		if err := NewListNotesCommand(board, filter).Validate(); err == nil {
			t.Errorf("expected %q to be rejected", filter)
		}
	}
}

func TestGetNoteCommand(t *testing.T) {
	board, _ := newTestBoard("a")

	note, err := NewGetNoteCommand(board, 0).Execute(context.Background())
	if err != nil || note.Title != "a" {
		t.Errorf("got %+v, %v", note, err)
	}
	if _, err := NewGetNoteCommand(board, 1).Execute(context.Background()); !errors.Is(err, application.ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestExportNotesCommand(t *testing.T) {
	exporter := &memExporter{}

	empty, _ := newTestBoard()
	if _, err := NewExportNotesCommand(empty, exporter).Execute(context.Background()); !errors.Is(err, application.ErrNoNotes) {
		t.Errorf("expected ErrNoNotes, got %v", err)
	}

	board, _ := newTestBoard("one", "two")
	result, err := NewExportNotesCommand(board, exporter).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 2 || result.Path != "/mem/export.md" {
		t.Errorf("unexpected result: %+v", result)
	}
	if !contains(exporter.doc, "## one") || !contains(exporter.doc, "## two") {
		t.Errorf("unexpected document: %q", exporter.doc)
	}
}

func TestCopyNoteCommand(t *testing.T) {
	board, _ := newTestBoard("a")
	if _, err := board.Grid().Edit(0, "Groceries", "milk"); err != nil {
		t.Fatal(err)
	}
	clip := &memClipboard{}

	result, err := NewCopyNoteCommand(board, clip, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.text != result.Text || !contains(clip.text, "## Groceries") || !contains(clip.text, "milk") {
		t.Errorf("clipboard = %q", clip.text)
	}
	if result.Message != "Copied: Groceries" {
		t.Errorf("Message = %q", result.Message)
	}

	if _, err := NewCopyNoteCommand(board, clip, 3).Execute(context.Background()); !errors.Is(err, application.ErrSlotEmpty) {
		t.Errorf("expected ErrSlotEmpty, got %v", err)
	}
}
