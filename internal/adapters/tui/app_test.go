package tui

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/tui/views"
	"tuinotes/internal/application"
	"tuinotes/internal/domain"
	"tuinotes/internal/ports"
)

type memStore struct {
	records []domain.Record
}

func (s *memStore) Save(ctx context.Context, records []domain.Record) error {
	s.records = records
	return nil
}

func (s *memStore) Load(ctx context.Context) ([]domain.Record, error) {
	return s.records, nil
}

func (s *memStore) Path() string { return "notes.json" }

type fakeSession struct {
	content string
	err     error
}

func (s *fakeSession) Cmd() *exec.Cmd { return exec.Command("true") }

func (s *fakeSession) Finish() (string, error) { return s.content, s.err }

type fakeEditor struct {
	session *fakeSession
}

func (e *fakeEditor) Begin(title, content string) (ports.EditSession, error) {
	return e.session, nil
}

func newTestApp(titles ...string) (*App, *memStore) {
	store := &memStore{}
	for i, title := range titles {
		store.records = append(store.records, domain.Record{Position: i, Title: title})
	}
	board := application.NewBoard(store)
	if _, err := board.Load(context.Background()); err != nil {
		panic(err)
	}
	return NewApp(board, Options{}), store
}

// send delivers msg and the message its command produces. Commands
// returned by the second update (cursor blinks) are not run.
func send(a *App, msg tea.Msg) {
	_, cmd := a.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		a.Update(next)
	}
}

func TestApp_EditFlow(t *testing.T) {
	a, store := newTestApp("Groceries")

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if a.State() != ViewEdit {
		t.Fatalf("state = %d, want ViewEdit", a.State())
	}

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	send(a, tea.KeyMsg{Type: tea.KeyCtrlS})

	if a.State() != ViewGrid {
		t.Errorf("state = %d, want ViewGrid", a.State())
	}
	if store.records[0].Title != "Groceries!" {
		t.Errorf("saved title = %q", store.records[0].Title)
	}
}

func TestApp_DeleteFlow(t *testing.T) {
	a, store := newTestApp("Doomed")

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if a.State() != ViewDelete {
		t.Fatalf("state = %d, want ViewDelete", a.State())
	}

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if a.State() != ViewGrid {
		t.Errorf("state = %d, want ViewGrid", a.State())
	}
	if len(store.records) != 0 {
		t.Errorf("records = %+v, want none", store.records)
	}
}

func TestApp_ColorFlowCancelled(t *testing.T) {
	a, _ := newTestApp("Note")

	send(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if a.State() != ViewColor {
		t.Fatalf("state = %d, want ViewColor", a.State())
	}
	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.State() != ViewGrid {
		t.Errorf("state = %d, want ViewGrid", a.State())
	}
}

func TestApp_SwitchToEmptySlotIsIgnored(t *testing.T) {
	a, _ := newTestApp()

	send(a, views.SwitchToEditMsg{Slot: 3})
	if a.State() != ViewGrid {
		t.Errorf("state = %d, want ViewGrid", a.State())
	}
}

func TestApp_FatalMsgQuits(t *testing.T) {
	a, _ := newTestApp()
	boom := errors.New("two notes in one slot")

	_, cmd := a.Update(views.FatalMsg{Err: boom})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !errors.Is(a.Err(), boom) {
		t.Errorf("Err() = %v", a.Err())
	}
}

func TestApp_FileChanged(t *testing.T) {
	changes := make(chan struct{}, 1)
	stale := false

	store := &memStore{records: []domain.Record{{Position: 0, Title: "Before"}}}
	board := application.NewBoard(store)
	if _, err := board.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	a := NewApp(board, Options{Changes: changes, Stale: func() bool { return stale }})

	store.records = []domain.Record{{Position: 2, Title: "After"}}

	// Own write: not reloaded
	a.Update(fileChangedMsg{})
	if !board.Grid().Occupied(0) {
		t.Error("grid should not reload on its own write")
	}

	stale = true
	a.Update(fileChangedMsg{})
	if n, ok := board.Grid().Slot(2); !ok || n.Title != "After" {
		t.Errorf("slot 2 = %+v", n)
	}
	if a.Grid().Message != "Notes reloaded from disk" {
		t.Errorf("message = %q", a.Grid().Message)
	}
}

func TestApp_ExternalEditor(t *testing.T) {
	a, store := newTestApp("Draft")
	session := &fakeSession{content: "written in vim"}
	a.opts.Editor = &fakeEditor{session: session}

	a.Update(editorFinishedMsg{slot: 0, title: "Draft", session: session})
	if store.records[0].Content != "written in vim" {
		t.Errorf("content = %q", store.records[0].Content)
	}

	session.err = errors.New("editor crashed")
	_, cmd := a.Update(editorFinishedMsg{slot: 0, title: "Draft", session: session})
	msg, ok := cmd().(views.StatusMsg)
	if !ok || msg.Level != views.LevelError {
		t.Errorf("expected error status, got %#v", msg)
	}
}

func TestApp_NoEditorConfigured(t *testing.T) {
	a, _ := newTestApp("Draft")

	_, cmd := a.Update(views.OpenEditorMsg{Slot: 0})
	msg, ok := cmd().(views.StatusMsg)
	if !ok || msg.Level != views.LevelWarning {
		t.Errorf("expected warning status, got %#v", msg)
	}
}

func TestApp_ExternalEditorNoteReplaced(t *testing.T) {
	a, store := newTestApp("Draft")
	session := &fakeSession{content: "written in vim"}

	// A reload swapped another note into the slot while the editor was open
	store.records = []domain.Record{{Position: 0, Title: "Other", Content: "keep me"}}
	if _, err := a.board.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, cmd := a.Update(editorFinishedMsg{slot: 0, title: "Draft", session: session})
	msg, ok := cmd().(views.StatusMsg)
	if !ok || msg.Level != views.LevelWarning || msg.Text != msgEditDropped {
		t.Errorf("expected dropped-edit warning, got %#v", msg)
	}
	if n, _ := a.board.Grid().Slot(0); n.Content != "keep me" {
		t.Errorf("content = %q, want it untouched", n.Content)
	}

	// Deleted while editing
	store.records = nil
	if _, err := a.board.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	_, cmd = a.Update(editorFinishedMsg{slot: 0, title: "Draft", session: session})
	if msg, ok := cmd().(views.StatusMsg); !ok || msg.Text != msgEditDropped {
		t.Errorf("expected dropped-edit warning, got %#v", msg)
	}
	if a.board.Grid().Occupied(0) {
		t.Error("edit should not recreate a deleted note")
	}
}
