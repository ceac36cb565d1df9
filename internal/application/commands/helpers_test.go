package commands

import (
	"context"
	"errors"
	"strings"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// memStore is an in-memory NoteStore
type memStore struct {
	records []domain.Record
	saves   int
	failing bool
}

func (s *memStore) Save(ctx context.Context, records []domain.Record) error {
	if s.failing {
		return errors.New("disk full")
	}
	s.saves++
	s.records = append([]domain.Record(nil), records...)
	return nil
}

func (s *memStore) Load(ctx context.Context) ([]domain.Record, error) {
	return append([]domain.Record(nil), s.records...), nil
}

func (s *memStore) Path() string {
	return "/mem/notes.json"
}

type memExporter struct {
	doc string
}

func (e *memExporter) Export(ctx context.Context, notes []domain.Note) (string, error) {
	e.doc = domain.RenderMarkdown(notes)
	return "/mem/export.md", nil
}

func newTestBoard(titles ...string) (*application.Board, *memStore) {
	store := &memStore{}
	board := application.NewBoard(store)
	for _, title := range titles {
		n, err := board.Grid().Add(domain.AnySlot)
		if err != nil {
			panic(err)
		}
		if title != "" {
			if _, err := board.Grid().Edit(n.Position, title, ""); err != nil {
				panic(err)
			}
		}
	}
	return board, store
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

type memClipboard struct {
	text string
}

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
