package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tuinotes/internal/domain"
	"tuinotes/internal/ports"
)

// Board ties the in-memory grid to its store. It is the only owner of the grid.
type Board struct {
	grid    *domain.Grid
	store   ports.NoteStore
	journal ports.Journal
	logger  *slog.Logger
	now     func() time.Time
}

// BoardOption configures a Board
type BoardOption func(*Board)

// WithLogger sets the board's logger
func WithLogger(l *slog.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithJournal records every grid change to j
func WithJournal(j ports.Journal) BoardOption {
	return func(b *Board) {
		b.journal = j
	}
}

// NewBoard creates a board with an empty grid backed by store
func NewBoard(store ports.NoteStore, opts ...BoardOption) *Board {
	b := &Board{
		grid:   domain.NewGrid(),
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.grid.Subscribe(b.onChange)
	return b
}

// Grid returns the board's grid
func (b *Board) Grid() *domain.Grid {
	return b.grid
}

// Store returns the backing store
func (b *Board) Store() ports.NoteStore {
	return b.store
}

// Logger returns the board's logger
func (b *Board) Logger() *slog.Logger {
	return b.logger
}

// Journal returns the configured journal, or nil
func (b *Board) Journal() ports.Journal {
	return b.journal
}

// Load replaces the grid contents with the stored notes.
// Records that cannot be placed are logged and dropped.
func (b *Board) Load(ctx context.Context) (int, error) {
	records, err := b.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load notes: %w", err)
	}

	b.grid.Reset()
	placed, skipped := b.grid.Place(records)
	for _, r := range skipped {
		b.logger.Warn("skipping stored note", "title", r.Title, "position", r.Position)
	}
	if err := b.grid.Check(); err != nil {
		return placed, err
	}

	b.logger.Debug("notes loaded", "path", b.store.Path(), "placed", placed, "skipped", len(skipped))
	return placed, nil
}

// Persist saves the current grid. On failure the grid is left as is.
func (b *Board) Persist(ctx context.Context) error {
	if err := b.grid.Check(); err != nil {
		return err
	}
	if err := b.store.Save(ctx, b.grid.Records()); err != nil {
		b.logger.Error("save failed", "path", b.store.Path(), "err", err)
		return &PersistError{Op: "save", Err: err}
	}
	b.logger.Debug("notes saved", "path", b.store.Path(), "count", b.grid.Count())
	return nil
}

func (b *Board) onChange(c domain.Change) {
	b.logger.Debug("grid changed", "kind", c.Kind.String(), "slots", c.Slots)

	if b.journal == nil || c.Kind == domain.ChangeReset || c.Kind == domain.ChangeLoad {
		return
	}
	entry := domain.NewJournalEntry(uuid.NewString(), c, b.now())
	if err := b.journal.Record(context.Background(), entry); err != nil {
		b.logger.Warn("journal write failed", "action", entry.Action, "err", err)
	}
}
