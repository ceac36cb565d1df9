package ports

import (
	"context"

	"tuinotes/internal/domain"
)

// NoteStore defines the interface for persisting the board
type NoteStore interface {
	// Save replaces the stored notes with records. The write is atomic:
	// on failure the previous contents are left intact.
	Save(ctx context.Context, records []domain.Record) error

	// Load returns the valid stored records in stored order.
	// A missing or corrupted file yields an empty slice, not an error.
	Load(ctx context.Context) ([]domain.Record, error)

	// Path returns the location of the backing file
	Path() string
}

// Exporter writes a rendered document to its destination
type Exporter interface {
	Export(ctx context.Context, notes []domain.Note) (string, error)
}
