package ports

import (
	"context"

	"tuinotes/internal/domain"
)

// Journal records board changes for later review
type Journal interface {
	Record(ctx context.Context, entry domain.JournalEntry) error
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	Close() error
}
