package application

import "tuinotes/internal/domain"

// Re-export domain types for use by adapters
type (
	Note         = domain.Note
	Record       = domain.Record
	Direction    = domain.Direction
	JournalEntry = domain.JournalEntry
)

const (
	MaxNotes  = domain.MaxNotes
	NumColors = domain.NumColors
	AnySlot   = domain.AnySlot
)

// ParseDirection parses up/down/left/right
func ParseDirection(s string) (Direction, error) {
	return domain.ParseDirection(s)
}

// ParseColor accepts a palette name or index
func ParseColor(s string) (int, error) {
	return domain.ParseColor(s)
}

// ColorName returns the palette name for a color index
func ColorName(idx int) string {
	return domain.ColorName(idx)
}
