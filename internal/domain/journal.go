package domain

import "time"

// JournalEntry is one recorded change to the board
type JournalEntry struct {
	ID     string
	Action string // ChangeKind name
	Slots  []int
	Title  string // Title of the note involved, empty for swaps
	At     time.Time
}

// NewJournalEntry builds an entry from a grid change
func NewJournalEntry(id string, c Change, at time.Time) JournalEntry {
	e := JournalEntry{
		ID:     id,
		Action: c.Kind.String(),
		Slots:  append([]int(nil), c.Slots...),
		At:     at,
	}
	if c.Note != nil {
		e.Title = c.Note.Title
	}
	return e
}
