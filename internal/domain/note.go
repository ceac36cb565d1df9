package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxNotes is the number of slots in the grid
	MaxNotes = 9
	// GridColumns is the number of columns in the grid layout
	GridColumns = 3
	// NumColors is the size of the color palette
	NumColors = 6

	// AnySlot asks Add to use the first empty slot
	AnySlot = -1
)

// Color is a named palette entry
type Color struct {
	Name  string
	Index int
}

// Colors is the note palette, indexed by ColorIndex
var Colors = [NumColors]Color{
	{Name: "Yellow", Index: 0},
	{Name: "Green", Index: 1},
	{Name: "Blue", Index: 2},
	{Name: "Pink", Index: 3},
	{Name: "Orange", Index: 4},
	{Name: "Purple", Index: 5},
}

// Note is a sticky note occupying one slot of the grid
type Note struct {
	Title      string
	Content    string
	ColorIndex int
	Position   int // Index of the slot holding the note
}

// ColorName returns the palette name of the note's color
func (n Note) ColorName() string {
	return ColorName(n.ColorIndex)
}

// Record converts the note to its persistence shape
func (n Note) Record() Record {
	color := n.ColorIndex
	return Record{
		Position:   n.Position,
		Title:      n.Title,
		Content:    n.Content,
		ColorIndex: &color,
	}
}

// Record is the persisted form of a note. A nil ColorIndex means unset.
type Record struct {
	Position   int    `json:"position"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ColorIndex *int   `json:"color_index,omitempty"`
}

// Color returns the explicit color, or the positional default when unset or out of range
func (r Record) Color() int {
	if r.ColorIndex != nil && ValidColor(*r.ColorIndex) {
		return *r.ColorIndex
	}
	return DefaultColor(r.Position)
}

// DefaultColor returns the color a note gets at the given position
func DefaultColor(position int) int {
	return ((position % NumColors) + NumColors) % NumColors
}

// DefaultTitle returns the generated title for the n-th note
func DefaultTitle(n int) string {
	return fmt.Sprintf("Note %d", n)
}

// ValidColor reports whether idx is a palette index
func ValidColor(idx int) bool {
	return idx >= 0 && idx < NumColors
}

// ValidSlot reports whether idx addresses a grid slot
func ValidSlot(idx int) bool {
	return idx >= 0 && idx < MaxNotes
}

// ColorName returns the palette name for idx, or "" when out of range
func ColorName(idx int) string {
	if !ValidColor(idx) {
		return ""
	}
	return Colors[idx].Name
}

// ParseColor accepts a palette name (case-insensitive) or an index
func ParseColor(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, c := range Colors {
		if strings.EqualFold(c.Name, s) {
			return c.Index, nil
		}
	}
	if idx, err := strconv.Atoi(s); err == nil && ValidColor(idx) {
		return idx, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
