package domain

import (
	"fmt"
	"strings"
)

// ChangeKind identifies the mutation reported to subscribers
type ChangeKind int

const (
	ChangeAdd ChangeKind = iota
	ChangeDelete
	ChangeEdit
	ChangeRecolor
	ChangeSwap
	ChangeLoad
	ChangeReset
)

// String returns the name used in logs and the journal
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeDelete:
		return "delete"
	case ChangeEdit:
		return "edit"
	case ChangeRecolor:
		return "recolor"
	case ChangeSwap:
		return "swap"
	case ChangeLoad:
		return "load"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one mutation of the grid and the slots it touched
type Change struct {
	Kind  ChangeKind
	Slots []int
	Note  *Note // Snapshot of the note involved, nil for swaps and resets
}

// ChangeFunc is called after every mutation
type ChangeFunc func(Change)

// Grid is the 3x3 board of slots. A nil slot is empty.
// All mutation goes through its methods; it is not safe for concurrent use.
type Grid struct {
	slots     [MaxNotes]*Note
	counter   int
	moving    int
	listeners []ChangeFunc
}

// NewGrid returns an empty grid in idle mode
func NewGrid() *Grid {
	return &Grid{moving: -1}
}

// Subscribe registers fn to be called after each mutation
func (g *Grid) Subscribe(fn ChangeFunc) {
	g.listeners = append(g.listeners, fn)
}

func (g *Grid) emit(kind ChangeKind, note *Note, slots ...int) {
	var snap *Note
	if note != nil {
		n := *note
		snap = &n
	}
	change := Change{Kind: kind, Slots: slots, Note: snap}
	for _, fn := range g.listeners {
		fn(change)
	}
}

// Slot returns the note at idx and whether the slot is occupied
func (g *Grid) Slot(idx int) (Note, bool) {
	if !ValidSlot(idx) || g.slots[idx] == nil {
		return Note{}, false
	}
	return *g.slots[idx], true
}

// Occupied reports whether idx holds a note
func (g *Grid) Occupied(idx int) bool {
	return ValidSlot(idx) && g.slots[idx] != nil
}

// Count returns the number of occupied slots
func (g *Grid) Count() int {
	n := 0
	for _, s := range g.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Full reports whether every slot is occupied
func (g *Grid) Full() bool {
	return g.Count() == MaxNotes
}

// Counter returns how many notes have been created or loaded this session
func (g *Grid) Counter() int {
	return g.counter
}

// FirstEmpty returns the lowest-index empty slot
func (g *Grid) FirstEmpty() (int, bool) {
	for i, s := range g.slots {
		if s == nil {
			return i, true
		}
	}
	return 0, false
}

// Notes returns copies of all notes in grid order
func (g *Grid) Notes() []Note {
	notes := make([]Note, 0, MaxNotes)
	for _, s := range g.slots {
		if s != nil {
			notes = append(notes, *s)
		}
	}
	return notes
}

// Records returns the notes in grid order with explicit colors
func (g *Grid) Records() []Record {
	notes := g.Notes()
	records := make([]Record, len(notes))
	for i, n := range notes {
		records[i] = n.Record()
	}
	return records
}

// Add creates a note at target when that slot is empty, otherwise at the
// first empty slot. It fails with ErrGridFull when no slot is free.
func (g *Grid) Add(target int) (Note, error) {
	idx := target
	if !ValidSlot(idx) || g.slots[idx] != nil {
		var ok bool
		if idx, ok = g.FirstEmpty(); !ok {
			return Note{}, ErrGridFull
		}
	}

	g.counter++
	note := &Note{
		Title:      DefaultTitle(g.counter),
		ColorIndex: DefaultColor(idx),
		Position:   idx,
	}
	g.slots[idx] = note
	g.emit(ChangeAdd, note, idx)
	return *note, nil
}

// Delete frees the slot in place. Other notes keep their positions.
func (g *Grid) Delete(slot int) (Note, error) {
	note, err := g.occupied(slot)
	if err != nil {
		return Note{}, err
	}
	if g.moving == slot {
		g.moving = -1
	}
	g.slots[slot] = nil
	g.emit(ChangeDelete, note, slot)
	return *note, nil
}

// Edit replaces the title and content of the note at slot
func (g *Grid) Edit(slot int, title, content string) (Note, error) {
	note, err := g.occupied(slot)
	if err != nil {
		return Note{}, err
	}
	if strings.TrimSpace(title) == "" {
		return Note{}, slotErr(slot, ErrEmptyTitle)
	}
	note.Title = title
	note.Content = content
	g.emit(ChangeEdit, note, slot)
	return *note, nil
}

// Recolor sets the palette index of the note at slot
func (g *Grid) Recolor(slot, color int) (Note, error) {
	note, err := g.occupied(slot)
	if err != nil {
		return Note{}, err
	}
	if !ValidColor(color) {
		return Note{}, slotErr(slot, fmt.Errorf("%w: %d (expected 0-%d)", ErrInvalidColor, color, NumColors-1))
	}
	note.ColorIndex = color
	g.emit(ChangeRecolor, note, slot)
	return *note, nil
}

// Swap exchanges the contents of two slots. Occupied/occupied exchanges the
// notes, occupied/empty relocates the note, empty/empty does nothing.
// Positions always follow the slots. The note in move mode follows its content.
func (g *Grid) Swap(a, b int) error {
	if !ValidSlot(a) {
		return slotErr(a, ErrInvalidSlot)
	}
	if !ValidSlot(b) {
		return slotErr(b, ErrInvalidSlot)
	}
	if a == b || (g.slots[a] == nil && g.slots[b] == nil) {
		return nil
	}

	g.slots[a], g.slots[b] = g.slots[b], g.slots[a]
	if g.slots[a] != nil {
		g.slots[a].Position = a
	}
	if g.slots[b] != nil {
		g.slots[b].Position = b
	}

	switch g.moving {
	case a:
		g.moving = b
	case b:
		g.moving = a
	}

	g.emit(ChangeSwap, nil, a, b)
	return nil
}

// EnterMoveMode marks the note at slot as the one being moved
func (g *Grid) EnterMoveMode(slot int) error {
	if _, err := g.occupied(slot); err != nil {
		return err
	}
	g.moving = slot
	return nil
}

// ExitMoveMode returns to idle. It is a no-op when already idle.
func (g *Grid) ExitMoveMode() {
	g.moving = -1
}

// Moving returns the slot of the note being moved, if any
func (g *Grid) Moving() (int, bool) {
	return g.moving, g.moving >= 0
}

// MoveSelected steps the moving note one slot in dir, swapping with
// whatever is there. It returns the note's new slot.
func (g *Grid) MoveSelected(dir Direction) (int, error) {
	from, ok := g.Moving()
	if !ok {
		return 0, ErrNotMoving
	}
	target, ok := MoveStep(from, dir)
	if !ok {
		return from, ErrNoTarget
	}
	if err := g.Swap(from, target); err != nil {
		return from, err
	}
	return target, nil
}

// Reset empties every slot, clears the counter and leaves move mode
func (g *Grid) Reset() {
	g.slots = [MaxNotes]*Note{}
	g.counter = 0
	g.moving = -1
	g.emit(ChangeReset, nil)
}

// Place puts records into their saved slots. Records whose position is out
// of range or already taken are returned as skipped.
func (g *Grid) Place(records []Record) (placed int, skipped []Record) {
	var slots []int
	for _, r := range records {
		if !ValidSlot(r.Position) || g.slots[r.Position] != nil {
			skipped = append(skipped, r)
			continue
		}
		title := r.Title
		if strings.TrimSpace(title) == "" {
			title = DefaultTitle(r.Position + 1)
		}
		g.slots[r.Position] = &Note{
			Title:      title,
			Content:    r.Content,
			ColorIndex: r.Color(),
			Position:   r.Position,
		}
		g.counter++
		placed++
		slots = append(slots, r.Position)
	}
	if placed > 0 {
		g.emit(ChangeLoad, nil, slots...)
	}
	return placed, skipped
}

// Check verifies the grid invariants
func (g *Grid) Check() error {
	for i, s := range g.slots {
		if s == nil {
			continue
		}
		if s.Position != i {
			return fmt.Errorf("%w: note %q in slot %d has position %d", ErrInconsistent, s.Title, i, s.Position)
		}
		if !ValidColor(s.ColorIndex) {
			return fmt.Errorf("%w: note %q has color %d", ErrInconsistent, s.Title, s.ColorIndex)
		}
	}
	if g.moving >= 0 && (!ValidSlot(g.moving) || g.slots[g.moving] == nil) {
		return fmt.Errorf("%w: move mode on empty slot %d", ErrInconsistent, g.moving)
	}
	return nil
}

func (g *Grid) occupied(slot int) (*Note, error) {
	if !ValidSlot(slot) {
		return nil, slotErr(slot, ErrInvalidSlot)
	}
	if g.slots[slot] == nil {
		return nil, slotErr(slot, ErrSlotEmpty)
	}
	return g.slots[slot], nil
}
