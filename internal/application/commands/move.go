package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// SwapNotesResult contains the result of swapping two slots
type SwapNotesResult struct {
	SlotA   int
	SlotB   int
	Changed bool
	Message string
}

// SwapNotesCommand exchanges the contents of two slots
type SwapNotesCommand struct {
	board *application.Board
	SlotA int
	SlotB int
}

// NewSwapNotesCommand creates a new SwapNotesCommand
func NewSwapNotesCommand(board *application.Board, a, b int) *SwapNotesCommand {
	return &SwapNotesCommand{
		board: board,
		SlotA: a,
		SlotB: b,
	}
}

// Validate checks if the swap operation is valid
func (c *SwapNotesCommand) Validate() error {
	if err := application.ValidateSlot("slotA", c.SlotA); err != nil {
		return err
	}
	return application.ValidateSlot("slotB", c.SlotB)
}

// Execute runs the swap command. Swapping two empty slots changes nothing
// and is not persisted.
func (c *SwapNotesCommand) Execute(ctx context.Context) (*SwapNotesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid := c.board.Grid()
	if c.SlotA == c.SlotB || (!grid.Occupied(c.SlotA) && !grid.Occupied(c.SlotB)) {
		return &SwapNotesResult{
			SlotA:   c.SlotA,
			SlotB:   c.SlotB,
			Message: "Nothing to swap",
		}, nil
	}

	if err := grid.Swap(c.SlotA, c.SlotB); err != nil {
		return nil, fmt.Errorf("failed to swap: %w", err)
	}

	result := &SwapNotesResult{
		SlotA:   c.SlotA,
		SlotB:   c.SlotB,
		Changed: true,
		Message: fmt.Sprintf("Swapped slots %d and %d", c.SlotA, c.SlotB),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// MoveNoteResult contains the result of moving a note one step
type MoveNoteResult struct {
	From    int
	To      int
	Message string
}

// MoveNoteCommand moves the note at Slot one step in Direction,
// swapping with whatever occupies the target slot
type MoveNoteCommand struct {
	board     *application.Board
	Slot      int
	Direction domain.Direction
}

// NewMoveNoteCommand creates a new MoveNoteCommand
func NewMoveNoteCommand(board *application.Board, slot int, dir domain.Direction) *MoveNoteCommand {
	return &MoveNoteCommand{
		board:     board,
		Slot:      slot,
		Direction: dir,
	}
}

// Validate checks if the move operation is valid
func (c *MoveNoteCommand) Validate() error {
	if err := application.ValidateSlot("slot", c.Slot); err != nil {
		return err
	}
	_, err := ValidateMoveTarget(c.Slot, c.Direction)
	return err
}

// Execute runs the move command through move mode, so the grid applies
// the same rules as an arrow key press
func (c *MoveNoteCommand) Execute(ctx context.Context) (*MoveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid := c.board.Grid()
	if err := grid.EnterMoveMode(c.Slot); err != nil {
		return nil, err
	}
	defer grid.ExitMoveMode()

	to, err := grid.MoveSelected(c.Direction)
	if err != nil {
		return nil, err
	}

	note, _ := grid.Slot(to)
	result := &MoveNoteResult{
		From:    c.Slot,
		To:      to,
		Message: fmt.Sprintf("Moved %s %s to slot %d", note.Title, c.Direction, to),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// ValidateMoveTarget returns the slot reached from slot in dir, or
// ErrNoTarget when the step would leave the grid
func ValidateMoveTarget(slot int, dir domain.Direction) (int, error) {
	target, ok := domain.MoveStep(slot, dir)
	if !ok {
		return 0, &domain.SlotError{Slot: slot, Err: fmt.Errorf("%w: %s", application.ErrNoTarget, dir)}
	}
	return target, nil
}
