package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// DeleteNoteResult contains the result of a delete operation
type DeleteNoteResult struct {
	Deleted domain.Note
	Message string
}

// DeleteNoteCommand frees a slot. Other notes keep their slots.
type DeleteNoteCommand struct {
	board *application.Board
	Slot  int
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(board *application.Board, slot int) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		board: board,
		Slot:  slot,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	return application.ValidateSlot("slot", c.Slot)
}

// Execute runs the delete command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*DeleteNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, err := c.board.Grid().Delete(c.Slot)
	if err != nil {
		return nil, err
	}

	result := &DeleteNoteResult{
		Deleted: note,
		Message: fmt.Sprintf("Deleted: %s", note.Title),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}
