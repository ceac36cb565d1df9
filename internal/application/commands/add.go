package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// AddNoteResult contains the result of adding a note
type AddNoteResult struct {
	Note    domain.Note
	Message string
}

// AddNoteCommand adds a note to the board
type AddNoteCommand struct {
	board  *application.Board
	Target int // domain.AnySlot for the first empty slot

	// Optional initial values; the generated title is kept when Title is empty
	Title    string
	Content  string
	Color    int
	HasColor bool
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(board *application.Board, target int) *AddNoteCommand {
	return &AddNoteCommand{
		board:  board,
		Target: target,
	}
}

// Validate checks if the add operation is valid
func (c *AddNoteCommand) Validate() error {
	if c.Target != domain.AnySlot {
		if err := application.ValidateSlot("slot", c.Target); err != nil {
			return err
		}
	}
	if c.Title != "" {
		if err := application.ValidateRequired("title", c.Title); err != nil {
			return err
		}
	}
	if c.HasColor {
		if err := application.ValidateColor("colorIndex", c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*AddNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid := c.board.Grid()
	note, err := grid.Add(c.Target)
	if err != nil {
		return nil, err
	}

	if c.Title != "" || c.Content != "" {
		title := c.Title
		if title == "" {
			title = note.Title
		}
		if note, err = grid.Edit(note.Position, title, c.Content); err != nil {
			return nil, err
		}
	}
	if c.HasColor {
		if note, err = grid.Recolor(note.Position, c.Color); err != nil {
			return nil, err
		}
	}

	result := &AddNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Added: %s", note.Title),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}
