package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// EditNoteResult contains the result of editing a note
type EditNoteResult struct {
	Note    domain.Note
	Message string
}

// EditNoteCommand replaces the title and content of a note
type EditNoteCommand struct {
	board   *application.Board
	Slot    int
	Title   string
	Content string
}

// NewEditNoteCommand creates a new EditNoteCommand
func NewEditNoteCommand(board *application.Board, slot int, title, content string) *EditNoteCommand {
	return &EditNoteCommand{
		board:   board,
		Slot:    slot,
		Title:   title,
		Content: content,
	}
}

// Validate checks if the edit operation is valid
func (c *EditNoteCommand) Validate() error {
	if err := application.ValidateSlot("slot", c.Slot); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the edit command
func (c *EditNoteCommand) Execute(ctx context.Context) (*EditNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, err := c.board.Grid().Edit(c.Slot, c.Title, c.Content)
	if err != nil {
		return nil, err
	}

	result := &EditNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Updated: %s", note.Title),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}
