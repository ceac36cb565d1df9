package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// RecolorNoteResult contains the result of recoloring a note
type RecolorNoteResult struct {
	Note    domain.Note
	Message string
}

// RecolorNoteCommand changes the palette color of a note
type RecolorNoteCommand struct {
	board *application.Board
	Slot  int
	Color int
}

// NewRecolorNoteCommand creates a new RecolorNoteCommand
func NewRecolorNoteCommand(board *application.Board, slot, color int) *RecolorNoteCommand {
	return &RecolorNoteCommand{
		board: board,
		Slot:  slot,
		Color: color,
	}
}

// Validate checks if the recolor operation is valid
func (c *RecolorNoteCommand) Validate() error {
	if err := application.ValidateSlot("slot", c.Slot); err != nil {
		return err
	}
	return application.ValidateColor("colorIndex", c.Color)
}

// Execute runs the recolor command
func (c *RecolorNoteCommand) Execute(ctx context.Context) (*RecolorNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, err := c.board.Grid().Recolor(c.Slot, c.Color)
	if err != nil {
		return nil, err
	}

	result := &RecolorNoteResult{
		Note:    note,
		Message: fmt.Sprintf("%s is now %s", note.Title, note.ColorName()),
	}
	if err := c.board.Persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}
