package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
	"tuinotes/internal/ports"
)

// CopyNoteResult contains the result of copying a note
type CopyNoteResult struct {
	Text    string
	Message string
}

// CopyNoteCommand puts a note, rendered as Markdown, on the clipboard
type CopyNoteCommand struct {
	board     *application.Board
	clipboard ports.Clipboard
	Slot      int
}

// NewCopyNoteCommand creates a new CopyNoteCommand
func NewCopyNoteCommand(board *application.Board, clipboard ports.Clipboard, slot int) *CopyNoteCommand {
	return &CopyNoteCommand{
		board:     board,
		clipboard: clipboard,
		Slot:      slot,
	}
}

// Execute runs the copy command
func (c *CopyNoteCommand) Execute(ctx context.Context) (*CopyNoteResult, error) {
	note, err := NewGetNoteCommand(c.board, c.Slot).Execute(ctx)
	if err != nil {
		return nil, err
	}

	text := domain.RenderNote(*note)
	if err := c.clipboard.WriteAll(text); err != nil {
		return nil, err
	}

	return &CopyNoteResult{
		Text:    text,
		Message: fmt.Sprintf("Copied: %s", note.Title),
	}, nil
}
