package commands

import (
	"context"
	"fmt"

	"tuinotes/internal/application"
	"tuinotes/internal/ports"
)

// ExportNotesResult contains the result of an export
type ExportNotesResult struct {
	Path    string
	Count   int
	Message string
}

// ExportNotesCommand writes the board as Markdown through an exporter
type ExportNotesCommand struct {
	board    *application.Board
	exporter ports.Exporter
}

// NewExportNotesCommand creates a new ExportNotesCommand
func NewExportNotesCommand(board *application.Board, exporter ports.Exporter) *ExportNotesCommand {
	return &ExportNotesCommand{
		board:    board,
		exporter: exporter,
	}
}

// Execute runs the export command
func (c *ExportNotesCommand) Execute(ctx context.Context) (*ExportNotesResult, error) {
	notes := c.board.Grid().Notes()
	if len(notes) == 0 {
		return nil, application.ErrNoNotes
	}

	path, err := c.exporter.Export(ctx, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	return &ExportNotesResult{
		Path:    path,
		Count:   len(notes),
		Message: fmt.Sprintf("Exported to %s", path),
	}, nil
}
