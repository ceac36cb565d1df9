package commands

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

// NoteView is the environment a list filter expression is evaluated against
type NoteView struct {
	Slot       int    `expr:"slot"`
	Row        int    `expr:"row"`
	Column     int    `expr:"column"`
	Title      string `expr:"title"`
	Content    string `expr:"content"`
	Color      string `expr:"color"`
	ColorIndex int    `expr:"color_index"`
}

func newNoteView(n domain.Note) NoteView {
	return NoteView{
		Slot:       n.Position,
		Row:        n.Position / domain.GridColumns,
		Column:     n.Position % domain.GridColumns,
		Title:      n.Title,
		Content:    n.Content,
		Color:      n.ColorName(),
		ColorIndex: n.ColorIndex,
	}
}

// ListNotesCommand lists the notes on the board in grid order,
// optionally filtered by an expression such as `color == "Pink"`
type ListNotesCommand struct {
	board  *application.Board
	Filter string
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(board *application.Board, filter string) *ListNotesCommand {
	return &ListNotesCommand{
		board:  board,
		Filter: filter,
	}
}

// Validate compiles the filter expression
func (c *ListNotesCommand) Validate() error {
	_, err := c.compile()
	return err
}

func (c *ListNotesCommand) compile() (*vm.Program, error) {
	if c.Filter == "" {
		return nil, nil
	}
	program, err := expr.Compile(c.Filter, expr.Env(NoteView{}), expr.AsBool())
	if err != nil {
		return nil, &application.ValidationError{
			Field:   "filter",
			Message: fmt.Sprintf("invalid filter: %v", err),
		}
	}
	return program, nil
}

// Execute runs the list command
func (c *ListNotesCommand) Execute(ctx context.Context) ([]domain.Note, error) {
	program, err := c.compile()
	if err != nil {
		return nil, err
	}

	notes := c.board.Grid().Notes()
	if program == nil {
		return notes, nil
	}

	var matched []domain.Note
	for _, n := range notes {
		out, err := expr.Run(program, newNoteView(n))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter on slot %d: %w", n.Position, err)
		}
		if ok, _ := out.(bool); ok {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// GetNoteCommand returns the note at a slot
type GetNoteCommand struct {
	board *application.Board
	Slot  int
}

// NewGetNoteCommand creates a new GetNoteCommand
func NewGetNoteCommand(board *application.Board, slot int) *GetNoteCommand {
	return &GetNoteCommand{board: board, Slot: slot}
}

// Execute runs the get command
func (c *GetNoteCommand) Execute(ctx context.Context) (*domain.Note, error) {
	if err := application.ValidateSlot("slot", c.Slot); err != nil {
		return nil, err
	}
	note, ok := c.board.Grid().Slot(c.Slot)
	if !ok {
		return nil, &domain.SlotError{Slot: c.Slot, Err: application.ErrSlotEmpty}
	}
	return &note, nil
}
