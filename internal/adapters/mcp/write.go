package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
	"tuinotes/internal/domain"
)

// RegisterWriteTools adds the note editing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, b *Backend) {
	s.AddTool(addTool(), addHandler(b))
	s.AddTool(editTool(), editHandler(b))
	s.AddTool(deleteTool(), deleteHandler(b))
	s.AddTool(recolorTool(), recolorHandler(b))
	s.AddTool(swapTool(), swapHandler(b))
	s.AddTool(moveTool(), moveHandler(b))
	if b.exporter != nil {
		s.AddTool(exportTool(), exportHandler(b))
	}
}

// --- add_note ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_note",
		mcp.WithDescription("Add a note. Uses the given slot when it is empty, otherwise the first empty slot. Fails when all 9 slots are taken."),
		mcp.WithNumber("slot",
			mcp.Description("Preferred slot 0-8. Omit for the first empty slot."),
		),
		mcp.WithString("title",
			mcp.Description("Title. Omit for a generated 'Note N' title."),
		),
		mcp.WithString("content",
			mcp.Description("Note body"),
		),
		mcp.WithString("color",
			mcp.Description("Palette color name or index. Omit for the slot's default color."),
		),
	)
}

func addHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := int(req.GetFloat("slot", float64(domain.AnySlot)))
		color := req.GetString("color", "")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			cmd := commands.NewAddNoteCommand(board, target)
			cmd.Title = req.GetString("title", "")
			cmd.Content = req.GetString("content", "")
			if color != "" {
				idx, err := application.ParseColor(color)
				if err != nil {
					return "", err
				}
				cmd.Color, cmd.HasColor = idx, true
			}
			result, err := cmd.Execute(ctx)
			return message(result, err, func(r *commands.AddNoteResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- edit_note ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit_note",
		mcp.WithDescription("Replace a note's title and content."),
		mcp.WithNumber("slot",
			mcp.Description("Slot index 0-8"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New content. Omit to clear it."),
		),
	)
}

func editHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot := slotArg(req, "slot")
		title := req.GetString("title", "")
		content := req.GetString("content", "")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			result, err := commands.NewEditNoteCommand(board, slot, title, content).Execute(ctx)
			return message(result, err, func(r *commands.EditNoteResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- delete_note ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete the note in a slot, leaving the slot empty."),
		mcp.WithNumber("slot",
			mcp.Description("Slot index 0-8"),
			mcp.Required(),
		),
	)
}

func deleteHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot := slotArg(req, "slot")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			result, err := commands.NewDeleteNoteCommand(board, slot).Execute(ctx)
			return message(result, err, func(r *commands.DeleteNoteResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- recolor_note ---

func recolorTool() mcp.Tool {
	return mcp.NewTool("recolor_note",
		mcp.WithDescription("Change a note's color."),
		mcp.WithNumber("slot",
			mcp.Description("Slot index 0-8"),
			mcp.Required(),
		),
		mcp.WithString("color",
			mcp.Description("Palette color name (Yellow, Green, Blue, Pink, Orange, Purple) or index 0-5"),
			mcp.Required(),
		),
	)
}

func recolorHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot := slotArg(req, "slot")
		color := req.GetString("color", "")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			idx, err := application.ParseColor(color)
			if err != nil {
				return "", err
			}
			result, err := commands.NewRecolorNoteCommand(board, slot, idx).Execute(ctx)
			return message(result, err, func(r *commands.RecolorNoteResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- swap_notes ---

func swapTool() mcp.Tool {
	return mcp.NewTool("swap_notes",
		mcp.WithDescription("Exchange the contents of two slots. Either slot may be empty."),
		mcp.WithNumber("slot_a",
			mcp.Description("First slot index 0-8"),
			mcp.Required(),
		),
		mcp.WithNumber("slot_b",
			mcp.Description("Second slot index 0-8"),
			mcp.Required(),
		),
	)
}

func swapHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		a, c := slotArg(req, "slot_a"), slotArg(req, "slot_b")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			result, err := commands.NewSwapNotesCommand(board, a, c).Execute(ctx)
			return message(result, err, func(r *commands.SwapNotesResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- move_note ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move_note",
		mcp.WithDescription("Move a note one slot up, down, left or right, swapping with the neighbour."),
		mcp.WithNumber("slot",
			mcp.Description("Slot index 0-8"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("up, down, left or right"),
			mcp.Required(),
			mcp.Enum("up", "down", "left", "right"),
		),
	)
}

func moveHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot := slotArg(req, "slot")

		dir, err := application.ParseDirection(req.GetString("direction", ""))
		if err != nil {
			return toolError(err)
		}

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			result, err := commands.NewMoveNoteCommand(board, slot, dir).Execute(ctx)
			return message(result, err, func(r *commands.MoveNoteResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- export_markdown ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_markdown",
		mcp.WithDescription("Export all notes to the configured markdown file and return its path."),
	)
}

func exportHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			result, err := commands.NewExportNotesCommand(board, b.exporter).Execute(ctx)
			return message(result, err, func(r *commands.ExportNotesResult) string { return r.Message })
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// message unwraps a command outcome. A failed save still reports the error.
func message[R any](result *R, err error, text func(*R) string) (string, error) {
	if err != nil {
		return "", err
	}
	return text(result), nil
}
