package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
	"tuinotes/internal/domain"
)

// RegisterReadTools adds the read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, b *Backend) {
	s.AddTool(listTool(), listHandler(b))
	s.AddTool(getTool(), getHandler(b))
}

// --- list_notes ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes on the 3x3 board in slot order. Slots are numbered 0-8, left to right and top to bottom."),
		mcp.WithString("where",
			mcp.Description(`Optional filter expression over slot, row, column, title, content, color and color_index (e.g. row == 0, color == "Pink", title contains "todo").`),
		),
	)
}

func listHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		where := req.GetString("where", "")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			notes, err := commands.NewListNotesCommand(board, where).Execute(ctx)
			if err != nil {
				return "", err
			}
			if len(notes) == 0 {
				return "No notes.", nil
			}
			var sb strings.Builder
			for _, n := range notes {
				sb.WriteString(formatNote(n))
				sb.WriteByte('\n')
			}
			return sb.String(), nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- get_note ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_note",
		mcp.WithDescription("Read one note as markdown."),
		mcp.WithNumber("slot",
			mcp.Description("Slot index 0-8"),
			mcp.Required(),
		),
	)
}

func getHandler(b *Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot := slotArg(req, "slot")

		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			note, err := commands.NewGetNoteCommand(board, slot).Execute(ctx)
			if err != nil {
				return "", err
			}
			return domain.RenderNote(*note), nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// slotArg reads an integer argument. Missing values map to -1, which
// slot validation rejects.
func slotArg(req mcp.CallToolRequest, name string) int {
	return int(req.GetFloat(name, -1))
}

func formatNote(n domain.Note) string {
	return fmt.Sprintf("%d  %-7s %s", n.Position, n.ColorName(), n.Title)
}
