package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

const (
	BoardURI   = "notes://board"
	JournalURI = "notes://journal"

	journalLimit = 50
)

// RegisterResources exposes the board, and the journal when one is configured.
func RegisterResources(s *server.MCPServer, b *Backend) {
	s.AddResource(
		mcp.NewResource(BoardURI, "Sticky notes board",
			mcp.WithResourceDescription("All notes in the same JSON shape as the notes file"),
			mcp.WithMIMEType("application/json"),
		),
		boardHandler(b),
	)

	if b.board.Journal() != nil {
		s.AddResource(
			mcp.NewResource(JournalURI, "Change journal",
				mcp.WithResourceDescription("The most recent changes made to the board"),
				mcp.WithMIMEType("application/json"),
			),
			journalHandler(b),
		)
	}
}

func boardHandler(b *Backend) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := b.with(ctx, func(board *application.Board) (string, error) {
			return marshal(map[string]any{"post_its": board.Grid().Records()})
		})
		if err != nil {
			return nil, fmt.Errorf("reading board: %w", err)
		}
		return jsonContents(req.Params.URI, text), nil
	}
}

type journalView struct {
	Action string    `json:"action"`
	Slots  []int     `json:"slots"`
	Title  string    `json:"title,omitempty"`
	At     time.Time `json:"at"`
}

func journalHandler(b *Backend) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := b.board.Journal().Recent(ctx, journalLimit)
		if err != nil {
			return nil, fmt.Errorf("reading journal: %w", err)
		}
		views := make([]journalView, 0, len(entries))
		for _, e := range entries {
			views = append(views, toJournalView(e))
		}
		text, err := marshal(views)
		if err != nil {
			return nil, err
		}
		return jsonContents(req.Params.URI, text), nil
	}
}

func toJournalView(e domain.JournalEntry) journalView {
	return journalView{Action: e.Action, Slots: e.Slots, Title: e.Title, At: e.At.UTC()}
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling: %w", err)
	}
	return string(data), nil
}

func jsonContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		},
	}
}
