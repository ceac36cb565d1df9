package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuinotes/internal/adapters/filesystem"
	"tuinotes/internal/application"
	"tuinotes/internal/domain"
)

func newTestBackend(t *testing.T) (*Backend, *filesystem.Store) {
	t.Helper()
	dir := t.TempDir()
	store := filesystem.NewStore(filepath.Join(dir, "notes.json"), nil)
	exporter := filesystem.NewMarkdownExporter(filepath.Join(dir, "export.md"))
	return NewBackend(application.NewBoard(store), exporter), store
}

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), makeReq(args))
	require.NoError(t, err)
	return res
}

func TestTools_Definitions(t *testing.T) {
	tools := []mcp.Tool{listTool(), getTool(), addTool(), editTool(), deleteTool(), recolorTool(), swapTool(), moveTool(), exportTool()}
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		"list_notes", "get_note", "add_note", "edit_note", "delete_note",
		"recolor_note", "swap_notes", "move_note", "export_markdown",
	}, names)

	assert.Contains(t, editTool().InputSchema.Required, "slot")
	assert.Contains(t, editTool().InputSchema.Required, "title")
	assert.Empty(t, addTool().InputSchema.Required)
}

func TestAddAndList(t *testing.T) {
	b, store := newTestBackend(t)

	res := call(t, addHandler(b), map[string]any{"title": "Groceries", "content": "milk", "color": "Pink"})
	require.False(t, res.IsError, resultText(res))
	assert.Equal(t, "Added: Groceries", resultText(res))

	res = call(t, addHandler(b), map[string]any{"slot": float64(4)})
	require.False(t, res.IsError)
	assert.Equal(t, "Added: Note 2", resultText(res))

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 4, records[1].Position)

	text := resultText(call(t, listHandler(b), nil))
	assert.Contains(t, text, "0  Pink    Groceries")
	assert.Contains(t, text, "4  ")

	text = resultText(call(t, listHandler(b), map[string]any{"where": `color == "Pink"`}))
	assert.Equal(t, 1, strings.Count(text, "\n"))
}

func TestList_BadFilter(t *testing.T) {
	b, _ := newTestBackend(t)

	res := call(t, listHandler(b), map[string]any{"where": "slot +"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "filter")
}

func TestGetNote(t *testing.T) {
	b, _ := newTestBackend(t)
	call(t, addHandler(b), map[string]any{"title": "Plan", "content": "ship it"})

	res := call(t, getHandler(b), map[string]any{"slot": float64(0)})
	assert.Equal(t, "## Plan\n\nship it\n", resultText(res))

	res = call(t, getHandler(b), map[string]any{"slot": float64(5)})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "slot is empty")

	res = call(t, getHandler(b), nil)
	assert.True(t, res.IsError, "missing slot should be rejected")
}

func TestEditDeleteRecolor(t *testing.T) {
	b, store := newTestBackend(t)
	call(t, addHandler(b), nil)

	res := call(t, editHandler(b), map[string]any{"slot": float64(0), "title": "Renamed", "content": "x"})
	require.False(t, res.IsError, resultText(res))

	res = call(t, recolorHandler(b), map[string]any{"slot": float64(0), "color": "3"})
	require.False(t, res.IsError, resultText(res))

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Renamed", records[0].Title)
	assert.Equal(t, 3, records[0].Color())

	res = call(t, recolorHandler(b), map[string]any{"slot": float64(0), "color": "Chartreuse"})
	assert.True(t, res.IsError)

	res = call(t, deleteHandler(b), map[string]any{"slot": float64(0)})
	require.False(t, res.IsError)
	records, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSwapAndMove(t *testing.T) {
	b, store := newTestBackend(t)
	call(t, addHandler(b), map[string]any{"title": "A"})

	res := call(t, swapHandler(b), map[string]any{"slot_a": float64(0), "slot_b": float64(8)})
	require.False(t, res.IsError, resultText(res))

	res = call(t, moveHandler(b), map[string]any{"slot": float64(8), "direction": "left"})
	require.False(t, res.IsError, resultText(res))

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].Position)

	res = call(t, moveHandler(b), map[string]any{"slot": float64(7), "direction": "down"})
	assert.True(t, res.IsError, "moving off the grid should fail")

	res = call(t, moveHandler(b), map[string]any{"slot": float64(7), "direction": "sideways"})
	assert.True(t, res.IsError)
}

func TestAdd_GridFull(t *testing.T) {
	b, _ := newTestBackend(t)
	for i := 0; i < domain.MaxNotes; i++ {
		res := call(t, addHandler(b), nil)
		require.False(t, res.IsError, resultText(res))
	}

	res := call(t, addHandler(b), nil)
	assert.True(t, res.IsError)
}

func TestExport(t *testing.T) {
	b, _ := newTestBackend(t)

	res := call(t, exportHandler(b), nil)
	assert.True(t, res.IsError, "empty board has nothing to export")

	call(t, addHandler(b), map[string]any{"title": "One"})
	res = call(t, exportHandler(b), nil)
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "export.md")
}

func TestBackend_SeesExternalWrites(t *testing.T) {
	b, store := newTestBackend(t)

	require.NoError(t, store.Save(context.Background(), []domain.Record{{Position: 2, Title: "From TUI"}}))

	text := resultText(call(t, listHandler(b), nil))
	assert.Contains(t, text, "From TUI")
}

func TestBoardResource(t *testing.T) {
	b, _ := newTestBackend(t)
	call(t, addHandler(b), map[string]any{"title": "Res"})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = BoardURI
	contents, err := boardHandler(b)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, tc.Text, `"post_its"`)
	assert.Contains(t, tc.Text, `"title": "Res"`)
}
