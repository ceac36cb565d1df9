package mcp

import (
	"context"
	"sync"

	"tuinotes/internal/application"
	"tuinotes/internal/ports"
)

// Backend serializes tool calls against one board. The TUI may be editing
// the same file, so every call starts from what is on disk.
type Backend struct {
	mu       sync.Mutex
	board    *application.Board
	exporter ports.Exporter
}

// NewBackend creates a backend for board. exporter may be nil, in which
// case export_markdown is not registered.
func NewBackend(board *application.Board, exporter ports.Exporter) *Backend {
	return &Backend{board: board, exporter: exporter}
}

// with reloads the board and runs fn while holding the lock
func (b *Backend) with(ctx context.Context, fn func(board *application.Board) (string, error)) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.board.Load(ctx); err != nil {
		return "", err
	}
	return fn(b.board)
}
