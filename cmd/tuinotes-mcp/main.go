package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tuinotes/internal/adapters/filesystem"
	mcpadapter "tuinotes/internal/adapters/mcp"
	"tuinotes/internal/adapters/sqlite"
	"tuinotes/internal/application"
	"tuinotes/internal/config"
	"tuinotes/internal/logging"
)

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("tuinotes-mcp: %v", err)
	}

	dataDir := flag.String("data-dir", cfg.DataDir, "directory holding notes.json")
	debug := flag.Bool("debug", cfg.Debug, "log debug output to stderr")
	flag.Parse()
	cfg.DataDir = config.ExpandHome(*dataDir)

	// stdout carries the protocol
	logger := logging.New(os.Stderr, *debug)

	store := filesystem.NewStore(cfg.DataFile(), logger)
	opts := []application.BoardOption{application.WithLogger(logger)}
	if cfg.Journal {
		journal, err := sqlite.Open(cfg.JournalFile())
		if err != nil {
			logger.Warn("journal disabled", "err", err)
		} else {
			defer journal.Close()
			opts = append(opts, application.WithJournal(journal))
		}
	}

	board := application.NewBoard(store, opts...)
	if _, err := board.Load(context.Background()); err != nil {
		log.Fatalf("tuinotes-mcp: %v", err)
	}
	backend := mcpadapter.NewBackend(board, filesystem.NewMarkdownExporter(cfg.ExportPath))

	mcpServer := server.NewMCPServer(
		"tuinotes-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, backend)
	mcpadapter.RegisterWriteTools(mcpServer, backend)
	mcpadapter.RegisterResources(mcpServer, backend)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
