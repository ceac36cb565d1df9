package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tuinotes/internal/adapters/clipboard"
	"tuinotes/internal/adapters/editor"
	"tuinotes/internal/adapters/filesystem"
	"tuinotes/internal/adapters/sqlite"
	"tuinotes/internal/adapters/tui"
	"tuinotes/internal/application"
	"tuinotes/internal/config"
	"tuinotes/internal/logging"
)

func main() {
	debug := flag.Bool("debug", false, "write debug output to the log file")
	flag.Parse()

	if err := run(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(debug bool) error {
	cfg, err := config.Load(nil)
	if err != nil {
		return err
	}

	// The terminal belongs to bubbletea, so logs go to a file
	logger, closer := logging.OpenFile(cfg.LogFile(), debug || cfg.Debug)
	defer closer.Close()

	store := filesystem.NewStore(cfg.DataFile(), logger)
	opts := []application.BoardOption{application.WithLogger(logger)}

	if cfg.Journal {
		journal, err := sqlite.Open(cfg.JournalFile())
		if err != nil {
			logger.Warn("journal disabled", "path", cfg.JournalFile(), "err", err)
		} else {
			defer journal.Close()
			if n, err := journal.Prune(context.Background(), sqlite.DefaultKeep); err == nil && n > 0 {
				logger.Debug("journal pruned", "removed", n)
			}
			opts = append(opts, application.WithJournal(journal))
		}
	}

	board := application.NewBoard(store, opts...)
	if _, err := board.Load(context.Background()); err != nil {
		return err
	}

	appOpts := tui.Options{
		Exporter:  filesystem.NewMarkdownExporter(cfg.ExportPath),
		Clipboard: clipboard.System{},
		Editor:    editor.NewOpener(),
		Stale:     store.Stale,
	}
	changes, watcher, err := filesystem.Watch(store.Path())
	if err != nil {
		logger.Warn("not watching notes file", "path", store.Path(), "err", err)
	} else {
		defer watcher.Close()
		appOpts.Changes = changes
	}

	app := tui.NewApp(board, appOpts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return err
	}
	return app.Err()
}
