package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"tuinotes/internal/adapters/filesystem"
	"tuinotes/internal/adapters/sqlite"
	"tuinotes/internal/application"
	"tuinotes/internal/config"
	"tuinotes/internal/logging"
)

var (
	dataDir string
	debug   bool

	cfg     *config.Config
	board   *application.Board
	journal *sqlite.Journal
)

var rootCmd = &cobra.Command{
	Use:   "tuinotes-cli",
	Short: "CLI for the tui-notes sticky notes board",
	Long: `tuinotes-cli works on the same notes file as the tuinotes board.

Slots are numbered 0-8, left to right and top to bottom:

  0 1 2
  3 4 5
  6 7 8`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd.Context(), cmd.ErrOrStderr())
	},
}

func setup(ctx context.Context, stderr io.Writer) error {
	var err error
	if cfg, err = config.Load(nil); err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = config.ExpandHome(dataDir)
	}

	logger := logging.New(stderr, debug || cfg.Debug)

	opts := []application.BoardOption{application.WithLogger(logger)}
	if cfg.Journal {
		if journal, err = sqlite.Open(cfg.JournalFile()); err != nil {
			logger.Warn("journal disabled", "err", err)
			journal = nil
		} else {
			opts = append(opts, application.WithJournal(journal))
		}
	}

	board = application.NewBoard(filesystem.NewStore(cfg.DataFile(), logger), opts...)
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = board.Load(ctx)
	return err
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "directory holding notes.json (default from config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")
}

func closeJournal() {
	if journal != nil {
		journal.Close()
		journal = nil
	}
}

// GetBoard returns the loaded board
func GetBoard() *application.Board {
	return board
}

// parseSlot reads a slot argument
func parseSlot(s string) (int, error) {
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q: expected a number from 0 to 8", s)
	}
	return n, nil
}

func printMessage(cmd *cobra.Command, message string) {
	fmt.Fprintln(cmd.OutOrStdout(), message)
}
