package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tuinotes/internal/adapters/clipboard"
	"tuinotes/internal/adapters/filesystem"
	"tuinotes/internal/adapters/launcher"
	"tuinotes/internal/application/commands"
)

var (
	exportOut  string
	exportOpen bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes to markdown",
	Long: `Export all notes, in slot order, to a markdown file.

Examples:
  tuinotes-cli export
  tuinotes-cli export --out ./board.md
  tuinotes-cli export --open                # Open the file afterwards`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOut
		if out == "" {
			out = cfg.ExportPath
		}

		res, err := commands.NewExportNotesCommand(GetBoard(), filesystem.NewMarkdownExporter(out)).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)

		if exportOpen {
			return launcher.New().Open(res.Path)
		}
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <slot>",
	Short: "Copy a note to the clipboard as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		res, err := commands.NewCopyNoteCommand(GetBoard(), clipboard.System{}, slot).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the files tuinotes uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "notes    %s\n", cfg.DataFile())
		fmt.Fprintf(out, "export   %s\n", cfg.ExportPath)
		if journal != nil {
			fmt.Fprintf(out, "journal  %s\n", journal.Path())
		}
		if cfg.ConfigFile != "" {
			fmt.Fprintf(out, "config   %s\n", cfg.ConfigFile)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default from config)")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open the exported file with the default application")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(pathCmd)
}
