package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
	"tuinotes/internal/domain"
)

var (
	addSlot    int
	addTitle   string
	addContent string
	addColor   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long: `Add a note to the board. The note goes to --slot when that slot is
empty, otherwise to the first empty slot.

Examples:
  tuinotes-cli add
  tuinotes-cli add --title "Groceries" --content "milk, eggs"
  tuinotes-cli add --slot 4 --color Pink`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addCmd := commands.NewAddNoteCommand(GetBoard(), addSlot)
		addCmd.Title = addTitle
		addCmd.Content = addContent
		if addColor != "" {
			idx, err := application.ParseColor(addColor)
			if err != nil {
				return err
			}
			addCmd.Color, addCmd.HasColor = idx, true
		}

		res, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit <slot>",
	Short: "Change a note's title or content",
	Long: `Change a note's title and/or content. Fields without a flag keep
their current value.

Examples:
  tuinotes-cli edit 0 --title "Groceries"
  tuinotes-cli edit 0 --content ""          # Clear the content`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		note, err := commands.NewGetNoteCommand(GetBoard(), slot).Execute(ctx)
		if err != nil {
			return err
		}
		title, content := note.Title, note.Content
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("content") {
			content = editContent
		}

		res, err := commands.NewEditNoteCommand(GetBoard(), slot, title, content).Execute(ctx)
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&addSlot, "slot", "s", domain.AnySlot, "preferred slot (0-8)")
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "note content")
	addCmd.Flags().StringVar(&addColor, "color", "", "palette color name or index")
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "new content")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
}
