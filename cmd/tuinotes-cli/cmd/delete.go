package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a note",
	Long: `Delete the note in a slot. The slot is left empty and the other
notes keep their places.

Warning: This operation cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		res, err := commands.NewDeleteNoteCommand(GetBoard(), slot).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <slot> <color>",
	Short: "Change a note's color",
	Long: `Change a note's color. The color is a palette name or index:

  0 Yellow  1 Green  2 Blue  3 Pink  4 Orange  5 Purple`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		idx, err := application.ParseColor(args[1])
		if err != nil {
			return err
		}

		res, err := commands.NewRecolorNoteCommand(GetBoard(), slot, idx).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(colorCmd)
}
