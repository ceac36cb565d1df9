package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tuinotes/internal/application"
	"tuinotes/internal/application/commands"
)

var swapCmd = &cobra.Command{
	Use:   "swap <slot-a> <slot-b>",
	Short: "Exchange the contents of two slots",
	Long: `Exchange the contents of two slots. Either slot may be empty, which
moves a note to a free slot.

Examples:
  tuinotes-cli swap 0 8      # Move the top-left note to the bottom-right`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		b, err := parseSlot(args[1])
		if err != nil {
			return err
		}

		res, err := commands.NewSwapNotesCommand(GetBoard(), a, b).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <slot> <up|down|left|right>",
	Short: "Move a note one slot",
	Long: `Move a note one slot in a direction, swapping with its neighbour.

Rules:
- Moves that would leave the grid are rejected
- Moves do not wrap between rows

Examples:
  tuinotes-cli move 4 up`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		dir, err := application.ParseDirection(args[1])
		if err != nil {
			return err
		}

		res, err := commands.NewMoveNoteCommand(GetBoard(), slot, dir).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(moveCmd)
}
