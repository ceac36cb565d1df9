package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tuinotes/internal/application/commands"
	"tuinotes/internal/domain"
)

var listWhere string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List the notes on the board in slot order.

The --where filter is an expression over slot, row, column, title,
content, color and color_index.

Examples:
  tuinotes-cli list
  tuinotes-cli list --where 'row == 0'
  tuinotes-cli list --where 'color == "Pink" && content != ""'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListNotesCommand(GetBoard(), listWhere)
		notes, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, n := range notes {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %-7s %s\n", n.Position, n.ColorName(), n.Title)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Print a note as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}

		note, err := commands.NewGetNoteCommand(GetBoard(), slot).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), domain.RenderNote(*note))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listWhere, "where", "w", "", "filter expression")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
