package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent changes to the board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if journal == nil {
			return errors.New("journal is disabled")
		}

		entries, err := journal.Recent(context.Background(), logLimit)
		if err != nil {
			return err
		}

		for _, e := range entries {
			slots := make([]string, len(e.Slots))
			for i, s := range e.Slots {
				slots[i] = cast.ToString(s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %-5s %s\n",
				e.At.Local().Format(time.DateTime), e.Action, strings.Join(slots, ","), e.Title)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of entries")
	rootCmd.AddCommand(logCmd)
}
