package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytracker/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := commands.NewListCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		for i, s := range sessions {
			fmt.Printf("%d. %s — %s: %d min\n", i+1, s.Date, s.Topic, s.Minutes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
