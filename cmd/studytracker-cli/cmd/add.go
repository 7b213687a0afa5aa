package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studytracker/internal/application/commands"
)

var addDate string

var addCmd = &cobra.Command{
	Use:   "add <topic> <minutes>",
	Short: "Record a study session",
	Long: `Record a study session for a topic.

Examples:
  studytracker-cli add Python 30
  studytracker-cli add "Linear Algebra" 45 --date 2025-01-02`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("minutes must be a positive integer, got: %s", args[1])
		}

		addCmd := commands.NewAddCommand(GetStore(), args[0], minutes, addDate)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "session date as YYYY-MM-DD (default: today)")
}
