package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytracker/internal/application/commands"
)

var (
	reportTopic   string
	reportByTopic bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Total minutes studied, optionally per topic",
	Long: `Report total minutes over all sessions.

Examples:
  studytracker-cli report
  studytracker-cli report --topic python
  studytracker-cli report --by-topic`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if reportByTopic {
			summaries, err := commands.NewSummaryCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No sessions yet.")
				return nil
			}
			for _, s := range summaries {
				fmt.Printf("%s: %d min over %d sessions\n", s.Topic, s.Minutes, s.Sessions)
			}
			return nil
		}

		result, err := commands.NewReportCommand(GetStore(), reportTopic).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportTopic, "topic", "", "filter by topic (case-insensitive)")
	reportCmd.Flags().BoolVar(&reportByTopic, "by-topic", false, "print a per-topic breakdown")
}
