package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytracker/internal/adapters/jsonfile"
	"studytracker/internal/adapters/sqlite"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Per-topic and per-day totals via the SQLite index",
	Long: `Rebuild the derived SQLite index from the session store and print
aggregated statistics. The index lives under <store>/index/stats.db and can
be deleted at any time; the JSON file stays the source of truth.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()
		sessions, err := store.Load()
		if err != nil {
			return err
		}

		idx := sqlite.NewStatsIndex()
		if err := idx.Open(storeBaseDir(store)); err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.Rebuild(sessions); err != nil {
			return err
		}

		topics, err := idx.TopicTotals()
		if err != nil {
			return err
		}
		days, err := idx.DailyTotals()
		if err != nil {
			return err
		}

		if len(topics) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Println("By topic:")
		for _, t := range topics {
			fmt.Printf("  %s: %d min over %d sessions\n", t.Topic, t.Minutes, t.Sessions)
		}
		fmt.Println("\nBy day:")
		for _, d := range days {
			fmt.Printf("  %s: %d min over %d sessions\n", d.Date, d.Minutes, d.Sessions)
		}
		return nil
	},
}

// storeBaseDir recovers the resolved data directory from the repository
func storeBaseDir(store interface{ Path() string }) string {
	if s, ok := store.(*jsonfile.Store); ok {
		return s.BaseDir()
	}
	return baseDir
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
