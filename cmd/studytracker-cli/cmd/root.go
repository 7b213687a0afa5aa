package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studytracker/internal/adapters/jsonfile"
	"studytracker/internal/config"
	"studytracker/internal/ports"
)

var (
	baseDir string
	store   ports.SessionRepository
)

var rootCmd = &cobra.Command{
	Use:   "studytracker-cli",
	Short: "CLI for tracking study sessions",
	Long: `studytracker-cli records study sessions (topic, minutes, date) in a
local JSON file and reports total time spent, optionally per topic.

The data directory defaults to ~/.studytracker and can be overridden
with the STUDYTRACKER_HOME environment variable or the --store flag.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = jsonfile.NewStore(baseDir)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseDir, "store", "s", config.BaseDir(), "data directory holding sessions.json")
}

// GetStore returns the initialized session repository
func GetStore() ports.SessionRepository {
	return store
}
