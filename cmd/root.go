package cmd

import (
	"github.com/Kairavparikh/quizwhiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizwhiz",
	Short: "Quiz learning engine",
	Long: "QuizWhiz — learning engine that classifies quiz answers by confidence,\n" +
		"tracks misconceptions and schedules spaced repetition reviews.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZWHIZ_DB env var)")
	rootCmd.PersistentFlags().String("owner", "default", "Learner ID the command operates on")

	rootCmd.AddCommand(observeCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(misconceptionsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZWHIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

func ownerFlag(cmd *cobra.Command) string {
	owner, _ := cmd.Flags().GetString("owner")
	return owner
}
