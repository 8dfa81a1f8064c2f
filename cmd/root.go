// Package cmd wires the keia CLI.
package cmd

import (
	"os"

	"github.com/keiaapp/keia/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keia",
	Short: "English practice for Spanish speakers",
	Long:  "KeIA — AI-powered terminal app for Spanish speakers learning English: placement tests, skill practice, and vocabulary study.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KEIA_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner identifier (overrides KEIA_USER env var)")

	rootCmd.AddCommand(placementCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KEIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the learner id from --user, KEIA_USER, or the
// single-user default.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("KEIA_USER"); u != "" {
		return u
	}
	return "local"
}

// openStore opens the SQLite store for a command run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
