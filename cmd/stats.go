package cmd

import (
	"fmt"
	"strings"

	"github.com/keiaapp/keia/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		records, err := events.QueryAssessments(cmd.Context(), resolveUserID(cmd), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No assessments recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-12s  %-5s  %-6s  %-9s  %-6s  %s\n",
			"Timestamp", "Assessment", "Level", "Score", "New Level", "Streak", "Correct")
		fmt.Fprintln(out, strings.Repeat("─", 78))
		for _, r := range records {
			fmt.Fprintf(out, "%-19s  %-12s  %-5s  %5d%%  %-9s  %6d  %d/%d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Assessment,
				r.Level,
				r.Score,
				r.NewLevel,
				r.NewStreak,
				r.CorrectAnswers,
				r.TotalQuestions,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of results to show")
}
