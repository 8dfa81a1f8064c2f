package cmd

import (
	"errors"
	"fmt"

	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/leveling"
	"github.com/keiaapp/keia/internal/llm"
	"github.com/keiaapp/keia/internal/profile"
	"github.com/keiaapp/keia/internal/vocab"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Generate a vocabulary study list",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		level, _ := cmd.Flags().GetString("level")

		category := vocab.Category(categoryFlag)
		if !category.Valid() {
			return fmt.Errorf("unknown category %q (irregular, regular, phrasal)", categoryFlag)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if level == "" {
			level = string(leveling.A1)
			p, err := st.ProfileRepo().Read(cmd.Context(), resolveUserID(cmd))
			switch {
			case err == nil && p.Level != "":
				level = p.Level
			case err != nil && !errors.Is(err, profile.ErrNotFound):
				return fmt.Errorf("read profile: %w", err)
			}
		} else if _, err := leveling.ParseLevel(level); err != nil {
			return err
		}

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}
		provider, err := llm.NewProviderFromEnv(cmd.Context(), events)
		if err != nil {
			return fmt.Errorf("configure provider: %w", err)
		}

		svc := vocab.NewService(content.NewClient(provider, content.DefaultConfig()))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generating %s verbs for level %s...\n\n", category, level)

		entries, err := svc.List(cmd.Context(), category, level)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-14s  %-14s  %-16s  %-14s  %s\n",
			"Infinitive", "Simple Past", "Past Participle", "Spanish", "Example")
		for _, e := range entries {
			fmt.Fprintf(out, "%-14s  %-14s  %-16s  %-14s  %s\n",
				e.Infinitive, e.SimplePast, e.PastParticiple, e.Spanish, e.Example)
		}
		return nil
	},
}

func init() {
	vocabCmd.Flags().String("category", "irregular", "Verb category: irregular, regular, phrasal")
	vocabCmd.Flags().String("level", "", "CEFR level (A1-C2); defaults to your profile level")
}
