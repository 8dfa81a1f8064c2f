package cmd

import (
	"errors"
	"fmt"

	"github.com/keiaapp/keia/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := resolveUserID(cmd)
		p, err := st.ProfileRepo().Read(cmd.Context(), userID)
		if errors.Is(err, profile.ErrNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `keia placement` to get started.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User:   %s\n", p.UserID)
		if p.Username != "" {
			fmt.Fprintf(out, "Name:   %s\n", p.Username)
		}
		level := p.Level
		if level == "" {
			level = "(not placed)"
		}
		fmt.Fprintf(out, "Level:  %s\n", level)
		fmt.Fprintf(out, "XP:     %d\n", p.XP)
		fmt.Fprintf(out, "Streak: %d\n", p.Streak)
		if p.LastTestDate != nil {
			fmt.Fprintf(out, "Last test: %s\n", p.LastTestDate.Local().Format("2006-01-02 15:04"))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Skills")
		for _, key := range []string{
			profile.KeySpeaking, profile.KeyWriting, profile.KeyListening,
			profile.KeyVocabulary, profile.KeyGrammar, profile.KeyLevelTest,
		} {
			fmt.Fprintf(out, "  %-12s %3d\n", key, p.SkillScore(key))
		}
		return nil
	},
}
