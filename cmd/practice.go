package cmd

import (
	"fmt"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/leveling"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice a skill at your current level",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetString("level")
		phase, _ := cmd.Flags().GetInt("phase")

		typ := assessment.Type(skill)
		if !typ.Valid() || typ.Placement() {
			return fmt.Errorf("unknown skill %q (writing, speaking, listening, grammar, vocabulary)", skill)
		}
		if level != "" {
			if _, err := leveling.ParseLevel(level); err != nil {
				return err
			}
		}
		if phase < 1 || phase > 3 {
			return fmt.Errorf("phase must be 1, 2, or 3")
		}

		return runSession(cmd, typ, level, assessment.Phase(phase))
	},
}

func init() {
	practiceCmd.Flags().String("skill", "grammar", "Skill to practice: writing, speaking, listening, grammar, vocabulary")
	practiceCmd.Flags().String("level", "", "CEFR level override (A1-C2); defaults to your profile level")
	practiceCmd.Flags().Int("phase", 1, "Difficulty phase within the level (1-3)")
}
