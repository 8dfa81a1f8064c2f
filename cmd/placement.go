package cmd

import (
	"github.com/keiaapp/keia/internal/assessment"
	"github.com/spf13/cobra"
)

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Take the placement test to determine your level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, assessment.TypePlacement, "", 0)
	},
}
