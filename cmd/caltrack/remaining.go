package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/calorietracker/internal/service"
)

func newRemainingCmd(root *rootOptions) *cobra.Command {
	var target, consumed, burned int
	cmd := &cobra.Command{
		Use:   "remaining",
		Short: "Show calories left for the day and progress toward the target",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target < 0 || consumed < 0 || burned < 0 {
				return fmt.Errorf("--target, --consumed and --burned must be >= 0")
			}
			left := service.CaloriesRemaining(target, consumed, burned)
			pct := service.ProgressPercent(consumed, target)
			if root.json {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"remaining":        left,
					"progress_percent": pct,
					"progress_bar":     service.ProgressBarValue(pct),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d kcal remaining (%.1f%% of %d)\n", left, pct, target)
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 2000, "Daily calorie target")
	cmd.Flags().IntVar(&consumed, "consumed", 0, "Calories consumed today")
	cmd.Flags().IntVar(&burned, "burned", 0, "Calories burned today")
	return cmd
}
