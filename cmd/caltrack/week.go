package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/service"
)

func newWeekCmd(root *rootOptions) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarize the weekly calorie and weight history",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load()
			if err != nil {
				return err
			}
			view, err := service.BuildHistory(period, data.Week)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if root.json {
				return printJSON(out, view)
			}

			s := view.Stats
			fmt.Fprintf(out, "%s: avg %d kcal, avg weight %.1f kg (%+.1f, %s), %d/%d days on target\n",
				view.PeriodLabel, s.AvgCalories, s.AvgWeight, s.WeightChange, s.Trend, s.DaysOnTarget, s.TotalDays)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tKCAL\tGOAL\tWEIGHT\tSTATUS")
			for _, d := range view.Days {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%s\n", d.Date, d.Calories, d.Goal, d.Weight, d.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&period, "period", "week", "History period: week, month, 3months, year")
	return cmd
}
