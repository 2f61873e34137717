package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/service"
)

func newFoodsCmd(root *rootOptions) *cobra.Command {
	var search, meal string
	var remove []string
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List the sample food log with search, meal filter and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load()
			if err != nil {
				return err
			}
			entries := data.FoodEntries
			for _, id := range remove {
				entries = service.RemoveFoodEntry(entries, id)
			}
			view, err := service.BuildFoodLog(entries, search, meal, data.QuickAdd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if root.json {
				return printJSON(out, view)
			}
			if view.Count == 0 {
				fmt.Fprintln(out, view.EmptyMessage)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tMEAL\tNAME\tKCAL\tP\tC\tF")
			for _, e := range view.Entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n", e.ID, e.Time, e.MealLabel, e.Name, e.Calories, e.Protein, e.Carbs, e.Fats)
			}
			t := view.Totals
			fmt.Fprintf(tw, "\t\t\tTotal\t%d\t%d\t%d\t%d\n", t.Calories, t.Protein, t.Carbs, t.Fats)
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")
	cmd.Flags().StringVar(&meal, "meal", service.MealFilterAll, "Meal filter: all, breakfast, lunch, dinner, snack")
	cmd.Flags().StringSliceVar(&remove, "delete", nil, "Entry IDs to drop before listing")
	return cmd
}
