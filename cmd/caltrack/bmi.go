package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/calorietracker/internal/service"
)

func newBMICmd(root *rootOptions) *cobra.Command {
	var weight, height string
	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Compute BMI and its category",
		RunE: func(cmd *cobra.Command, args []string) error {
			bmi, err := service.ParseBMI(weight, height)
			if err != nil {
				return err
			}
			cat := service.BMICategoryFor(bmi)
			if root.json {
				return printJSON(cmd.OutOrStdout(), map[string]any{"bmi": bmi, "category": cat.Category, "color": cat.Color})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMI %.1f (%s)\n", bmi, cat.Category)
			return nil
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "70", "Weight in kg")
	cmd.Flags().StringVar(&height, "height", "175", "Height in cm")
	return cmd
}
