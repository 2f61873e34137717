package service

import "github.com/yourname/calorietracker/internal"

type MacroProgress struct {
	Consumed int     `json:"consumed"`
	Target   int     `json:"target"`
	Percent  float64 `json:"percent"`
	Bar      float64 `json:"bar"`
}

type DashboardView struct {
	Today             internal.DailyStats     `json:"today"`
	CaloriesRemaining int                     `json:"calories_remaining"`
	ProgressPercent   float64                 `json:"progress_percent"`
	ProgressBar       float64                 `json:"progress_bar"`
	Protein           MacroProgress           `json:"protein"`
	Carbs             MacroProgress           `json:"carbs"`
	Fats              MacroProgress           `json:"fats"`
	QuickActions      []internal.MealCategory `json:"quick_actions"`
}

func CaloriesRemaining(target, consumed, burned int) int {
	return target - consumed + burned
}

// ProgressPercent is consumed/target*100 with no upper bound.
// A zero target yields 0.
func ProgressPercent(consumed, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(consumed) / float64(target) * 100
}

// ProgressBarValue clamps a percentage into [0, 100] for bar rendering.
func ProgressBarValue(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func macroProgress(m internal.MacroAmount) MacroProgress {
	p := ProgressPercent(m.Consumed, m.Target)
	return MacroProgress{Consumed: m.Consumed, Target: m.Target, Percent: p, Bar: ProgressBarValue(p)}
}

func BuildDashboard(today internal.DailyStats) DashboardView {
	p := ProgressPercent(today.CaloriesConsumed, today.CaloriesTarget)
	return DashboardView{
		Today:             today,
		CaloriesRemaining: CaloriesRemaining(today.CaloriesTarget, today.CaloriesConsumed, today.CaloriesBurned),
		ProgressPercent:   p,
		ProgressBar:       ProgressBarValue(p),
		Protein:           macroProgress(today.Protein),
		Carbs:             macroProgress(today.Carbs),
		Fats:              macroProgress(today.Fats),
		QuickActions:      append([]internal.MealCategory(nil), internal.Meals...),
	}
}
