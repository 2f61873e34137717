package service

import (
	"math"

	"github.com/yourname/calorietracker/internal"
)

// OnTargetTolerance is the calorie distance from goal still counted as on target.
const OnTargetTolerance = 100

var periods = map[string]string{
	"week":    "This Week",
	"month":   "This Month",
	"3months": "Last 3 Months",
	"year":    "This Year",
}

type WeeklyStats struct {
	AvgCalories  int     `json:"avg_calories"`
	AvgWeight    float64 `json:"avg_weight"`
	WeightChange float64 `json:"weight_change"`
	DaysOnTarget int     `json:"days_on_target"`
	TotalDays    int     `json:"total_days"`
	Trend        string  `json:"trend"`
}

type HistoryDay struct {
	internal.WeeklyDayRecord
	Status string `json:"status"`
}

type HistoryView struct {
	Period      string       `json:"period"`
	PeriodLabel string       `json:"period_label"`
	Stats       WeeklyStats  `json:"stats"`
	Days        []HistoryDay `json:"days"`
}

func ComputeWeeklyStats(days []internal.WeeklyDayRecord) WeeklyStats {
	stats := WeeklyStats{TotalDays: len(days), Trend: "down"}
	if len(days) == 0 {
		return stats
	}

	totalCalories := 0
	totalWeight := 0.0
	for _, d := range days {
		totalCalories += d.Calories
		totalWeight += d.Weight
		if isOnTarget(d) {
			stats.DaysOnTarget++
		}
	}
	n := float64(len(days))
	stats.AvgCalories = int(math.Round(float64(totalCalories) / n))
	stats.AvgWeight = round1(totalWeight / n)
	stats.WeightChange = round1(days[len(days)-1].Weight - days[0].Weight)
	if stats.WeightChange > 0 {
		stats.Trend = "up"
	}
	return stats
}

func DayStatusFor(d internal.WeeklyDayRecord) string {
	switch {
	case isOnTarget(d):
		return "on-target"
	case d.Calories > d.Goal:
		return "over"
	default:
		return "under"
	}
}

func isOnTarget(d internal.WeeklyDayRecord) bool {
	diff := d.Calories - d.Goal
	if diff < 0 {
		diff = -diff
	}
	return diff <= OnTargetTolerance
}

// BuildHistory serves every period from the same weekly records.
func BuildHistory(period string, week []internal.WeeklyDayRecord) (*HistoryView, error) {
	if period == "" {
		period = "week"
	}
	label, ok := periods[period]
	if !ok {
		return nil, ErrUnknownPeriod
	}
	days := make([]HistoryDay, len(week))
	for i, d := range week {
		days[i] = HistoryDay{WeeklyDayRecord: d, Status: DayStatusFor(d)}
	}
	return &HistoryView{
		Period:      period,
		PeriodLabel: label,
		Stats:       ComputeWeeklyStats(week),
		Days:        days,
	}, nil
}
