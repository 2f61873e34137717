// Package chart renders the History view's charts as standalone HTML.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yourname/calorietracker/internal"
)

// CaloriesChart plots daily calories against the daily goal.
func CaloriesChart(days []internal.WeeklyDayRecord) *charts.Line {
	line := newLine("Daily Calories", "consumed vs goal (kcal)")
	line.SetXAxis(labels(days))

	consumed := make([]opts.LineData, 0, len(days))
	goal := make([]opts.LineData, 0, len(days))
	for _, d := range days {
		consumed = append(consumed, opts.LineData{Value: d.Calories})
		goal = append(goal, opts.LineData{Value: d.Goal})
	}
	line.AddSeries("Calories", consumed).
		AddSeries("Goal", goal, charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// WeightChart plots the body weight trend.
func WeightChart(days []internal.WeeklyDayRecord) *charts.Line {
	line := newLine("Weight Progress", "kg")
	line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "kg", Min: "dataMin", Max: "dataMax"}))
	line.SetXAxis(labels(days))

	weight := make([]opts.LineData, 0, len(days))
	for _, d := range days {
		weight = append(weight, opts.LineData{Value: d.Weight})
	}
	line.AddSeries("Weight", weight)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// RenderHistory writes both charts as one HTML page.
func RenderHistory(w io.Writer, days []internal.WeeklyDayRecord) error {
	page := components.NewPage()
	page.PageTitle = "History"
	page.AddCharts(CaloriesChart(days), WeightChart(days))
	return page.Render(w)
}

func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Bottom: "bottom"}),
	)
	return line
}

func labels(days []internal.WeeklyDayRecord) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Date
	}
	return out
}
