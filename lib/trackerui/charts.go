// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

const chartHeight = 8

// renderProfitChart plots the cumulative curve over the per-day
// profit series. Returns "" when there are not enough points to draw
// anything useful.
func renderProfitChart(theme tui.Theme, points []schema.TimeseriesPoint, width int) string {
	if len(points) < 2 {
		return ""
	}

	cumulative := make([]float64, len(points))
	daily := make([]float64, len(points))
	for index, point := range points {
		cumulative[index] = point.CumulativeProfit
		daily[index] = point.Profit
	}

	chartWidth := width - 12
	if chartWidth < 20 {
		chartWidth = 20
	}

	graph := asciigraph.PlotMany([][]float64{cumulative, daily},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.SteelBlue),
		asciigraph.SeriesLegends("Kumulativní zisk", "Denní zisk"),
	)

	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Vývoj zisku"))
	builder.WriteString("\n")
	builder.WriteString(graph)
	builder.WriteString("\n")

	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	builder.WriteString(faint.Render(points[0].Date + " – " + points[len(points)-1].Date))
	return builder.String()
}

// renderROIBars renders a horizontal bar per group, scaled to the
// largest absolute ROI. Returns "" for an empty breakdown.
func renderROIBars(theme tui.Theme, title string, groups []schema.GroupedStat, width int) string {
	if len(groups) == 0 {
		return ""
	}

	labelWidth := 0
	maxAbs := 0.0
	for _, group := range groups {
		if groupWidth := ansi.StringWidth(group.Label); groupWidth > labelWidth {
			labelWidth = groupWidth
		}
		if abs := group.ROIPercent; abs < 0 {
			if -abs > maxAbs {
				maxAbs = -abs
			}
		} else if abs > maxAbs {
			maxAbs = abs
		}
	}
	if labelWidth > 16 {
		labelWidth = 16
	}

	barBudget := width - labelWidth - 14
	if barBudget < 10 {
		barBudget = 10
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render(title))
	builder.WriteString("\n")
	for _, group := range groups {
		label := ansi.Truncate(group.Label, labelWidth, "…")
		padding := labelWidth - ansi.StringWidth(label)

		barLength := 0
		if maxAbs > 0 {
			roi := group.ROIPercent
			if roi < 0 {
				roi = -roi
			}
			barLength = int(roi / maxAbs * float64(barBudget))
		}
		if barLength < 1 && group.ROIPercent != 0 {
			barLength = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(theme.ProfitColor(group.ROIPercent))
		builder.WriteString(faint.Render(label))
		builder.WriteString(strings.Repeat(" ", padding+1))
		builder.WriteString(barStyle.Render(strings.Repeat("█", barLength)))
		builder.WriteString(" ")
		builder.WriteString(barStyle.Render(schema.FormatSignedPercent(group.ROIPercent)))
		builder.WriteString(faint.Render(" (" + strconv.Itoa(group.BetsCount) + ")"))
		builder.WriteString("\n")
	}
	return strings.TrimRight(builder.String(), "\n")
}

// renderMonthlyTable renders the per-month breakdown.
func renderMonthlyTable(theme tui.Theme, months []schema.GroupedStat, width int) string {
	if len(months) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Po měsících"))
	builder.WriteString("\n")
	builder.WriteString(headerStyle.Render(
		padTo("Měsíc", 10) + padTo("Sázek", 7) + padTo("Zisk", 13) + padTo("ROI", 9)))
	builder.WriteString("\n")

	for _, month := range months {
		profitStyle := lipgloss.NewStyle().Foreground(theme.ProfitColor(month.ProfitTotal))
		row := padTo(month.Label, 10) +
			padTo(strconv.Itoa(month.BetsCount), 7) +
			profitStyle.Render(padTo(schema.FormatProfitCZK(month.ProfitTotal), 13)) +
			profitStyle.Render(padTo(schema.FormatSignedPercent(month.ROIPercent), 9))
		builder.WriteString(ansi.Truncate(row, width, "…"))
		builder.WriteString("\n")
	}
	return strings.TrimRight(builder.String(), "\n")
}
