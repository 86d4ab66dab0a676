// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SkeletonTickInterval drives the shimmer animation while a page is
// waiting on the backend.
const SkeletonTickInterval = 150 * time.Millisecond

// RenderSkeleton draws placeholder rows while page data is loading.
// Each row is a dim bar with a brighter band that sweeps across on
// successive phases, the terminal equivalent of a shimmer.
func RenderSkeleton(theme Theme, width, rows, phase int) string {
	if width <= 0 || rows <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(theme.BorderColor)
	bright := lipgloss.NewStyle().Foreground(theme.FaintText)

	const bandWidth = 8
	bandStart := (phase * 3) % (width + bandWidth)

	var lines []string
	for row := 0; row < rows; row++ {
		// Offset alternate rows so the sweep reads as diagonal.
		start := bandStart - (row%3)*2

		var line strings.Builder
		for column := 0; column < width; column++ {
			if column >= start && column < start+bandWidth {
				line.WriteString(bright.Render("▓"))
			} else {
				line.WriteString(dim.Render("░"))
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderSkeletonCard draws a fixed-size loading placeholder for a
// dashboard KPI card.
func RenderSkeletonCard(theme Theme, width, height, phase int) string {
	inner := RenderSkeleton(theme, width-2, height-2, phase)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Render(inner)
}
