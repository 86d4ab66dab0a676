// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string         // Display text shown in the dropdown.
	Value string         // Wire value applied on selection.
	Color lipgloss.Color // Optional label color; zero value inherits NormalText.
}

// DropdownOverlay renders a floating menu anchored at a screen
// position. It captures all keyboard input when active (up/down to
// navigate, enter to select, escape to dismiss). The page model owns
// the dropdown instance and routes input to it while it is open.
//
// The tickets page uses it for inline status changes: Field is
// "status" and TicketID names the row being settled.
type DropdownOverlay struct {
	Options  []DropdownOption
	Cursor   int
	AnchorX  int    // Screen X coordinate of the dropdown's top-left corner.
	AnchorY  int    // Screen Y coordinate of the dropdown's top-left corner.
	Field    string // Which field this dropdown mutates.
	TicketID int    // The ticket being mutated, when Field targets a ticket.
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width returns the total visible width of the rendered dropdown in
// columns. Matches the width used by Render; needed for mouse
// hit-testing.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := 0
	for _, option := range dropdown.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL " plus one padding column each side.
	return 3 + maxLabelWidth + 2
}

// Contains returns true if the screen coordinate (x, y) falls within
// the dropdown's bounding rectangle.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+len(dropdown.Options) {
		return false
	}
	width := dropdown.Width()
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+width
}

// OptionAtY returns the option index corresponding to the given
// screen Y coordinate, or -1 when outside the dropdown's vertical
// range.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces the dropdown lines for overlay splicing. Each line
// has the same visible width and a solid background so the menu reads
// as a floating panel over the table. The highlighted option uses the
// selection background; other options keep their per-option label
// color (status dropdowns color each settlement outcome).
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.MenuBackground)
	selectedBackground := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range dropdown.Options {
		marker := " "
		if index == dropdown.Cursor {
			marker = ">"
		}

		content := marker + " " + option.Label
		contentWidth := ansi.StringWidth(content)
		rightPad := innerWidth - contentWidth
		if rightPad < 0 {
			rightPad = 0
		}
		paddedContent := content + strings.Repeat(" ", rightPad)

		var styledLine string
		if index == dropdown.Cursor {
			styledLine = selectedBackground.Render(" " + paddedContent + " ")
		} else {
			lineStyle := backgroundStyle
			if option.Color != "" {
				lineStyle = lineStyle.Foreground(option.Color)
			} else {
				lineStyle = lineStyle.Foreground(theme.NormalText)
			}
			styledLine = lineStyle.Render(" " + paddedContent + " ")
		}

		// Keep every line at the same visible width.
		lineWidth := ansi.StringWidth(styledLine)
		if lineWidth < totalWidth {
			if index == dropdown.Cursor {
				styledLine += selectedBackground.Render(strings.Repeat(" ", totalWidth-lineWidth))
			} else {
				styledLine += backgroundStyle.Render(strings.Repeat(" ", totalWidth-lineWidth))
			}
		}

		lines = append(lines, styledLine)
	}

	return lines
}

// StatusDropdown builds the settlement menu for a ticket: one option
// per status in presentation order, colored with the theme's status
// palette, with the cursor preselected on the ticket's current
// status.
func StatusDropdown(theme Theme, ticketID int, current schema.Status, anchorX, anchorY int) *DropdownOverlay {
	dropdown := &DropdownOverlay{
		AnchorX:  anchorX,
		AnchorY:  anchorY,
		Field:    "status",
		TicketID: ticketID,
	}
	for index, status := range schema.Statuses {
		dropdown.Options = append(dropdown.Options, DropdownOption{
			Label: status.Label(),
			Value: string(status),
			Color: theme.StatusColor(status),
		})
		if status == current {
			dropdown.Cursor = index
		}
	}
	return dropdown
}
