// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a destructive-action prompt rendered as a centered
// overlay. The owning page interprets y/enter as confirm and
// n/escape as cancel; the modal itself only renders.
type ConfirmModal struct {
	Title   string
	Message string
	theme   Theme
}

// NewConfirmModal creates a confirmation prompt.
func NewConfirmModal(title, message string, theme Theme) ConfirmModal {
	return ConfirmModal{Title: title, Message: message, theme: theme}
}

// Render produces the modal overlay lines and the centered anchor
// position.
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := ansi.StringWidth(modal.Message)
	if titleWidth := ansi.StringWidth(modal.Title); titleWidth > innerWidth {
		innerWidth = titleWidth
	}
	const footer = "y potvrdit  n zrušit"
	if footerWidth := ansi.StringWidth(footer); footerWidth > innerWidth {
		innerWidth = footerWidth
	}
	if innerWidth > screenWidth-6 {
		innerWidth = screenWidth - 6
	}

	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.ToastError).
		Background(modal.theme.ModalBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	padLine := func(line string) string {
		lineWidth := ansi.StringWidth(line)
		if lineWidth < innerWidth {
			line += bgStyle.Render(strings.Repeat(" ", innerWidth-lineWidth))
		}
		return line
	}

	message := modal.Message
	if ansi.StringWidth(message) > innerWidth {
		message = ansi.Truncate(message, innerWidth-1, "…")
	}

	lines := []string{
		padLine(titleStyle.Render(modal.Title)),
		padLine(""),
		padLine(textStyle.Render(message)),
		padLine(""),
		padLine(footerStyle.Render(footer)),
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}
