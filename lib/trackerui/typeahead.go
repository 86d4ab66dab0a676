// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// maxSuggestions caps the typeahead list so it never covers more
// than a few rows under the input.
const maxSuggestions = 5

// suggest returns catalog entries matching the typed text: prefix
// matches first, then substring matches, both case-insensitive,
// deduplicated, capped at maxSuggestions. Empty input returns
// nothing; an exact match suppresses the list.
func suggest(candidates []string, typed string) []string {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return nil
	}
	lowered := strings.ToLower(typed)

	seen := make(map[string]bool)
	var prefix, substring []string
	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if candidateLower == lowered {
			return nil
		}
		if seen[candidateLower] {
			continue
		}
		switch {
		case strings.HasPrefix(candidateLower, lowered):
			seen[candidateLower] = true
			prefix = append(prefix, candidate)
		case strings.Contains(candidateLower, lowered):
			seen[candidateLower] = true
			substring = append(substring, candidate)
		}
	}

	result := append(prefix, substring...)
	if len(result) > maxSuggestions {
		result = result[:maxSuggestions]
	}
	return result
}

// renderSuggestions renders the typeahead list for splicing under a
// focused input field. The highlighted row uses the selection
// background.
func renderSuggestions(theme tui.Theme, suggestions []string, cursor int) []string {
	if len(suggestions) == 0 {
		return nil
	}

	innerWidth := 0
	for _, suggestion := range suggestions {
		if suggestionWidth := ansi.StringWidth(suggestion); suggestionWidth > innerWidth {
			innerWidth = suggestionWidth
		}
	}
	innerWidth += 2

	normal := lipgloss.NewStyle().
		Background(theme.MenuBackground).
		Foreground(theme.NormalText)
	selected := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, suggestion := range suggestions {
		style := normal
		if index == cursor {
			style = selected
		}
		lines = append(lines, tui.PadOverlayLine(style.Render(suggestion), innerWidth, innerWidth+2, style))
	}
	return lines
}
