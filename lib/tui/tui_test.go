// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

func keyMsg(t *testing.T, name string) tea.KeyMsg {
	t.Helper()
	switch name {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		t.Fatalf("unknown key %q", name)
		return tea.KeyMsg{}
	}
}

func TestDropdownNavigationWraps(t *testing.T) {
	dropdown := StatusDropdown(DefaultTheme, 7, schema.StatusOpen, 0, 0)

	if dropdown.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0 (preselected on open)", dropdown.Cursor)
	}
	dropdown.MoveUp()
	if dropdown.Cursor != len(schema.Statuses)-1 {
		t.Errorf("MoveUp from top: cursor = %d, want wrap to %d", dropdown.Cursor, len(schema.Statuses)-1)
	}
	dropdown.MoveDown()
	if dropdown.Cursor != 0 {
		t.Errorf("MoveDown from bottom: cursor = %d, want wrap to 0", dropdown.Cursor)
	}
}

func TestStatusDropdownPreselectsCurrent(t *testing.T) {
	dropdown := StatusDropdown(DefaultTheme, 7, schema.StatusHalfWin, 0, 0)
	if dropdown.Selected().Value != string(schema.StatusHalfWin) {
		t.Errorf("selected value = %q, want half_win", dropdown.Selected().Value)
	}
	if dropdown.TicketID != 7 || dropdown.Field != "status" {
		t.Errorf("dropdown target = %+v", dropdown)
	}
}

func TestDropdownRenderUniformWidth(t *testing.T) {
	dropdown := StatusDropdown(DefaultTheme, 1, schema.StatusOpen, 0, 0)
	lines := dropdown.Render(DefaultTheme)
	if len(lines) != len(schema.Statuses) {
		t.Fatalf("rendered %d lines, want %d", len(lines), len(schema.Statuses))
	}
	width := ansi.StringWidth(lines[0])
	for index, line := range lines {
		if ansi.StringWidth(line) != width {
			t.Errorf("line %d width = %d, want %d", index, ansi.StringWidth(line), width)
		}
	}
	if width != dropdown.Width() {
		t.Errorf("rendered width %d != Width() %d", width, dropdown.Width())
	}
}

func TestDropdownContains(t *testing.T) {
	dropdown := StatusDropdown(DefaultTheme, 1, schema.StatusOpen, 10, 5)
	if !dropdown.Contains(10, 5) {
		t.Error("top-left corner should be inside")
	}
	if dropdown.Contains(9, 5) {
		t.Error("left of anchor should be outside")
	}
	if dropdown.Contains(10, 5+len(schema.Statuses)) {
		t.Error("below last option should be outside")
	}
	if got := dropdown.OptionAtY(7); got != 2 {
		t.Errorf("OptionAtY(7) = %d, want 2", got)
	}
	if got := dropdown.OptionAtY(2); got != -1 {
		t.Errorf("OptionAtY above anchor = %d, want -1", got)
	}
}

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	result := SpliceOverlay(view, []string{"XXX"}, 3, 1)
	lines := strings.Split(result, "\n")

	if ansi.Strip(lines[0]) != "aaaaaaaaaa" {
		t.Errorf("line 0 changed: %q", lines[0])
	}
	if got := ansi.Strip(lines[1]); got != "bbbXXXbbbb" {
		t.Errorf("line 1 = %q, want bbbXXXbbbb", got)
	}
	if ansi.Strip(lines[2]) != "cccccccccc" {
		t.Errorf("line 2 changed: %q", lines[2])
	}
}

func TestSpliceOverlayOutOfBoundsIsNoop(t *testing.T) {
	view := "short"
	if got := SpliceOverlay(view, []string{"XX"}, 0, 5); ansi.Strip(strings.Split(got, "\n")[0]) != "short" {
		t.Errorf("out-of-bounds splice altered view: %q", got)
	}
	if got := SpliceOverlay(view, nil, 0, 0); got != view {
		t.Errorf("empty overlay altered view: %q", got)
	}
}

func TestConfettiLifecycle(t *testing.T) {
	var confetti Confetti
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	confetti.Burst(80, 24, start)
	if !confetti.Active() {
		t.Fatal("burst should activate the effect")
	}
	if len(confetti.particles) != confettiCount {
		t.Fatalf("particle count = %d, want %d", len(confetti.particles), confettiCount)
	}

	confetti.Advance(start.Add(ConfettiTickInterval), ConfettiTickInterval)
	if !confetti.Active() {
		t.Error("effect ended too early")
	}

	confetti.Advance(start.Add(ConfettiDuration), ConfettiTickInterval)
	if confetti.Active() {
		t.Error("effect should end after ConfettiDuration")
	}
	if view := confetti.Overlay("plain"); view != "plain" {
		t.Errorf("inactive overlay altered view: %q", view)
	}
}

func TestConfettiParticlesFall(t *testing.T) {
	var confetti Confetti
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	confetti.Burst(80, 24, start)

	before := make([]float64, len(confetti.particles))
	for index, particle := range confetti.particles {
		before[index] = particle.y
	}

	confetti.Advance(start.Add(time.Second), time.Second)
	for index, particle := range confetti.particles {
		if particle.y <= before[index] {
			t.Fatalf("particle %d did not fall: %v -> %v", index, before[index], particle.y)
		}
	}
}

func TestRenderScrollbarFullThumbWhenContentFits(t *testing.T) {
	result := RenderScrollbar(DefaultTheme, 4, 3, 10, 0, true)
	lines := strings.Split(result, "\n")
	if len(lines) != 4 {
		t.Fatalf("scrollbar height = %d, want 4", len(lines))
	}
	for _, line := range lines {
		if ansi.Strip(line) != "┃" {
			t.Errorf("expected full thumb, got %q", ansi.Strip(line))
		}
	}
}

func TestRenderScrollbarThumbTracksOffset(t *testing.T) {
	top := RenderScrollbar(DefaultTheme, 10, 100, 10, 0, false)
	if !strings.HasPrefix(ansi.Strip(strings.Split(top, "\n")[0]), "┃") {
		t.Error("thumb should start at the top for offset 0")
	}
	bottom := RenderScrollbar(DefaultTheme, 10, 100, 10, 90, false)
	lines := strings.Split(bottom, "\n")
	if ansi.Strip(lines[len(lines)-1]) != "┃" {
		t.Error("thumb should reach the bottom at max offset")
	}
}

func TestFormModalFocusCycling(t *testing.T) {
	modal := NewFormModal("Upravit tiket", DefaultTheme, []FormField{
		NewTextField("Domácí", "Sparta", ""),
		NewTextField("Hosté", "Slavia", ""),
		NewSelectField("Status", []string{"open", "won", "lost"}, "won"),
	})

	if modal.FocusedField() != 0 {
		t.Fatalf("initial focus = %d, want 0", modal.FocusedField())
	}
	if modal.Value(2) != "won" {
		t.Errorf("select preset = %q, want won", modal.Value(2))
	}

	modal.Update(keyMsg(t, "tab"))
	modal.Update(keyMsg(t, "tab"))
	if modal.FocusedField() != 2 {
		t.Errorf("focus after two tabs = %d, want 2", modal.FocusedField())
	}
	modal.Update(keyMsg(t, "right"))
	if modal.Value(2) != "lost" {
		t.Errorf("select after right = %q, want lost", modal.Value(2))
	}
	modal.Update(keyMsg(t, "tab"))
	if modal.FocusedField() != 0 {
		t.Errorf("focus should wrap to 0, got %d", modal.FocusedField())
	}
}
