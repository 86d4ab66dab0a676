// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package toast

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

func TestToastIDsAreMonotonic(t *testing.T) {
	var stack Stack
	stack.Success("první")
	stack.Error("druhá")
	stack.Info("třetí")

	toasts := stack.Toasts()
	if len(toasts) != 3 {
		t.Fatalf("toast count = %d, want 3", len(toasts))
	}
	for index := 1; index < len(toasts); index++ {
		if toasts[index].ID <= toasts[index-1].ID {
			t.Errorf("IDs not increasing: %d after %d", toasts[index].ID, toasts[index-1].ID)
		}
	}
}

func TestToastLifecycle(t *testing.T) {
	var stack Stack
	stack.Success("uloženo")
	id := stack.Toasts()[0].ID

	followUp := stack.Update(LeaveMsg{ID: id})
	if followUp == nil {
		t.Fatal("LeaveMsg should schedule the dismissal")
	}
	if !stack.Toasts()[0].Leaving {
		t.Error("toast should be marked leaving")
	}

	if cmd := stack.Update(DismissMsg{ID: id}); cmd != nil {
		t.Error("DismissMsg should not schedule anything")
	}
	if stack.Active() {
		t.Error("stack should be empty after dismissal")
	}
}

func TestStaleMessagesAreIgnored(t *testing.T) {
	var stack Stack
	stack.Success("a")
	id := stack.Toasts()[0].ID
	stack.Update(LeaveMsg{ID: id})
	stack.Update(DismissMsg{ID: id})

	// Late-arriving messages for the dismissed toast must not panic
	// or schedule anything.
	if cmd := stack.Update(LeaveMsg{ID: id}); cmd != nil {
		t.Error("stale LeaveMsg scheduled a command")
	}
	if cmd := stack.Update(DismissMsg{ID: id}); cmd != nil {
		t.Error("stale DismissMsg scheduled a command")
	}
}

func TestDismissRemovesOnlyTarget(t *testing.T) {
	var stack Stack
	stack.Success("a")
	stack.Error("b")
	first := stack.Toasts()[0].ID

	stack.Update(DismissMsg{ID: first})
	toasts := stack.Toasts()
	if len(toasts) != 1 || toasts[0].Message != "b" {
		t.Errorf("remaining toasts = %+v, want only b", toasts)
	}
}

func TestViewRendersMessages(t *testing.T) {
	var stack Stack
	stack.Success("Tiket uložen")
	stack.Error("Nepodařilo se smazat tiket")

	lines := stack.View(tui.DefaultTheme, 60)
	joined := ansi.Strip(strings.Join(lines, "\n"))
	if !strings.Contains(joined, "Tiket uložen") {
		t.Errorf("missing success message:\n%s", joined)
	}
	if !strings.Contains(joined, "Nepodařilo se smazat tiket") {
		t.Errorf("missing error message:\n%s", joined)
	}
	if strings.Index(joined, "Tiket uložen") > strings.Index(joined, "Nepodařilo") {
		t.Error("oldest toast should render first (newest at bottom)")
	}
}

func TestViewTruncatesLongMessages(t *testing.T) {
	var stack Stack
	stack.Info(strings.Repeat("x", 200))

	for _, line := range stack.View(tui.DefaultTheme, 40) {
		if ansi.StringWidth(line) > 42 {
			t.Errorf("toast line too wide: %d columns", ansi.StringWidth(line))
		}
	}
}
