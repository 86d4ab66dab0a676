// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTicketsPage() *ticketsPage {
	return newTicketsPage(api.NewClient("http://127.0.0.1:1/api"), tui.DefaultTheme, DefaultKeyMap, testLogger())
}

func settledTicket(id int, status schema.Status, createdMinutesAgo int) schema.Ticket {
	created := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC).Add(-time.Duration(createdMinutesAgo) * time.Minute)
	return schema.Ticket{
		ID:        id,
		HomeTeam:  "Sparta",
		AwayTeam:  "Slavia",
		Odds:      1.8,
		Stake:     100,
		Status:    status,
		CreatedAt: &created,
	}
}

// collectMsgs runs a command tree and flattens the produced messages.
func collectMsgs(t *testing.T, command tea.Cmd) []tea.Msg {
	t.Helper()
	if command == nil {
		return nil
	}
	message := command()
	if batch, ok := message.(tea.BatchMsg); ok {
		var messages []tea.Msg
		for _, sub := range batch {
			messages = append(messages, collectMsgs(t, sub)...)
		}
		return messages
	}
	return []tea.Msg{message}
}

func TestSetSortToggleRule(t *testing.T) {
	page := testTicketsPage()

	if page.sortBy != sortByDate || page.sortAscending {
		t.Fatalf("default sort = (%v, asc=%v), want (date, desc)", page.sortBy, page.sortAscending)
	}

	page.setSort(sortByProfit)
	if page.sortBy != sortByProfit || page.sortAscending {
		t.Errorf("new column should reset to descending, got asc=%v", page.sortAscending)
	}

	page.setSort(sortByProfit)
	if !page.sortAscending {
		t.Error("same column should flip to ascending")
	}

	page.setSort(sortByProfit)
	if page.sortAscending {
		t.Error("same column again should flip back to descending")
	}

	page.setSort(sortByOdds)
	if page.sortBy != sortByOdds || page.sortAscending {
		t.Errorf("switching column should reset to descending, got asc=%v", page.sortAscending)
	}
}

func TestBackendSortMapping(t *testing.T) {
	mapping := map[sortColumn]string{
		sortByDate:   "created_at",
		sortByMatch:  "home_team",
		sortByOdds:   "odds",
		sortByStake:  "stake",
		sortByProfit: "profit",
		sortByStatus: "status",
	}
	for column, want := range mapping {
		if got := column.backendColumn(); got != want {
			t.Errorf("backendColumn(%v) = %q, want %q", column, got, want)
		}
	}

	page := testTicketsPage()
	if got := page.sortDirection(); got != "desc" {
		t.Errorf("default direction = %q, want desc", got)
	}
	page.sortAscending = true
	if got := page.sortDirection(); got != "asc" {
		t.Errorf("ascending direction = %q, want asc", got)
	}
}

func TestSortVisibleStableForEqualKeys(t *testing.T) {
	page := testTicketsPage()
	profit := 50.0
	page.tickets = []schema.Ticket{
		{ID: 1, Odds: 2.0, Profit: &profit},
		{ID: 2, Odds: 2.0, Profit: &profit},
		{ID: 3, Odds: 2.0, Profit: &profit},
	}
	page.sortBy = sortByOdds
	page.rebuildVisible()

	for index, ticket := range page.visible {
		if ticket.ID != index+1 {
			t.Fatalf("equal-key sort reordered rows: %v", page.visible)
		}
	}
}

func TestRebuildVisibleTextFilter(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{
		{ID: 1, HomeTeam: "Sparta", AwayTeam: "Slavia"},
		{ID: 2, HomeTeam: "Plzeň", AwayTeam: "Baník", Selection: "Over 2.5"},
		{ID: 3, HomeTeam: "Liberec", AwayTeam: "Olomouc", MarketLabel: "1X2"},
	}

	page.filterText = "over"
	page.rebuildVisible()
	if len(page.visible) != 1 || page.visible[0].ID != 2 {
		t.Errorf("filter over selection failed: %v", page.visible)
	}

	page.filterText = "SPARTA"
	page.rebuildVisible()
	if len(page.visible) != 1 || page.visible[0].ID != 1 {
		t.Errorf("filter should be case-insensitive: %v", page.visible)
	}

	page.filterText = ""
	page.rebuildVisible()
	if len(page.visible) != 3 {
		t.Errorf("clearing filter should restore all rows, got %d", len(page.visible))
	}
}

func TestHandleStatusChangedRollsBackOnError(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{settledTicket(1, schema.StatusWon, 0)}

	command := page.handleStatusChanged(statusChangedMsg{
		ticketID: 1,
		previous: schema.StatusOpen,
		err:      errors.New("backend down"),
	})

	if page.tickets[0].Status != schema.StatusOpen {
		t.Errorf("optimistic status not rolled back, got %v", page.tickets[0].Status)
	}
	messages := collectMsgs(t, command)
	if len(messages) != 1 {
		t.Fatalf("want a single toast message, got %d", len(messages))
	}
	if _, ok := messages[0].(showToastMsg); !ok {
		t.Errorf("want showToastMsg, got %T", messages[0])
	}
}

func TestHandleStatusChangedCelebratesStreak(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{
		settledTicket(3, schema.StatusOpen, 0),
		settledTicket(2, schema.StatusWon, 10),
		settledTicket(1, schema.StatusHalfWin, 20),
	}

	updated := settledTicket(3, schema.StatusWon, 0)
	command := page.handleStatusChanged(statusChangedMsg{
		ticketID: 3,
		previous: schema.StatusOpen,
		ticket:   updated,
	})

	var celebrated *celebrateMsg
	for _, message := range collectMsgs(t, command) {
		if celebrate, ok := message.(celebrateMsg); ok {
			celebrated = &celebrate
		}
	}
	if celebrated == nil {
		t.Fatal("three wins in a row should emit celebrateMsg")
	}
	if celebrated.streak != 3 {
		t.Errorf("celebrateMsg.streak = %d, want 3", celebrated.streak)
	}
}

func TestHandleStatusChangedNoCelebrationBelowThreshold(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{
		settledTicket(2, schema.StatusOpen, 0),
		settledTicket(1, schema.StatusWon, 10),
	}

	updated := settledTicket(2, schema.StatusWon, 0)
	command := page.handleStatusChanged(statusChangedMsg{
		ticketID: 2,
		previous: schema.StatusOpen,
		ticket:   updated,
	})

	for _, message := range collectMsgs(t, command) {
		if _, ok := message.(celebrateMsg); ok {
			t.Fatal("two wins must not trigger a celebration")
		}
	}
}

func runeKey(character rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestSortDirectionFlipFromKeyboard(t *testing.T) {
	page := testTicketsPage()

	page.handleKey(runeKey('s'))
	if page.sortBy != sortByMatch || page.sortAscending {
		t.Fatalf("s should advance the column descending, got (%v, asc=%v)", page.sortBy, page.sortAscending)
	}

	page.handleKey(runeKey('S'))
	if page.sortBy != sortByMatch || !page.sortAscending {
		t.Errorf("S should flip direction in place, got (%v, asc=%v)", page.sortBy, page.sortAscending)
	}

	page.handleKey(runeKey('S'))
	if page.sortAscending {
		t.Error("second S should flip back to descending")
	}
}

func TestHeaderClickSortsColumn(t *testing.T) {
	page := testTicketsPage()
	page.lastWidth = 100

	// Width 100 puts the Kurz column at columns 49–55.
	page.handleMouse(leftClick(50, 1))
	if page.sortBy != sortByOdds || page.sortAscending {
		t.Fatalf("header click = (%v, asc=%v), want (odds, desc)", page.sortBy, page.sortAscending)
	}

	page.handleMouse(leftClick(50, 1))
	if page.sortBy != sortByOdds || !page.sortAscending {
		t.Errorf("second click on the same header should flip to ascending, got asc=%v", page.sortAscending)
	}

	// The Sport column has no backend sort key.
	page.handleMouse(leftClick(15, 1))
	if page.sortBy != sortByOdds {
		t.Errorf("sport header click changed the sort to %v", page.sortBy)
	}
}

func TestRowClickSelectsThenOpensDropdown(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{
		settledTicket(1, schema.StatusOpen, 0),
		settledTicket(2, schema.StatusOpen, 10),
		settledTicket(3, schema.StatusOpen, 20),
	}
	page.rebuildVisible()
	page.lastWidth = 100

	page.handleMouse(leftClick(30, 4))
	if page.cursor != 2 {
		t.Fatalf("cursor = %d after row click, want 2", page.cursor)
	}
	if page.dropdown != nil {
		t.Fatal("first click on a row must only select it")
	}

	page.handleMouse(leftClick(30, 4))
	if page.dropdown == nil {
		t.Fatal("click on the selected row should open the status dropdown")
	}
	if page.dropdown.TicketID != page.visible[2].ID {
		t.Errorf("dropdown targets ticket %d, want %d", page.dropdown.TicketID, page.visible[2].ID)
	}

	// A click outside the dropdown dismisses it.
	page.handleMouse(leftClick(90, 0))
	if page.dropdown != nil {
		t.Error("click outside the dropdown should dismiss it")
	}
}

func TestDropdownClickAppliesStatus(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{settledTicket(1, schema.StatusOpen, 0)}
	page.rebuildVisible()
	page.lastWidth = 100

	page.dropdown = tui.StatusDropdown(page.theme, 1, schema.StatusOpen, 4, 2)

	command := page.handleMouse(leftClick(5, 2+1))
	if command == nil {
		t.Fatal("dropdown option click should produce an update command")
	}
	if page.dropdown != nil {
		t.Error("dropdown should close after a pick")
	}
	if page.tickets[0].Status != schema.Statuses[1] {
		t.Errorf("optimistic status = %v, want %v", page.tickets[0].Status, schema.Statuses[1])
	}
}

func TestListFilterCombinesSportLiveAndPeriod(t *testing.T) {
	page := testTicketsPage()
	page.SetReference(&referenceData{sports: []schema.Sport{{ID: 7, Name: "Hokej"}, {ID: 9, Name: "Fotbal"}}})

	page.cycleSportFilter()
	page.liveOnly = true
	page.periodFilter = 1 // 30 days

	filter := page.listFilter()
	if filter.SportID != 7 {
		t.Errorf("SportID = %d, want 7", filter.SportID)
	}
	if filter.IsLive == nil || !*filter.IsLive {
		t.Error("IsLive should be set")
	}
	if filter.DateFrom.IsZero() {
		t.Fatal("DateFrom should be set for a bounded period")
	}
	if days := time.Since(filter.DateFrom).Hours() / 24; days < 29 || days > 31 {
		t.Errorf("DateFrom is %.0f days back, want about 30", days)
	}

	page.cycleSportFilter()
	page.cycleSportFilter()
	if page.sportFilter != -1 {
		t.Errorf("sport cycle should wrap back to all, got %d", page.sportFilter)
	}
	if got := page.listFilter().SportID; got != 0 {
		t.Errorf("SportID = %d with no sport filter, want 0", got)
	}
}

func TestStatusChangeNotFoundDropsRow(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{settledTicket(1, schema.StatusWon, 0)}

	command := page.handleStatusChanged(statusChangedMsg{
		ticketID: 1,
		previous: schema.StatusOpen,
		err:      &api.APIError{StatusCode: 404, Detail: "Ticket not found"},
	})

	if len(page.tickets) != 0 {
		t.Errorf("deleted-on-server ticket should be dropped locally, got %v", page.tickets)
	}
	messages := collectMsgs(t, command)
	if len(messages) != 1 {
		t.Fatalf("want a single toast message, got %d", len(messages))
	}
}

func TestStatusChangeTimeoutRefetchesRow(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{settledTicket(1, schema.StatusWon, 0)}

	command := page.handleStatusChanged(statusChangedMsg{
		ticketID: 1,
		previous: schema.StatusOpen,
		err:      &api.TimeoutError{Operation: "update ticket"},
	})

	if page.tickets[0].Status != schema.StatusOpen {
		t.Errorf("optimistic status not rolled back, got %v", page.tickets[0].Status)
	}

	var sawToast, sawRefresh bool
	for _, message := range collectMsgs(t, command) {
		switch message.(type) {
		case showToastMsg:
			sawToast = true
		case ticketRefreshedMsg:
			// The unreachable test backend makes the refetch fail;
			// scheduling it is what matters here.
			sawRefresh = true
		}
	}
	if !sawToast {
		t.Error("timeout should still toast the failure")
	}
	if !sawRefresh {
		t.Error("timeout should schedule an authoritative refetch")
	}
}

func TestTicketRefreshedReplacesRow(t *testing.T) {
	page := testTicketsPage()
	page.tickets = []schema.Ticket{settledTicket(1, schema.StatusOpen, 0)}
	page.rebuildVisible()

	refreshed := settledTicket(1, schema.StatusWon, 0)
	page.Update(ticketRefreshedMsg{ticket: refreshed})
	if page.tickets[0].Status != schema.StatusWon {
		t.Errorf("refreshed row not applied, got %v", page.tickets[0].Status)
	}

	page.Update(ticketRefreshedMsg{err: errors.New("backend down")})
	if page.tickets[0].Status != schema.StatusWon {
		t.Error("failed refresh must not touch the row")
	}
}

func TestCycleStatusFilterWrapsBackToAll(t *testing.T) {
	page := testTicketsPage()

	seen := map[schema.Status]bool{}
	for range schema.Statuses {
		page.cycleStatusFilter()
		if page.statusFilter == "" {
			t.Fatal("filter cleared before visiting every status")
		}
		seen[page.statusFilter] = true
	}
	if len(seen) != len(schema.Statuses) {
		t.Errorf("cycle visited %d statuses, want %d", len(seen), len(schema.Statuses))
	}

	page.cycleStatusFilter()
	if page.statusFilter != "" {
		t.Errorf("cycle should wrap back to all, got %v", page.statusFilter)
	}
}
