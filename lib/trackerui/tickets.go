// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/toast"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// sortColumn identifies the tickets table sort key.
type sortColumn int

const (
	sortByDate sortColumn = iota
	sortByMatch
	sortByOdds
	sortByStake
	sortByProfit
	sortByStatus
)

var sortColumnTitles = map[sortColumn]string{
	sortByDate:   "Datum",
	sortByMatch:  "Zápas",
	sortByOdds:   "Kurz",
	sortByStake:  "Vklad",
	sortByProfit: "Zisk",
	sortByStatus: "Status",
}

// backendColumn maps the UI column to the backend's sort key. The
// list is also re-sorted client-side so direction flips apply without
// a round-trip.
func (column sortColumn) backendColumn() string {
	switch column {
	case sortByMatch:
		return "home_team"
	case sortByOdds:
		return "odds"
	case sortByStake:
		return "stake"
	case sortByProfit:
		return "profit"
	case sortByStatus:
		return "status"
	default:
		return "created_at"
	}
}

// streakCelebrationThreshold is the minimum run of winning tickets
// that fires the confetti burst.
const streakCelebrationThreshold = 3

// ticketsPage is the ticket list with filtering, sorting, inline
// settlement, editing, and deletion.
type ticketsPage struct {
	client *api.Client
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger

	ref *referenceData

	loading bool
	loadSeq int
	loadErr error

	tickets []schema.Ticket // Backend order (newest first).
	visible []schema.Ticket // After filter + sort.

	cursor       int
	scrollOffset int

	// Text filter over teams and market labels, client-side.
	filterInput  textinput.Model
	filtering    bool
	filterText   string
	statusFilter schema.Status // Empty means all; reloads from the backend.
	liveOnly     bool          // Backend is_live filter; reloads.
	sportFilter  int           // Index into ref.sports, -1 means all; reloads.
	periodFilter int           // Index into periodDays; reloads.

	sortBy        sortColumn
	sortAscending bool

	dropdown    *tui.DropdownOverlay
	editModal   *tui.FormModal
	editID      int
	editSportID int
	topMarkets  []string // Backend shortlist for the market typeahead.
	confirm     *tui.ConfirmModal
	confirmID   int

	lastWidth int // Last rendered width, for mouse hit-testing.
}

func newTicketsPage(client *api.Client, theme tui.Theme, keys KeyMap, logger *slog.Logger) *ticketsPage {
	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.Placeholder = "hledat zápas nebo trh"
	filterInput.CharLimit = 60

	return &ticketsPage{
		client:      client,
		theme:       theme,
		keys:        keys,
		logger:      logger,
		filterInput: filterInput,
		sortBy:      sortByDate,
		sportFilter: -1,
	}
}

func (page *ticketsPage) Init() tea.Cmd {
	return page.load()
}

func (page *ticketsPage) SetReference(ref *referenceData) {
	page.ref = ref
}

func (page *ticketsPage) InputCaptured() bool {
	return page.filtering || page.dropdown != nil || page.editModal != nil || page.confirm != nil
}

func (page *ticketsPage) sortDirection() string {
	if page.sortAscending {
		return "asc"
	}
	return "desc"
}

// listFilter assembles the backend query from the page's filter and
// sort state.
func (page *ticketsPage) listFilter() api.TicketFilter {
	filter := api.TicketFilter{
		Status:  page.statusFilter,
		SortBy:  page.sortBy.backendColumn(),
		SortDir: page.sortDirection(),
	}
	if page.liveOnly {
		live := true
		filter.IsLive = &live
	}
	if page.ref != nil && page.sportFilter >= 0 && page.sportFilter < len(page.ref.sports) {
		filter.SportID = page.ref.sports[page.sportFilter].ID
	}
	if days := periodDays[page.periodFilter]; days > 0 {
		filter.DateFrom = time.Now().AddDate(0, 0, -days)
	}
	return filter
}

// load fetches the ticket list with the current filters.
func (page *ticketsPage) load() tea.Cmd {
	page.loading = true
	page.loadSeq++
	seq := page.loadSeq
	client := page.client
	filter := page.listFilter()

	return func() tea.Msg {
		tickets, err := client.ListTickets(context.Background(), filter)
		return ticketsLoadedMsg{seq: seq, tickets: tickets, err: err}
	}
}

func (page *ticketsPage) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.KeyMsg:
		return page.handleKey(message)

	case tea.MouseMsg:
		return page.handleMouse(message)

	case ticketsLoadedMsg:
		if message.seq != page.loadSeq {
			return nil
		}
		page.loading = false
		page.loadErr = message.err
		if message.err != nil {
			page.logger.Error("loading tickets failed", "error", message.err)
			return showToast(toast.LevelError, "Nepodařilo se načíst tikety: "+message.err.Error())
		}
		page.tickets = message.tickets
		page.rebuildVisible()
		return nil

	case statusChangedMsg:
		return page.handleStatusChanged(message)

	case ticketRefreshedMsg:
		if message.err != nil {
			return nil
		}
		page.replaceTicket(message.ticket)
		page.rebuildVisible()
		return nil

	case ticketSavedMsg:
		if message.err != nil {
			page.logger.Error("saving ticket failed", "error", message.err)
			return showToast(toast.LevelError, "Uložení tiketu selhalo: "+message.err.Error())
		}
		page.replaceTicket(message.ticket)
		page.rebuildVisible()
		return showToast(toast.LevelSuccess, "Tiket uložen")

	case ticketDeletedMsg:
		if message.err != nil {
			page.logger.Error("deleting ticket failed", "ticket_id", message.ticketID, "error", message.err)
			return showToast(toast.LevelError, "Nepodařilo se smazat tiket: "+message.err.Error())
		}
		page.removeTicket(message.ticketID)
		page.rebuildVisible()
		return showToast(toast.LevelSuccess, "Tiket smazán")

	case topMarketTypesMsg:
		// Best effort; the local catalog keeps serving the shortlist
		// when the call fails.
		if message.err != nil || page.editModal == nil {
			return nil
		}
		page.topMarkets = page.topMarkets[:0]
		for _, marketType := range message.types {
			page.topMarkets = append(page.topMarkets, marketType.Name)
		}
		return nil

	case importSavedMsg:
		// Tickets created on the import page should appear here
		// without an explicit refresh.
		if len(message.saved) > 0 {
			return page.load()
		}
		return nil
	}
	return nil
}

// showToast wraps a toast request as a command.
func showToast(level toast.Level, text string) tea.Cmd {
	return func() tea.Msg {
		return showToastMsg{level: level, text: text}
	}
}

func (page *ticketsPage) handleKey(message tea.KeyMsg) tea.Cmd {
	// Modal and overlay modes capture everything.
	switch {
	case page.dropdown != nil:
		return page.handleDropdownKey(message)
	case page.editModal != nil:
		return page.handleEditKey(message)
	case page.confirm != nil:
		return page.handleConfirmKey(message)
	case page.filtering:
		return page.handleFilterKey(message)
	}

	switch {
	case key.Matches(message, page.keys.Up):
		page.moveCursor(-1)
	case key.Matches(message, page.keys.Down):
		page.moveCursor(1)
	case key.Matches(message, page.keys.PageUp):
		page.moveCursor(-10)
	case key.Matches(message, page.keys.PageDown):
		page.moveCursor(10)
	case key.Matches(message, page.keys.Home):
		page.cursor = 0
		page.scrollOffset = 0
	case key.Matches(message, page.keys.End):
		page.moveCursor(len(page.visible))

	case key.Matches(message, page.keys.FilterActivate):
		page.filtering = true
		page.filterInput.SetValue(page.filterText)
		return page.filterInput.Focus()

	case key.Matches(message, page.keys.Refresh):
		return page.load()

	case key.Matches(message, page.keys.Sort):
		page.cycleSort()

	case message.String() == "S":
		// Re-select the active column, which flips the direction.
		page.setSort(page.sortBy)

	case message.String() == "f":
		page.cycleStatusFilter()
		return page.load()

	case message.String() == "L":
		page.liveOnly = !page.liveOnly
		return page.load()

	case message.String() == "o":
		page.cycleSportFilter()
		return page.load()

	case message.String() == "t":
		page.periodFilter = (page.periodFilter + 1) % len(periodDays)
		return page.load()

	case key.Matches(message, page.keys.Select):
		if ticket, ok := page.selected(); ok {
			page.dropdown = tui.StatusDropdown(page.theme, ticket.ID, ticket.Status,
				4, page.cursorScreenRow())
		}

	case key.Matches(message, page.keys.Edit):
		if ticket, ok := page.selected(); ok {
			return page.openEditModal(ticket)
		}

	case key.Matches(message, page.keys.Delete):
		if ticket, ok := page.selected(); ok {
			modal := tui.NewConfirmModal("Smazat tiket?",
				ticket.HomeTeam+" – "+ticket.AwayTeam, page.theme)
			page.confirm = &modal
			page.confirmID = ticket.ID
		}
	}
	return nil
}

// handleMouse covers the pointer affordances: wheel scrolling, row
// selection, header clicks for sorting, and dropdown picks. Clicking
// the selected row opens the status dropdown, like Enter.
func (page *ticketsPage) handleMouse(message tea.MouseMsg) tea.Cmd {
	if page.editModal != nil || page.confirm != nil || page.filtering {
		return nil
	}

	if message.Action == tea.MouseActionPress {
		switch message.Button {
		case tea.MouseButtonWheelUp:
			page.moveCursor(-1)
			return nil
		case tea.MouseButtonWheelDown:
			page.moveCursor(1)
			return nil
		}
	}

	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return nil
	}

	if page.dropdown != nil {
		if !page.dropdown.Contains(message.X, message.Y) {
			page.dropdown = nil
			return nil
		}
		if index := page.dropdown.OptionAtY(message.Y); index >= 0 {
			page.dropdown.Cursor = index
			selected := page.dropdown.Selected()
			ticketID := page.dropdown.TicketID
			page.dropdown = nil
			return page.changeStatus(ticketID, schema.Status(selected.Value))
		}
		return nil
	}

	// Row 0 is the filter line, row 1 the table header.
	switch {
	case message.Y == 1:
		if column, ok := page.columnAtX(message.X); ok {
			page.setSort(column)
		}
	case message.Y >= 2:
		index := page.scrollOffset + message.Y - 2
		if index < 0 || index >= len(page.visible) {
			return nil
		}
		if index == page.cursor {
			ticket := page.visible[index]
			page.dropdown = tui.StatusDropdown(page.theme, ticket.ID, ticket.Status,
				4, page.cursorScreenRow())
			return nil
		}
		page.cursor = index
	}
	return nil
}

// columnAtX maps a header click to its sort column. The Sport and
// Výplata columns have no backend sort key and do not hit.
func (page *ticketsPage) columnAtX(x int) (sortColumn, bool) {
	matchWidth := page.lastWidth - 72
	if matchWidth < 12 {
		matchWidth = 12
	}

	boundaries := []struct {
		width  int
		column sortColumn
		ok     bool
	}{
		{11, sortByDate, true},
		{10, 0, false}, // Sport
		{matchWidth, sortByMatch, true},
		{7, sortByOdds, true},
		{10, sortByStake, true},
		{11, 0, false}, // Výplata
		{11, sortByProfit, true},
		{6, sortByStatus, true},
	}
	offset := 0
	for _, boundary := range boundaries {
		if x < offset+boundary.width {
			return boundary.column, boundary.ok
		}
		offset += boundary.width
	}
	return 0, false
}

func (page *ticketsPage) handleDropdownKey(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyUp:
		page.dropdown.MoveUp()
	case tea.KeyDown:
		page.dropdown.MoveDown()
	case tea.KeyEscape:
		page.dropdown = nil
	case tea.KeyEnter:
		selected := page.dropdown.Selected()
		ticketID := page.dropdown.TicketID
		page.dropdown = nil
		return page.changeStatus(ticketID, schema.Status(selected.Value))
	default:
		switch message.String() {
		case "k":
			page.dropdown.MoveUp()
		case "j":
			page.dropdown.MoveDown()
		}
	}
	return nil
}

func (page *ticketsPage) handleFilterKey(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEscape:
		page.filtering = false
		page.filterText = ""
		page.filterInput.SetValue("")
		page.rebuildVisible()
		return nil
	case tea.KeyEnter:
		page.filtering = false
		return nil
	}

	var command tea.Cmd
	page.filterInput, command = page.filterInput.Update(message)
	page.filterText = page.filterInput.Value()
	page.rebuildVisible()
	return command
}

func (page *ticketsPage) handleConfirmKey(message tea.KeyMsg) tea.Cmd {
	switch message.String() {
	case "y", "enter":
		ticketID := page.confirmID
		page.confirm = nil
		client := page.client
		return func() tea.Msg {
			err := client.DeleteTicket(context.Background(), ticketID)
			return ticketDeletedMsg{ticketID: ticketID, err: err}
		}
	case "n", "esc":
		page.confirm = nil
	}
	return nil
}

// changeStatus applies the new status optimistically and issues the
// backend update. The previous status travels with the result message
// so a failure can roll the row back.
func (page *ticketsPage) changeStatus(ticketID int, status schema.Status) tea.Cmd {
	previous := schema.StatusOpen
	for index := range page.tickets {
		if page.tickets[index].ID == ticketID {
			previous = page.tickets[index].Status
			page.tickets[index].Status = status
			break
		}
	}
	page.rebuildVisible()

	client := page.client
	return func() tea.Msg {
		ticket, err := client.UpdateTicket(context.Background(), ticketID,
			schema.TicketUpdate{Status: &status})
		return statusChangedMsg{ticketID: ticketID, previous: previous, ticket: ticket, err: err}
	}
}

func (page *ticketsPage) handleStatusChanged(message statusChangedMsg) tea.Cmd {
	if message.err != nil {
		page.logger.Error("status change failed", "ticket_id", message.ticketID, "error", message.err)

		var apiErr *api.APIError
		if errors.As(message.err, &apiErr) && apiErr.IsNotFound() {
			// The row is gone on the server; drop it locally too.
			page.removeTicket(message.ticketID)
			page.rebuildVisible()
			return showToast(toast.LevelError, "Tiket už na serveru neexistuje.")
		}

		// Roll back the optimistic row.
		for index := range page.tickets {
			if page.tickets[index].ID == message.ticketID {
				page.tickets[index].Status = message.previous
				break
			}
		}
		page.rebuildVisible()

		commands := []tea.Cmd{showToast(toast.LevelError, "Změna statusu selhala: "+message.err.Error())}
		var timeoutErr *api.TimeoutError
		if errors.As(message.err, &timeoutErr) {
			// A timed-out update may still have landed; fetch the
			// authoritative row and reconcile.
			client := page.client
			ticketID := message.ticketID
			commands = append(commands, func() tea.Msg {
				ticket, err := client.GetTicket(context.Background(), ticketID)
				return ticketRefreshedMsg{ticket: ticket, err: err}
			})
		}
		return tea.Batch(commands...)
	}

	page.replaceTicket(message.ticket)
	page.rebuildVisible()

	commands := []tea.Cmd{showToast(toast.LevelSuccess, "Status změněn: "+message.ticket.Status.Label())}
	if message.ticket.Status.IsWinning() {
		streak := schema.WinStreakAfterUpdate(page.tickets, message.ticketID)
		if streak >= streakCelebrationThreshold {
			commands = append(commands, func() tea.Msg { return celebrateMsg{streak: streak} })
		}
	}
	return tea.Batch(commands...)
}

// openEditModal builds the edit form preloaded with the ticket and
// asks the backend for the sport's most-used market types; the local
// catalog serves the shortlist until they arrive.
func (page *ticketsPage) openEditModal(ticket schema.Ticket) tea.Cmd {
	statusOptions := make([]string, len(schema.Statuses))
	for index, status := range schema.Statuses {
		statusOptions[index] = string(status)
	}

	modal := tui.NewFormModal("Upravit tiket #"+strconv.Itoa(ticket.ID), page.theme, []tui.FormField{
		tui.NewTextField("Domácí", ticket.HomeTeam, ""),
		tui.NewTextField("Hosté", ticket.AwayTeam, ""),
		tui.NewTextField("Trh", ticket.MarketLabel, "např. Over/Under 2.5"),
		tui.NewTextField("Tip", ticket.Selection, ""),
		tui.NewTextField("Kurz", schema.FormatOdds(ticket.Odds), ""),
		tui.NewTextField("Vklad", strconv.FormatFloat(ticket.Stake, 'f', -1, 64), ""),
		tui.NewSelectField("Status", statusOptions, string(ticket.Status)),
	})
	page.editModal = &modal
	page.editID = ticket.ID
	page.editSportID = ticket.SportID
	page.topMarkets = nil

	client := page.client
	sportID := ticket.SportID
	return func() tea.Msg {
		types, err := client.TopMarketTypes(context.Background(), maxSuggestions, sportID)
		return topMarketTypesMsg{types: types, err: err}
	}
}

func (page *ticketsPage) handleEditKey(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEscape:
		page.editModal = nil
		return nil
	case tea.KeyEnter:
		return page.submitEdit()
	}
	return page.editModal.Update(message)
}

func (page *ticketsPage) submitEdit() tea.Cmd {
	modal := page.editModal

	odds, err := strconv.ParseFloat(strings.ReplaceAll(modal.Value(4), ",", "."), 64)
	if err != nil || odds < 1 {
		return showToast(toast.LevelError, "Neplatný kurz: "+modal.Value(4))
	}
	stake, err := strconv.ParseFloat(strings.ReplaceAll(modal.Value(5), ",", "."), 64)
	if err != nil || stake <= 0 {
		return showToast(toast.LevelError, "Neplatný vklad: "+modal.Value(5))
	}

	home := modal.Value(0)
	away := modal.Value(1)
	market := modal.Value(2)
	selection := modal.Value(3)
	status := schema.Status(modal.Value(6))
	ticketID := page.editID
	page.editModal = nil

	client := page.client
	return func() tea.Msg {
		ticket, err := client.UpdateTicket(context.Background(), ticketID, schema.TicketUpdate{
			HomeTeam:    &home,
			AwayTeam:    &away,
			MarketLabel: &market,
			Selection:   &selection,
			Odds:        &odds,
			Stake:       &stake,
			Status:      &status,
		})
		return ticketSavedMsg{ticket: ticket, err: err}
	}
}

// cycleSort advances to the next sort column. Direction flips go
// through setSort with the current column (keyboard S, header click).
func (page *ticketsPage) cycleSort() {
	next := page.sortBy + 1
	if next > sortByStatus {
		next = sortByDate
	}
	page.setSort(next)
}

// setSort applies the column toggle rule.
func (page *ticketsPage) setSort(column sortColumn) {
	if column == page.sortBy {
		page.sortAscending = !page.sortAscending
	} else {
		page.sortBy = column
		page.sortAscending = false
	}
	page.rebuildVisible()
}

// cycleSportFilter walks all sports in catalog order, then back to
// "all". Without a loaded catalog it stays on "all".
func (page *ticketsPage) cycleSportFilter() {
	if page.ref == nil || len(page.ref.sports) == 0 {
		page.sportFilter = -1
		return
	}
	page.sportFilter++
	if page.sportFilter >= len(page.ref.sports) {
		page.sportFilter = -1
	}
}

func (page *ticketsPage) cycleStatusFilter() {
	if page.statusFilter == "" {
		page.statusFilter = schema.Statuses[0]
		return
	}
	for index, status := range schema.Statuses {
		if status == page.statusFilter {
			if index == len(schema.Statuses)-1 {
				page.statusFilter = ""
			} else {
				page.statusFilter = schema.Statuses[index+1]
			}
			return
		}
	}
	page.statusFilter = ""
}

// rebuildVisible recomputes the filtered, sorted view and clamps the
// cursor.
func (page *ticketsPage) rebuildVisible() {
	page.visible = page.visible[:0]
	needle := strings.ToLower(strings.TrimSpace(page.filterText))
	for _, ticket := range page.tickets {
		if needle != "" {
			haystack := strings.ToLower(ticket.HomeTeam + " " + ticket.AwayTeam + " " +
				ticket.MarketLabel + " " + ticket.Selection)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		page.visible = append(page.visible, ticket)
	}

	page.sortVisible()

	if page.cursor >= len(page.visible) {
		page.cursor = len(page.visible) - 1
	}
	if page.cursor < 0 {
		page.cursor = 0
	}
}

func (page *ticketsPage) sortVisible() {
	column := page.sortBy
	less := func(a, b schema.Ticket) bool {
		switch column {
		case sortByMatch:
			return strings.ToLower(a.HomeTeam+a.AwayTeam) < strings.ToLower(b.HomeTeam+b.AwayTeam)
		case sortByOdds:
			return a.Odds < b.Odds
		case sortByStake:
			return a.Stake < b.Stake
		case sortByProfit:
			return a.ProfitValue() < b.ProfitValue()
		case sortByStatus:
			return a.Status < b.Status
		default: // sortByDate
			return timeOrZero(a.CreatedAt).Before(timeOrZero(b.CreatedAt))
		}
	}

	sort.SliceStable(page.visible, func(i, j int) bool {
		if page.sortAscending {
			return less(page.visible[i], page.visible[j])
		}
		return less(page.visible[j], page.visible[i])
	})
}

func timeOrZero(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}

func (page *ticketsPage) moveCursor(delta int) {
	page.cursor += delta
	if page.cursor < 0 {
		page.cursor = 0
	}
	if page.cursor >= len(page.visible) {
		page.cursor = len(page.visible) - 1
	}
	if page.cursor < 0 {
		page.cursor = 0
	}
}

func (page *ticketsPage) selected() (schema.Ticket, bool) {
	if page.cursor < 0 || page.cursor >= len(page.visible) {
		return schema.Ticket{}, false
	}
	return page.visible[page.cursor], true
}

func (page *ticketsPage) replaceTicket(ticket schema.Ticket) {
	for index := range page.tickets {
		if page.tickets[index].ID == ticket.ID {
			page.tickets[index] = ticket
			return
		}
	}
	page.tickets = append([]schema.Ticket{ticket}, page.tickets...)
}

func (page *ticketsPage) removeTicket(ticketID int) {
	for index := range page.tickets {
		if page.tickets[index].ID == ticketID {
			page.tickets = append(page.tickets[:index], page.tickets[index+1:]...)
			return
		}
	}
}

// cursorScreenRow returns the page-local row of the cursor for
// dropdown anchoring: filter line + header line precede the table.
func (page *ticketsPage) cursorScreenRow() int {
	return 2 + page.cursor - page.scrollOffset
}

// View renders the page: filter line, table header, rows, overlays.
func (page *ticketsPage) View(width, height int) string {
	page.lastWidth = width
	if page.loading && len(page.tickets) == 0 {
		return tui.RenderSkeleton(page.theme, width, height-1, 0)
	}

	var builder strings.Builder
	builder.WriteString(page.renderFilterLine(width))
	builder.WriteString("\n")
	builder.WriteString(page.renderHeader(width))
	builder.WriteString("\n")

	tableHeight := height - 3
	if tableHeight < 1 {
		tableHeight = 1
	}
	page.clampScroll(tableHeight)

	if len(page.visible) == 0 {
		empty := lipgloss.NewStyle().Foreground(page.theme.FaintText)
		builder.WriteString(empty.Render("Žádné tikety."))
	} else {
		end := page.scrollOffset + tableHeight
		if end > len(page.visible) {
			end = len(page.visible)
		}
		var rows []string
		for index := page.scrollOffset; index < end; index++ {
			rows = append(rows, page.renderRow(page.visible[index], width-1, index == page.cursor))
		}
		table := strings.Join(rows, "\n")
		scrollbar := tui.RenderScrollbar(page.theme, end-page.scrollOffset,
			len(page.visible), tableHeight, page.scrollOffset, !page.InputCaptured())
		builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, table, scrollbar))
		builder.WriteString("\n")
		builder.WriteString(page.renderSummaryLine(width))
	}

	view := builder.String()

	if page.dropdown != nil {
		view = tui.SpliceOverlay(view, page.dropdown.Render(page.theme),
			page.dropdown.AnchorX, page.dropdown.AnchorY)
	}
	if page.editModal != nil {
		lines, anchorX, anchorY := page.editModal.Render(width, height)
		lines = page.appendMarketSuggestions(lines)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if page.confirm != nil {
		lines, anchorX, anchorY := page.confirm.Render(width, height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}

// ticketEditFieldMarket is the index of the market label field in the
// edit form.
const ticketEditFieldMarket = 2

// appendMarketSuggestions adds typeahead rows under the edit modal
// when the market field is focused: active market types applicable to
// the ticket's sport, the full shortlist while the field is empty.
func (page *ticketsPage) appendMarketSuggestions(lines []string) []string {
	if page.ref == nil || page.editModal.FocusedField() != ticketEditFieldMarket {
		return lines
	}

	var names []string
	for _, marketType := range page.ref.marketTypes {
		if !marketType.IsActive || !marketType.AppliesToSport(page.editSportID) {
			continue
		}
		names = append(names, marketType.Name)
	}

	typed := page.editModal.Value(ticketEditFieldMarket)
	suggestions := suggest(names, typed)
	if strings.TrimSpace(typed) == "" {
		suggestions = names
		if len(page.topMarkets) > 0 {
			suggestions = page.topMarkets
		}
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}
	}
	if len(suggestions) == 0 {
		return lines
	}
	return append(lines, renderSuggestions(page.theme, suggestions, -1)...)
}

// renderSummaryLine totals the rows that survive the current filters.
// Open tickets count into the stake but not into the profit.
func (page *ticketsPage) renderSummaryLine(width int) string {
	var stake, profit float64
	for _, ticket := range page.visible {
		stake += ticket.Stake
		if ticket.Status != schema.StatusOpen {
			profit += ticket.ProfitValue()
		}
	}

	profitStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(profit)).Bold(true)
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)

	line := faint.Render("Σ "+strconv.Itoa(len(page.visible))+" tiketů  ·  vklad "+
		schema.FormatCZK(stake)+"  ·  zisk ") +
		profitStyle.Render(schema.FormatProfitCZK(profit))
	return ansi.Truncate(line, width, "…")
}

func (page *ticketsPage) clampScroll(tableHeight int) {
	if page.cursor < page.scrollOffset {
		page.scrollOffset = page.cursor
	}
	if page.cursor >= page.scrollOffset+tableHeight {
		page.scrollOffset = page.cursor - tableHeight + 1
	}
	if page.scrollOffset < 0 {
		page.scrollOffset = 0
	}
}

func (page *ticketsPage) renderFilterLine(width int) string {
	if page.filtering {
		return ansi.Truncate(page.filterInput.View(), width, "")
	}

	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	var parts []string
	if page.filterText != "" {
		parts = append(parts, "filtr: "+page.filterText)
	}
	if page.statusFilter != "" {
		parts = append(parts, "status: "+page.statusFilter.Label())
	}
	if page.liveOnly {
		parts = append(parts, "⚡ jen live")
	}
	if page.ref != nil && page.sportFilter >= 0 && page.sportFilter < len(page.ref.sports) {
		parts = append(parts, "sport: "+page.ref.sports[page.sportFilter].Name)
	}
	if periodDays[page.periodFilter] > 0 {
		parts = append(parts, "období: "+periodLabels[page.periodFilter])
	}
	parts = append(parts, strconv.Itoa(len(page.visible))+" tiketů")

	direction := "↓"
	if page.sortAscending {
		direction = "↑"
	}
	parts = append(parts, "řazení: "+sortColumnTitles[page.sortBy]+" "+direction)

	return ansi.Truncate(faint.Render(strings.Join(parts, "  ·  ")), width, "…")
}

func (page *ticketsPage) renderHeader(width int) string {
	header := lipgloss.NewStyle().
		Foreground(page.theme.HeaderForeground).
		Bold(true)

	matchWidth := width - 72
	if matchWidth < 12 {
		matchWidth = 12
	}
	line := padTo("Datum", 11) +
		padTo("Sport", 10) +
		padTo("Zápas", matchWidth) +
		padTo("Kurz", 7) +
		padTo("Vklad", 10) +
		padTo("Výplata", 11) +
		padTo("Zisk", 11) +
		"Status"
	return header.Render(ansi.Truncate(line, width, ""))
}

// sportName resolves the ticket's sport label, preferring the
// backend's nested lookup over the local catalog.
func (page *ticketsPage) sportName(ticket schema.Ticket) string {
	if ticket.Sport != nil {
		return ticket.Sport.Name
	}
	if page.ref != nil {
		for _, sport := range page.ref.sports {
			if sport.ID == ticket.SportID {
				return sport.Name
			}
		}
	}
	return "—"
}

func (page *ticketsPage) renderRow(ticket schema.Ticket, width int, selected bool) string {
	matchWidth := width - 72
	if matchWidth < 12 {
		matchWidth = 12
	}

	date := "—"
	if ticket.EventDate != nil {
		date = ticket.EventDate.Format("02.01.2006")
	} else if ticket.CreatedAt != nil {
		date = ticket.CreatedAt.Format("02.01.2006")
	}

	match := ticket.HomeTeam + " – " + ticket.AwayTeam
	if ticket.IsLive {
		match = "⚡" + match
	}

	profit := ticket.ProfitValue()
	profitText := schema.FormatProfit(profit)
	if ticket.Status == schema.StatusOpen {
		profitText = "—"
	}
	payout := "—"
	if ticket.Payout != nil {
		payout = schema.FormatAmount(*ticket.Payout)
	}

	statusStyle := lipgloss.NewStyle().Foreground(page.theme.StatusColor(ticket.Status))
	profitStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(profit))

	plain := padTo(date, 11) +
		padTo(page.sportName(ticket), 10) +
		padTo(match, matchWidth) +
		padTo(schema.FormatOdds(ticket.Odds), 7) +
		padTo(schema.FormatAmount(ticket.Stake), 10) +
		padTo(payout, 11)

	row := lipgloss.NewStyle().Foreground(page.theme.NormalText).Render(plain) +
		profitStyle.Render(padTo(profitText, 11)) +
		statusStyle.Render(ticket.Status.Icon()+" "+ticket.Status.Label())

	if selected {
		row = lipgloss.NewStyle().
			Background(page.theme.SelectedBackground).
			Render(ansi.Strip(plain)) +
			profitStyle.Background(page.theme.SelectedBackground).Render(padTo(profitText, 11)) +
			statusStyle.Background(page.theme.SelectedBackground).Render(ticket.Status.Icon()+" "+ticket.Status.Label())
	}
	return ansi.Truncate(row, width, "…")
}

// padTo pads or truncates a cell to the given display width plus a
// trailing space.
func padTo(text string, width int) string {
	textWidth := ansi.StringWidth(text)
	if textWidth > width-1 {
		return ansi.Truncate(text, width-2, "…") + " "
	}
	return text + strings.Repeat(" ", width-textWidth)
}
