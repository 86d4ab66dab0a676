// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

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

// marketTypesPage manages the market type catalog with performance
// columns computed by the backend.
type marketTypesPage struct {
	client *api.Client
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger

	ref *referenceData

	loading bool
	stats   []schema.MarketTypeStat
	visible []schema.MarketTypeStat

	cursor       int
	scrollOffset int

	searchInput textinput.Model
	searching   bool
	searchText  string

	editModal *tui.FormModal
	editID    int // 0 when creating.

	confirm   *tui.ConfirmModal
	confirmID int
}

func newMarketTypesPage(client *api.Client, theme tui.Theme, keys KeyMap, logger *slog.Logger) *marketTypesPage {
	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.Placeholder = "hledat trh"
	searchInput.CharLimit = 60

	return &marketTypesPage{
		client:      client,
		theme:       theme,
		keys:        keys,
		logger:      logger,
		searchInput: searchInput,
	}
}

func (page *marketTypesPage) Init() tea.Cmd {
	return page.load()
}

func (page *marketTypesPage) SetReference(ref *referenceData) {
	page.ref = ref
}

func (page *marketTypesPage) InputCaptured() bool {
	return page.searching || page.editModal != nil || page.confirm != nil
}

func (page *marketTypesPage) load() tea.Cmd {
	page.loading = true
	client := page.client
	return func() tea.Msg {
		stats, err := client.MarketTypeStats(context.Background())
		return marketTypeStatsMsg{stats: stats, err: err}
	}
}

func (page *marketTypesPage) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.KeyMsg:
		return page.handleKey(message)

	case marketTypeStatsMsg:
		page.loading = false
		if message.err != nil {
			page.logger.Error("loading market types failed", "error", message.err)
			return showToast(toast.LevelError, "Nepodařilo se načíst trhy: "+message.err.Error())
		}
		page.stats = message.stats
		page.rebuildVisible()
		return nil

	case marketTypeSavedMsg:
		if message.err != nil {
			return showToast(toast.LevelError, "Trh se nepodařilo uložit: "+message.err.Error())
		}
		text := "Trh upraven: " + message.marketType.Name
		if message.created {
			text = "Trh vytvořen: " + message.marketType.Name
		}
		return tea.Batch(showToast(toast.LevelSuccess, text), page.load())

	case marketTypeDeletedMsg:
		if message.err != nil {
			var apiErr *api.APIError
			if errors.As(message.err, &apiErr) && apiErr.IsConflict() {
				return showToast(toast.LevelError, "Trh má přiřazené tikety, nelze ho smazat.")
			}
			return showToast(toast.LevelError, "Trh se nepodařilo smazat: "+message.err.Error())
		}
		return tea.Batch(showToast(toast.LevelSuccess, "Trh smazán."), page.load())

	case importSavedMsg:
		// Import may have created market types on the fly.
		if len(message.marketTypes) > 0 {
			return page.load()
		}
	}
	return nil
}

func (page *marketTypesPage) handleKey(message tea.KeyMsg) tea.Cmd {
	if page.editModal != nil {
		return page.handleEditKey(message)
	}
	if page.confirm != nil {
		switch message.String() {
		case "y", "enter":
			id := page.confirmID
			page.confirm = nil
			return page.deleteMarketType(id)
		case "n", "esc":
			page.confirm = nil
		}
		return nil
	}
	if page.searching {
		switch message.String() {
		case "enter", "esc":
			page.searching = false
			page.searchInput.Blur()
			if message.String() == "esc" {
				page.searchInput.SetValue("")
				page.searchText = ""
				page.rebuildVisible()
			}
			return nil
		}
		var command tea.Cmd
		page.searchInput, command = page.searchInput.Update(message)
		page.searchText = page.searchInput.Value()
		page.rebuildVisible()
		return command
	}

	switch {
	case key.Matches(message, page.keys.Down):
		if page.cursor < len(page.visible)-1 {
			page.cursor++
		}
	case key.Matches(message, page.keys.Up):
		if page.cursor > 0 {
			page.cursor--
		}
	case key.Matches(message, page.keys.Home):
		page.cursor = 0
	case key.Matches(message, page.keys.End):
		page.cursor = len(page.visible) - 1
	case key.Matches(message, page.keys.FilterActivate):
		page.searching = true
		page.searchInput.Focus()
		return textinput.Blink
	case key.Matches(message, page.keys.Refresh):
		return page.load()
	case key.Matches(message, page.keys.New):
		page.openEdit(nil)
	case key.Matches(message, page.keys.Edit), key.Matches(message, page.keys.Select):
		if page.cursor < len(page.visible) {
			page.openEdit(&page.visible[page.cursor].MarketType)
		}
	case key.Matches(message, page.keys.Delete):
		if page.cursor < len(page.visible) {
			target := page.visible[page.cursor]
			confirm := tui.NewConfirmModal("Smazat trh",
				"Opravdu smazat trh „"+target.Name+"“?", page.theme)
			page.confirm = &confirm
			page.confirmID = target.ID
		}
	}
	return nil
}

// Edit modal field order.
const (
	marketFieldName = iota
	marketFieldDescription
	marketFieldSports
	marketFieldActive
)

func (page *marketTypesPage) openEdit(existing *schema.MarketType) {
	title := "Nový trh"
	name, description, sports := "", "", ""
	active := "ano"
	page.editID = 0
	if existing != nil {
		title = "Upravit trh"
		name = existing.Name
		description = existing.Description
		var sportNames []string
		for _, sport := range existing.Sports {
			sportNames = append(sportNames, sport.Name)
		}
		sports = strings.Join(sportNames, ", ")
		if !existing.IsActive {
			active = "ne"
		}
		page.editID = existing.ID
	}

	fields := []tui.FormField{
		tui.NewTextField("Název", name, "Over 2.5"),
		tui.NewTextField("Popis", description, ""),
		tui.NewTextField("Sporty", sports, "prázdné = všechny"),
		tui.NewSelectField("Aktivní", []string{"ano", "ne"}, active),
	}
	modal := tui.NewFormModal(title, page.theme, fields)
	page.editModal = &modal
}

// parseSportNames resolves a comma-separated list of sport names
// against the catalog. Empty input means the type applies to every
// sport.
func parseSportNames(sports []schema.Sport, raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sport := schema.SportByName(sports, part)
		if sport == nil {
			return nil, errors.New("neznámý sport: " + part)
		}
		ids = append(ids, sport.ID)
	}
	return ids, nil
}

func (page *marketTypesPage) handleEditKey(message tea.KeyMsg) tea.Cmd {
	switch message.String() {
	case "esc":
		page.editModal = nil
		return nil
	case "enter":
		return page.submitEdit()
	}
	return page.editModal.Update(message)
}

func (page *marketTypesPage) submitEdit() tea.Cmd {
	modal := page.editModal
	name := modal.Value(marketFieldName)
	if name == "" {
		return showToast(toast.LevelError, "Název trhu nesmí být prázdný.")
	}
	description := modal.Value(marketFieldDescription)
	active := modal.Value(marketFieldActive) == "ano"

	var catalogSports []schema.Sport
	if page.ref != nil {
		catalogSports = page.ref.sports
	}
	sportIDs, err := parseSportNames(catalogSports, modal.Value(marketFieldSports))
	if err != nil {
		return showToast(toast.LevelError, err.Error())
	}

	client := page.client
	id := page.editID
	page.editModal = nil

	if id == 0 {
		return func() tea.Msg {
			created, err := client.CreateMarketType(context.Background(), schema.MarketTypeCreate{
				Name:        name,
				Description: description,
				SportIDs:    sportIDs,
			})
			return marketTypeSavedMsg{marketType: created, created: true, err: err}
		}
	}
	return func() tea.Msg {
		updated, err := client.UpdateMarketType(context.Background(), id, schema.MarketTypeUpdate{
			Name:        &name,
			Description: &description,
			IsActive:    &active,
			SportIDs:    sportIDs,
		})
		return marketTypeSavedMsg{marketType: updated, err: err}
	}
}

func (page *marketTypesPage) deleteMarketType(id int) tea.Cmd {
	client := page.client
	return func() tea.Msg {
		err := client.DeleteMarketType(context.Background(), id)
		return marketTypeDeletedMsg{id: id, err: err}
	}
}

// rebuildVisible applies the substring search over names and
// descriptions.
func (page *marketTypesPage) rebuildVisible() {
	needle := strings.ToLower(strings.TrimSpace(page.searchText))
	page.visible = page.visible[:0]
	for _, stat := range page.stats {
		if needle != "" &&
			!strings.Contains(strings.ToLower(stat.Name), needle) &&
			!strings.Contains(strings.ToLower(stat.Description), needle) {
			continue
		}
		page.visible = append(page.visible, stat)
	}
	if page.cursor >= len(page.visible) {
		page.cursor = len(page.visible) - 1
	}
	if page.cursor < 0 {
		page.cursor = 0
	}
}

// renderKPILine aggregates the whole catalog regardless of the
// current search.
func (page *marketTypesPage) renderKPILine(width int) string {
	var bets int
	var profit float64
	bestRate := -1.0
	bestName := ""
	for _, stat := range page.stats {
		bets += stat.BetsCount
		profit += stat.Profit
		if stat.BetsCount > 0 && stat.WinRate > bestRate {
			bestRate = stat.WinRate
			bestName = stat.Name
		}
	}

	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	profitStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(profit)).Bold(true)

	line := faint.Render(strconv.Itoa(len(page.stats))+" trhů  ·  "+
		strconv.Itoa(bets)+" sázek  ·  zisk ") +
		profitStyle.Render(schema.FormatProfitCZK(profit))
	if bestName != "" {
		line += faint.Render("  ·  nejlepší: " + bestName + " " + schema.FormatPercent(bestRate))
	}
	return ansi.Truncate(line, width, "…")
}

func (page *marketTypesPage) View(width, height int) string {
	if page.loading && len(page.stats) == 0 {
		return tui.RenderSkeleton(page.theme, width, height-1, 0)
	}

	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	headerStyle := lipgloss.NewStyle().Foreground(page.theme.HeaderForeground).Bold(true)

	var builder strings.Builder
	if page.searching {
		builder.WriteString(page.searchInput.View())
	} else if page.searchText != "" {
		builder.WriteString(faint.Render("hledání: " + page.searchText + "  (/ upravit, Esc zrušit)"))
	} else {
		builder.WriteString(faint.Render(strconv.Itoa(len(page.visible)) + " trhů  ·  n nový  e upravit  d smazat"))
	}
	builder.WriteString("\n")
	builder.WriteString(page.renderKPILine(width))
	builder.WriteString("\n")
	builder.WriteString(headerStyle.Render(
		padTo("Název", 22) + padTo("Sázek", 7) + padTo("Úspěšnost", 11) + padTo("Zisk", 12) + "Aktivní"))
	builder.WriteString("\n")

	listHeight := height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	if page.cursor < page.scrollOffset {
		page.scrollOffset = page.cursor
	}
	if page.cursor >= page.scrollOffset+listHeight {
		page.scrollOffset = page.cursor - listHeight + 1
	}

	if len(page.visible) == 0 {
		builder.WriteString(faint.Render("Žádné trhy."))
	}

	end := page.scrollOffset + listHeight
	if end > len(page.visible) {
		end = len(page.visible)
	}
	for index := page.scrollOffset; index < end; index++ {
		stat := page.visible[index]

		rowStyle := lipgloss.NewStyle().Foreground(page.theme.NormalText)
		if index == page.cursor {
			rowStyle = rowStyle.Background(page.theme.SelectedBackground)
		}
		profitStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(stat.Profit))
		if index == page.cursor {
			profitStyle = profitStyle.Background(page.theme.SelectedBackground)
		}

		activeMark := "✓"
		if !stat.IsActive {
			activeMark = "✗"
		}
		winRate := "–"
		if stat.BetsCount > 0 {
			winRate = schema.FormatPercent(stat.WinRate)
		}

		row := rowStyle.Render(padTo(stat.Name, 22)+padTo(strconv.Itoa(stat.BetsCount), 7)+padTo(winRate, 11)) +
			profitStyle.Render(padTo(schema.FormatProfitCZK(stat.Profit), 12)) +
			rowStyle.Render(activeMark)
		builder.WriteString(ansi.Truncate(row, width, "…"))
		builder.WriteString("\n")
	}

	view := strings.TrimRight(builder.String(), "\n")

	if page.editModal != nil {
		lines, anchorX, anchorY := page.editModal.Render(width, height)
		view = tui.SpliceOverlay(fitHeight(view, height), lines, anchorX, anchorY)
	}
	if page.confirm != nil {
		lines, anchorX, anchorY := page.confirm.Render(width, height)
		view = tui.SpliceOverlay(fitHeight(view, height), lines, anchorX, anchorY)
	}
	return view
}
