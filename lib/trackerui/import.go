// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/config"
	"github.com/toz-panzmoravy/bettracker/lib/imageprep"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/toast"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// importStage tracks where the screenshot import flow currently is.
type importStage int

const (
	stagePathInput importStage = iota
	stagePreparing
	stageParsing
	stageReview
	stageSaving
)

// importCandidate is one row of the review list: either an OCR
// extraction or a blank added by hand, tracked so the saved ticket
// records the right source.
type importCandidate struct {
	schema.OCRTicket
	source schema.Source
}

// importPage runs the screenshot-to-tickets flow: pick a file, let
// the backend OCR it, correct the candidates, save them all.
type importPage struct {
	client *api.Client
	theme  tui.Theme
	logger *slog.Logger

	ref *referenceData

	stage     importStage
	pathInput textinput.Model
	profile   int // Index into schema.BookmakerProfiles.

	prepared   *imageprep.Prepared
	sourcePath string

	candidates []importCandidate
	cursor     int
	emptyHint  string
	rawText    string // Recognized text from the last OCR run.

	editModal *tui.FormModal
	editIndex int

	waitSpinner   spinner.Model
	ocrRestarting bool
}

func newImportPage(client *api.Client, theme tui.Theme, cfg config.ImportConfig, logger *slog.Logger) *importPage {
	pathInput := textinput.New()
	pathInput.Prompt = "> "
	pathInput.Placeholder = "cesta ke screenshotu"
	pathInput.CharLimit = 512
	if cfg.ScreenshotDir != "" {
		pathInput.SetValue(cfg.ScreenshotDir + string(filepath.Separator))
	}
	pathInput.CursorEnd()
	pathInput.Focus()

	profile := 0
	for index, candidate := range schema.BookmakerProfiles {
		if string(candidate) == cfg.DefaultBookmaker {
			profile = index
			break
		}
	}

	waitSpinner := spinner.New()
	waitSpinner.Spinner = spinner.Dot
	waitSpinner.Style = lipgloss.NewStyle().Foreground(theme.AccentColor)

	return &importPage{
		client:      client,
		theme:       theme,
		logger:      logger,
		pathInput:   pathInput,
		profile:     profile,
		waitSpinner: waitSpinner,
	}
}

func (page *importPage) Init() tea.Cmd {
	return textinput.Blink
}

func (page *importPage) SetReference(ref *referenceData) {
	page.ref = ref
}

func (page *importPage) InputCaptured() bool {
	return page.stage == stagePathInput || page.editModal != nil
}

func (page *importPage) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.KeyMsg:
		return page.handleKey(message)

	case imagePreparedMsg:
		if page.stage != stagePreparing {
			return nil
		}
		if message.err != nil {
			page.stage = stagePathInput
			page.pathInput.Focus()
			var unsupported *imageprep.UnsupportedImageError
			if errors.As(message.err, &unsupported) {
				return showToast(toast.LevelError, "Soubor nejde načíst jako obrázek: "+unsupported.Reason)
			}
			return showToast(toast.LevelError, "Obrázek se nepodařilo připravit: "+message.err.Error())
		}
		page.prepared = message.prepared
		page.sourcePath = message.path
		page.stage = stageParsing
		return tea.Batch(page.waitSpinner.Tick, page.parse())

	case ocrResultMsg:
		if page.stage != stageParsing {
			return nil
		}
		if message.err != nil {
			page.stage = stagePathInput
			page.pathInput.Focus()
			page.logger.Error("OCR parse failed", "path", page.sourcePath, "error", message.err)
			return showToast(toast.LevelError, "OCR selhalo: "+message.err.Error())
		}
		page.candidates = nil
		for _, ticket := range message.result.Tickets {
			page.candidates = append(page.candidates, importCandidate{
				OCRTicket: ticket,
				source:    schema.SourceOCR,
			})
		}
		page.cursor = 0
		page.stage = stageReview
		page.rawText = message.result.RawText
		if len(page.candidates) == 0 {
			page.emptyHint = classifyEmptyOCR(message.result.RawText)
		} else {
			page.emptyHint = ""
		}
		return nil

	case importSavedMsg:
		if page.stage != stageSaving {
			return nil
		}
		if message.err != nil {
			// Saved candidates stay saved; drop them from the review
			// list and leave the rest for another attempt.
			page.candidates = page.candidates[len(message.saved):]
			page.cursor = 0
			page.stage = stageReview
			return showToast(toast.LevelError,
				"Uloženo "+strconv.Itoa(len(message.saved))+" tiketů, pak se to pokazilo: "+message.err.Error())
		}
		count := len(message.saved)
		page.reset()
		return showToast(toast.LevelSuccess, "Uloženo "+strconv.Itoa(count)+" tiketů.")

	case ocrEngineRestartedMsg:
		page.ocrRestarting = false
		if message.err != nil {
			return showToast(toast.LevelError, "Restart OCR enginu selhal: "+message.err.Error())
		}
		return showToast(toast.LevelSuccess, "OCR engine restartován.")

	case spinner.TickMsg:
		busy := page.stage == stagePreparing || page.stage == stageParsing ||
			page.stage == stageSaving || page.ocrRestarting
		if !busy {
			return nil
		}
		var command tea.Cmd
		page.waitSpinner, command = page.waitSpinner.Update(message)
		return command
	}
	return nil
}

// reset returns the page to a fresh path prompt, keeping the typed
// directory for the next screenshot.
func (page *importPage) reset() {
	directory := filepath.Dir(strings.TrimSpace(page.pathInput.Value()))
	if directory != "" && directory != "." {
		page.pathInput.SetValue(directory + string(filepath.Separator))
	}
	page.pathInput.CursorEnd()
	page.pathInput.Focus()
	page.prepared = nil
	page.candidates = nil
	page.cursor = 0
	page.emptyHint = ""
	page.rawText = ""
	page.editModal = nil
	page.stage = stagePathInput
}

func (page *importPage) handleKey(message tea.KeyMsg) tea.Cmd {
	if page.editModal != nil {
		return page.handleEditKey(message)
	}

	switch page.stage {
	case stagePathInput:
		switch message.String() {
		case "enter":
			return page.startPrepare()
		case "ctrl+b":
			page.profile = (page.profile + 1) % len(schema.BookmakerProfiles)
			return nil
		case "ctrl+n":
			// Skip OCR and type the ticket in by hand.
			page.pathInput.Blur()
			page.stage = stageReview
			return page.addManualCandidate()
		case "ctrl+r":
			return page.restartOCR()
		}
		var command tea.Cmd
		page.pathInput, command = page.pathInput.Update(message)
		return command

	case stageReview:
		switch message.String() {
		case "j", "down":
			if page.cursor < len(page.candidates)-1 {
				page.cursor++
			}
		case "k", "up":
			if page.cursor > 0 {
				page.cursor--
			}
		case "e", "enter":
			page.openEdit()
		case "n":
			return page.addManualCandidate()
		case "d":
			page.removeCandidate()
		case "b":
			page.profile = (page.profile + 1) % len(schema.BookmakerProfiles)
		case "o":
			// Re-run OCR with the currently selected profile.
			if page.prepared != nil {
				page.stage = stageParsing
				return tea.Batch(page.waitSpinner.Tick, page.parse())
			}
		case "R":
			return page.restartOCR()
		case "u":
			return page.startSave()
		case "esc":
			page.reset()
		}
	}
	return nil
}

// addManualCandidate appends a blank row and opens it for editing.
func (page *importPage) addManualCandidate() tea.Cmd {
	page.candidates = append(page.candidates, importCandidate{
		OCRTicket: schema.OCRTicket{Status: schema.StatusOpen},
		source:    schema.SourceManual,
	})
	page.cursor = len(page.candidates) - 1
	page.emptyHint = ""
	page.openEdit()
	return nil
}

// restartOCR bounces the backend's OCR engine: an unload probe tears
// it down, the follow-up probe loads it again.
func (page *importPage) restartOCR() tea.Cmd {
	if page.ocrRestarting {
		return nil
	}
	page.ocrRestarting = true
	client := page.client

	return tea.Batch(page.waitSpinner.Tick, func() tea.Msg {
		ctx := context.Background()
		if _, err := client.OCRHealth(ctx, true); err != nil {
			return ocrEngineRestartedMsg{err: err}
		}
		_, err := client.OCRHealth(ctx, false)
		return ocrEngineRestartedMsg{err: err}
	})
}

// startPrepare kicks off the image downscale in a command; decoding
// a large screenshot is too slow for the update loop.
func (page *importPage) startPrepare() tea.Cmd {
	path := strings.TrimSpace(page.pathInput.Value())
	if path == "" {
		return showToast(toast.LevelError, "Zadej cestu ke screenshotu.")
	}
	page.stage = stagePreparing
	page.pathInput.Blur()

	return tea.Batch(page.waitSpinner.Tick, func() tea.Msg {
		prepared, err := imageprep.PrepareFile(path)
		return imagePreparedMsg{prepared: prepared, path: path, err: err}
	})
}

func (page *importPage) parse() tea.Cmd {
	client := page.client
	dataURL := page.prepared.DataURL
	profile := schema.BookmakerProfiles[page.profile]

	return func() tea.Msg {
		result, err := client.ParseTicketImage(context.Background(), dataURL, profile)
		return ocrResultMsg{result: result, err: err}
	}
}

// classifyEmptyOCR picks the user-facing hint for an OCR run that
// produced no candidates. Recognized text without tickets points at a
// wrong layout profile; no text at all points at the screenshot.
func classifyEmptyOCR(rawText string) string {
	if len(strings.TrimSpace(rawText)) > 10 {
		return "OCR rozpoznalo text, ale nenašlo žádné tikety. Zkus přepnout profil sázkové kanceláře (b) a spustit znovu (o)."
	}
	return "OCR nedokázalo rozpoznat žádný tiket. Zkontroluj screenshot, nebo zadej tiket ručně (n)."
}

func (page *importPage) removeCandidate() {
	if len(page.candidates) == 0 {
		return
	}
	page.candidates = append(page.candidates[:page.cursor], page.candidates[page.cursor+1:]...)
	if page.cursor >= len(page.candidates) && page.cursor > 0 {
		page.cursor--
	}
}

// Edit modal field order.
const (
	editFieldHome = iota
	editFieldAway
	editFieldSport
	editFieldLeague
	editFieldMarket
	editFieldSelection
	editFieldOdds
	editFieldStake
	editFieldStatus
)

func (page *importPage) openEdit() {
	if len(page.candidates) == 0 {
		return
	}
	candidate := page.candidates[page.cursor]

	formatOptional := func(value *float64) string {
		if value == nil {
			return ""
		}
		return strconv.FormatFloat(*value, 'f', -1, 64)
	}

	status := candidate.Status
	if status == "" {
		status = schema.StatusOpen
	}
	statusOptions := make([]string, len(schema.Statuses))
	selected := 0
	for index, candidateStatus := range schema.Statuses {
		statusOptions[index] = candidateStatus.Label()
		if candidateStatus == status {
			selected = index
		}
	}

	fields := []tui.FormField{
		tui.NewTextField("Domácí", candidate.HomeTeam, ""),
		tui.NewTextField("Hosté", candidate.AwayTeam, ""),
		tui.NewTextField("Sport", candidate.Sport, "fotbal"),
		tui.NewTextField("Liga", candidate.League, ""),
		tui.NewTextField("Trh", candidate.MarketLabel, "1X2"),
		tui.NewTextField("Tip", candidate.Selection, ""),
		tui.NewTextField("Kurz", formatOptional(candidate.Odds), "1.85"),
		tui.NewTextField("Vklad", formatOptional(candidate.Stake), "100"),
		tui.NewSelectField("Status", statusOptions, statusOptions[selected]),
	}

	modal := tui.NewFormModal("Upravit tiket", page.theme, fields)
	page.editModal = &modal
	page.editIndex = page.cursor
}

func (page *importPage) handleEditKey(message tea.KeyMsg) tea.Cmd {
	switch message.String() {
	case "esc":
		page.editModal = nil
		return nil
	case "enter":
		return page.submitEdit()
	}
	return page.editModal.Update(message)
}

func (page *importPage) submitEdit() tea.Cmd {
	modal := page.editModal
	candidate := &page.candidates[page.editIndex]

	parseOptional := func(raw string) (*float64, error) {
		raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if raw == "" {
			return nil, nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return &value, nil
	}

	odds, err := parseOptional(modal.Value(editFieldOdds))
	if err != nil || (odds != nil && *odds < 1) {
		return showToast(toast.LevelError, "Kurz musí být číslo alespoň 1.")
	}
	stake, err := parseOptional(modal.Value(editFieldStake))
	if err != nil || (stake != nil && *stake <= 0) {
		return showToast(toast.LevelError, "Vklad musí být kladné číslo.")
	}

	candidate.HomeTeam = modal.Value(editFieldHome)
	candidate.AwayTeam = modal.Value(editFieldAway)
	candidate.Sport = modal.Value(editFieldSport)
	candidate.League = modal.Value(editFieldLeague)
	candidate.MarketLabel = modal.Value(editFieldMarket)
	candidate.Selection = modal.Value(editFieldSelection)
	candidate.Odds = odds
	candidate.Stake = stake
	for _, status := range schema.Statuses {
		if status.Label() == modal.Value(editFieldStatus) {
			candidate.Status = status
			break
		}
	}

	page.editModal = nil
	return nil
}

func (page *importPage) startSave() tea.Cmd {
	if len(page.candidates) == 0 {
		return showToast(toast.LevelInfo, "Není co uložit.")
	}
	if page.ref == nil {
		return showToast(toast.LevelError, "Číselníky se ještě načítají, zkus to za chvíli.")
	}
	for index, candidate := range page.candidates {
		if candidate.Odds == nil || candidate.Stake == nil {
			page.cursor = index
			return showToast(toast.LevelError, "Tiket "+strconv.Itoa(index+1)+" nemá kurz nebo vklad, doplň je (e).")
		}
	}

	page.stage = stageSaving
	bookmakerID := resolveBookmakerID(page.ref.bookmakers, schema.BookmakerProfiles[page.profile])
	return tea.Batch(
		page.waitSpinner.Tick,
		saveCandidates(page.client, page.ref, page.candidates, bookmakerID),
	)
}

// resolveBookmakerID maps the selected OCR profile to a bookmaker
// catalog entry. Falls back to the first bookmaker when the catalog
// has no match.
func resolveBookmakerID(bookmakers []schema.Bookmaker, profile schema.BookmakerProfile) int {
	for _, bookmaker := range bookmakers {
		if strings.EqualFold(bookmaker.Name, string(profile)) {
			return bookmaker.ID
		}
	}
	if len(bookmakers) > 0 {
		return bookmakers[0].ID
	}
	return 1
}

// saveCandidates saves the candidates one by one in order. Sport and
// league names resolve case-insensitively against the catalogs; an
// unknown sport falls back to the first catalog entry and an unknown
// league is simply left unset. Unknown market labels create new
// market types on the fly. The run stops at the first failed create;
// already-saved tickets are not rolled back.
func saveCandidates(client *api.Client, ref *referenceData, candidates []importCandidate, bookmakerID int) tea.Cmd {
	marketTypes := append([]schema.MarketType(nil), ref.marketTypes...)
	sports := ref.sports
	leagues := ref.leagues

	return func() tea.Msg {
		ctx := context.Background()
		var saved []schema.Ticket
		var createdTypes []schema.MarketType

		for index, candidate := range candidates {
			sportID := 1
			if len(sports) > 0 {
				sportID = sports[0].ID
			}
			if sport := schema.SportByName(sports, candidate.Sport); sport != nil {
				sportID = sport.ID
			}

			var leagueID *int
			if league := schema.LeagueByName(leagues, candidate.League); league != nil {
				leagueID = &league.ID
			}

			var marketTypeID *int
			if candidate.MarketLabel != "" {
				marketType := schema.MarketTypeByName(marketTypes, candidate.MarketLabel)
				if marketType == nil {
					created, err := client.CreateMarketType(ctx, schema.MarketTypeCreate{
						Name:     candidate.MarketLabel,
						SportIDs: []int{sportID},
					})
					if err != nil {
						return importSavedMsg{
							saved:       saved,
							marketTypes: createdTypes,
							failedIndex: index,
							err:         fmt.Errorf("market type %q: %w", candidate.MarketLabel, err),
						}
					}
					marketTypes = append(marketTypes, created)
					createdTypes = append(createdTypes, created)
					marketType = &marketTypes[len(marketTypes)-1]
				}
				marketTypeID = &marketType.ID
			}

			status := candidate.Status
			if status == "" {
				status = schema.StatusOpen
			}

			ticket, err := client.CreateTicket(ctx, schema.TicketCreate{
				BookmakerID:  bookmakerID,
				SportID:      sportID,
				LeagueID:     leagueID,
				MarketTypeID: marketTypeID,
				HomeTeam:     candidate.HomeTeam,
				AwayTeam:     candidate.AwayTeam,
				MarketLabel:  candidate.MarketLabel,
				Selection:    candidate.Selection,
				Odds:         *candidate.Odds,
				Stake:        *candidate.Stake,
				Payout:       candidate.Payout,
				Status:       status,
				IsLive:       candidate.IsLive,
				Source:       candidate.source,
			})
			if err != nil {
				return importSavedMsg{
					saved:       saved,
					marketTypes: createdTypes,
					failedIndex: index,
					err:         err,
				}
			}
			saved = append(saved, ticket)
		}

		return importSavedMsg{saved: saved, marketTypes: createdTypes, failedIndex: -1}
	}
}

func (page *importPage) View(width, height int) string {
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	title := lipgloss.NewStyle().Foreground(page.theme.HeaderForeground).Bold(true)
	accent := lipgloss.NewStyle().Foreground(page.theme.AccentColor)

	profileLine := faint.Render("Profil: ") + accent.Render(string(schema.BookmakerProfiles[page.profile])) +
		faint.Render("  (b přepnout)")

	switch page.stage {
	case stagePathInput:
		view := title.Render("Import tiketu ze screenshotu") + "\n\n" +
			page.pathInput.View() + "\n\n" +
			profileLine + "\n" +
			faint.Render("Enter spustí OCR  ·  Ctrl+B přepne profil  ·  Ctrl+N ruční zadání  ·  Ctrl+R restart OCR")
		if page.ocrRestarting {
			view += "\n" + page.waitSpinner.View() + " Restartuji OCR engine…"
		}
		return view

	case stagePreparing:
		return title.Render("Import tiketu ze screenshotu") + "\n\n" +
			page.waitSpinner.View() + " Zmenšuji obrázek…"

	case stageParsing:
		return title.Render("Import tiketu ze screenshotu") + "\n\n" +
			page.waitSpinner.View() + " Čtu tiket ze screenshotu… (může trvat i minuty)"

	case stageSaving:
		return title.Render("Import tiketu ze screenshotu") + "\n\n" +
			page.waitSpinner.View() + " Ukládám tikety…"
	}

	// Review.
	var builder strings.Builder
	builder.WriteString(title.Render("Rozpoznané tikety"))
	if page.sourcePath != "" {
		builder.WriteString("  ")
		builder.WriteString(faint.Render(filepath.Base(page.sourcePath)))
	}
	builder.WriteString("\n")
	builder.WriteString(profileLine)
	if page.ocrRestarting {
		builder.WriteString("\n")
		builder.WriteString(page.waitSpinner.View())
		builder.WriteString(" Restartuji OCR engine…")
	}
	builder.WriteString("\n\n")

	if len(page.candidates) == 0 {
		if page.emptyHint != "" {
			builder.WriteString(faint.Render(page.emptyHint))
			builder.WriteString("\n\n")
		}
		builder.WriteString(faint.Render("n přidat ručně  b profil  o znovu  R restart OCR  Esc zpět"))
	} else {
		for index, candidate := range page.candidates {
			builder.WriteString(page.renderCandidate(index, candidate, width))
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
		builder.WriteString(faint.Render("e upravit  n přidat ručně  d odebrat  u uložit vše  o znovu OCR  Esc zpět"))
	}

	if excerpt := tui.ExtractExcerpt(page.rawText, width-2, 4); len(excerpt) > 0 {
		builder.WriteString("\n\n")
		builder.WriteString(faint.Render("Rozpoznaný text:"))
		for _, line := range excerpt {
			builder.WriteString("\n")
			builder.WriteString(faint.Render("  " + line))
		}
	}

	view := builder.String()
	if page.editModal != nil {
		lines, anchorX, anchorY := page.editModal.Render(width, height)
		lines = page.appendSuggestions(lines)
		view = tui.SpliceOverlay(fitHeight(view, height), lines, anchorX, anchorY)
	}
	return view
}

// appendSuggestions adds typeahead rows under the edit modal when the
// sport, league or market field is focused and has matching catalog
// entries.
func (page *importPage) appendSuggestions(lines []string) []string {
	if page.ref == nil {
		return lines
	}

	focused := page.editModal.FocusedField()
	typed := page.editModal.Value(focused)

	var candidates []string
	switch focused {
	case editFieldSport:
		for _, sport := range page.ref.sports {
			candidates = append(candidates, sport.Name)
		}
	case editFieldLeague:
		for _, league := range page.ref.leagues {
			candidates = append(candidates, league.Name)
		}
	case editFieldMarket:
		candidates = marketLabelCandidates(page.ref,
			page.editModal.Value(editFieldSport))
		// An empty market field still gets the applicable shortlist.
		if strings.TrimSpace(typed) == "" {
			shortlist := candidates
			if len(shortlist) > maxSuggestions {
				shortlist = shortlist[:maxSuggestions]
			}
			if len(shortlist) == 0 {
				return lines
			}
			return append(lines, renderSuggestions(page.theme, shortlist, -1)...)
		}
	default:
		return lines
	}

	suggestions := suggest(candidates, typed)
	if len(suggestions) == 0 {
		return lines
	}
	return append(lines, renderSuggestions(page.theme, suggestions, -1)...)
}

// marketLabelCandidates lists active market type names applicable to
// the sport currently typed in the form. An unknown sport resolves the
// way the save does, to the first catalog entry.
func marketLabelCandidates(ref *referenceData, sportName string) []string {
	sportID := 0
	if len(ref.sports) > 0 {
		sportID = ref.sports[0].ID
	}
	if sport := schema.SportByName(ref.sports, sportName); sport != nil {
		sportID = sport.ID
	}

	var names []string
	for _, marketType := range ref.marketTypes {
		if !marketType.IsActive || !marketType.AppliesToSport(sportID) {
			continue
		}
		names = append(names, marketType.Name)
	}
	return names
}

func (page *importPage) renderCandidate(index int, candidate importCandidate, width int) string {
	selected := index == page.cursor

	rowStyle := lipgloss.NewStyle().Foreground(page.theme.NormalText)
	if selected {
		rowStyle = rowStyle.Background(page.theme.SelectedBackground)
	}
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	if selected {
		faint = faint.Background(page.theme.SelectedBackground)
	}

	marker := "  "
	if selected {
		marker = "▸ "
	}

	match := candidate.HomeTeam + " – " + candidate.AwayTeam
	odds := "?"
	if candidate.Odds != nil {
		odds = schema.FormatOdds(*candidate.Odds)
	}
	stake := "?"
	if candidate.Stake != nil {
		stake = schema.FormatCZK(*candidate.Stake)
	}

	line := marker + padTo(match, 34) +
		padTo(candidate.MarketLabel+" "+candidate.Selection, 24) +
		padTo(odds, 7) + padTo(stake, 12)
	detail := "    " + candidate.Sport
	if candidate.League != "" {
		detail += " · " + candidate.League
	}
	if candidate.source == schema.SourceManual {
		detail += " · ručně"
	}

	return rowStyle.Render(ansi.Truncate(line, width, "…")) + "\n" +
		faint.Render(ansi.Truncate(detail, width, "…"))
}
