// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/toast"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// dashboardSubTab selects which breakdown set the dashboard shows.
type dashboardSubTab int

const (
	subTabOverview dashboardSubTab = iota
	subTabMarkets
)

var dashboardSubTabTitles = [...]string{"Přehled", "Trhy"}

// dashboardPage shows the KPI cards, profit chart, breakdowns, and
// the AI analysis modal.
type dashboardPage struct {
	client *api.Client
	theme  tui.Theme
	logger *slog.Logger

	ref *referenceData

	loading bool
	loadSeq int

	overview   schema.StatsOverview
	timeseries []schema.TimeseriesPoint
	bankroll   float64
	loaded     bool

	subTab dashboardSubTab

	// sportFilter / bookmakerFilter index into the catalogs; -1 means
	// no filter. periodFilter indexes periodDays.
	sportFilter     int
	bookmakerFilter int
	periodFilter    int

	// lastCelebrated suppresses repeat confetti for the same streak
	// value across reloads.
	lastCelebrated int

	// AI analysis modal state.
	analysisOpen    bool
	analysisWaiting bool
	analysisText    string
	analysisStored  bool // Text comes from the history, not a fresh run.
	analysisErr     error
	analysisScroll  int
	waitSpinner     spinner.Model
}

func newDashboardPage(client *api.Client, theme tui.Theme, logger *slog.Logger) *dashboardPage {
	waitSpinner := spinner.New()
	waitSpinner.Spinner = spinner.Dot
	waitSpinner.Style = lipgloss.NewStyle().Foreground(theme.AccentColor)

	return &dashboardPage{
		client:          client,
		theme:           theme,
		logger:          logger,
		sportFilter:     -1,
		bookmakerFilter: -1,
		waitSpinner:     waitSpinner,
	}
}

// periodDays are the date-range presets cycled with "t"; 0 means the
// whole history.
var periodDays = [...]int{0, 30, 90, 365}

var periodLabels = [...]string{"celá historie", "30 dní", "90 dní", "rok"}

func (page *dashboardPage) Init() tea.Cmd {
	return page.load()
}

func (page *dashboardPage) SetReference(ref *referenceData) {
	page.ref = ref
}

func (page *dashboardPage) InputCaptured() bool {
	return page.analysisOpen
}

func (page *dashboardPage) statsFilter() api.StatsFilter {
	var filter api.StatsFilter
	if page.ref != nil && page.sportFilter >= 0 && page.sportFilter < len(page.ref.sports) {
		filter.SportID = page.ref.sports[page.sportFilter].ID
	}
	if page.ref != nil && page.bookmakerFilter >= 0 && page.bookmakerFilter < len(page.ref.bookmakers) {
		filter.BookmakerID = page.ref.bookmakers[page.bookmakerFilter].ID
	}
	if days := periodDays[page.periodFilter]; days > 0 {
		filter.DateFrom = time.Now().AddDate(0, 0, -days)
	}
	return filter
}

// activeFilterCount backs the badge in the header line.
func (page *dashboardPage) activeFilterCount() int {
	count := 0
	if page.sportFilter >= 0 {
		count++
	}
	if page.bookmakerFilter >= 0 {
		count++
	}
	if page.periodFilter > 0 {
		count++
	}
	return count
}

// load fetches the stats overview, the profit curve, and the bankroll
// concurrently; each result lands as its own message.
func (page *dashboardPage) load() tea.Cmd {
	page.loading = true
	page.loadSeq++
	seq := page.loadSeq
	client := page.client
	filter := page.statsFilter()

	return tea.Batch(
		func() tea.Msg {
			overview, err := client.StatsOverview(context.Background(), filter)
			return statsOverviewMsg{seq: seq, overview: overview, err: err}
		},
		func() tea.Msg {
			timeseries, err := client.ProfitTimeseries(context.Background(), filter)
			return profitSeriesMsg{seq: seq, points: timeseries, err: err}
		},
		func() tea.Msg {
			settings, err := client.GetAppSettings(context.Background())
			return settingsLoadedMsg{settings: settings, err: err}
		},
	)
}

func (page *dashboardPage) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.KeyMsg:
		return page.handleKey(message)

	case statsOverviewMsg:
		if message.seq != page.loadSeq {
			return nil
		}
		page.loading = false
		if message.err != nil {
			page.logger.Error("loading stats failed", "error", message.err)
			return showToast(toast.LevelError, "Nepodařilo se načíst statistiky: "+message.err.Error())
		}
		page.overview = message.overview
		page.loaded = true

		streak := page.overview.Overall.CurrentStreak
		if streak >= streakCelebrationThreshold && streak != page.lastCelebrated {
			page.lastCelebrated = streak
			return func() tea.Msg { return celebrateMsg{streak: streak} }
		}
		return nil

	case profitSeriesMsg:
		if message.seq != page.loadSeq {
			return nil
		}
		if message.err != nil {
			// The chart just stays hidden; the overview toast already
			// covers a backend outage.
			page.logger.Error("loading profit series failed", "error", message.err)
			page.timeseries = nil
			return nil
		}
		page.timeseries = message.points
		return nil

	case settingsLoadedMsg:
		if message.err == nil {
			page.bankroll = message.settings.Bankroll
		}
		return nil

	case analysisHistoryMsg:
		if !page.analysisOpen || !page.analysisWaiting {
			return nil
		}
		page.analysisWaiting = false
		if message.err != nil || len(message.analyses) == 0 {
			// Nothing stored yet; generate a fresh one right away.
			return page.startAnalysis()
		}
		page.analysisErr = nil
		page.analysisText = message.analyses[0].ResponseText
		page.analysisStored = true
		page.analysisScroll = 0
		return nil

	case aiAnalysisMsg:
		page.analysisWaiting = false
		page.analysisStored = false
		if message.err != nil {
			// Show the failure inside the modal so the user can read
			// it and retry without losing context.
			page.analysisErr = message.err
			page.logger.Error("AI analysis failed", "error", message.err)
			return nil
		}
		page.analysisErr = nil
		page.analysisText = message.response.AnalysisText
		page.analysisScroll = 0
		return nil

	case spinner.TickMsg:
		if !page.analysisWaiting {
			return nil
		}
		var command tea.Cmd
		page.waitSpinner, command = page.waitSpinner.Update(message)
		return command

	case statusChangedMsg, ticketSavedMsg, ticketDeletedMsg, importSavedMsg, settingsSavedMsg:
		// Any mutation elsewhere invalidates the aggregates.
		return page.load()
	}
	return nil
}

func (page *dashboardPage) handleKey(message tea.KeyMsg) tea.Cmd {
	if page.analysisOpen {
		switch message.String() {
		case "esc", "q":
			page.analysisOpen = false
		case "a", "enter":
			if !page.analysisWaiting {
				return page.startAnalysis()
			}
		case "j", "down":
			page.analysisScroll++
		case "k", "up":
			if page.analysisScroll > 0 {
				page.analysisScroll--
			}
		}
		return nil
	}

	switch {
	case key.Matches(message, DefaultKeyMap.Left):
		page.subTab = subTabOverview
		return nil
	case key.Matches(message, DefaultKeyMap.Right):
		page.subTab = subTabMarkets
		return nil
	case key.Matches(message, DefaultKeyMap.Refresh):
		return page.load()
	case key.Matches(message, DefaultKeyMap.Analyze):
		return page.openAnalysis()
	}

	switch message.String() {
	case "f":
		return page.cycleSportFilter()
	case "b":
		return page.cycleBookmakerFilter()
	case "t":
		page.periodFilter = (page.periodFilter + 1) % len(periodDays)
		return page.load()
	}
	return nil
}

// cycleSportFilter steps all sports -> each sport -> all sports,
// reloading the aggregates each step.
func (page *dashboardPage) cycleSportFilter() tea.Cmd {
	if page.ref == nil || len(page.ref.sports) == 0 {
		return nil
	}
	page.sportFilter++
	if page.sportFilter >= len(page.ref.sports) {
		page.sportFilter = -1
	}
	return page.load()
}

func (page *dashboardPage) cycleBookmakerFilter() tea.Cmd {
	if page.ref == nil || len(page.ref.bookmakers) == 0 {
		return nil
	}
	page.bookmakerFilter++
	if page.bookmakerFilter >= len(page.ref.bookmakers) {
		page.bookmakerFilter = -1
	}
	return page.load()
}

// openAnalysis opens the modal with the most recent stored analysis;
// with an empty history it falls through to a fresh run.
func (page *dashboardPage) openAnalysis() tea.Cmd {
	page.analysisOpen = true
	if page.analysisText != "" || page.analysisErr != nil {
		return nil
	}
	page.analysisWaiting = true
	client := page.client

	return tea.Batch(
		page.waitSpinner.Tick,
		func() tea.Msg {
			analyses, err := client.ListAnalyses(context.Background(), 1)
			return analysisHistoryMsg{analyses: analyses, err: err}
		},
	)
}

// startAnalysis fires the backend AI call for the current filter.
func (page *dashboardPage) startAnalysis() tea.Cmd {
	page.analysisWaiting = true
	page.analysisErr = nil
	page.analysisText = ""
	client := page.client
	filter := page.statsFilter()

	return tea.Batch(
		page.waitSpinner.Tick,
		func() tea.Msg {
			request := schema.AIAnalyzeRequest{}
			filters := map[string]string{}
			if filter.SportID != 0 {
				filters["sport_id"] = strconv.Itoa(filter.SportID)
			}
			if filter.BookmakerID != 0 {
				filters["bookmaker_id"] = strconv.Itoa(filter.BookmakerID)
			}
			if !filter.DateFrom.IsZero() {
				filters["date_from"] = filter.DateFrom.Format("2006-01-02")
			}
			if len(filters) > 0 {
				request.Filters = filters
			}
			response, err := client.Analyze(context.Background(), request)
			return aiAnalysisMsg{response: response, err: err}
		},
	)
}

func (page *dashboardPage) View(width, height int) string {
	if page.loading && !page.loaded {
		return renderDashboardSkeleton(page.theme, width, height)
	}
	if !page.loaded {
		return lipgloss.NewStyle().Foreground(page.theme.FaintText).Render("Statistiky nejsou k dispozici.")
	}

	sections := []string{page.renderHeaderLine(width)}
	switch page.subTab {
	case subTabMarkets:
		for _, breakdown := range []struct {
			title  string
			groups []schema.GroupedStat
		}{
			{"ROI podle trhu", page.overview.ByMarketType},
			{"ROI podle ligy", page.overview.ByLeague},
			{"ROI podle sázkové kanceláře", page.overview.ByBookmaker},
			{"ROI podle pásma kurzu", page.overview.ByOddsBucket},
			{"ROI podle dne v týdnu", page.overview.ByWeekday},
		} {
			if bars := renderROIBars(page.theme, breakdown.title, breakdown.groups, width); bars != "" {
				sections = append(sections, bars)
			}
		}
	default:
		sections = append(sections, page.renderKPICards(width))
		sections = append(sections, page.renderWeekly(width))
		if chart := renderProfitChart(page.theme, page.timeseries, width); chart != "" {
			sections = append(sections, chart)
		}
		if bars := renderROIBars(page.theme, "ROI podle sportu", page.overview.BySport, width); bars != "" {
			sections = append(sections, bars)
		}
		if table := renderMonthlyTable(page.theme, page.overview.ByMonth, width); table != "" {
			sections = append(sections, table)
		}
	}

	view := strings.Join(sections, "\n\n")

	if page.analysisOpen {
		view = page.overlayAnalysis(view, width, height)
	}
	return view
}

// renderDashboardSkeleton mirrors the loaded layout: a row of KPI card
// placeholders over shimmer rows for the charts.
func renderDashboardSkeleton(theme tui.Theme, width, height int) string {
	cardWidth := (width - 2) / 4
	if cardWidth < 12 {
		return tui.RenderSkeleton(theme, width, height-1, 0)
	}

	var cards []string
	for index := 0; index < 4; index++ {
		cards = append(cards, tui.RenderSkeletonCard(theme, cardWidth, 5, index))
	}
	view := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if rest := height - 6; rest > 0 {
		view += "\n" + tui.RenderSkeleton(theme, width, rest, 0)
	}
	return view
}

// renderHeaderLine shows the sub-tab selector and the active sport
// filter.
func (page *dashboardPage) renderHeaderLine(width int) string {
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	active := lipgloss.NewStyle().Foreground(page.theme.AccentColor).Bold(true)

	var parts []string
	for index, title := range dashboardSubTabTitles {
		if dashboardSubTab(index) == page.subTab {
			parts = append(parts, active.Render(title))
		} else {
			parts = append(parts, faint.Render(title))
		}
	}

	sportLabel := "všechny sporty"
	if page.ref != nil && page.sportFilter >= 0 && page.sportFilter < len(page.ref.sports) {
		sportLabel = page.ref.sports[page.sportFilter].Name
	}
	bookmakerLabel := "všechny kanceláře"
	if page.ref != nil && page.bookmakerFilter >= 0 && page.bookmakerFilter < len(page.ref.bookmakers) {
		bookmakerLabel = page.ref.bookmakers[page.bookmakerFilter].Name
	}

	badge := ""
	if count := page.activeFilterCount(); count > 0 {
		badge = active.Render(" [" + strconv.Itoa(count) + "]")
	}

	line := strings.Join(parts, faint.Render(" · ")) + badge +
		faint.Render("   f: ") + active.Render(sportLabel) +
		faint.Render("  b: ") + active.Render(bookmakerLabel) +
		faint.Render("  t: ") + active.Render(periodLabels[page.periodFilter]) +
		faint.Render("   a: AI analýza")
	return ansi.Truncate(line, width, "…")
}

// renderKPICards renders two rows of metric cards.
func (page *dashboardPage) renderKPICards(width int) string {
	overall := page.overview.Overall

	profitStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(overall.ProfitTotal)).Bold(true)
	roiStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(overall.ROIPercent)).Bold(true)
	drawdownStyle := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(-overall.MaxDrawdown)).Bold(true)
	plainStyle := lipgloss.NewStyle().Foreground(page.theme.NormalText).Bold(true)

	streak := strconv.Itoa(overall.CurrentStreak)
	if overall.CurrentStreak >= streakCelebrationThreshold {
		streak = "🔥 " + streak
	}
	streak += " / " + strconv.Itoa(overall.BestStreak)

	cards := []struct {
		title string
		value string
		style lipgloss.Style
	}{
		{"Celkový zisk", schema.FormatProfitCZK(overall.ProfitTotal), profitStyle},
		{"ROI", schema.FormatSignedPercent(overall.ROIPercent), roiStyle},
		{"Úspěšnost", schema.FormatPercent(overall.HitRatePercent), plainStyle},
		{"Počet sázek", strconv.Itoa(overall.BetsCount), plainStyle},
		{"Průměrný kurz", schema.FormatOdds(overall.AvgOdds), plainStyle},
		{"Série / max", streak, plainStyle},
		{"Max. propad", schema.FormatCZK(overall.MaxDrawdown), drawdownStyle},
		{"Bankroll", schema.FormatCZK(page.bankroll), plainStyle},
	}

	perRow := 4
	cardWidth := width/perRow - 1
	if cardWidth < 14 {
		cardWidth = 14
	}

	titleStyle := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(page.theme.BorderColor).
		Width(cardWidth).
		Padding(0, 1)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		var rendered []string
		for _, card := range cards[start:end] {
			body := titleStyle.Render(card.title) + "\n" + card.style.Render(card.value)
			rendered = append(rendered, border.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return strings.Join(rows, "\n")
}

// renderWeekly renders the current-week versus last-week line.
func (page *dashboardPage) renderWeekly(width int) string {
	current := page.overview.Weekly.CurrentWeek
	last := page.overview.Weekly.LastWeek

	title := lipgloss.NewStyle().Foreground(page.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	profit := lipgloss.NewStyle().Foreground(page.theme.ProfitColor(current.ProfitTotal))

	line := title.Render("Tento týden: ") +
		profit.Render(schema.FormatProfitCZK(current.ProfitTotal)) +
		faint.Render("  ("+strconv.Itoa(current.BetsCount)+" sázek, minulý týden "+
			schema.FormatProfitCZK(last.ProfitTotal)+")")
	return ansi.Truncate(line, width, "…")
}

// overlayAnalysis splices the AI modal over the dashboard.
func (page *dashboardPage) overlayAnalysis(view string, width, height int) string {
	modalWidth := width * 3 / 4
	if modalWidth < 40 {
		modalWidth = width - 4
	}
	innerWidth := modalWidth - 4

	bgStyle := lipgloss.NewStyle().Background(page.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(page.theme.AccentColor).
		Background(page.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(page.theme.FaintText).
		Background(page.theme.ModalBackground)

	var bodyLines []string
	footer := "a nová analýza  j/k posun  Esc zavřít"
	switch {
	case page.analysisWaiting:
		bodyLines = []string{page.waitSpinner.View() + " Analyzuji sázky…"}
		footer = "Esc zavřít"
	case page.analysisErr != nil:
		errStyle := lipgloss.NewStyle().
			Foreground(page.theme.StatusLost).
			Background(page.theme.ModalBackground)
		bodyLines = strings.Split(
			errStyle.Render(ansi.Wordwrap("Analýza selhala: "+page.analysisErr.Error(), innerWidth, "")), "\n")
		footer = "a zkusit znovu  Esc zavřít"
	default:
		rendered := tui.RenderMarkdown(page.analysisText, page.theme, innerWidth)
		bodyLines = strings.Split(rendered, "\n")
		if page.analysisStored {
			stored := footerStyle.Render("(poslední uložená analýza)")
			bodyLines = append([]string{stored, ""}, bodyLines...)
		}
		maxBody := height - 8
		if maxBody < 4 {
			maxBody = 4
		}
		if page.analysisScroll > len(bodyLines)-1 {
			page.analysisScroll = len(bodyLines) - 1
		}
		if page.analysisScroll < 0 {
			page.analysisScroll = 0
		}
		end := page.analysisScroll + maxBody
		if end > len(bodyLines) {
			end = len(bodyLines)
		}
		bodyLines = bodyLines[page.analysisScroll:end]
	}

	padLine := func(line string) string {
		lineWidth := ansi.StringWidth(line)
		if lineWidth > innerWidth {
			line = ansi.Truncate(line, innerWidth, "…")
			lineWidth = innerWidth
		}
		return line + bgStyle.Render(strings.Repeat(" ", innerWidth-lineWidth))
	}

	lines := []string{padLine(titleStyle.Render("AI analýza")), padLine("")}
	for _, line := range bodyLines {
		lines = append(lines, padLine(line))
	}
	lines = append(lines, padLine(""), padLine(footerStyle.Render(footer)))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(page.theme.AccentColor).
		Background(page.theme.ModalBackground).
		Padding(0, 1)
	rendered := borderStyle.Render(strings.Join(lines, "\n"))

	return tui.CenterOverlay(view, strings.Split(rendered, "\n"), width, height)
}
