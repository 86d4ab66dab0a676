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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/config"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/toast"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// Tab identifies which page is active.
type Tab int

const (
	TabDashboard Tab = iota
	TabTickets
	TabImport
	TabMarketTypes
	TabSettings
)

var tabTitles = []string{"Dashboard", "Tikety", "Import", "Trhy", "Nastavení"}

// showToastMsg is emitted by pages to push a notification. Routing
// through a message keeps the toast stack owned by the root model.
type showToastMsg struct {
	level toast.Level
	text  string
}

// celebrateMsg is emitted by pages when a settled ticket completes a
// win streak of three or more.
type celebrateMsg struct {
	streak int
}

// page is the contract between the root model and a tab page.
type page interface {
	Init() tea.Cmd
	Update(message tea.Msg) tea.Cmd
	View(width, height int) string

	// InputCaptured reports whether the page is in a mode (modal,
	// filter input, dropdown) where global key bindings must not
	// fire.
	InputCaptured() bool

	// SetReference delivers the shared catalogs.
	SetReference(ref *referenceData)
}

// referenceData holds the shared catalogs loaded at startup.
type referenceData struct {
	sports      []schema.Sport
	leagues     []schema.League
	bookmakers  []schema.Bookmaker
	marketTypes []schema.MarketType
}

// Model is the top-level bubbletea model for the tracker.
type Model struct {
	client *api.Client
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger

	width  int
	height int
	ready  bool

	activeTab Tab
	pages     [5]page

	reference referenceData

	toasts   toast.Stack
	confetti tui.Confetti

	// Animation bookkeeping: one tick loop per effect, restarted only
	// when not already running.
	confettiTicking  bool
	lastConfettiTick time.Time
	skeletonPhase    int

	// Status bar log notice (from the slog handler).
	logNotice      string
	logNoticeLevel slog.Level
}

// NewModel wires the tracker UI against the given backend client.
func NewModel(client *api.Client, cfg *config.Config, logger *slog.Logger) *Model {
	model := &Model{
		client: client,
		theme:  tui.DefaultTheme,
		keys:   DefaultKeyMap,
		logger: logger,
	}

	model.pages[TabDashboard] = newDashboardPage(client, model.theme, logger)
	model.pages[TabTickets] = newTicketsPage(client, model.theme, model.keys, logger)
	model.pages[TabImport] = newImportPage(client, model.theme, cfg.Import, logger)
	model.pages[TabMarketTypes] = newMarketTypesPage(client, model.theme, model.keys, logger)
	model.pages[TabSettings] = newSettingsPage(client, model.theme, logger)

	return model
}

// Init implements tea.Model: loads the shared catalogs and lets every
// page start its own initial load.
func (model *Model) Init() tea.Cmd {
	commands := []tea.Cmd{model.loadReference()}
	for _, p := range model.pages {
		if cmd := p.Init(); cmd != nil {
			commands = append(commands, cmd)
		}
	}
	commands = append(commands, skeletonTick())
	return tea.Batch(commands...)
}

// loadReference fetches the four catalogs concurrently; each lands as
// its own referenceLoadedMsg and is merged into the shared snapshot.
func (model *Model) loadReference() tea.Cmd {
	client := model.client
	return tea.Batch(
		func() tea.Msg {
			sports, err := client.ListSports(context.Background())
			return referenceLoadedMsg{part: catalogSports, sports: sports, err: err}
		},
		func() tea.Msg {
			leagues, err := client.ListLeagues(context.Background(), 0)
			return referenceLoadedMsg{part: catalogLeagues, leagues: leagues, err: err}
		},
		func() tea.Msg {
			bookmakers, err := client.ListBookmakers(context.Background())
			return referenceLoadedMsg{part: catalogBookmakers, bookmakers: bookmakers, err: err}
		},
		func() tea.Msg {
			marketTypes, err := client.ListMarketTypes(context.Background(), false)
			return referenceLoadedMsg{part: catalogMarketTypes, marketTypes: marketTypes, err: err}
		},
	)
}

func skeletonTick() tea.Cmd {
	return tea.Tick(tui.SkeletonTickInterval, func(time.Time) tea.Msg {
		return skeletonTickMsg{}
	})
}

// Update implements tea.Model.
func (model *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case tea.KeyMsg:
		if cmd, handled := model.handleGlobalKey(message); handled {
			return model, cmd
		}
		return model, model.pages[model.activeTab].Update(message)

	case tea.MouseMsg:
		// Pages work in body coordinates, one line below the tab bar.
		message.Y--
		return model, model.pages[model.activeTab].Update(message)

	case referenceLoadedMsg:
		if message.err != nil {
			model.logger.Error("loading catalog failed", "catalog", message.part.label(), "error", message.err)
			return model, model.toasts.Error("Nepodařilo se načíst číselník (" + message.part.label() + "): " + message.err.Error())
		}
		switch message.part {
		case catalogSports:
			model.reference.sports = message.sports
		case catalogLeagues:
			model.reference.leagues = message.leagues
		case catalogBookmakers:
			model.reference.bookmakers = message.bookmakers
		case catalogMarketTypes:
			model.reference.marketTypes = message.marketTypes
		}
		for _, p := range model.pages {
			p.SetReference(&model.reference)
		}
		return model, nil

	case showToastMsg:
		switch message.level {
		case toast.LevelError:
			return model, model.toasts.Error(message.text)
		case toast.LevelInfo:
			return model, model.toasts.Info(message.text)
		default:
			return model, model.toasts.Success(message.text)
		}

	case toast.LeaveMsg, toast.DismissMsg:
		return model, model.toasts.Update(message)

	case celebrateMsg:
		model.confetti.Burst(model.width, model.height, time.Now())
		model.lastConfettiTick = time.Now()
		commands := []tea.Cmd{
			model.toasts.Success(celebrationText(message.streak)),
		}
		if !model.confettiTicking {
			model.confettiTicking = true
			commands = append(commands, confettiTick())
		}
		return model, tea.Batch(commands...)

	case confettiTickMsg:
		model.confetti.Advance(message.at, message.at.Sub(model.lastConfettiTick))
		model.lastConfettiTick = message.at
		if model.confetti.Active() {
			return model, confettiTick()
		}
		model.confettiTicking = false
		return model, nil

	case skeletonTickMsg:
		model.skeletonPhase++
		return model, skeletonTick()

	case logNoticeMsg:
		model.logNotice = message.Text
		model.logNoticeLevel = message.Level
		return model, tea.Tick(logNoticeFadeDelay, func(time.Time) tea.Msg {
			return logNoticeFadeMsg{}
		})

	case logNoticeFadeMsg:
		model.logNotice = ""
		return model, nil
	}

	// Everything else is page traffic. Result messages go to every
	// page; each page ignores what it does not own.
	var commands []tea.Cmd
	for _, p := range model.pages {
		if cmd := p.Update(message); cmd != nil {
			commands = append(commands, cmd)
		}
	}
	return model, tea.Batch(commands...)
}

func confettiTick() tea.Cmd {
	return tea.Tick(tui.ConfettiTickInterval, func(at time.Time) tea.Msg {
		return confettiTickMsg{at: at}
	})
}

func celebrationText(streak int) string {
	return "🔥 " + strconv.Itoa(streak) + "× výherní série!"
}

// handleGlobalKey processes bindings that work on every page unless
// the page has captured input.
func (model *Model) handleGlobalKey(message tea.KeyMsg) (tea.Cmd, bool) {
	if model.pages[model.activeTab].InputCaptured() {
		return nil, false
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return tea.Quit, true
	case key.Matches(message, model.keys.TabDashboard):
		model.activeTab = TabDashboard
		return nil, true
	case key.Matches(message, model.keys.TabTickets):
		model.activeTab = TabTickets
		return nil, true
	case key.Matches(message, model.keys.TabImport):
		model.activeTab = TabImport
		return nil, true
	case key.Matches(message, model.keys.TabMarketTypes):
		model.activeTab = TabMarketTypes
		return nil, true
	case key.Matches(message, model.keys.TabSettings):
		model.activeTab = TabSettings
		return nil, true
	case key.Matches(message, model.keys.TabNext):
		model.activeTab = (model.activeTab + 1) % Tab(len(model.pages))
		return nil, true
	}
	return nil, false
}

// View implements tea.Model.
func (model *Model) View() string {
	if !model.ready {
		return "načítám…"
	}

	header := model.renderTabBar()
	statusBar := model.renderStatusBar()
	bodyHeight := model.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := model.pages[model.activeTab].View(model.width, bodyHeight)
	body = fitHeight(body, bodyHeight)

	view := header + "\n" + body + "\n" + statusBar

	if model.toasts.Active() {
		view = model.overlayToasts(view)
	}
	if model.confetti.Active() {
		view = model.confetti.Overlay(view)
	}
	return view
}

// renderTabBar renders the header line with the five tabs.
func (model *Model) renderTabBar() string {
	active := lipgloss.NewStyle().
		Background(model.theme.TabActiveBackground).
		Foreground(model.theme.TabActiveForeground).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(model.theme.TabInactiveForeground).
		Padding(0, 1)

	var parts []string
	for index, title := range tabTitles {
		label := strconv.Itoa(index+1) + " " + title
		if Tab(index) == model.activeTab {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	bar := strings.Join(parts, " ")

	barWidth := ansi.StringWidth(bar)
	if barWidth < model.width {
		bar += strings.Repeat(" ", model.width-barWidth)
	}
	return bar
}

// renderStatusBar renders the bottom line: a log notice when one is
// active, otherwise the keyboard help.
func (model *Model) renderStatusBar() string {
	var content string
	if model.logNotice != "" {
		color := model.theme.ToastInfo
		if model.logNoticeLevel >= slog.LevelError {
			color = model.theme.ToastError
		} else if model.logNoticeLevel >= slog.LevelWarn {
			color = model.theme.StatusOpen
		}
		content = lipgloss.NewStyle().Foreground(color).Render(model.logNotice)
	} else {
		help := lipgloss.NewStyle().Foreground(model.theme.HelpText)
		content = help.Render("1–5 záložky  /: filtr  r: obnovit  q: konec")
	}

	contentWidth := ansi.StringWidth(content)
	if contentWidth > model.width {
		content = ansi.Truncate(content, model.width, "…")
	} else if contentWidth < model.width {
		content += strings.Repeat(" ", model.width-contentWidth)
	}
	return content
}

// overlayToasts splices the toast stack into the bottom-right corner
// above the status bar.
func (model *Model) overlayToasts(view string) string {
	lines := model.toasts.View(model.theme, model.width/2)
	if len(lines) == 0 {
		return view
	}

	width := 0
	for _, line := range lines {
		if lineWidth := ansi.StringWidth(line); lineWidth > width {
			width = lineWidth
		}
	}
	anchorX := model.width - width - 1
	if anchorX < 0 {
		anchorX = 0
	}
	anchorY := model.height - len(lines) - 1
	if anchorY < 0 {
		anchorY = 0
	}
	return tui.SpliceOverlay(view, lines, anchorX, anchorY)
}

// fitHeight pads or trims a rendered body to exactly height lines.
func fitHeight(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
