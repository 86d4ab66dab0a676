// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/toast"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

// settingsPage edits the bankroll and shows the backend and OCR
// engine status.
type settingsPage struct {
	client *api.Client
	theme  tui.Theme
	logger *slog.Logger

	ref *referenceData

	settings       schema.AppSettings
	settingsLoaded bool

	bankrollInput textinput.Model
	editing       bool

	health       schema.OCRHealth
	healthErr    error
	healthProbed bool
}

func newSettingsPage(client *api.Client, theme tui.Theme, logger *slog.Logger) *settingsPage {
	bankrollInput := textinput.New()
	bankrollInput.Prompt = "> "
	bankrollInput.Placeholder = "10000"
	bankrollInput.CharLimit = 12

	return &settingsPage{
		client:        client,
		theme:         theme,
		logger:        logger,
		bankrollInput: bankrollInput,
	}
}

func (page *settingsPage) Init() tea.Cmd {
	return tea.Batch(page.load(), page.probeHealth())
}

func (page *settingsPage) SetReference(ref *referenceData) {
	page.ref = ref
}

func (page *settingsPage) InputCaptured() bool {
	return page.editing
}

func (page *settingsPage) load() tea.Cmd {
	client := page.client
	return func() tea.Msg {
		settings, err := client.GetAppSettings(context.Background())
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (page *settingsPage) probeHealth() tea.Cmd {
	client := page.client
	return func() tea.Msg {
		health, err := client.OCRHealth(context.Background(), false)
		return ocrHealthMsg{health: health, err: err}
	}
}

func (page *settingsPage) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case tea.KeyMsg:
		return page.handleKey(message)

	case settingsLoadedMsg:
		if message.err != nil {
			page.logger.Error("loading settings failed", "error", message.err)
			return showToast(toast.LevelError, "Nepodařilo se načíst nastavení: "+message.err.Error())
		}
		page.settings = message.settings
		page.settingsLoaded = true
		return nil

	case settingsSavedMsg:
		if message.err != nil {
			return showToast(toast.LevelError, "Nastavení se nepodařilo uložit: "+message.err.Error())
		}
		page.settings = message.settings
		return showToast(toast.LevelSuccess, "Nastavení uloženo.")

	case ocrHealthMsg:
		page.healthProbed = true
		page.health = message.health
		page.healthErr = message.err
		return nil
	}
	return nil
}

func (page *settingsPage) handleKey(message tea.KeyMsg) tea.Cmd {
	if page.editing {
		switch message.String() {
		case "enter":
			return page.submitBankroll()
		case "esc":
			page.editing = false
			page.bankrollInput.Blur()
			return nil
		}
		var command tea.Cmd
		page.bankrollInput, command = page.bankrollInput.Update(message)
		return command
	}

	switch message.String() {
	case "e", "enter":
		page.editing = true
		page.bankrollInput.SetValue(strconv.FormatFloat(page.settings.Bankroll, 'f', -1, 64))
		page.bankrollInput.CursorEnd()
		page.bankrollInput.Focus()
		return textinput.Blink
	case "o":
		page.healthProbed = false
		return page.probeHealth()
	case "r":
		return tea.Batch(page.load(), page.probeHealth())
	}
	return nil
}

func (page *settingsPage) submitBankroll() tea.Cmd {
	raw := strings.TrimSpace(strings.ReplaceAll(page.bankrollInput.Value(), ",", "."))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return showToast(toast.LevelError, "Bankroll musí být nezáporné číslo.")
	}

	page.editing = false
	page.bankrollInput.Blur()

	client := page.client
	return func() tea.Msg {
		saved, err := client.UpdateAppSettings(context.Background(), schema.AppSettings{Bankroll: value})
		return settingsSavedMsg{settings: saved, err: err}
	}
}

func (page *settingsPage) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(page.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	value := lipgloss.NewStyle().Foreground(page.theme.NormalText).Bold(true)

	var builder strings.Builder
	builder.WriteString(title.Render("Nastavení"))
	builder.WriteString("\n\n")

	builder.WriteString(faint.Render("Bankroll    "))
	if page.editing {
		builder.WriteString(page.bankrollInput.View())
	} else if page.settingsLoaded {
		builder.WriteString(value.Render(schema.FormatCZK(page.settings.Bankroll)))
		builder.WriteString(faint.Render("  (e upravit)"))
	} else {
		builder.WriteString(faint.Render("načítám…"))
	}
	builder.WriteString("\n\n")

	builder.WriteString(faint.Render("Backend     "))
	builder.WriteString(value.Render(page.client.BaseURL()))
	builder.WriteString("\n")

	builder.WriteString(faint.Render("OCR engine  "))
	builder.WriteString(page.renderHealth())
	builder.WriteString(faint.Render("  (o znovu ověřit)"))
	builder.WriteString("\n\n")

	builder.WriteString(faint.Render("r znovu načíst vše"))
	return builder.String()
}

func (page *settingsPage) renderHealth() string {
	faint := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	if !page.healthProbed {
		return faint.Render("ověřuji…")
	}
	if page.healthErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(page.theme.StatusLost)
		return errStyle.Render("nedostupný: " + page.healthErr.Error())
	}

	var style lipgloss.Style
	switch page.health.Status {
	case "ok", "ready":
		style = lipgloss.NewStyle().Foreground(page.theme.StatusWon)
	default:
		style = lipgloss.NewStyle().Foreground(page.theme.StatusOpen)
	}
	text := page.health.Status
	if page.health.Message != "" {
		text += " (" + page.health.Message + ")"
	}
	return style.Render(text)
}
