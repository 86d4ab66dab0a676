// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the tracker TUI.
type KeyMap struct {
	// Navigation within the active page.
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Tab switching.
	TabDashboard   key.Binding
	TabTickets     key.Binding
	TabImport      key.Binding
	TabMarketTypes key.Binding
	TabSettings    key.Binding
	TabNext        key.Binding

	// Filter.
	FilterActivate key.Binding // Enter filter mode on list pages.
	FilterClear    key.Binding

	// Actions.
	Select  key.Binding // Enter: open dropdown / submit / drill in.
	Edit    key.Binding
	New     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Sort    key.Binding // Cycle the sort column on the tickets page.
	Analyze key.Binding // Open the AI analysis modal on the dashboard.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys, number keys for tabs.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "nahoru"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "dolů"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "vlevo"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "vpravo"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "stránka nahoru"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "stránka dolů"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "začátek"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "konec"),
	),

	TabDashboard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	TabTickets: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "tikety"),
	),
	TabImport: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "import"),
	),
	TabMarketTypes: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "trhy"),
	),
	TabSettings: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "nastavení"),
	),
	TabNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "další záložka"),
	),

	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filtr"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "zrušit filtr"),
	),

	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "vybrat"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "upravit"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "nový"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "smazat"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "obnovit"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "řazení"),
	),
	Analyze: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "AI analýza"),
	),

	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "konec"),
	),
}
