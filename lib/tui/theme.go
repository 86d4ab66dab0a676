// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// Theme defines the color palette for the tracker's terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// domain's semantic categories: settlement statuses and signed profit.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Settlement status colors.
	StatusOpen     lipgloss.Color
	StatusWon      lipgloss.Color
	StatusLost     lipgloss.Color
	StatusVoid     lipgloss.Color
	StatusHalfWin  lipgloss.Color
	StatusHalfLoss lipgloss.Color

	// Signed money. ProfitPositive also colors win rates above
	// break-even; ProfitNegative the other way.
	ProfitPositive lipgloss.Color
	ProfitNegative lipgloss.Color
	ProfitNeutral  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Floating menus and modals.
	MenuBackground  lipgloss.Color
	ModalBackground lipgloss.Color

	// Toast notification accents.
	ToastSuccess lipgloss.Color
	ToastError   lipgloss.Color
	ToastInfo    lipgloss.Color

	// Tab bar.
	TabActiveBackground   lipgloss.Color
	TabActiveForeground   lipgloss.Color
	TabInactiveForeground lipgloss.Color

	// Chart accents.
	ChartLine lipgloss.Color
	ChartAxis lipgloss.Color
}

// StatusColor returns the color for a settlement status. Half
// outcomes use dimmer variants of the full win/loss colors; unknown
// values return FaintText.
func (theme Theme) StatusColor(status schema.Status) lipgloss.Color {
	switch status {
	case schema.StatusOpen:
		return theme.StatusOpen
	case schema.StatusWon:
		return theme.StatusWon
	case schema.StatusLost:
		return theme.StatusLost
	case schema.StatusVoid:
		return theme.StatusVoid
	case schema.StatusHalfWin:
		return theme.StatusHalfWin
	case schema.StatusHalfLoss:
		return theme.StatusHalfLoss
	default:
		return theme.FaintText
	}
}

// ProfitColor returns the color for a signed money amount: green for
// gains, red for losses, gray for exactly zero.
func (theme Theme) ProfitColor(profit float64) lipgloss.Color {
	switch {
	case profit > 0:
		return theme.ProfitPositive
	case profit < 0:
		return theme.ProfitNegative
	default:
		return theme.ProfitNeutral
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusOpen:     lipgloss.Color("220"), // amber: waiting for settlement
	StatusWon:      lipgloss.Color("114"), // green
	StatusLost:     lipgloss.Color("196"), // red
	StatusVoid:     lipgloss.Color("245"), // gray: stake returned
	StatusHalfWin:  lipgloss.Color("78"),  // dimmer green
	StatusHalfLoss: lipgloss.Color("167"), // dimmer red

	ProfitPositive: lipgloss.Color("114"),
	ProfitNegative: lipgloss.Color("196"),
	ProfitNeutral:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("75"), // blue

	MenuBackground:  lipgloss.Color("237"),
	ModalBackground: lipgloss.Color("235"),

	ToastSuccess: lipgloss.Color("114"),
	ToastError:   lipgloss.Color("196"),
	ToastInfo:    lipgloss.Color("75"),

	TabActiveBackground:   lipgloss.Color("236"),
	TabActiveForeground:   lipgloss.Color("255"),
	TabInactiveForeground: lipgloss.Color("245"),

	ChartLine: lipgloss.Color("114"),
	ChartAxis: lipgloss.Color("240"),
}
