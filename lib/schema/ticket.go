// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"sort"
	"time"
)

// Status is the settlement outcome of a ticket.
type Status string

const (
	// StatusOpen means the bet has not settled yet.
	StatusOpen Status = "open"
	// StatusWon means the bet settled as a full win.
	StatusWon Status = "won"
	// StatusLost means the bet settled as a full loss.
	StatusLost Status = "lost"
	// StatusVoid means the stake was returned (cancelled event,
	// push, bookmaker storno).
	StatusVoid Status = "void"
	// StatusHalfWin is an Asian-handicap half win: half the stake
	// wins, half is returned.
	StatusHalfWin Status = "half_win"
	// StatusHalfLoss is an Asian-handicap half loss.
	StatusHalfLoss Status = "half_loss"
)

// Statuses lists every status in the order the UI presents them.
var Statuses = []Status{
	StatusOpen, StatusWon, StatusLost, StatusVoid, StatusHalfWin, StatusHalfLoss,
}

// IsWinning reports whether the status counts as a win. Half wins
// count as wins for streak and celebration purposes.
func (s Status) IsWinning() bool {
	return s == StatusWon || s == StatusHalfWin
}

// IsLosing reports whether the status counts as a loss.
func (s Status) IsLosing() bool {
	return s == StatusLost || s == StatusHalfLoss
}

// Label returns the Czech display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusWon:
		return "Výhra"
	case StatusLost:
		return "Prohra"
	case StatusOpen:
		return "Čeká"
	case StatusVoid:
		return "Vráceno"
	case StatusHalfWin:
		return "½ Výhra"
	case StatusHalfLoss:
		return "½ Prohra"
	default:
		return string(s)
	}
}

// Icon returns the marker glyph shown next to the status label.
func (s Status) Icon() string {
	switch s {
	case StatusWon, StatusHalfWin:
		return "✅"
	case StatusLost, StatusHalfLoss:
		return "❌"
	case StatusOpen:
		return "⏳"
	case StatusVoid:
		return "↩"
	default:
		return ""
	}
}

// Source records how a ticket entered the tracker.
type Source string

const (
	// SourceOCR marks tickets imported from a screenshot.
	SourceOCR Source = "ocr"
	// SourceManual marks tickets typed in by hand.
	SourceManual Source = "manual"
)

// Ticket is a single recorded bet as returned by the backend.
type Ticket struct {
	ID           int       `json:"id"`
	BookmakerID  int       `json:"bookmaker_id"`
	SportID      int       `json:"sport_id"`
	LeagueID     *int      `json:"league_id,omitempty"`
	MarketTypeID *int      `json:"market_type_id,omitempty"`

	HomeTeam    string     `json:"home_team"`
	AwayTeam    string     `json:"away_team"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	MarketLabel string     `json:"market_label,omitempty"`
	Selection   string     `json:"selection,omitempty"`

	Odds   float64  `json:"odds"`
	Stake  float64  `json:"stake"`
	Payout *float64 `json:"payout,omitempty"`
	Profit *float64 `json:"profit,omitempty"`

	Status     Status `json:"status"`
	TicketType string `json:"ticket_type"`
	IsLive     bool   `json:"is_live"`
	Source     Source `json:"source"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	SettledAt *time.Time `json:"settled_at,omitempty"`

	// Nested lookups resolved by the backend.
	Bookmaker  *Bookmaker  `json:"bookmaker,omitempty"`
	Sport      *Sport      `json:"sport,omitempty"`
	League     *League     `json:"league,omitempty"`
	MarketType *MarketType `json:"market_type,omitempty"`
}

// ProfitValue returns the computed profit, treating a missing value
// as zero for display purposes.
func (t Ticket) ProfitValue() float64 {
	if t.Profit == nil {
		return 0
	}
	return *t.Profit
}

// TicketCreate is the request body for creating a ticket.
type TicketCreate struct {
	BookmakerID  int        `json:"bookmaker_id"`
	SportID      int        `json:"sport_id"`
	LeagueID     *int       `json:"league_id,omitempty"`
	MarketTypeID *int       `json:"market_type_id,omitempty"`
	HomeTeam     string     `json:"home_team"`
	AwayTeam     string     `json:"away_team"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	MarketLabel  string     `json:"market_label,omitempty"`
	Selection    string     `json:"selection,omitempty"`
	Odds         float64    `json:"odds"`
	Stake        float64    `json:"stake"`
	Payout       *float64   `json:"payout,omitempty"`
	Status       Status     `json:"status"`
	TicketType   string     `json:"ticket_type,omitempty"`
	IsLive       bool       `json:"is_live"`
	Source       Source     `json:"source"`
}

// TicketUpdate is the request body for a partial ticket update. Nil
// fields are omitted and left unchanged by the backend.
type TicketUpdate struct {
	BookmakerID  *int       `json:"bookmaker_id,omitempty"`
	SportID      *int       `json:"sport_id,omitempty"`
	LeagueID     *int       `json:"league_id,omitempty"`
	MarketTypeID *int       `json:"market_type_id,omitempty"`
	HomeTeam     *string    `json:"home_team,omitempty"`
	AwayTeam     *string    `json:"away_team,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	MarketLabel  *string    `json:"market_label,omitempty"`
	Selection    *string    `json:"selection,omitempty"`
	Odds         *float64   `json:"odds,omitempty"`
	Stake        *float64   `json:"stake,omitempty"`
	Payout       *float64   `json:"payout,omitempty"`
	Status       *Status    `json:"status,omitempty"`
	IsLive       *bool      `json:"is_live,omitempty"`
}

// WinStreakAfterUpdate computes the win streak that a just-settled
// ticket participates in. The updated ticket counts as 1; the
// remaining tickets are walked in descending creation order (ties
// broken by higher ID, the later insert) and each consecutive winning
// ticket extends the streak. The first non-winning ticket ends it.
//
// This mirrors the backend-independent celebration rule: half wins
// count as wins, everything else (open, lost, void, half_loss) breaks
// the run.
func WinStreakAfterUpdate(tickets []Ticket, updatedID int) int {
	sorted := make([]Ticket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			return a.ID > b.ID
		case a.CreatedAt == nil:
			return false
		case b.CreatedAt == nil:
			return true
		case a.CreatedAt.Equal(*b.CreatedAt):
			return a.ID > b.ID
		default:
			return a.CreatedAt.After(*b.CreatedAt)
		}
	})

	streak := 1
	for _, t := range sorted {
		if t.ID == updatedID {
			continue
		}
		if t.Status.IsWinning() {
			streak++
			continue
		}
		break
	}
	return streak
}
