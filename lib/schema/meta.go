// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "strings"

// Sport is a reference entity used to categorize tickets and leagues.
type Sport struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// League is a competition within a sport.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	SportID int    `json:"sport_id"`
	Country string `json:"country,omitempty"`
	Sport   *Sport `json:"sport,omitempty"`
}

// Bookmaker is a betting operator the user places bets with.
type Bookmaker struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// SportByName resolves a sport by case-insensitive exact name match.
// Returns nil when no sport matches.
func SportByName(sports []Sport, name string) *Sport {
	for i := range sports {
		if strings.EqualFold(sports[i].Name, name) {
			return &sports[i]
		}
	}
	return nil
}

// LeagueByName resolves a league by case-insensitive exact name
// match. Returns nil when no league matches.
func LeagueByName(leagues []League, name string) *League {
	for i := range leagues {
		if strings.EqualFold(leagues[i].Name, name) {
			return &leagues[i]
		}
	}
	return nil
}
