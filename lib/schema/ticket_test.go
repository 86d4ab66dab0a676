// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"
	"time"
)

func TestStatusIsWinning(t *testing.T) {
	winning := map[Status]bool{
		StatusOpen:     false,
		StatusWon:      true,
		StatusLost:     false,
		StatusVoid:     false,
		StatusHalfWin:  true,
		StatusHalfLoss: false,
	}
	for status, want := range winning {
		if got := status.IsWinning(); got != want {
			t.Errorf("%s.IsWinning() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	labels := map[Status]string{
		StatusOpen:     "Čeká",
		StatusWon:      "Výhra",
		StatusLost:     "Prohra",
		StatusVoid:     "Vráceno",
		StatusHalfWin:  "½ Výhra",
		StatusHalfLoss: "½ Prohra",
	}
	for status, want := range labels {
		if got := status.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", status, got, want)
		}
	}
	if got := Status("weird").Label(); got != "weird" {
		t.Errorf("unknown status label = %q, want passthrough", got)
	}
}

func streakTicket(id int, status Status, createdAt time.Time) Ticket {
	return Ticket{ID: id, Status: status, CreatedAt: &createdAt}
}

func TestWinStreakAfterUpdate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	tests := []struct {
		name      string
		tickets   []Ticket
		updatedID int
		want      int
	}{
		{
			name:      "updated ticket alone",
			tickets:   []Ticket{streakTicket(1, StatusWon, at(0))},
			updatedID: 1,
			want:      1,
		},
		{
			name: "two prior wins extend the streak",
			tickets: []Ticket{
				streakTicket(1, StatusWon, at(0)),
				streakTicket(2, StatusHalfWin, at(1)),
				streakTicket(3, StatusWon, at(2)),
			},
			updatedID: 3,
			want:      3,
		},
		{
			name: "loss breaks the run",
			tickets: []Ticket{
				streakTicket(1, StatusWon, at(0)),
				streakTicket(2, StatusLost, at(1)),
				streakTicket(3, StatusWon, at(2)),
				streakTicket(4, StatusWon, at(3)),
			},
			updatedID: 4,
			want:      2,
		},
		{
			name: "open ticket breaks the run",
			tickets: []Ticket{
				streakTicket(1, StatusWon, at(0)),
				streakTicket(2, StatusOpen, at(1)),
				streakTicket(3, StatusWon, at(2)),
			},
			updatedID: 3,
			want:      1,
		},
		{
			name: "void breaks the run even between wins",
			tickets: []Ticket{
				streakTicket(1, StatusWon, at(0)),
				streakTicket(2, StatusVoid, at(1)),
				streakTicket(3, StatusWon, at(2)),
				streakTicket(4, StatusWon, at(3)),
			},
			updatedID: 4,
			want:      2,
		},
		{
			name: "updated ticket mid-list is skipped, not double counted",
			tickets: []Ticket{
				streakTicket(1, StatusWon, at(0)),
				streakTicket(2, StatusWon, at(1)),
				streakTicket(3, StatusWon, at(2)),
			},
			updatedID: 2,
			want:      3,
		},
		{
			name: "creation-time ties fall back to higher ID first",
			tickets: []Ticket{
				streakTicket(1, StatusLost, at(0)),
				streakTicket(2, StatusWon, at(0)),
				streakTicket(3, StatusWon, at(1)),
			},
			updatedID: 3,
			want:      2,
		},
		{
			name: "missing creation time sorts last",
			tickets: []Ticket{
				{ID: 1, Status: StatusLost},
				streakTicket(2, StatusWon, at(0)),
				streakTicket(3, StatusWon, at(1)),
			},
			updatedID: 3,
			want:      2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WinStreakAfterUpdate(tc.tickets, tc.updatedID); got != tc.want {
				t.Errorf("WinStreakAfterUpdate() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProfitValue(t *testing.T) {
	profit := 42.5
	if got := (Ticket{Profit: &profit}).ProfitValue(); got != 42.5 {
		t.Errorf("ProfitValue() = %v", got)
	}
	if got := (Ticket{}).ProfitValue(); got != 0 {
		t.Errorf("ProfitValue() without profit = %v, want 0", got)
	}
}

func TestLookupsByName(t *testing.T) {
	sports := []Sport{{ID: 1, Name: "Fotbal"}, {ID: 2, Name: "Hokej"}}
	if s := SportByName(sports, "hokej"); s == nil || s.ID != 2 {
		t.Errorf("SportByName case-insensitive lookup failed: %+v", s)
	}
	if s := SportByName(sports, "Tenis"); s != nil {
		t.Errorf("SportByName for unknown sport = %+v, want nil", s)
	}

	leagues := []League{{ID: 5, Name: "Premier League", SportID: 1}}
	if l := LeagueByName(leagues, "PREMIER LEAGUE"); l == nil || l.ID != 5 {
		t.Errorf("LeagueByName case-insensitive lookup failed: %+v", l)
	}

	types := []MarketType{{ID: 9, Name: "Over/Under 2.5"}}
	if m := MarketTypeByName(types, "over/under 2.5"); m == nil || m.ID != 9 {
		t.Errorf("MarketTypeByName case-insensitive lookup failed: %+v", m)
	}
}
