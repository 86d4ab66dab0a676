// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

func TestClassifyEmptyOCR(t *testing.T) {
	withText := classifyEmptyOCR("Tipsport  Sparta - Slavia  kurz 1.85  vklad 100 Kč")
	if !strings.Contains(withText, "nenašlo žádné tikety") {
		t.Errorf("recognized text should point at the profile, got %q", withText)
	}

	withoutText := classifyEmptyOCR("  \n ")
	if !strings.Contains(withoutText, "nedokázalo rozpoznat") {
		t.Errorf("no text should point at the screenshot, got %q", withoutText)
	}
}

func TestResolveBookmakerID(t *testing.T) {
	bookmakers := []schema.Bookmaker{
		{ID: 7, Name: "Tipsport"},
		{ID: 9, Name: "Betano"},
	}

	if id := resolveBookmakerID(bookmakers, schema.ProfileBetano); id != 9 {
		t.Errorf("resolveBookmakerID(betano) = %d, want 9", id)
	}
	if id := resolveBookmakerID(bookmakers, schema.BookmakerProfile("fortuna")); id != 7 {
		t.Errorf("unknown profile should fall back to the first bookmaker, got %d", id)
	}
	if id := resolveBookmakerID(nil, schema.ProfileTipsport); id != 1 {
		t.Errorf("empty catalog should fall back to 1, got %d", id)
	}
}

func importTestReference() *referenceData {
	return &referenceData{
		sports: []schema.Sport{
			{ID: 1, Name: "Fotbal"},
			{ID: 2, Name: "Hokej"},
		},
		leagues: []schema.League{
			{ID: 11, SportID: 2, Name: "Extraliga"},
		},
		bookmakers: []schema.Bookmaker{
			{ID: 7, Name: "Tipsport"},
		},
		marketTypes: []schema.MarketType{
			{ID: 21, Name: "1X2", IsActive: true},
		},
	}
}

func floatPtr(value float64) *float64 { return &value }

func TestMarketLabelCandidates(t *testing.T) {
	ref := importTestReference()
	ref.marketTypes = []schema.MarketType{
		{ID: 21, Name: "1X2", IsActive: true},
		{ID: 22, Name: "Počet gólů", IsActive: true, Sports: []schema.Sport{{ID: 2, Name: "Hokej"}}},
		{ID: 23, Name: "Rohy", IsActive: true, Sports: []schema.Sport{{ID: 1, Name: "Fotbal"}}},
		{ID: 24, Name: "Zrušený trh", IsActive: false},
	}

	hockey := marketLabelCandidates(ref, "hokej")
	want := []string{"1X2", "Počet gólů"}
	if len(hockey) != len(want) || hockey[0] != want[0] || hockey[1] != want[1] {
		t.Errorf("marketLabelCandidates(hokej) = %v, want %v", hockey, want)
	}

	// Unknown sport resolves to the first catalog entry, matching the
	// save path.
	fallback := marketLabelCandidates(ref, "kriket")
	want = []string{"1X2", "Rohy"}
	if len(fallback) != len(want) || fallback[0] != want[0] || fallback[1] != want[1] {
		t.Errorf("marketLabelCandidates(kriket) = %v, want %v", fallback, want)
	}
}

func TestSaveCandidatesResolvesCatalogsAndCreatesMarketTypes(t *testing.T) {
	var createdTickets []schema.TicketCreate
	var createdTypes []schema.MarketTypeCreate

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/market-types":
			var create schema.MarketTypeCreate
			if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
				t.Errorf("decoding market type create: %v", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			createdTypes = append(createdTypes, create)
			json.NewEncoder(w).Encode(schema.MarketType{ID: 100 + len(createdTypes), Name: create.Name, IsActive: true})
		case r.Method == http.MethodPost && r.URL.Path == "/api/tickets":
			var create schema.TicketCreate
			if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
				t.Errorf("decoding ticket create: %v", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			createdTickets = append(createdTickets, create)
			json.NewEncoder(w).Encode(schema.Ticket{ID: len(createdTickets), Status: create.Status})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := api.NewClient(server.URL + "/api")
	candidates := []importCandidate{
		{
			OCRTicket: schema.OCRTicket{
				HomeTeam: "Sparta", AwayTeam: "Slavia",
				Sport: "hokej", League: "extraliga", MarketLabel: "1X2",
				Odds: floatPtr(1.85), Stake: floatPtr(100), Status: schema.StatusOpen,
			},
			source: schema.SourceOCR,
		},
		{
			OCRTicket: schema.OCRTicket{
				HomeTeam: "Plzeň", AwayTeam: "Baník",
				Sport: "kriket", League: "neznámá", MarketLabel: "Over 2.5",
				Odds: floatPtr(2.1), Stake: floatPtr(50),
			},
			source: schema.SourceManual,
		},
	}

	message := saveCandidates(client, importTestReference(), candidates, 7)()
	saved, ok := message.(importSavedMsg)
	if !ok {
		t.Fatalf("want importSavedMsg, got %T", message)
	}
	if saved.err != nil {
		t.Fatalf("saveCandidates failed: %v", saved.err)
	}
	if saved.failedIndex != -1 {
		t.Errorf("failedIndex = %d, want -1", saved.failedIndex)
	}
	if len(saved.saved) != 2 {
		t.Fatalf("saved %d tickets, want 2", len(saved.saved))
	}

	first := createdTickets[0]
	if first.SportID != 2 {
		t.Errorf("sport name should resolve case-insensitively, got sport_id %d", first.SportID)
	}
	if first.LeagueID == nil || *first.LeagueID != 11 {
		t.Errorf("league name should resolve case-insensitively, got %v", first.LeagueID)
	}
	if first.MarketTypeID == nil || *first.MarketTypeID != 21 {
		t.Errorf("known market label should reuse the catalog type, got %v", first.MarketTypeID)
	}
	if first.Source != schema.SourceOCR {
		t.Errorf("imported ticket source = %v, want ocr", first.Source)
	}

	second := createdTickets[1]
	if second.SportID != 1 {
		t.Errorf("unknown sport should fall back to the first catalog sport, got %d", second.SportID)
	}
	if second.LeagueID != nil {
		t.Errorf("unknown league should stay unset, got %v", second.LeagueID)
	}
	if second.Status != schema.StatusOpen {
		t.Errorf("missing status should default to open, got %v", second.Status)
	}
	if second.Source != schema.SourceManual {
		t.Errorf("hand-added ticket source = %v, want manual", second.Source)
	}

	if len(createdTypes) != 1 || createdTypes[0].Name != "Over 2.5" {
		t.Errorf("unknown market label should create one type, got %v", createdTypes)
	}
	if len(createdTypes) == 1 && (len(createdTypes[0].SportIDs) != 1 || createdTypes[0].SportIDs[0] != 1) {
		t.Errorf("created type should bind to the resolved sport, got %v", createdTypes[0].SportIDs)
	}
	if second.MarketTypeID == nil || *second.MarketTypeID != 101 {
		t.Errorf("created type should back the second ticket, got %v", second.MarketTypeID)
	}
	if len(saved.marketTypes) != 1 {
		t.Errorf("importSavedMsg should report the created types, got %d", len(saved.marketTypes))
	}
}

func TestSaveCandidatesStopsAtFirstFailure(t *testing.T) {
	var ticketPosts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/tickets" {
			ticketPosts++
			if ticketPosts == 2 {
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(map[string]string{"detail": "kurz mimo rozsah"})
				return
			}
			json.NewEncoder(w).Encode(schema.Ticket{ID: ticketPosts})
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	client := api.NewClient(server.URL + "/api")
	candidate := importCandidate{
		OCRTicket: schema.OCRTicket{
			HomeTeam: "Sparta", AwayTeam: "Slavia", Sport: "Fotbal",
			Odds: floatPtr(1.5), Stake: floatPtr(100),
		},
		source: schema.SourceOCR,
	}
	candidates := []importCandidate{candidate, candidate, candidate}

	message := saveCandidates(client, importTestReference(), candidates, 7)()
	saved, ok := message.(importSavedMsg)
	if !ok {
		t.Fatalf("want importSavedMsg, got %T", message)
	}
	if saved.err == nil {
		t.Fatal("failed create should surface an error")
	}
	if saved.failedIndex != 1 {
		t.Errorf("failedIndex = %d, want 1", saved.failedIndex)
	}
	if len(saved.saved) != 1 {
		t.Errorf("run should keep the first saved ticket, got %d", len(saved.saved))
	}
	if ticketPosts != 2 {
		t.Errorf("run should stop after the failure, posted %d times", ticketPosts)
	}
}
