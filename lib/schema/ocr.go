// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// OCRTicket is one candidate ticket recognized from a screenshot.
// Numeric fields are strings on the wire-facing edit side of the
// import flow; the backend returns them as numbers which the client
// renders into the editable form. A nil numeric field means the OCR
// model did not recognize the value.
type OCRTicket struct {
	HomeTeam    string   `json:"home_team"`
	AwayTeam    string   `json:"away_team"`
	Sport       string   `json:"sport"`
	League      string   `json:"league"`
	MarketLabel string   `json:"market_label"`
	Selection   string   `json:"selection"`
	Odds        *float64 `json:"odds,omitempty"`
	Stake       *float64 `json:"stake,omitempty"`
	Payout      *float64 `json:"payout,omitempty"`
	Status      Status   `json:"status"`
	IsLive      bool     `json:"is_live"`
}

// OCRResult is the response of the OCR parse endpoint.
type OCRResult struct {
	Tickets    []OCRTicket `json:"tickets"`
	RawText    string      `json:"raw_text"`
	Confidence *float64    `json:"confidence,omitempty"`
}

// OCRHealth is the response of the OCR health/restart endpoint.
type OCRHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// BookmakerProfile selects the OCR prompt profile tuned for a
// bookmaker's slip layout.
type BookmakerProfile string

const (
	// ProfileTipsport parses Tipsport screenshots (the default).
	ProfileTipsport BookmakerProfile = "tipsport"
	// ProfileBetano parses Betano screenshots.
	ProfileBetano BookmakerProfile = "betano"
)

// BookmakerProfiles lists the selectable OCR profiles.
var BookmakerProfiles = []BookmakerProfile{ProfileTipsport, ProfileBetano}
