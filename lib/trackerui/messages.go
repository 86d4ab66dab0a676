// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"time"

	"github.com/toz-panzmoravy/bettracker/lib/imageprep"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// catalogPart identifies which shared catalog a referenceLoadedMsg
// carries. The four fetches run concurrently and land one by one.
type catalogPart int

const (
	catalogSports catalogPart = iota
	catalogLeagues
	catalogBookmakers
	catalogMarketTypes
)

func (part catalogPart) label() string {
	switch part {
	case catalogLeagues:
		return "ligy"
	case catalogBookmakers:
		return "sázkové kanceláře"
	case catalogMarketTypes:
		return "typy sázek"
	default:
		return "sporty"
	}
}

// referenceLoadedMsg delivers one shared catalog fetched at startup.
// Pages read the merged set from the root model.
type referenceLoadedMsg struct {
	part        catalogPart
	sports      []schema.Sport
	leagues     []schema.League
	bookmakers  []schema.Bookmaker
	marketTypes []schema.MarketType
	err         error
}

// ticketsLoadedMsg delivers a ticket listing. seq drops stale results
// when the user changed filters while a load was in flight.
type ticketsLoadedMsg struct {
	seq     int
	tickets []schema.Ticket
	err     error
}

// ticketSavedMsg delivers the result of a create or full edit.
type ticketSavedMsg struct {
	ticket schema.Ticket
	err    error
}

// statusChangedMsg delivers the result of an inline status change.
// previous allows rolling back the optimistic row update on error.
type statusChangedMsg struct {
	ticketID int
	previous schema.Status
	ticket   schema.Ticket
	err      error
}

// ticketDeletedMsg delivers the result of a delete.
type ticketDeletedMsg struct {
	ticketID int
	err      error
}

// ticketRefreshedMsg delivers the authoritative row fetched after an
// ambiguous update failure.
type ticketRefreshedMsg struct {
	ticket schema.Ticket
	err    error
}

// statsOverviewMsg delivers the dashboard aggregate bundle. seq drops
// stale results after a filter change.
type statsOverviewMsg struct {
	seq      int
	overview schema.StatsOverview
	err      error
}

// profitSeriesMsg delivers the daily profit curve for the dashboard
// chart.
type profitSeriesMsg struct {
	seq    int
	points []schema.TimeseriesPoint
	err    error
}

// aiAnalysisMsg delivers the AI analysis result for the dashboard
// modal.
type aiAnalysisMsg struct {
	response schema.AIAnalyzeResponse
	err      error
}

// analysisHistoryMsg delivers the most recent stored analysis, shown
// in the modal before the user asks for a fresh one.
type analysisHistoryMsg struct {
	analyses []schema.AIAnalysis
	err      error
}

// imagePreparedMsg delivers the downscaled screenshot ready for OCR.
type imagePreparedMsg struct {
	prepared *imageprep.Prepared
	path     string
	err      error
}

// ocrResultMsg delivers the OCR parse of a screenshot.
type ocrResultMsg struct {
	result schema.OCRResult
	err    error
}

// importSavedMsg delivers the outcome of the sequential save-all run
// on the import page. Saving stops at the first failure: saved
// candidates stay saved, failedIndex names the candidate that broke
// the run (-1 when all succeeded).
type importSavedMsg struct {
	saved       []schema.Ticket
	marketTypes []schema.MarketType // Market types lazily created during the run.
	failedIndex int
	err         error
}

// topMarketTypesMsg delivers the backend's most-used market types for
// the typeahead shortlist in the ticket edit form.
type topMarketTypesMsg struct {
	types []schema.MarketType
	err   error
}

// marketTypeStatsMsg delivers the market types with their performance
// aggregates.
type marketTypeStatsMsg struct {
	stats []schema.MarketTypeStat
	err   error
}

// marketTypeSavedMsg delivers a created or updated market type.
type marketTypeSavedMsg struct {
	marketType schema.MarketType
	created    bool
	err        error
}

// marketTypeDeletedMsg delivers a market type deletion result.
type marketTypeDeletedMsg struct {
	id  int
	err error
}

// settingsLoadedMsg delivers the stored app settings.
type settingsLoadedMsg struct {
	settings schema.AppSettings
	err      error
}

// settingsSavedMsg delivers a settings save result.
type settingsSavedMsg struct {
	settings schema.AppSettings
	err      error
}

// ocrEngineRestartedMsg delivers the result of an unload-and-reload
// cycle of the backend's OCR engine.
type ocrEngineRestartedMsg struct {
	err error
}

// ocrHealthMsg delivers the OCR engine probe for the settings page.
type ocrHealthMsg struct {
	health schema.OCRHealth
	err    error
}

// confettiTickMsg drives the celebration animation while a burst is
// active.
type confettiTickMsg struct {
	at time.Time
}

// skeletonTickMsg drives the loading shimmer while any page is
// waiting on the backend.
type skeletonTickMsg struct{}
