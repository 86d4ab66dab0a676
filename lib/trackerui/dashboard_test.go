// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"strings"
	"testing"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
	"github.com/toz-panzmoravy/bettracker/lib/tui"
)

func testDashboardPage() *dashboardPage {
	return newDashboardPage(api.NewClient("http://127.0.0.1:1/api"), tui.DefaultTheme, testLogger())
}

func TestProfitChartPlotsBothSeries(t *testing.T) {
	points := []schema.TimeseriesPoint{
		{Date: "2026-08-01", Profit: 120, CumulativeProfit: 120},
		{Date: "2026-08-02", Profit: -40, CumulativeProfit: 80},
		{Date: "2026-08-03", Profit: 200, CumulativeProfit: 280},
	}

	chart := renderProfitChart(tui.DefaultTheme, points, 80)
	if chart == "" {
		t.Fatal("three points should render a chart")
	}
	for _, legend := range []string{"Kumulativní zisk", "Denní zisk"} {
		if !strings.Contains(chart, legend) {
			t.Errorf("chart is missing the %q legend", legend)
		}
	}
	if !strings.Contains(chart, "2026-08-01 – 2026-08-03") {
		t.Error("chart is missing the date range caption")
	}

	if got := renderProfitChart(tui.DefaultTheme, points[:1], 80); got != "" {
		t.Errorf("a single point should render nothing, got %q", got)
	}
}

func TestMarketsSubTabShowsWeekdayBreakdown(t *testing.T) {
	page := testDashboardPage()
	page.loaded = true
	page.subTab = subTabMarkets
	page.overview.ByWeekday = []schema.GroupedStat{
		{Label: "Pondělí", BetsCount: 4, ROIPercent: 12.5},
		{Label: "Sobota", BetsCount: 9, ROIPercent: -3.1},
	}

	view := page.View(100, 40)
	if !strings.Contains(view, "ROI podle dne v týdnu") {
		t.Error("markets sub-tab is missing the weekday breakdown")
	}
	if !strings.Contains(view, "Pondělí") || !strings.Contains(view, "Sobota") {
		t.Error("weekday groups not rendered")
	}
}

func TestStaleStatsResultsAreDropped(t *testing.T) {
	page := testDashboardPage()
	page.loadSeq = 2

	page.Update(statsOverviewMsg{seq: 1, overview: schema.StatsOverview{
		Overall: schema.OverallStats{BetsCount: 99},
	}})
	if page.loaded {
		t.Error("stale overview must not mark the page loaded")
	}

	page.Update(profitSeriesMsg{seq: 1, points: []schema.TimeseriesPoint{{Date: "2026-08-01"}}})
	if page.timeseries != nil {
		t.Error("stale series must be dropped")
	}

	page.Update(statsOverviewMsg{seq: 2, overview: schema.StatsOverview{
		Overall: schema.OverallStats{BetsCount: 7},
	}})
	if !page.loaded || page.overview.Overall.BetsCount != 7 {
		t.Errorf("current overview not applied, loaded=%v count=%d", page.loaded, page.overview.Overall.BetsCount)
	}
}

func TestBankrollComesFromSettings(t *testing.T) {
	page := testDashboardPage()

	page.Update(settingsLoadedMsg{settings: schema.AppSettings{Bankroll: 12500}})
	if page.bankroll != 12500 {
		t.Errorf("bankroll = %v, want 12500", page.bankroll)
	}
}
