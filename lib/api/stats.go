// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// StatsFilter narrows the statistics overview. Zero-valued fields are
// omitted from the query string.
type StatsFilter struct {
	SportID     int
	BookmakerID int
	DateFrom    time.Time
	DateTo      time.Time
}

// Query encodes the filter as URL query parameters.
func (f StatsFilter) Query() url.Values {
	query := url.Values{}
	if f.SportID != 0 {
		query.Set("sport_id", strconv.Itoa(f.SportID))
	}
	if f.BookmakerID != 0 {
		query.Set("bookmaker_id", strconv.Itoa(f.BookmakerID))
	}
	if !f.DateFrom.IsZero() {
		query.Set("date_from", f.DateFrom.Format("2006-01-02"))
	}
	if !f.DateTo.IsZero() {
		query.Set("date_to", f.DateTo.Format("2006-01-02"))
	}
	return query
}

// StatsOverview returns the full dashboard aggregate bundle: overall
// KPIs, weekly summary, and the grouped breakdowns.
func (c *Client) StatsOverview(ctx context.Context, filter StatsFilter) (schema.StatsOverview, error) {
	return doJSON[schema.StatsOverview](ctx, c, http.MethodGet, "/stats/overview", filter.Query(), nil, defaultTimeout)
}

// ProfitTimeseries returns the cumulative profit curve for the chart.
func (c *Client) ProfitTimeseries(ctx context.Context, filter StatsFilter) ([]schema.TimeseriesPoint, error) {
	return doJSON[[]schema.TimeseriesPoint](ctx, c, http.MethodGet, "/stats/timeseries", filter.Query(), nil, defaultTimeout)
}
