// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// ListMarketTypes returns market types, optionally restricted to
// active ones.
func (c *Client) ListMarketTypes(ctx context.Context, activeOnly bool) ([]schema.MarketType, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("active_only", "true")
	}
	return doJSON[[]schema.MarketType](ctx, c, http.MethodGet, "/market-types", query, nil, defaultTimeout)
}

// MarketTypeStats returns per-market-type performance aggregates
// (bet count, win rate, profit) for settled tickets.
func (c *Client) MarketTypeStats(ctx context.Context) ([]schema.MarketTypeStat, error) {
	return doJSON[[]schema.MarketTypeStat](ctx, c, http.MethodGet, "/market-types/stats", nil, nil, defaultTimeout)
}

// TopMarketTypes returns the most-used market types, optionally
// restricted to those applicable to a sport. Backs the typeahead
// shortlist shown before the user types anything.
func (c *Client) TopMarketTypes(ctx context.Context, limit, sportID int) ([]schema.MarketType, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if sportID != 0 {
		query.Set("sport_id", strconv.Itoa(sportID))
	}
	return doJSON[[]schema.MarketType](ctx, c, http.MethodGet, "/market-types/top", query, nil, defaultTimeout)
}

// CreateMarketType registers a new market type. The backend rejects
// duplicate names with HTTP 409.
func (c *Client) CreateMarketType(ctx context.Context, create schema.MarketTypeCreate) (schema.MarketType, error) {
	return doJSON[schema.MarketType](ctx, c, http.MethodPost, "/market-types", nil, create, defaultTimeout)
}

// UpdateMarketType applies a partial update to a market type over PUT.
func (c *Client) UpdateMarketType(ctx context.Context, id int, update schema.MarketTypeUpdate) (schema.MarketType, error) {
	return doJSON[schema.MarketType](ctx, c, http.MethodPut, fmt.Sprintf("/market-types/%d", id), nil, update, defaultTimeout)
}

// DeleteMarketType removes a market type. Tickets referencing it keep
// their market label but lose the typed link.
func (c *Client) DeleteMarketType(ctx context.Context, id int) error {
	return doEmpty(ctx, c, http.MethodDelete, fmt.Sprintf("/market-types/%d", id), defaultTimeout)
}
