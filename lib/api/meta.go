// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// ListSports returns the sport catalog.
func (c *Client) ListSports(ctx context.Context) ([]schema.Sport, error) {
	return doJSON[[]schema.Sport](ctx, c, http.MethodGet, "/meta/sports", nil, nil, defaultTimeout)
}

// ListLeagues returns leagues, optionally restricted to one sport.
func (c *Client) ListLeagues(ctx context.Context, sportID int) ([]schema.League, error) {
	query := url.Values{}
	if sportID != 0 {
		query.Set("sport_id", strconv.Itoa(sportID))
	}
	return doJSON[[]schema.League](ctx, c, http.MethodGet, "/meta/leagues", query, nil, defaultTimeout)
}

// ListBookmakers returns the bookmaker catalog.
func (c *Client) ListBookmakers(ctx context.Context) ([]schema.Bookmaker, error) {
	return doJSON[[]schema.Bookmaker](ctx, c, http.MethodGet, "/meta/bookmakers", nil, nil, defaultTimeout)
}
