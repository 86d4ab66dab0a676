// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// TicketFilter narrows a ticket listing. Zero-valued fields are
// omitted from the query string.
type TicketFilter struct {
	Status       schema.Status
	SportID      int
	BookmakerID  int
	LeagueID     int
	MarketTypeID int
	IsLive       *bool
	DateFrom     time.Time
	DateTo       time.Time

	// SortBy is a backend column name; SortDir is "asc" or "desc".
	SortBy  string
	SortDir string
}

// Query encodes the filter as URL query parameters.
func (f TicketFilter) Query() url.Values {
	query := url.Values{}
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	if f.SportID != 0 {
		query.Set("sport_id", strconv.Itoa(f.SportID))
	}
	if f.BookmakerID != 0 {
		query.Set("bookmaker_id", strconv.Itoa(f.BookmakerID))
	}
	if f.LeagueID != 0 {
		query.Set("league_id", strconv.Itoa(f.LeagueID))
	}
	if f.MarketTypeID != 0 {
		query.Set("market_type_id", strconv.Itoa(f.MarketTypeID))
	}
	if f.IsLive != nil {
		query.Set("is_live", strconv.FormatBool(*f.IsLive))
	}
	if !f.DateFrom.IsZero() {
		query.Set("date_from", f.DateFrom.Format("2006-01-02"))
	}
	if !f.DateTo.IsZero() {
		query.Set("date_to", f.DateTo.Format("2006-01-02"))
	}
	if f.SortBy != "" {
		query.Set("sort_by", f.SortBy)
		if f.SortDir != "" {
			query.Set("sort_dir", f.SortDir)
		}
	}
	return query
}

// ListTickets returns all tickets matching the filter, newest first.
func (c *Client) ListTickets(ctx context.Context, filter TicketFilter) ([]schema.Ticket, error) {
	return doJSON[[]schema.Ticket](ctx, c, http.MethodGet, "/tickets", filter.Query(), nil, defaultTimeout)
}

// GetTicket returns a single ticket by ID.
func (c *Client) GetTicket(ctx context.Context, id int) (schema.Ticket, error) {
	return doJSON[schema.Ticket](ctx, c, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, nil, defaultTimeout)
}

// CreateTicket records a new ticket and returns the stored result
// with resolved nested lookups.
func (c *Client) CreateTicket(ctx context.Context, ticket schema.TicketCreate) (schema.Ticket, error) {
	return doJSON[schema.Ticket](ctx, c, http.MethodPost, "/tickets", nil, ticket, defaultTimeout)
}

// UpdateTicket applies a partial update over PUT. Nil fields in the
// update are left unchanged by the backend.
func (c *Client) UpdateTicket(ctx context.Context, id int, update schema.TicketUpdate) (schema.Ticket, error) {
	return doJSON[schema.Ticket](ctx, c, http.MethodPut, fmt.Sprintf("/tickets/%d", id), nil, update, defaultTimeout)
}

// DeleteTicket removes a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id int) error {
	return doEmpty(ctx, c, http.MethodDelete, fmt.Sprintf("/tickets/%d", id), defaultTimeout)
}
