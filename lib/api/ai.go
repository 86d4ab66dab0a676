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

// Analyze asks the backend's AI layer for a written analysis of the
// currently filtered betting history. Uses the 3 minute deadline.
func (c *Client) Analyze(ctx context.Context, request schema.AIAnalyzeRequest) (schema.AIAnalyzeResponse, error) {
	return doJSON[schema.AIAnalyzeResponse](ctx, c, http.MethodPost, "/ai/analyze", nil, request, aiTimeout)
}

// ListAnalyses returns previously stored analyses, newest first.
// limit 0 means the backend default.
func (c *Client) ListAnalyses(ctx context.Context, limit int) ([]schema.AIAnalysis, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return doJSON[[]schema.AIAnalysis](ctx, c, http.MethodGet, "/ai/analyses", query, nil, defaultTimeout)
}
