// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// ocrParseRequest is the wire body for the screenshot parser. The
// image travels as a base64 data URL; bookmaker is the layout profile
// hint (empty means auto-detect).
type ocrParseRequest struct {
	Image     string `json:"image"`
	Bookmaker string `json:"bookmaker,omitempty"`
}

// ParseTicketImage sends a prepared screenshot through the backend's
// OCR pipeline. This is the slow call: the deadline is 10 minutes.
func (c *Client) ParseTicketImage(ctx context.Context, imageDataURL string, bookmaker schema.BookmakerProfile) (schema.OCRResult, error) {
	request := ocrParseRequest{
		Image:     imageDataURL,
		Bookmaker: string(bookmaker),
	}
	return doJSON[schema.OCRResult](ctx, c, http.MethodPost, "/ocr/parse-base64", nil, request, ocrTimeout)
}

// OCRHealth probes whether the backend's OCR engine is reachable and
// configured. With unload set, the backend tears the engine down
// first; calling with unload and then without restarts it. Uses a
// short deadline so the UI stays responsive when the engine is down.
func (c *Client) OCRHealth(ctx context.Context, unload bool) (schema.OCRHealth, error) {
	var query url.Values
	if unload {
		query = url.Values{"unload": {"true"}}
	}
	return doJSON[schema.OCRHealth](ctx, c, http.MethodGet, "/ocr/health", query, nil, healthTimeout)
}
