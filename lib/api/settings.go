// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

// GetAppSettings returns the stored application settings (bankroll).
func (c *Client) GetAppSettings(ctx context.Context) (schema.AppSettings, error) {
	return doJSON[schema.AppSettings](ctx, c, http.MethodGet, "/settings/app", nil, nil, defaultTimeout)
}

// UpdateAppSettings stores new application settings and returns the
// persisted state.
func (c *Client) UpdateAppSettings(ctx context.Context, settings schema.AppSettings) (schema.AppSettings, error) {
	return doJSON[schema.AppSettings](ctx, c, http.MethodPut, "/settings/app", nil, settings, defaultTimeout)
}
