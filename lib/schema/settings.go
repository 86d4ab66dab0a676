// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// AppSettings is the singleton per-user settings record.
type AppSettings struct {
	Bankroll float64 `json:"bankroll"`
}
