// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "strings"

// MarketType is a named bet category ("Over 2.5", "1X2", ...),
// optionally scoped to a set of sports. Types with no declared sports
// apply to every sport.
type MarketType struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	Sports      []Sport `json:"sports,omitempty"`
}

// AppliesToSport reports whether the type is usable for the given
// sport. A type with no declared sports is universal.
func (mt MarketType) AppliesToSport(sportID int) bool {
	if len(mt.Sports) == 0 {
		return true
	}
	for _, sport := range mt.Sports {
		if sport.ID == sportID {
			return true
		}
	}
	return false
}

// MarketTypeStat is a market type enriched with server-computed
// performance metrics.
type MarketTypeStat struct {
	MarketType
	BetsCount int     `json:"bets_count"`
	WinRate   float64 `json:"win_rate"`
	Profit    float64 `json:"profit"`
}

// MarketTypeCreate is the request body for creating a market type.
type MarketTypeCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SportIDs    []int  `json:"sport_ids,omitempty"`
}

// MarketTypeUpdate is the request body for a partial market type
// update.
type MarketTypeUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	SportIDs    []int   `json:"sport_ids,omitempty"`
}

// MarketTypeByName resolves a market type by case-insensitive exact
// name match. Returns nil when no type matches; the caller decides
// whether to create one.
func MarketTypeByName(types []MarketType, name string) *MarketType {
	for i := range types {
		if strings.EqualFold(types[i].Name, name) {
			return &types[i]
		}
	}
	return nil
}
