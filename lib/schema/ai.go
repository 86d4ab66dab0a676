// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "time"

// AIAnalyzeRequest asks the backend's LLM for commentary on the
// bets selected by the filters. Question is optional free text.
type AIAnalyzeRequest struct {
	Filters  map[string]string `json:"filters,omitempty"`
	Question string            `json:"question,omitempty"`
}

// AIAnalyzeResponse carries the generated commentary.
type AIAnalyzeResponse struct {
	AnalysisText      string         `json:"analysis_text"`
	UsedFilters       map[string]any `json:"used_filters,omitempty"`
	AggregatesSummary map[string]any `json:"aggregates_summary,omitempty"`
}

// AIAnalysis is a stored past analysis.
type AIAnalysis struct {
	ID           int            `json:"id"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
	ModelName    string         `json:"model_name,omitempty"`
	ResponseText string         `json:"response_text,omitempty"`
}
