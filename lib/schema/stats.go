// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// OverallStats is the backend's aggregate performance block. All
// values are computed server-side; the client only formats them.
type OverallStats struct {
	BetsCount          int     `json:"bets_count"`
	StakeTotal         float64 `json:"stake_total"`
	ProfitTotal        float64 `json:"profit_total"`
	PayoutTotal        float64 `json:"payout_total"`
	ROIPercent         float64 `json:"roi_percent"`
	HitRatePercent     float64 `json:"hit_rate_percent"`
	AvgOdds            float64 `json:"avg_odds"`
	CurrentStreak      int     `json:"current_streak"`
	BestStreak         int     `json:"best_streak"`
	WorstStreak        int     `json:"worst_streak"`
	MaxDrawdown        float64 `json:"max_drawdown"`
	MaxDrawdownPercent float64 `json:"max_drawdown_percent"`
}

// GroupedStat is one row of a per-dimension breakdown (by sport,
// bookmaker, league, market type, odds bucket, or month).
type GroupedStat struct {
	Label       string  `json:"label"`
	BetsCount   int     `json:"bets_count"`
	WinsCount   int     `json:"wins_count"`
	LossesCount int     `json:"losses_count"`
	VoidsCount  int     `json:"voids_count"`
	StakeTotal  float64 `json:"stake_total"`
	ProfitTotal float64 `json:"profit_total"`
	ROIPercent  float64 `json:"roi_percent"`
	AvgOdds     float64 `json:"avg_odds"`
}

// TimeseriesPoint is one day of the profit time series.
type TimeseriesPoint struct {
	Date             string  `json:"date"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulative_profit"`
	BetsCount        int     `json:"bets_count"`
}

// WeeklyStats compares the trailing 7 days with the 7 days before.
type WeeklyStats struct {
	CurrentWeek OverallStats `json:"current_week"`
	LastWeek    OverallStats `json:"last_week"`
}

// StatsOverview is the full dashboard payload.
type StatsOverview struct {
	Overall      OverallStats  `json:"overall"`
	Weekly       WeeklyStats   `json:"weekly"`
	BySport      []GroupedStat `json:"by_sport"`
	ByBookmaker  []GroupedStat `json:"by_bookmaker"`
	ByLeague     []GroupedStat `json:"by_league"`
	ByMarketType []GroupedStat `json:"by_market_type"`
	ByOddsBucket []GroupedStat `json:"by_odds_bucket"`
	ByWeekday    []GroupedStat `json:"by_weekday"`
	ByMonth      []GroupedStat `json:"by_month"`
}
