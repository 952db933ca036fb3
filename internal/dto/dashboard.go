package dto

import "time"

// DashboardResponse wraps a KPI report with snapshot metadata.
type DashboardResponse struct {
	ReportID    string     `json:"reportId"`
	GeneratedAt time.Time  `json:"generatedAt"`
	QuoteCount  int        `json:"quoteCount"`
	JobCount    int        `json:"jobCount"`
	Cached      bool       `json:"cached"`
	KPIs        *KPIReport `json:"kpis"`
}

// LeaderboardEntry is one salesperson's trailing-30-day stats, keyed by the
// normalized (trimmed, lowercased) name.
type LeaderboardEntry struct {
	Salesperson             string  `json:"salesperson"`
	QuotesSent              int     `json:"quotesSent"`
	Converted               int     `json:"converted"`
	ConvertedAmount         float64 `json:"convertedAmount"`
	ConvertedAmountDisplay  string  `json:"convertedAmountDisplay"`
	CVR                     float64 `json:"cvr"`
}
