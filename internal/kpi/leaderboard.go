package kpi

import (
	"sort"
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

// Leaderboard folds the trailing 30 days of quotes into per-salesperson
// stats. Names were trimmed and lowercased during normalization, so "Sarah "
// and "sarah" land on one row; quotes with no salesperson are skipped.
func Leaderboard(quotes []models.Quote, now time.Time) ([]dto.LeaderboardEntry, error) {
	anchors, err := NewAnchors(now)
	if err != nil {
		return nil, err
	}

	byName := map[string]*dto.LeaderboardEntry{}
	for _, q := range quotes {
		if q.Salesperson == "" || !anchors.IsLast30Days(q.SentDate) {
			continue
		}
		entry, ok := byName[q.Salesperson]
		if !ok {
			entry = &dto.LeaderboardEntry{Salesperson: q.Salesperson}
			byName[q.Salesperson] = entry
		}
		entry.QuotesSent++
		if q.Converted() {
			entry.Converted++
			entry.ConvertedAmount += q.TotalDollars
		}
	}

	out := make([]dto.LeaderboardEntry, 0, len(byName))
	for _, entry := range byName {
		entry.CVR = rate(entry.Converted, entry.QuotesSent)
		entry.ConvertedAmountDisplay = FormatUSD(entry.ConvertedAmount)
		out = append(out, *entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ConvertedAmount != out[j].ConvertedAmount {
			return out[i].ConvertedAmount > out[j].ConvertedAmount
		}
		return out[i].Salesperson < out[j].Salesperson
	})
	return out, nil
}
