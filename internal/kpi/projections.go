package kpi

import (
	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

const (
	projectionMonths  = 6
	trailingDays      = 90
	monthlyGrowthRate = 0.05
)

// monthlyProjections is a deliberately rough forecast: take the trailing 90
// days of quotes, derive monthly volume, conversion rate and average
// converted-quote value, then grow volume linearly at 5% of the base per
// month out. Confidence degrades with distance. This is back-of-envelope
// arithmetic for the dashboard, not a model.
func monthlyProjections(quotes []models.Quote, a Anchors) []dto.MonthProjection {
	from := a.Today.AddDate(0, 0, -trailingDays)
	cutoff := a.Today.AddDate(0, 0, 1)

	var sent, converted int
	var convertedValue float64
	for _, q := range quotes {
		if q.SentDate == nil {
			continue
		}
		t := q.SentDate.In(eastern)
		if t.Before(from) || !t.Before(cutoff) {
			continue
		}
		sent++
		if q.Converted() {
			converted++
			convertedValue += q.TotalDollars
		}
	}

	var convRate, avgDeal float64
	if sent > 0 {
		convRate = float64(converted) / float64(sent)
	}
	if converted > 0 {
		avgDeal = convertedValue / float64(converted)
	}
	baseVolume := float64(sent) / 3 // 90 days ~ 3 months

	first := a.monthStart()
	out := make([]dto.MonthProjection, 0, projectionMonths)
	for m := 1; m <= projectionMonths; m++ {
		start := first.AddDate(0, m, 0)
		volume := baseVolume * (1 + monthlyGrowthRate*float64(m))
		revenue := volume * convRate * avgDeal

		out = append(out, dto.MonthProjection{
			Key:                     start.Format("2006-01"),
			Label:                   start.Format("Jan 2006"),
			ProjectedQuotes:         round1(volume),
			ProjectedRevenue:        revenue,
			ProjectedRevenueDisplay: FormatUSD(revenue),
			Confidence:              confidence(m),
		})
	}
	return out
}

func confidence(monthsOut int) string {
	switch {
	case monthsOut <= 2:
		return "high"
	case monthsOut <= 4:
		return "medium"
	default:
		return "low"
	}
}
