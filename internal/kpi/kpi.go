package kpi

import (
	"math"
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

const (
	defaultTargetYear = 2026
	defaultOTBWeeks   = 6
	minOTBWeeks       = 5
	maxOTBWeeks       = 8
)

// Options tunes the parts of the report the business configures rather than
// derives: the fixed year for the recurring-revenue metric and the number of
// forward OTB week buckets.
type Options struct {
	TargetYear int
	OTBWeeks   int
}

func (o Options) withDefaults() Options {
	if o.TargetYear == 0 {
		o.TargetYear = defaultTargetYear
	}
	if o.OTBWeeks == 0 {
		o.OTBWeeks = defaultOTBWeeks
	}
	if o.OTBWeeks < minOTBWeeks {
		o.OTBWeeks = minOTBWeeks
	}
	if o.OTBWeeks > maxOTBWeeks {
		o.OTBWeeks = maxOTBWeeks
	}
	return o
}

// Compute derives the full KPI report from normalized quote and job records
// and an explicit reference instant. It is pure: no I/O, no clock reads, and
// identical inputs always produce an identical report. Malformed rows have
// already degraded to absent fields during normalization; the only error
// here is the contract violation of a zero now.
func Compute(quotes []models.Quote, jobs []models.Job, now time.Time, opts Options) (*dto.KPIReport, error) {
	anchors, err := NewAnchors(now)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	r := &dto.KPIReport{RecurringRevenueYear: opts.TargetYear}

	for _, q := range quotes {
		if anchors.IsToday(q.SentDate) {
			r.QuotesSentToday++
		}
		if anchors.IsThisWeek(q.SentDate) {
			r.QuotesThisWeek++
		}
		if anchors.IsToday(q.ConvertedDate) {
			r.ConvertedToday++
			r.ConvertedAmountToday += q.TotalDollars
		}
		if anchors.IsThisWeek(q.ConvertedDate) {
			r.ConvertedThisWeek++
			r.ConvertedAmountThisWeek += q.TotalDollars
		}
		if anchors.IsLast30Days(q.SentDate) {
			r.QuotesLast30Days++
			if q.Converted() {
				r.ConvertedLast30Days++
			}
		}
	}

	r.CVRThisWeek = rate(r.ConvertedThisWeek, r.QuotesThisWeek)
	r.CVR30Day = rate(r.ConvertedLast30Days, r.QuotesLast30Days)
	r.AvgQuotesPerDay30 = round1(float64(r.QuotesLast30Days) / 30)

	// AddDate month arithmetic handles the December -> January rollover.
	nextMonthStart := anchors.monthStart().AddDate(0, 1, 0)
	nextMonthEnd := anchors.monthStart().AddDate(0, 2, 0)
	for _, j := range jobs {
		if j.Date == nil {
			continue
		}
		d := j.Date.In(eastern)
		if j.Recurring() && d.Year() == opts.TargetYear {
			r.RecurringRevenue += j.CalculatedValue
		}
		if !d.Before(nextMonthStart) && d.Before(nextMonthEnd) {
			r.NextMonthOTB += j.CalculatedValue
		}
	}

	r.WeeklyHistorical = weeklyHistorical(quotes, anchors)
	r.OTBByMonth = otbByMonth(jobs, anchors)
	r.OTBByWeek = otbByWeek(jobs, anchors, opts.OTBWeeks)
	r.MonthlyProjections = monthlyProjections(quotes, anchors)

	r.ConvertedAmountTodayDisplay = FormatUSD(r.ConvertedAmountToday)
	r.ConvertedAmountThisWeekDisplay = FormatUSD(r.ConvertedAmountThisWeek)
	r.RecurringRevenueDisplay = FormatUSD(r.RecurringRevenue)
	r.NextMonthOTBDisplay = FormatUSD(r.NextMonthOTB)

	return r, nil
}

// rate is num/den as a percentage rounded to one decimal; 0 when the
// denominator is 0, never NaN.
func rate(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round1(100 * float64(num) / float64(den))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
