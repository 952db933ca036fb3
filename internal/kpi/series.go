package kpi

import (
	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

const historicalWeeks = 12

const dateLayout = "2006-01-02"

// weeklyHistorical buckets the trailing 12 weeks, oldest first. The newest
// bucket ends at the reference instant itself, each earlier one 7 days
// before; a quote sent exactly on a bucket's end belongs to the next bucket.
func weeklyHistorical(quotes []models.Quote, a Anchors) []dto.WeekBucket {
	out := make([]dto.WeekBucket, 0, historicalWeeks)
	for i := historicalWeeks - 1; i >= 0; i-- {
		end := a.Now.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -7)

		var sent, converted int
		for _, q := range quotes {
			if q.SentDate == nil {
				continue
			}
			t := q.SentDate.In(eastern)
			if t.Before(start) || !t.Before(end) {
				continue
			}
			sent++
			if q.ConvertedDate != nil {
				converted++
			}
		}

		out = append(out, dto.WeekBucket{
			WeekStart: start.Format(dateLayout),
			WeekEnd:   end.Format(dateLayout),
			Sent:      sent,
			Converted: converted,
			CVR:       rate(converted, sent),
		})
	}
	return out
}

const otbMonths = 6

// otbByMonth sums scheduled job value for the current month and the next
// five. Jobs without a parseable date belong to no bucket.
func otbByMonth(jobs []models.Job, a Anchors) []dto.MonthOTB {
	first := a.monthStart()
	out := make([]dto.MonthOTB, 0, otbMonths)
	for m := 0; m < otbMonths; m++ {
		start := first.AddDate(0, m, 0)
		end := first.AddDate(0, m+1, 0)

		var total float64
		for _, j := range jobs {
			if j.Date == nil {
				continue
			}
			d := j.Date.In(eastern)
			if !d.Before(start) && d.Before(end) {
				total += j.CalculatedValue
			}
		}

		out = append(out, dto.MonthOTB{
			Key:           start.Format("2006-01"),
			Label:         start.Format("Jan 2006"),
			Amount:        total,
			AmountDisplay: FormatUSD(total),
		})
	}
	return out
}

// otbByWeek sums scheduled job value for Sunday-start weeks beginning with
// the current one.
func otbByWeek(jobs []models.Job, a Anchors, weeks int) []dto.WeekOTB {
	out := make([]dto.WeekOTB, 0, weeks)
	for w := 0; w < weeks; w++ {
		start := a.WeekStart.AddDate(0, 0, 7*w)
		end := start.AddDate(0, 0, 7)

		var total float64
		for _, j := range jobs {
			if j.Date == nil {
				continue
			}
			d := j.Date.In(eastern)
			if !d.Before(start) && d.Before(end) {
				total += j.CalculatedValue
			}
		}

		out = append(out, dto.WeekOTB{
			WeekStart:     start.Format(dateLayout),
			Amount:        total,
			AmountDisplay: FormatUSD(total),
		})
	}
	return out
}
