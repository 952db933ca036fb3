package kpi

import (
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/errs"
)

// The business runs on US Eastern time: "today" and "this week" mean the
// same thing no matter where the service happens to be deployed.
var eastern = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// container without tzdata; EST keeps boundaries stable
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// Location returns the fixed reference timezone used for every calendar
// comparison in a report.
func Location() *time.Location { return eastern }

// Anchors holds every date boundary the metrics compare against. They are
// resolved exactly once per Compute call so a report that spans a midnight
// rollover still uses a single consistent "today".
type Anchors struct {
	Now           time.Time // the reference instant, in Eastern time
	Today         time.Time // midnight Eastern of Now's calendar date
	WeekStart     time.Time // most recent Sunday <= Today
	WeekEnd       time.Time // WeekStart + 7d, exclusive
	ThirtyDaysAgo time.Time // Today - 30d
}

// NewAnchors derives the calendar boundaries from now. A zero now is a
// contract violation, not a data-quality problem, and fails loudly.
func NewAnchors(now time.Time) (Anchors, error) {
	if now.IsZero() {
		return Anchors{}, errs.NewValidationError("now must be a valid timestamp")
	}
	local := now.In(eastern)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, eastern)
	weekStart := today.AddDate(0, 0, -int(today.Weekday())) // Sunday = 0
	return Anchors{
		Now:           local,
		Today:         today,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 7),
		ThirtyDaysAgo: today.AddDate(0, 0, -30),
	}, nil
}

// IsToday reports whether d falls on Today's calendar date. A nil d is
// absent and matches nothing.
func (a Anchors) IsToday(d *time.Time) bool {
	if d == nil {
		return false
	}
	t := d.In(eastern)
	return t.Year() == a.Today.Year() && t.YearDay() == a.Today.YearDay()
}

// IsThisWeek reports whether WeekStart <= d < WeekEnd. The exclusive upper
// bound keeps the boundary Sunday out of two adjacent weeks.
func (a Anchors) IsThisWeek(d *time.Time) bool {
	if d == nil {
		return false
	}
	t := d.In(eastern)
	return !t.Before(a.WeekStart) && t.Before(a.WeekEnd)
}

// IsLast30Days reports whether ThirtyDaysAgo <= d <= Today, inclusive on
// both ends; any time-of-day during Today still counts.
func (a Anchors) IsLast30Days(d *time.Time) bool {
	if d == nil {
		return false
	}
	t := d.In(eastern)
	return !t.Before(a.ThirtyDaysAgo) && t.Before(a.Today.AddDate(0, 0, 1))
}

// monthStart returns midnight Eastern on the first of Today's month.
func (a Anchors) monthStart() time.Time {
	return time.Date(a.Today.Year(), a.Today.Month(), 1, 0, 0, 0, 0, eastern)
}
