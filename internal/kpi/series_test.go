package kpi

import (
	"testing"
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

func TestWeeklyHistorical_ShapeAndOrder(t *testing.T) {
	r, err := Compute(nil, nil, testNow(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.WeeklyHistorical) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(r.WeeklyHistorical))
	}
	for i := 1; i < len(r.WeeklyHistorical); i++ {
		if r.WeeklyHistorical[i-1].WeekStart >= r.WeeklyHistorical[i].WeekStart {
			t.Fatalf("buckets not oldest-first at index %d", i)
		}
	}
	newest := r.WeeklyHistorical[11]
	if newest.WeekEnd != "2025-07-01" {
		t.Errorf("newest bucket should end at now's date, got %s", newest.WeekEnd)
	}
}

func TestWeeklyHistorical_BucketMembership(t *testing.T) {
	now := testNow() // 2025-07-01 15:00
	quotes := []models.Quote{
		// 14:00 on the reference day: within the newest bucket
		{QuoteNumber: "q1", SentDate: at(2025, 7, 1, 14, 0), ConvertedDate: day(2025, 7, 1)},
		// exactly 7 days before now: boundary belongs to the newer bucket
		{QuoteNumber: "q2", SentDate: at(2025, 6, 24, 15, 0)},
		// one second earlier lands in the previous bucket
		{QuoteNumber: "q3", SentDate: at(2025, 6, 24, 14, 59)},
		// sent_date null: belongs to no bucket
		{QuoteNumber: "q4", ConvertedDate: day(2025, 7, 1)},
	}
	r, err := Compute(quotes, nil, now, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newest := r.WeeklyHistorical[11]
	prev := r.WeeklyHistorical[10]
	if newest.Sent != 2 {
		t.Errorf("newest bucket sent = %d, want 2 (q1 and boundary q2)", newest.Sent)
	}
	if newest.Converted != 1 {
		t.Errorf("newest bucket converted = %d, want 1", newest.Converted)
	}
	if newest.CVR != 50.0 {
		t.Errorf("newest bucket cvr = %f, want 50.0", newest.CVR)
	}
	if prev.Sent != 1 {
		t.Errorf("previous bucket sent = %d, want 1 (q3)", prev.Sent)
	}

	var total int
	for _, wb := range r.WeeklyHistorical {
		total += wb.Sent
	}
	if total != 3 {
		t.Errorf("total sent across buckets = %d, want 3 (null date in none)", total)
	}
}

func TestOTBByMonth_YearRolloverBuckets(t *testing.T) {
	now := time.Date(2025, 12, 15, 10, 0, 0, 0, Location())
	jobs := []models.Job{
		{JobNumber: "j1", Date: day(2025, 12, 31), CalculatedValue: 100},
		{JobNumber: "j2", Date: day(2026, 1, 1), CalculatedValue: 200},
		{JobNumber: "j3", Date: day(2026, 5, 20), CalculatedValue: 40},
		{JobNumber: "j4", CalculatedValue: 999}, // no date, no bucket
	}
	r, err := Compute(nil, jobs, now, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.OTBByMonth) != 6 {
		t.Fatalf("expected 6 month buckets, got %d", len(r.OTBByMonth))
	}
	dec, jan := r.OTBByMonth[0], r.OTBByMonth[1]
	if dec.Key != "2025-12" || dec.Label != "Dec 2025" {
		t.Errorf("bucket 0 labeled %s/%s, want 2025-12/Dec 2025", dec.Key, dec.Label)
	}
	if jan.Key != "2026-01" || jan.Label != "Jan 2026" {
		t.Errorf("bucket 1 labeled %s/%s, want 2026-01/Jan 2026", jan.Key, jan.Label)
	}
	if dec.Amount != 100 {
		t.Errorf("December amount = %f, want 100", dec.Amount)
	}
	if jan.Amount != 200 {
		t.Errorf("January amount = %f, want 200", jan.Amount)
	}
	if r.OTBByMonth[5].Amount != 40 {
		t.Errorf("May amount = %f, want 40", r.OTBByMonth[5].Amount)
	}
}

func TestOTBByWeek_AnchoredOnCurrentSunday(t *testing.T) {
	jobs := []models.Job{
		{JobNumber: "j1", Date: day(2025, 6, 29), CalculatedValue: 10}, // current week's Sunday
		{JobNumber: "j2", Date: day(2025, 7, 6), CalculatedValue: 20},  // next week
		{JobNumber: "j3", Date: day(2025, 6, 28), CalculatedValue: 40}, // before the current week
	}
	r, err := Compute(nil, jobs, testNow(), Options{OTBWeeks: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.OTBByWeek) != 5 {
		t.Fatalf("expected 5 week buckets, got %d", len(r.OTBByWeek))
	}
	if r.OTBByWeek[0].WeekStart != "2025-06-29" {
		t.Errorf("first bucket starts %s, want 2025-06-29", r.OTBByWeek[0].WeekStart)
	}
	if r.OTBByWeek[0].Amount != 10 {
		t.Errorf("current week amount = %f, want 10", r.OTBByWeek[0].Amount)
	}
	if r.OTBByWeek[1].Amount != 20 {
		t.Errorf("next week amount = %f, want 20", r.OTBByWeek[1].Amount)
	}
}

func TestOTBByWeek_CountClamped(t *testing.T) {
	r, err := Compute(nil, nil, testNow(), Options{OTBWeeks: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.OTBByWeek) != 8 {
		t.Errorf("expected clamp to 8 buckets, got %d", len(r.OTBByWeek))
	}
	r, err = Compute(nil, nil, testNow(), Options{OTBWeeks: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.OTBByWeek) != 5 {
		t.Errorf("expected clamp to 5 buckets, got %d", len(r.OTBByWeek))
	}
}
