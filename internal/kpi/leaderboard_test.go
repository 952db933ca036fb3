package kpi

import (
	"testing"
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/models"
)

func TestLeaderboard_RanksByConvertedAmount(t *testing.T) {
	quotes := []models.Quote{
		{Salesperson: "sarah", SentDate: day(2025, 6, 20), ConvertedDate: day(2025, 6, 22), TotalDollars: 400},
		{Salesperson: "sarah", SentDate: day(2025, 6, 25), TotalDollars: 100},
		{Salesperson: "mike", SentDate: day(2025, 6, 21), ConvertedDate: day(2025, 6, 23), TotalDollars: 900},
		{Salesperson: "", SentDate: day(2025, 6, 24), TotalDollars: 50},      // unattributed, skipped
		{Salesperson: "sarah", SentDate: day(2025, 4, 1), TotalDollars: 999}, // outside 30 days
	}
	entries, err := Leaderboard(quotes, testNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Salesperson != "mike" {
		t.Errorf("top entry = %s, want mike (highest converted amount)", entries[0].Salesperson)
	}
	sarah := entries[1]
	if sarah.QuotesSent != 2 {
		t.Errorf("sarah quotesSent = %d, want 2", sarah.QuotesSent)
	}
	if sarah.Converted != 1 || sarah.ConvertedAmount != 400 {
		t.Errorf("sarah converted = %d/%f, want 1/400", sarah.Converted, sarah.ConvertedAmount)
	}
	if sarah.CVR != 50.0 {
		t.Errorf("sarah cvr = %f, want 50.0", sarah.CVR)
	}
	if sarah.ConvertedAmountDisplay != "$400" {
		t.Errorf("sarah display = %q, want $400", sarah.ConvertedAmountDisplay)
	}
}

func TestLeaderboard_TiesBreakAlphabetically(t *testing.T) {
	quotes := []models.Quote{
		{Salesperson: "zoe", SentDate: day(2025, 6, 20), ConvertedDate: day(2025, 6, 20), TotalDollars: 100},
		{Salesperson: "amy", SentDate: day(2025, 6, 20), ConvertedDate: day(2025, 6, 20), TotalDollars: 100},
	}
	entries, err := Leaderboard(quotes, testNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Salesperson != "amy" || entries[1].Salesperson != "zoe" {
		t.Errorf("tie order = %s, %s; want amy, zoe", entries[0].Salesperson, entries[1].Salesperson)
	}
}

func TestLeaderboard_ZeroNow(t *testing.T) {
	if _, err := Leaderboard(nil, time.Time{}); err == nil {
		t.Fatal("expected contract error for zero now")
	}
}
