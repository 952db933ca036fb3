package models

import (
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

var ny = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}()

func TestNormalizeQuote_FullRow(t *testing.T) {
	row := map[string]any{
		"quote_number":    "Q-1001",
		"client_name":     "  Acme Corp  ",
		"salesperson":     " Sarah ",
		"status":          "Converted",
		"total_dollars":   "$1,200.50",
		"sent_date":       "2025-07-01",
		"converted_date":  time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC),
		"days_to_convert": 2.5,
	}
	q := NormalizeQuote(row, ny)

	if q.QuoteNumber != "Q-1001" {
		t.Errorf("quoteNumber = %q", q.QuoteNumber)
	}
	if q.ClientName != "Acme Corp" {
		t.Errorf("clientName = %q, want trimmed", q.ClientName)
	}
	if q.Salesperson != "sarah" {
		t.Errorf("salesperson = %q, want folded to sarah", q.Salesperson)
	}
	if q.Status != "converted" {
		t.Errorf("status = %q, want lowercased", q.Status)
	}
	if q.TotalDollars != 1200.50 {
		t.Errorf("totalDollars = %f, want 1200.50", q.TotalDollars)
	}
	if q.SentDate == nil {
		t.Fatal("sentDate should parse")
	}
	if got := q.SentDate.Format("2006-01-02 15:04"); got != "2025-07-01 00:00" {
		t.Errorf("date-only sentDate = %s, want midnight Eastern", got)
	}
	if q.SentDate.Location() != ny {
		t.Errorf("sentDate location = %v, want Eastern", q.SentDate.Location())
	}
	if q.ConvertedDate == nil || q.ConvertedDate.Format("2006-01-02 15:04") != "2025-07-01 14:30" {
		t.Errorf("timestamp convertedDate not shifted into Eastern: %v", q.ConvertedDate)
	}
	if q.DaysToConvert == nil || *q.DaysToConvert != 2.5 {
		t.Errorf("daysToConvert = %v, want 2.5", q.DaysToConvert)
	}
}

func TestNormalizeQuote_CaseInsensitiveColumns(t *testing.T) {
	row := map[string]any{
		"QUOTE_NUMBER": "Q-2",
		"Sent_Date":    "2025-07-01",
	}
	q := NormalizeQuote(row, ny)
	if q.QuoteNumber != "Q-2" {
		t.Errorf("renamed column not found: %q", q.QuoteNumber)
	}
	if q.SentDate == nil {
		t.Error("mixed-case sent_date not found")
	}
}

func TestNormalizeQuote_GarbageDegradesToAbsent(t *testing.T) {
	row := map[string]any{
		"quote_number":    12345, // numeric id, stringified
		"total_dollars":   "not a number",
		"sent_date":       "tomorrow-ish",
		"converted_date":  "",
		"days_to_convert": nil,
		"extra_column":    "ignored",
	}
	q := NormalizeQuote(row, ny)
	if q.QuoteNumber != "12345" {
		t.Errorf("quoteNumber = %q, want 12345", q.QuoteNumber)
	}
	if q.TotalDollars != 0 {
		t.Errorf("unparsable amount = %f, want 0", q.TotalDollars)
	}
	if q.SentDate != nil {
		t.Errorf("unparsable date should be absent, got %v", q.SentDate)
	}
	if q.ConvertedDate != nil {
		t.Error("empty string date should be absent")
	}
	if q.DaysToConvert != nil {
		t.Error("null daysToConvert should stay nil")
	}
}

func TestNormalizeQuote_NumericTypes(t *testing.T) {
	cases := []struct {
		name string
		val  any
		want float64
	}{
		{"float64", 150.5, 150.5},
		{"int64", int64(200), 200},
		{"bigrat", big.NewRat(301, 2), 150.5},
		{"plain string", "99.9", 99.9},
		{"spaced string", " $2,000 ", 2000},
	}
	for _, c := range cases {
		q := NormalizeQuote(map[string]any{"total_dollars": c.val}, ny)
		if q.TotalDollars != c.want {
			t.Errorf("%s: totalDollars = %f, want %f", c.name, q.TotalDollars, c.want)
		}
	}
}

func TestNormalizeQuote_CivilDates(t *testing.T) {
	row := map[string]any{
		"sent_date":      civil.Date{Year: 2025, Month: 7, Day: 1},
		"converted_date": civil.DateTime{Date: civil.Date{Year: 2025, Month: 7, Day: 1}, Time: civil.Time{Hour: 9, Minute: 15}},
	}
	q := NormalizeQuote(row, ny)
	if q.SentDate == nil || q.SentDate.Format("2006-01-02 15:04") != "2025-07-01 00:00" {
		t.Errorf("civil.Date sentDate = %v, want Eastern midnight", q.SentDate)
	}
	if q.ConvertedDate == nil || q.ConvertedDate.Format("2006-01-02 15:04") != "2025-07-01 09:15" {
		t.Errorf("civil.DateTime convertedDate = %v", q.ConvertedDate)
	}
}

func TestNormalizeJob(t *testing.T) {
	row := map[string]any{
		"Job_Number":       "J-77",
		"Client_name":      "Smith Residence",
		"Date":             "2026-03-10",
		"Calculated_Value": "750",
		"Job_type":         " recurring ",
		"SalesPerson":      "Mike",
	}
	j := NormalizeJob(row, ny)
	if j.JobNumber != "J-77" {
		t.Errorf("jobNumber = %q", j.JobNumber)
	}
	if j.JobType != "RECURRING" {
		t.Errorf("jobType = %q, want RECURRING", j.JobType)
	}
	if !j.Recurring() {
		t.Error("folded recurring type should report Recurring()")
	}
	if j.CalculatedValue != 750 {
		t.Errorf("calculatedValue = %f, want 750", j.CalculatedValue)
	}
	if j.Salesperson != "mike" {
		t.Errorf("salesperson = %q, want mike", j.Salesperson)
	}
	if j.Date == nil || j.Date.Year() != 2026 {
		t.Errorf("date = %v, want 2026-03-10", j.Date)
	}
}

func TestQuoteConverted(t *testing.T) {
	d := time.Date(2025, 7, 1, 0, 0, 0, 0, ny)
	cases := []struct {
		name string
		q    Quote
		want bool
	}{
		{"date set", Quote{ConvertedDate: &d}, true},
		{"status won", Quote{Status: "won"}, true},
		{"status converted", Quote{Status: "converted"}, true},
		{"status sent", Quote{Status: "sent"}, false},
		{"empty", Quote{}, false},
	}
	for _, c := range cases {
		if got := c.q.Converted(); got != c.want {
			t.Errorf("%s: Converted() = %v, want %v", c.name, got, c.want)
		}
	}
}
