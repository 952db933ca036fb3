package models

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// The warehouse views are loose about types: amounts arrive as NUMERIC,
// FLOAT or plain strings, dates as DATE, TIMESTAMP or "YYYY-MM-DD" text, and
// salesperson names with inconsistent casing. Normalization maps a raw row
// onto the fixed schema above; anything it cannot coerce is treated as
// absent, and unrecognized fields are ignored.

// NormalizeQuote builds a Quote from a raw row. Date-only values are parsed
// as midnight in loc so boundary comparisons line up with the report's
// calendar anchors.
func NormalizeQuote(row map[string]any, loc *time.Location) Quote {
	return Quote{
		QuoteNumber:   coerceString(field(row, "quote_number")),
		ClientName:    strings.TrimSpace(coerceString(field(row, "client_name"))),
		Salesperson:   foldName(field(row, "salesperson")),
		Status:        foldName(field(row, "status")),
		TotalDollars:  coerceAmount(field(row, "total_dollars")),
		CreatedAt:     coerceDate(field(row, "created_at"), loc),
		SentDate:      coerceDate(field(row, "sent_date"), loc),
		ConvertedDate: coerceDate(field(row, "converted_date"), loc),
		DaysToConvert: coerceOptFloat(field(row, "days_to_convert")),
	}
}

// NormalizeJob builds a Job from a raw row.
func NormalizeJob(row map[string]any, loc *time.Location) Job {
	return Job{
		JobNumber:       coerceString(field(row, "Job_Number")),
		ClientName:      strings.TrimSpace(coerceString(field(row, "Client_name"))),
		Date:            coerceDate(field(row, "Date"), loc),
		CalculatedValue: coerceAmount(field(row, "Calculated_Value")),
		JobType:         strings.ToUpper(strings.TrimSpace(coerceString(field(row, "Job_type")))),
		Salesperson:     foldName(field(row, "SalesPerson")),
		DateConverted:   coerceDate(field(row, "Date_Converted"), loc),
	}
}

// field looks a column up by exact name first, then case-insensitively, so
// upstream view renames like SENT_DATE don't silently zero a metric.
func field(row map[string]any, name string) any {
	if v, ok := row[name]; ok {
		return v
	}
	for k, v := range row {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return nil
}

// foldName trims and lowercases a name-like field for comparison.
func foldName(v any) string {
	return strings.ToLower(strings.TrimSpace(coerceString(v)))
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case json.Number:
		return s.String()
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceAmount parses a currency value, tolerating string amounts with "$"
// and thousands separators. Unparsable values contribute 0.
func coerceAmount(v any) float64 {
	f, ok := coerceFloat(v)
	if !ok {
		return 0
	}
	return f
}

func coerceOptFloat(v any) *float64 {
	f, ok := coerceFloat(v)
	if !ok {
		return nil
	}
	return &f
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case *big.Rat:
		if n == nil {
			return 0, false
		}
		f, _ := n.Float64()
		return f, true
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(n)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

const dateOnlyLayout = "2006-01-02"

// coerceDate parses a date-like value. Date-only values become midnight in
// loc; unparsable values are absent, never an error.
func coerceDate(v any, loc *time.Location) *time.Time {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		if d.IsZero() {
			return nil
		}
		t := d.In(loc)
		return &t
	case *time.Time:
		if d == nil || d.IsZero() {
			return nil
		}
		t := d.In(loc)
		return &t
	case civil.Date:
		if !d.IsValid() {
			return nil
		}
		t := d.In(loc)
		return &t
	case civil.DateTime:
		if !d.IsValid() {
			return nil
		}
		t := d.In(loc)
		return &t
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return nil
		}
		if t, err := time.ParseInLocation(dateOnlyLayout, s, loc); err == nil {
			return &t
		}
		for _, layout := range dateTimeLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				t = t.In(loc)
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}
