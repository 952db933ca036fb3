package models

import "time"

// Quote is one row of the sales quote view, normalized for aggregation.
// Date fields are nil when the warehouse value was absent or unparsable;
// amounts degrade to 0 rather than failing the row.
type Quote struct {
	QuoteNumber   string
	ClientName    string
	Salesperson   string // trimmed + lowercased
	Status        string // trimmed + lowercased
	TotalDollars  float64
	CreatedAt     *time.Time
	SentDate      *time.Time
	ConvertedDate *time.Time
	DaysToConvert *float64
}

// Converted reports whether the quote counts as a conversion. A recorded
// conversion date is the primary signal; a won/converted status is accepted
// when the row is missing the date.
func (q Quote) Converted() bool {
	if q.ConvertedDate != nil {
		return true
	}
	switch q.Status {
	case "converted", "won":
		return true
	}
	return false
}
