package dto

// KPIReport is the full aggregation output served to the dashboard, keyed by
// stable names the frontend binds to directly. Currency metrics carry the
// raw value plus a pre-formatted whole-dollar sibling (suffix "Display");
// the raw value is canonical and the display string is assembled only at the
// report boundary.
type KPIReport struct {
	QuotesSentToday             int     `json:"quotesSentToday"`
	ConvertedToday              int     `json:"convertedToday"`
	ConvertedAmountToday        float64 `json:"convertedAmountToday"`
	ConvertedAmountTodayDisplay string  `json:"convertedAmountTodayDisplay"`

	QuotesThisWeek                 int     `json:"quotesThisWeek"`
	ConvertedThisWeek              int     `json:"convertedThisWeek"`
	ConvertedAmountThisWeek        float64 `json:"convertedAmountThisWeek"`
	ConvertedAmountThisWeekDisplay string  `json:"convertedAmountThisWeekDisplay"`
	CVRThisWeek                    float64 `json:"cvrThisWeek"`

	QuotesLast30Days    int     `json:"quotesLast30Days"`
	ConvertedLast30Days int     `json:"convertedLast30Days"`
	CVR30Day            float64 `json:"cvr30Day"`
	AvgQuotesPerDay30   float64 `json:"avgQPD30Day"`

	RecurringRevenue        float64 `json:"recurringRevenue"`
	RecurringRevenueDisplay string  `json:"recurringRevenueDisplay"`
	RecurringRevenueYear    int     `json:"recurringRevenueYear"`

	NextMonthOTB        float64 `json:"nextMonthOTB"`
	NextMonthOTBDisplay string  `json:"nextMonthOTBDisplay"`

	WeeklyHistorical   []WeekBucket      `json:"weeklyHistorical"`
	OTBByMonth         []MonthOTB        `json:"otbByMonth"`
	OTBByWeek          []WeekOTB         `json:"otbByWeek"`
	MonthlyProjections []MonthProjection `json:"monthlyProjections"`
}

// WeekBucket is one trailing-week slot of the historical series, oldest
// first. WeekEnd is exclusive.
type WeekBucket struct {
	WeekStart string  `json:"weekStart"`
	WeekEnd   string  `json:"weekEnd"`
	Sent      int     `json:"sent"`
	Converted int     `json:"converted"`
	CVR       float64 `json:"cvr"`
}

// MonthOTB is the on-the-books job value for one calendar month.
type MonthOTB struct {
	Key           string  `json:"key"`   // "2026-01"
	Label         string  `json:"label"` // "Jan 2026"
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amountDisplay"`
}

// WeekOTB is the on-the-books job value for one Sunday-start week.
type WeekOTB struct {
	WeekStart     string  `json:"weekStart"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amountDisplay"`
}

// MonthProjection is a rough forward revenue estimate, not a statistical
// forecast.
type MonthProjection struct {
	Key                      string  `json:"key"`
	Label                    string  `json:"label"`
	ProjectedQuotes          float64 `json:"projectedQuotes"`
	ProjectedRevenue         float64 `json:"projectedRevenue"`
	ProjectedRevenueDisplay  string  `json:"projectedRevenueDisplay"`
	Confidence               string  `json:"confidence"` // "high", "medium", "low"
}
