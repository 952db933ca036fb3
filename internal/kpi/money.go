package kpi

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// FormatUSD renders an amount as a whole-dollar display string ("$12,345").
// Formatting happens only at the report boundary; everything upstream stays
// on the raw float so rounding never accumulates mid-pipeline.
func FormatUSD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + usd.Sprintf("$%d", int64(math.Round(v)))
}
