package stats

import (
	"time"

	"tradebook/journal"
)

// DateKey formats a calendar day exactly the way the calendar grid builds
// its lookup keys: 4-digit year, 2-digit month, 2-digit day,
// hyphen-separated. Grid lookups and bucket keys must never diverge.
func DateKey(t time.Time) string {
	return t.Format(journal.DateLayout)
}

// Bucketize sums pnl per calendar day for the heatmap. A day with no
// trades is absent from the map; a day whose trades net to exactly zero is
// present with value 0. The two look the same on screen but are
// mechanically distinct.
func Bucketize(entries []journal.Entry) map[string]float64 {
	buckets := make(map[string]float64)
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		buckets[DateKey(e.Date)] += e.PnL
	}
	return buckets
}
