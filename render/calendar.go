package render

import (
	"fmt"
	"strings"
	"time"

	"tradebook/stats"
)

const calendarCellWidth = 9

// Calendar renders the month's heatmap grid from the day buckets. Cells
// are marked + for profit days and - for loss days. A day that is absent
// from the buckets and a day bucketed at exactly zero get the same neutral
// rendering: the numeric label is suppressed, only the day number shows.
//
// The grid builds its lookup keys with the same formatting rule the
// bucketizer uses, so lookups cannot miss on format.
func Calendar(year int, month time.Month, buckets map[string]float64) string {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)

	for day := 1; day <= daysInMonth; day++ {
		key := stats.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		pnl, ok := buckets[key]

		cell := fmt.Sprintf("%2d", day)
		if ok && pnl != 0 {
			mark := "+"
			if pnl < 0 {
				mark = "-"
			}
			cell = fmt.Sprintf("%2d%s%.0f", day, mark, abs(pnl))
		}
		fmt.Fprintf(&b, "%-*s", calendarCellWidth, cell)

		if day%7 == 0 || day == daysInMonth {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
