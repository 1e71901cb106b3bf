// Package render formats aggregation results for the terminal.
package render

import (
	"fmt"
	"strings"

	"tradebook/journal"
	"tradebook/stats"
)

// Summary renders the stats block shown at the top of the dashboard.
// The loss is displayed as an absolute value.
func Summary(s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trades:       %d\n", s.TotalTrades)
	fmt.Fprintf(&b, "Total Profit: %.2f\n", s.TotalProfit)
	fmt.Fprintf(&b, "Total Loss:   %.2f\n", -s.TotalLoss)
	fmt.Fprintf(&b, "Net P&L:      %+.2f\n", s.NetPnL)
	fmt.Fprintf(&b, "Win Rate:     %.1f%%\n", s.WinRate)
	return b.String()
}

// Projection renders the capital block. The sign of the growth picks the
// profit or loss label; that styling is derived, never stored.
func Projection(p stats.Projection) string {
	label := "profit"
	if !p.Profitable() {
		label = "loss"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Initial Capital: %.2f\n", p.Baseline)
	fmt.Fprintf(&b, "Current Capital: %.2f (%s%%)\n", p.CurrentCapital, p.GrowthPercent)
	fmt.Fprintf(&b, "Growth:          %+.2f (%s)\n", p.Growth, label)
	return b.String()
}

// Entries renders the journal list as a table.
func Entries(entries []journal.Entry) string {
	if len(entries) == 0 {
		return "No trades for this period.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-12s %12s  %-12s %s\n", "ID", "DATE", "P&L", "RESULT", "NOTES")
	for _, e := range entries {
		photo := ""
		if e.Photo != "" {
			photo = " [photo]"
		}
		fmt.Fprintf(&b, "%-4d %-12s %12.2f  %-12s %s%s\n",
			e.ID, journal.FormatDate(e.Date), e.PnL, e.Result, e.Notes, photo)
	}
	return b.String()
}
