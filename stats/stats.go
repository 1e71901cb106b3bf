package stats

import (
	"math"
	"strconv"

	"tradebook/journal"
)

// Summary holds the aggregate statistics for a filtered subset.
//
// TotalLoss is kept signed (<= 0); display code shows its absolute value.
// An entry with pnl exactly 0 counts toward TotalTrades but contributes to
// neither profit, loss, nor the win count. That is defined semantics, not
// an accident of the reduction.
type Summary struct {
	TotalTrades int
	TotalProfit float64
	TotalLoss   float64
	NetPnL      float64
	WinRate     float64 // percent, rounded to one decimal
}

// Summarize computes the aggregate statistics for a subset.
// Summarize(nil) is the all-zero Summary; the win rate is defined as 0
// when there are no trades.
func Summarize(entries []journal.Entry) Summary {
	s := Summary{TotalTrades: len(entries)}

	wins := 0
	for _, e := range entries {
		switch {
		case e.PnL > 0:
			s.TotalProfit += e.PnL
			wins++
		case e.PnL < 0:
			s.TotalLoss += e.PnL
		}
	}

	s.NetPnL = s.TotalProfit + s.TotalLoss
	if s.TotalTrades > 0 {
		s.WinRate = math.Round(float64(wins)/float64(s.TotalTrades)*1000) / 10
	}
	return s
}

// Projection relates a filtered subset to the capital baseline.
type Projection struct {
	Baseline       float64
	CurrentCapital float64
	Growth         float64
	GrowthPercent  string // two decimals; "0.00" when the baseline is 0
}

// Project computes the capital projection for a subset against the
// committed baseline. Growth is derived from current and baseline rather
// than from the pnl sum, to keep the intent readable; the two are
// algebraically equal.
func Project(baseline float64, entries []journal.Entry) Projection {
	var total float64
	for _, e := range entries {
		total += e.PnL
	}

	current := baseline + total
	growth := current - baseline

	pct := "0.00"
	if baseline != 0 {
		pct = strconv.FormatFloat(growth/baseline*100, 'f', 2, 64)
	}

	return Projection{
		Baseline:       baseline,
		CurrentCapital: current,
		Growth:         growth,
		GrowthPercent:  pct,
	}
}

// Profitable reports whether the projection gets profit styling.
// Zero growth counts as profit. Presentation derivative only.
func (p Projection) Profitable() bool { return p.Growth >= 0 }
