package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/journal"
	"tradebook/stats"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		entry(t, 1, "2024-03-05", 1000),
		entry(t, 2, "2024-03-05", -250),
		entry(t, 3, "2024-03-06", 200),
	}

	r := NewReport(stats.MonthOf(2024, time.March), entries, 100000)

	assert.NotEmpty(t, r.ReportID)
	assert.Equal(t, 3, r.Summary.TotalTrades)
	assert.Equal(t, 950.0, r.Summary.NetPnL)
	assert.Equal(t, 100950.0, r.Projection.CurrentCapital)

	require.Len(t, r.Days, 2)
	assert.Equal(t, DayBucket{Date: "2024-03-05", PnL: 750}, r.Days[0])
	assert.Equal(t, DayBucket{Date: "2024-03-06", PnL: 200}, r.Days[1])
}

func TestReportTitle(t *testing.T) {
	t.Parallel()

	month := NewReport(stats.MonthOf(2024, time.March), nil, 0)
	assert.Equal(t, "March 2024", month.Title())

	year := NewReport(stats.YearOf(2024), nil, 0)
	assert.Equal(t, "2024", year.Title())
}

func TestFormatOrg(t *testing.T) {
	t.Parallel()

	entries := []journal.Entry{
		entry(t, 1, "2024-03-05", 1000),
		entry(t, 2, "2024-03-06", -500),
	}
	r := NewReport(stats.MonthOf(2024, time.March), entries, 100000)

	out, err := r.FormatOrg()
	require.NoError(t, err)

	assert.Contains(t, out, "* JOURNAL: March 2024")
	assert.Contains(t, out, ":TRADES:      2")
	assert.Contains(t, out, ":WIN_RATE:    50.0")
	// Losses render as magnitudes in the report.
	assert.Contains(t, out, ":LOSS:        500.00")
	assert.Contains(t, out, ":GROWTH_PCT:  0.50")
	assert.Contains(t, out, "| 2024-03-05 | 1000.00 |")
	assert.Contains(t, out, "| 1 | 2024-03-05 | 1000.00 |")
}

func TestFormatOrgEmptyPeriod(t *testing.T) {
	t.Parallel()

	r := NewReport(stats.MonthOf(2024, time.January), nil, 100000)

	out, err := r.FormatOrg()
	require.NoError(t, err)

	assert.Contains(t, out, "No trades in this period.")
	assert.Contains(t, out, ":WIN_RATE:    0.0")
	assert.Contains(t, out, ":GROWTH_PCT:  0.00")
}
