package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendar(t *testing.T) {
	t.Parallel()

	out := Calendar(2024, time.March, map[string]float64{
		"2024-03-05": 500,
		"2024-03-06": -250.4,
	})

	assert.True(t, strings.HasPrefix(out, "March 2024\n"))
	assert.Contains(t, out, " 5+500")
	assert.Contains(t, out, " 6-250")
	// March has 31 days.
	assert.Contains(t, out, "31")
	assert.NotContains(t, out, "32")
}

func TestCalendarNeutralDays(t *testing.T) {
	t.Parallel()

	// A day bucketed at exactly zero renders like a day with no trades.
	withZero := Calendar(2024, time.March, map[string]float64{"2024-03-05": 0})
	without := Calendar(2024, time.March, map[string]float64{})
	assert.Equal(t, without, withZero)

	assert.NotContains(t, without, "+")
	assert.NotContains(t, without, "-")
}

func TestCalendarMonthLengths(t *testing.T) {
	t.Parallel()

	feb := Calendar(2024, time.February, nil)
	assert.Contains(t, feb, "29", "2024 is a leap year")

	feb23 := Calendar(2023, time.February, nil)
	assert.NotContains(t, feb23, "29")
}

func TestCalendarRowBreaks(t *testing.T) {
	t.Parallel()

	out := Calendar(2024, time.March, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus 31 days in rows of 7.
	assert.Len(t, lines, 6)
}
