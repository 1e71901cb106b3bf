package journal

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"os"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format. Entries carry no time
// component; only year/month/day are meaningful.
const DateLayout = "2006-01-02"

// Result tags the outcome of a trade.
type Result string

const (
	TPHit      Result = "tp_hit"
	SLHit      Result = "sl_hit"
	Partial    Result = "partial"
	Breakeven  Result = "breakeven"
	Missed     Result = "missed"
	ManualExit Result = "manual_exit"
)

// Valid reports whether r is a known outcome tag. The empty tag is valid:
// the outcome is optional.
func (r Result) Valid() bool {
	switch r {
	case "", TPHit, SLHit, Partial, Breakeven, Missed, ManualExit:
		return true
	}
	return false
}

// Entry is a single journal record.
//
// ID is a locally-assigned sequential integer used only for list identity
// within a loaded session. ExternalID is the store's identifier and is
// used for every mutating call; it is immutable once assigned. Keeping the
// two identifiers in separate fields is deliberate: the UI owns ID, the
// store owns ExternalID.
type Entry struct {
	ID         int
	ExternalID string
	Date       time.Time
	PnL        float64
	Notes      string
	Photo      string // data URI, optional
	Result     Result
}

// ResolvePnL resolves the dual-field aliasing between the current pnl
// field and the legacy profitLoss field. pnl wins when both are present;
// a missing or non-finite value resolves to 0. Every aggregation path
// must go through this one function.
func ResolvePnL(pnl, profitLoss *float64) float64 {
	v := 0.0
	switch {
	case pnl != nil:
		v = *pnl
	case profitLoss != nil:
		v = *profitLoss
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseDate parses a stored calendar date. The same rule is used for
// storage and for period comparison, reading year/month/day in the local
// reference frame.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a calendar date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Validate checks an entry before it reaches the store or the aggregation
// core. Aggregation assumes well-formed input, so malformed entries are
// rejected here.
func (e Entry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("entry: date is required")
	}
	if math.IsNaN(e.PnL) || math.IsInf(e.PnL, 0) {
		return fmt.Errorf("entry: pnl must be a finite number")
	}
	if !e.Result.Valid() {
		return fmt.Errorf("entry: unknown trade result %q", e.Result)
	}
	if e.Photo != "" && !strings.HasPrefix(e.Photo, "data:") {
		return fmt.Errorf("entry: photo must be a data URI")
	}
	return nil
}

// PhotoFromFile reads an image file and embeds it as a self-contained
// data URI, the only photo payload the store accepts.
func PhotoFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
