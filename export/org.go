package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"text/template"
	"time"

	"tradebook/journal"
	"tradebook/pkg/id"
	"tradebook/stats"
)

// Report is one period's journal rendered for review: the filtered
// entries plus everything the aggregation core derives from them.
type Report struct {
	ReportID string
	Created  time.Time

	Period     stats.Period
	Entries    []journal.Entry
	Summary    stats.Summary
	Projection stats.Projection
	Days       []DayBucket
}

// DayBucket is one calendar day's accumulated pnl, ordered for rendering.
type DayBucket struct {
	Date string
	PnL  float64
}

// NewReport assembles a report for the period from an already filtered
// subset and the committed baseline.
func NewReport(p stats.Period, entries []journal.Entry, baseline float64) Report {
	buckets := stats.Bucketize(entries)
	days := make([]DayBucket, 0, len(buckets))
	for date, pnl := range buckets {
		days = append(days, DayBucket{Date: date, PnL: pnl})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Report{
		ReportID:   id.New(),
		Created:    time.Now(),
		Period:     p,
		Entries:    entries,
		Summary:    stats.Summarize(entries),
		Projection: stats.Project(baseline, entries),
		Days:       days,
	}
}

// Title names the period the way the dashboard header does.
func (r Report) Title() string {
	if r.Period.Mode == stats.ByYear {
		return fmt.Sprintf("%d", r.Period.Year)
	}
	return fmt.Sprintf("%s %d", r.Period.Month, r.Period.Year)
}

var orgFuncs = template.FuncMap{
	"abs": func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	},
	"dateOf": journal.FormatDate,
}

// FormatOrg renders the report as an org-mode block.
func (r Report) FormatOrg() (string, error) {
	t, err := template.New("report").Funcs(orgFuncs).Parse(reportOrgTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// WriteOrg renders the report to a file at path.
func (r Report) WriteOrg(path string) error {
	out, err := r.FormatOrg()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

const reportOrgTemplate = `* JOURNAL: {{.Title}}
:PROPERTIES:
:REPORT_ID:   {{.ReportID}}
:PERIOD:      {{.Title}}
:TRADES:      {{.Summary.TotalTrades}}
:PROFIT:      {{printf "%.2f" .Summary.TotalProfit}}
:LOSS:        {{printf "%.2f" (abs .Summary.TotalLoss)}}
:NET_PNL:     {{printf "%.2f" .Summary.NetPnL}}
:WIN_RATE:    {{printf "%.1f" .Summary.WinRate}}
:BASELINE:    {{printf "%.2f" .Projection.Baseline}}
:CAPITAL:     {{printf "%.2f" .Projection.CurrentCapital}}
:GROWTH:      {{printf "%.2f" .Projection.Growth}}
:GROWTH_PCT:  {{.Projection.GrowthPercent}}
:CREATED:     [{{.Created.Format "2006-01-02 Mon 15:04"}}]
:END:

** Summary
- Trades:          {{.Summary.TotalTrades}}
- Total Profit:    {{printf "%.2f" .Summary.TotalProfit}}
- Total Loss:      {{printf "%.2f" (abs .Summary.TotalLoss)}}
- Net P&L:         *{{printf "%.2f" .Summary.NetPnL}}*
- Win Rate:        *{{printf "%.1f" .Summary.WinRate}}%*

** Capital
- Baseline:        {{printf "%.2f" .Projection.Baseline}}
- Current:         {{printf "%.2f" .Projection.CurrentCapital}}
- Growth:          {{printf "%.2f" .Projection.Growth}} ({{.Projection.GrowthPercent}}%)

** Daily P&L
{{- if .Days}}
| Day | P&L |
|-----+-----|
{{- range .Days}}
| {{.Date}} | {{printf "%.2f" .PnL}} |
{{- end}}
{{- else}}
No trades in this period.
{{- end}}

** Entries
{{- if .Entries}}
| ID | Date | P&L | Result | Notes |
|----+------+-----+--------+-------|
{{- range .Entries}}
| {{.ID}} | {{dateOf .Date}} | {{printf "%.2f" .PnL}} | {{.Result}} | {{.Notes}} |
{{- end}}
{{- else}}
No trades in this period.
{{- end}}

** Review
-
`
