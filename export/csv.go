// Package export renders filtered journal subsets as CSV files and
// org-mode reports.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"tradebook/journal"
)

var csvHeader = []string{"id", "external_id", "date", "pnl", "trade_result", "notes"}

// WriteCSV writes entries as CSV. Photos are deliberately omitted: a data
// URI column makes the file unreadable in a spreadsheet.
func WriteCSV(w io.Writer, entries []journal.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.ID),
			e.ExternalID,
			journal.FormatDate(e.Date),
			f(e.PnL),
			string(e.Result),
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes entries to a CSV file at path.
func ExportCSV(path string, entries []journal.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, entries); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
